// Command worksheetd serves the worksheet generation API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	worksheet "github.com/spellingplay/worksheetgen"
	"github.com/spellingplay/worksheetgen/internal/config"
	"github.com/spellingplay/worksheetgen/internal/handlers"
	"github.com/spellingplay/worksheetgen/internal/logger"
	"github.com/spellingplay/worksheetgen/internal/mail"
	"github.com/spellingplay/worksheetgen/internal/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// shutdownGrace bounds how long in-flight requests may run after a
// termination signal.
const shutdownGrace = 10 * time.Second

func main() {
	var (
		configPath string
		addr       string
		prewarm    bool
		verbose    bool
	)
	pflag.StringVarP(&configPath, "config", "c", "", "path to YAML config file")
	pflag.StringVar(&addr, "addr", "", "listen address (overrides config)")
	pflag.BoolVar(&prewarm, "prewarm", false, "launch the browser at startup")
	pflag.BoolVarP(&verbose, "verbose", "v", false, "log GOMAXPROCS adjustment")
	pflag.Parse()

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := run(configPath, addr, prewarm); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath, addrOverride string, prewarm bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if addrOverride != "" {
		cfg.Server.Addr = addrOverride
	}
	if prewarm {
		cfg.Server.Prewarm = true
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Infow("starting worksheetd", "version", Version, "addr", cfg.Server.Addr)

	// The export engine is the one long-lived shared resource: exactly one
	// browser per process, injected into the service here.
	exporter := worksheet.NewRodExporter(cfg.Export.Timeout)
	if cfg.Server.Prewarm {
		if err := exporter.Warmup(); err != nil {
			log.Warnw("browser prewarm failed, will retry on first request", "error", err)
		}
	}

	opts := []worksheet.Option{
		worksheet.WithExporter(exporter),
		worksheet.WithCache(worksheet.NewCache(cfg.Cache.TTL, cfg.Cache.MaxEntries)),
		worksheet.WithLogger(log),
	}
	if cfg.Grid.Size > 0 {
		opts = append(opts, worksheet.WithGridSize(cfg.Grid.Size))
	}
	if cfg.OpenAI.APIKey != "" {
		opts = append(opts, worksheet.WithSentenceGenerator(worksheet.NewOpenAISentenceClient(worksheet.OpenAIOptions{
			APIKey:  cfg.OpenAI.APIKey,
			BaseURL: cfg.OpenAI.BaseURL,
			Model:   cfg.OpenAI.Model,
			Timeout: cfg.OpenAI.Timeout,
		})))
	} else {
		log.Warn("OPENAI_API_KEY not set; fillblank worksheets will use fallback sentences")
	}

	svc := worksheet.New(opts...)
	defer func() {
		if err := svc.Close(); err != nil {
			log.Warnw("closing service", "error", err)
		}
	}()

	relay := mail.NewSMTPRelay(mail.SMTPOptions{
		Host:     cfg.Contact.SMTPHost,
		Port:     cfg.Contact.SMTPPort,
		Username: cfg.Contact.Username,
		Password: cfg.Contact.Password,
		From:     cfg.Contact.From,
		To:       cfg.Contact.To,
	})
	if !cfg.ContactConfigured() {
		log.Warn("mail relay not configured; contact form will return errors")
	}

	router := server.NewRouter(server.RouterConfig{
		WorksheetHandler: handlers.NewWorksheetHandler(svc, log),
		ContactHandler:   handlers.NewContactHandler(relay, log),
		HealthHandler:    handlers.NewHealthHandler(),
		CORSOrigins:      cfg.Server.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errc:
		return fmt.Errorf("http server: %w", err)
	case sig := <-stop:
		log.Infow("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
