package worksheet

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Exporter converts rendered markup into printable bytes. Implementations
// own a long-lived rendering engine shared across requests.
type Exporter interface {
	ExportPDF(ctx context.Context, htmlContent string) ([]byte, error)
	ExportPNG(ctx context.Context, htmlContent string) ([]byte, error)
	Close() error
}

// Compile-time interface check.
var _ Exporter = (*RodExporter)(nil)

// PDF page dimensions in inches (US Letter format).
const (
	paperWidthInches  = 8.5
	paperHeightInches = 11
	marginInches      = 0.5
)

// Preview snapshot dimensions: one Letter page at 96 DPI.
const (
	previewWidthPx  = 816
	previewHeightPx = 1056
)

// DefaultExportTimeout bounds page load and export so a hung render cannot
// starve the shared browser.
const DefaultExportTimeout = 30 * time.Second

// RodExporter exports worksheets with headless Chrome via go-rod.
// The browser process is launched lazily once and reused; each request
// borrows a fresh page and releases it on every exit path.
// Rod automatically downloads Chromium on first run if not found.
type RodExporter struct {
	mu      sync.Mutex
	browser *rod.Browser
	timeout time.Duration
}

// NewRodExporter creates an exporter with the given per-export timeout.
// A timeout <= 0 uses DefaultExportTimeout.
func NewRodExporter(timeout time.Duration) *RodExporter {
	if timeout <= 0 {
		timeout = DefaultExportTimeout
	}
	return &RodExporter{timeout: timeout}
}

// Warmup launches the browser ahead of the first request to avoid
// cold-start latency. Safe to skip; the browser also launches on demand.
func (e *RodExporter) Warmup() error {
	_, err := e.ensureBrowser()
	return err
}

// ensureBrowser lazily launches and connects to the shared browser.
func (e *RodExporter) ensureBrowser() (*rod.Browser, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		return e.browser, nil
	}

	l := launcher.New()

	// Use a pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	e.browser = browser
	return browser, nil
}

// Close releases the shared browser.
func (e *RodExporter) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// ExportPDF renders the markup to a paginated Letter-format PDF.
func (e *RodExporter) ExportPDF(ctx context.Context, htmlContent string) ([]byte, error) {
	var pdf []byte
	err := e.withPage(ctx, htmlContent, func(page *rod.Page) error {
		reader, err := page.PDF(&proto.PagePrintToPDF{
			PaperWidth:      floatPtr(paperWidthInches),
			PaperHeight:     floatPtr(paperHeightInches),
			MarginTop:       floatPtr(marginInches),
			MarginBottom:    floatPtr(marginInches),
			MarginLeft:      floatPtr(marginInches),
			MarginRight:     floatPtr(marginInches),
			PrintBackground: true,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrPDFGeneration, err)
		}

		pdf, err = io.ReadAll(reader)
		if err != nil {
			return fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
		}
		return nil
	})
	return pdf, err
}

// ExportPNG renders the markup to a single raster snapshot sized to one
// page, for environments where inline PDF viewing is unreliable.
func (e *RodExporter) ExportPNG(ctx context.Context, htmlContent string) ([]byte, error) {
	var png []byte
	err := e.withPage(ctx, htmlContent, func(page *rod.Page) error {
		if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
			Width:             previewWidthPx,
			Height:            previewHeightPx,
			DeviceScaleFactor: 1,
		}); err != nil {
			return fmt.Errorf("%w: setting viewport: %v", ErrScreenshot, err)
		}

		buf, err := page.Screenshot(false, &proto.PageCaptureScreenshot{
			Format: proto.PageCaptureScreenshotFormatPng,
		})
		if err != nil {
			return fmt.Errorf("%w: %v", ErrScreenshot, err)
		}
		png = buf
		return nil
	})
	return png, err
}

// withPage loads the markup into a fresh page, waits for content to settle,
// and runs fn. The page is always closed so pages never leak across
// requests; a failed export leaves the shared browser untouched.
func (e *RodExporter) withPage(ctx context.Context, htmlContent string, fn func(*rod.Page) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	browser, err := e.ensureBrowser()
	if err != nil {
		return err
	}

	tmpPath, cleanup, err := writeTempFile(htmlContent, "html")
	if err != nil {
		return err
	}
	defer cleanup()

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return fn(page)
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
