package worksheet

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// Content types produced by the pipeline.
const (
	ContentTypePDF = "application/pdf"
	ContentTypePNG = "image/png"
)

// Request describes one worksheet to generate. Title and directions are
// re-derived from the activity registry, never taken from the caller.
type Request struct {
	Words    []string `json:"words"`
	ListName string   `json:"listName"`
	Activity string   `json:"activity"`
}

// Result is one generated document.
type Result struct {
	Payload     []byte
	ContentType string
	Filename    string
	Cached      bool
}

// Service orchestrates the worksheet pipeline: dispatch, item generation,
// grid building, layout rendering, and export.
type Service struct {
	cfg       serviceConfig
	sentences SentenceGenerator
	renderer  documentRenderer
	exporter  Exporter
	cache     *Cache
	log       *zap.SugaredLogger
}

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	gridSize      int
	exportTimeout time.Duration
	seed          *uint64
}

// Option configures a Service.
type Option func(*Service)

// WithSentenceGenerator wires the external text-generation client used by
// the fillblank activity. Without one, every fillblank request uses the
// deterministic fallback sentences.
func WithSentenceGenerator(g SentenceGenerator) Option {
	return func(s *Service) { s.sentences = g }
}

// WithExporter injects the shared export engine. The Service takes
// ownership and closes it on Close.
func WithExporter(e Exporter) Option {
	return func(s *Service) { s.exporter = e }
}

// WithCache replaces the default render cache.
func WithCache(c *Cache) Option {
	return func(s *Service) { s.cache = c }
}

// WithLogger attaches a structured logger. Defaults to a no-op logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Service) { s.log = log }
}

// WithGridSize sets the word-search grid side length.
// Panics if n <= 0 (programmer error, similar to time.NewTicker).
func WithGridSize(n int) Option {
	if n <= 0 {
		panic("worksheet: WithGridSize must be positive")
	}
	return func(s *Service) { s.cfg.gridSize = n }
}

// WithExportTimeout bounds each export operation.
func WithExportTimeout(d time.Duration) Option {
	return func(s *Service) { s.cfg.exportTimeout = d }
}

// withRandSeed pins the random source for deterministic tests.
func withRandSeed(seed uint64) Option {
	return func(s *Service) { s.cfg.seed = &seed }
}

// withRenderer replaces the document renderer (tests).
func withRenderer(r documentRenderer) Option {
	return func(s *Service) { s.renderer = r }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg:      serviceConfig{gridSize: DefaultGridSize},
		renderer: newTemplateRenderer(),
		log:      zap.NewNop().Sugar(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.cache == nil {
		s.cache = NewCache(0, 0)
	}
	// Create the export engine if not injected (e.g., by tests)
	if s.exporter == nil {
		s.exporter = NewRodExporter(s.cfg.exportTimeout)
	}

	return s
}

// Close releases the shared export engine.
func (s *Service) Close() error {
	if s.exporter != nil {
		return s.exporter.Close()
	}
	return nil
}

// GeneratePDF runs the full pipeline and returns a paginated PDF.
func (s *Service) GeneratePDF(ctx context.Context, req Request) (*Result, error) {
	return s.generate(ctx, req, "pdf")
}

// GeneratePreview runs the full pipeline and returns a one-page PNG
// snapshot instead of a PDF.
func (s *Service) GeneratePreview(ctx context.Context, req Request) (*Result, error) {
	return s.generate(ctx, req, "png")
}

// generate is the shared pipeline: dispatch, items, optional grid, layout,
// export, cache.
func (s *Service) generate(ctx context.Context, req Request, format string) (*Result, error) {
	activity, err := ParseActivity(req.Activity)
	if err != nil {
		return nil, err
	}

	words := NormalizeWords(req.Words)
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}

	contentType := ContentTypePDF
	if format == "png" {
		contentType = ContentTypePNG
	}
	filename := buildFilename(req.ListName, activity, format)

	key := CacheKey(words, req.ListName, activity.ID(), format)
	if payload, cachedType, ok := s.cache.Get(key); ok {
		s.log.Debugw("cache hit", "activity", activity.ID(), "words", len(words))
		return &Result{Payload: payload, ContentType: cachedType, Filename: filename, Cached: true}, nil
	}

	job := RenderJob{
		Activity: activity,
		WordBank: words,
		Items:    s.GenerateItems(ctx, activity, words),
	}
	if activity == WordSearch {
		job.Grid = BuildGrid(s.newRand(), words, s.cfg.gridSize)
	}

	markup, err := s.renderer.Render(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("rendering %s layout: %w", activity.ID(), err)
	}

	var payload []byte
	if format == "png" {
		payload, err = s.exporter.ExportPNG(ctx, markup)
	} else {
		payload, err = s.exporter.ExportPDF(ctx, markup)
	}
	if err != nil {
		return nil, fmt.Errorf("exporting %s: %w", activity.ID(), err)
	}

	s.cache.Put(key, payload, contentType)

	return &Result{Payload: payload, ContentType: contentType, Filename: filename}, nil
}

// GenerateItems maps each word to exactly one worksheet item using the
// activity's content strategy. The fillblank strategy may call the external
// sentence service; every failure there is absorbed with fallback sentences
// so the pipeline always completes.
func (s *Service) GenerateItems(ctx context.Context, activity Activity, words []string) []Item {
	switch activity {
	case FillBlank:
		if s.sentences == nil {
			return FallbackSentences(words)
		}
		items, err := s.sentences.Sentences(ctx, words)
		if err != nil {
			s.log.Warnw("sentence service degraded, using fallback", "error", err, "words", len(words))
			return FallbackSentences(words)
		}
		return items

	case ScrambleWords:
		rng := s.newRand()
		items := make([]Item, len(words))
		for i, word := range words {
			items[i] = Item{Content: ScrambleWord(rng, word), Answer: word}
		}
		return items

	case FillingInLetters:
		rng := s.newRand()
		items := make([]Item, len(words))
		for i, word := range words {
			items[i] = Item{Content: MaskLetters(rng, word, maskCount(word)), Answer: word}
		}
		return items

	case WordSearch, WriteSentence, WritingFourTimes, SpellingTest, AlphabeticalOrder:
		return identityItems(words)
	}
	return identityItems(words)
}

// identityItems is the default strategy: content equals answer. These
// activities rely on the word bank and directions alone.
func identityItems(words []string) []Item {
	items := make([]Item, len(words))
	for i, word := range words {
		items[i] = Item{Content: word, Answer: word}
	}
	return items
}

// newRand returns a fresh random source per call site. Requests never share
// one, so item generation stays race-free under concurrent load.
func (s *Service) newRand() *rand.Rand {
	if s.cfg.seed != nil {
		return rand.New(rand.NewPCG(*s.cfg.seed, *s.cfg.seed))
	}
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// buildFilename derives the download filename for a generated document.
func buildFilename(listName string, activity Activity, format string) string {
	name := listName
	if name == "" {
		name = "worksheet"
	}
	ext := "pdf"
	if format == "png" {
		ext = "png"
	}
	return fmt.Sprintf("%s_%s.%s", name, activity.ID(), ext)
}
