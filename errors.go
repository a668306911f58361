package worksheet

import "errors"

// Sentinel errors for library operations.
var (
	ErrUnknownActivity = errors.New("unknown activity")
	ErrEmptyWordList   = errors.New("word list cannot be empty")

	// Rendering errors.
	ErrTemplateMissing = errors.New("no layout template for activity")
	ErrTemplateRender  = errors.New("layout template rendering failed")

	// Export engine errors.
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrScreenshot     = errors.New("screenshot capture failed")

	// Sentence service errors. Always recovered with fallback sentences
	// before reaching a caller; exported for logging and tests.
	ErrSentenceService = errors.New("sentence generation service failed")
)
