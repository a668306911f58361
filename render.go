package worksheet

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"

	"github.com/spellingplay/worksheetgen/internal/assets"
)

// documentRenderer binds a RenderJob into printable HTML markup.
type documentRenderer interface {
	Render(ctx context.Context, job RenderJob) (string, error)
}

// styleName is the embedded CSS applied to every worksheet layout.
const styleName = "worksheet"

// baseTemplateName is the shared document frame every activity layout plugs
// its content block into.
const baseTemplateName = "base"

// templateData is the binding context for worksheet layout templates.
type templateData struct {
	Title        string
	Directions   template.HTML
	Style        template.CSS
	WordBank     []string
	Items        []Item
	Grid         [][]string
	ShowWordBank bool
}

// templateRenderer renders worksheets from the embedded per-activity
// templates. Registry directions pass through goldmark so copy may use
// inline markdown emphasis.
type templateRenderer struct {
	md goldmark.Markdown
}

// newTemplateRenderer creates the default renderer.
func newTemplateRenderer() *templateRenderer {
	return &templateRenderer{md: goldmark.New()}
}

// Render selects the layout template matching the activity id and executes
// it against the job. An activity without a template is a configuration
// error for the request, reported as ErrTemplateMissing.
func (r *templateRenderer) Render(ctx context.Context, job RenderJob) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cfg := job.Activity.Config()

	base, err := assets.LoadTemplate(baseTemplateName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}
	content, err := assets.LoadTemplate(cfg.ID)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrTemplateMissing, cfg.ID)
	}
	style, err := assets.LoadStyle(styleName)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTemplateMissing, err)
	}

	tmpl, err := template.New(cfg.ID).Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, cfg.ID, err)
	}
	if _, err := tmpl.Parse(content); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, cfg.ID, err)
	}

	directions, err := r.renderDirections(cfg.Directions)
	if err != nil {
		return "", err
	}

	data := templateData{
		Title:        cfg.Title,
		Directions:   directions,
		Style:        template.CSS(style),
		WordBank:     job.WordBank,
		Items:        job.Items,
		Grid:         job.Grid.Cells(),
		ShowWordBank: job.Activity != SpellingTest,
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, baseTemplateName, data); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateRender, cfg.ID, err)
	}
	return buf.String(), nil
}

// renderDirections converts registry directions to HTML via goldmark.
func (r *templateRenderer) renderDirections(directions string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(directions), &buf); err != nil {
		return "", fmt.Errorf("%w: directions: %v", ErrTemplateRender, err)
	}
	// goldmark escapes its input; the output is safe to inline.
	return template.HTML(buf.String()), nil //nolint:gosec
}
