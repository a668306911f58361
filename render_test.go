package worksheet

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestRenderAllActivities(t *testing.T) {
	t.Parallel()

	r := newTemplateRenderer()
	words := []string{"apple", "bear", "cat"}

	for _, cfg := range Activities() {
		t.Run(cfg.ID, func(t *testing.T) {
			t.Parallel()

			activity, err := ParseActivity(cfg.ID)
			if err != nil {
				t.Fatal(err)
			}

			job := RenderJob{
				Activity: activity,
				WordBank: words,
				Items:    identityItems(words),
			}
			if activity == WordSearch {
				job.Grid = BuildGrid(rand.New(rand.NewPCG(1, 1)), words, 15)
			}

			markup, err := r.Render(context.Background(), job)
			if err != nil {
				t.Fatalf("Render(%s): %v", cfg.ID, err)
			}

			if !strings.Contains(markup, cfg.Title) {
				t.Errorf("markup missing title %q", cfg.Title)
			}
			if !strings.Contains(markup, "<style>") {
				t.Error("markup missing style block")
			}
		})
	}
}

func TestRenderWordBankVisibility(t *testing.T) {
	t.Parallel()

	r := newTemplateRenderer()
	words := []string{"zebra"}

	visible, err := r.Render(context.Background(), RenderJob{
		Activity: ScrambleWords,
		WordBank: words,
		Items:    identityItems(words),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(visible, "Word Bank") {
		t.Error("scrambleWords layout should show the word bank")
	}

	// The spelling test hides the word bank: it would spoil the answers.
	hidden, err := r.Render(context.Background(), RenderJob{
		Activity: SpellingTest,
		WordBank: words,
		Items:    identityItems(words),
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(hidden, "Word Bank") {
		t.Error("spellingTest layout should hide the word bank")
	}
	if strings.Contains(hidden, "zebra") {
		t.Error("spellingTest layout leaked a word")
	}
}

func TestRenderWordSearchGrid(t *testing.T) {
	t.Parallel()

	r := newTemplateRenderer()
	words := []string{"cat"}
	grid := BuildGrid(rand.New(rand.NewPCG(1, 1)), words, 5)

	markup, err := r.Render(context.Background(), RenderJob{
		Activity: WordSearch,
		WordBank: words,
		Items:    identityItems(words),
		Grid:     grid,
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(markup, "<td>"); got != 25 {
		t.Errorf("markup has %d grid cells, want 25", got)
	}
}

func TestRenderItemsEscaped(t *testing.T) {
	t.Parallel()

	r := newTemplateRenderer()
	words := []string{"<script>alert(1)</script>"}

	markup, err := r.Render(context.Background(), RenderJob{
		Activity: ScrambleWords,
		WordBank: words,
		Items:    identityItems(words),
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(markup, "<script>alert") {
		t.Error("word content was not HTML-escaped")
	}
}

func TestRenderCancelledContext(t *testing.T) {
	t.Parallel()

	r := newTemplateRenderer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.Render(ctx, RenderJob{Activity: ScrambleWords, WordBank: []string{"cat"}, Items: identityItems([]string{"cat"})})
	if err == nil {
		t.Error("expected error from cancelled context")
	}
}
