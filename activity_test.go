package worksheet

import (
	"errors"
	"testing"
)

func TestParseActivity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		id   string
		want Activity
	}{
		{"fillblank", FillBlank},
		{"wordsearch", WordSearch},
		{"scrambleWords", ScrambleWords},
		{"fillingInLetters", FillingInLetters},
		{"writeSentence", WriteSentence},
		{"writingFourTimes", WritingFourTimes},
		{"spellingTest", SpellingTest},
		{"alphabeticalOrder", AlphabeticalOrder},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			t.Parallel()

			got, err := ParseActivity(tt.id)
			if err != nil {
				t.Fatalf("ParseActivity(%q) error: %v", tt.id, err)
			}
			if got != tt.want {
				t.Errorf("ParseActivity(%q) = %v, want %v", tt.id, got, tt.want)
			}
			if got.ID() != tt.id {
				t.Errorf("round trip: %v.ID() = %q, want %q", got, got.ID(), tt.id)
			}
		})
	}
}

func TestParseActivityUnknown(t *testing.T) {
	t.Parallel()

	_, err := ParseActivity("doesNotExist")
	if !errors.Is(err, ErrUnknownActivity) {
		t.Fatalf("ParseActivity(doesNotExist) error = %v, want ErrUnknownActivity", err)
	}
}

func TestRegistryComplete(t *testing.T) {
	t.Parallel()

	configs := Activities()
	if len(configs) != 8 {
		t.Fatalf("registry has %d entries, want 8", len(configs))
	}
	for i, cfg := range configs {
		if cfg.ID == "" || cfg.Title == "" || cfg.Directions == "" {
			t.Errorf("registry entry %d incomplete: %+v", i, cfg)
		}
		if got := Activity(i).Config(); got != cfg {
			t.Errorf("Config() mismatch at %d", i)
		}
	}
}
