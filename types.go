package worksheet

import "strings"

// Item is one word's rendered content/answer pair within a worksheet.
// Answer always holds the original word verbatim; Content holds the
// presentation form (sentence with a blank, scramble, masked word, or the
// word itself for activities that do not transform content).
type Item struct {
	Content string `json:"sentence"`
	Answer  string `json:"answer"`
}

// RenderJob bundles everything the document renderer needs for one request.
// It has no lifecycle beyond the request that created it.
type RenderJob struct {
	Activity Activity
	WordBank []string
	Items    []Item
	Grid     Grid // nil unless Activity == WordSearch
}

// NormalizeWords trims surrounding whitespace, drops empty entries, and
// removes exact duplicates while preserving order and case.
func NormalizeWords(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
