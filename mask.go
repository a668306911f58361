package worksheet

import "math/rand/v2"

// maskRune replaces hidden letters in the fillingInLetters activity.
const maskRune = '_'

// MaskLetters blanks exactly min(hide, len(word)) distinct letter positions,
// chosen by uniform sampling without replacement. All other runes keep their
// original case and position. A hide count <= 0 returns the word unchanged.
func MaskLetters(rng *rand.Rand, word string, hide int) string {
	letters := []rune(word)
	if hide <= 0 || len(letters) == 0 {
		return word
	}
	if hide > len(letters) {
		hide = len(letters)
	}

	picked := make(map[int]struct{}, hide)
	for len(picked) < hide {
		picked[rng.IntN(len(letters))] = struct{}{}
	}
	for i := range picked {
		letters[i] = maskRune
	}
	return string(letters)
}

// maskCount mirrors the requested hide count for a word: at most three
// letters, never more than half the word.
func maskCount(word string) int {
	n := len([]rune(word)) / 2
	if n > 3 {
		n = 3
	}
	return n
}
