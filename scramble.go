package worksheet

import "math/rand/v2"

// ScrambleWord returns a uniform random permutation of the word's letters
// using a Fisher–Yates shuffle over runes. A short or repetitive word may
// scramble to itself; no distinctness is enforced. Words of length <= 1 are
// returned unchanged.
func ScrambleWord(rng *rand.Rand, word string) string {
	letters := []rune(word)
	if len(letters) <= 1 {
		return word
	}
	for i := len(letters) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		letters[i], letters[j] = letters[j], letters[i]
	}
	return string(letters)
}
