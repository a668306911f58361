package worksheet

import "fmt"

// Activity identifies one worksheet type. The set is closed: every switch
// over Activity in this package is exhaustive, so adding an activity is a
// compile-time-checked change.
type Activity int

// Known activities, in registry order.
const (
	FillBlank Activity = iota
	WordSearch
	ScrambleWords
	FillingInLetters
	WriteSentence
	WritingFourTimes
	SpellingTest
	AlphabeticalOrder
)

// activityIDs maps each Activity to its wire identifier.
var activityIDs = [...]string{
	FillBlank:         "fillblank",
	WordSearch:        "wordsearch",
	ScrambleWords:     "scrambleWords",
	FillingInLetters:  "fillingInLetters",
	WriteSentence:     "writeSentence",
	WritingFourTimes:  "writingFourTimes",
	SpellingTest:      "spellingTest",
	AlphabeticalOrder: "alphabeticalOrder",
}

// ID returns the wire identifier used in requests and template names.
func (a Activity) ID() string {
	if a < 0 || int(a) >= len(activityIDs) {
		return fmt.Sprintf("Activity(%d)", int(a))
	}
	return activityIDs[a]
}

// String implements fmt.Stringer.
func (a Activity) String() string { return a.ID() }

// ParseActivity resolves a wire identifier to an Activity.
// Returns ErrUnknownActivity for any id not in the registry.
func ParseActivity(id string) (Activity, error) {
	for a, known := range activityIDs {
		if known == id {
			return Activity(a), nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownActivity, id)
}

// ActivityConfig is one entry of the static activity registry.
type ActivityConfig struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Directions  string `json:"directions"`
}

// registry holds the fixed per-activity configuration. Titles and directions
// are re-derived server-side from this table, never trusted from a client.
var registry = [...]ActivityConfig{
	FillBlank: {
		ID:          "fillblank",
		Title:       "Fill in the Blank",
		Image:       "/images/fillblank.png",
		Description: "Practice in context",
		Directions:  "Determine which word best completes each sentence.",
	},
	WordSearch: {
		ID:          "wordsearch",
		Title:       "Word Search",
		Image:       "/images/wordsearch.png",
		Description: "Find your words in a grid",
		Directions:  "Find each of the spelling words hidden in the grid. Circle or highlight each one as you locate it. When you’ve found them all, check off the list.",
	},
	ScrambleWords: {
		ID:          "scrambleWords",
		Title:       "Scrambled Words",
		Image:       "/images/scrambledwords.png",
		Description: "Unscramble each word",
		Directions:  "Each spelling word has its letters mixed up. Unscramble the letters to form the correct word, then write the word neatly on the line provided.",
	},
	FillingInLetters: {
		ID:          "fillingInLetters",
		Title:       "Filling in Letters",
		Image:       "/images/fillinletters.png",
		Description: "Fill in the missing letters",
		Directions:  "Look at each word with blanks for missing letters. Fill in the blanks to complete the spelling word correctly, using the word bank if you need a hint.",
	},
	WriteSentence: {
		ID:          "writeSentence",
		Title:       "Write a Sentence",
		Image:       "/images/writescentence.png",
		Description: "Use each word in a sentence",
		Directions:  "Write one original sentence for each spelling word. Make sure your sentence shows that you understand the word’s meaning.",
	},
	WritingFourTimes: {
		ID:          "writingFourTimes",
		Title:       "Writing Four Times",
		Image:       "/images/fourtimes.png",
		Description: "Write each word four times",
		Directions:  "Practice your handwriting and spelling by writing each word four times in a row. Pay close attention to letter formation and accuracy.",
	},
	SpellingTest: {
		ID:          "spellingTest",
		Title:       "Spelling Test",
		Image:       "/images/spellingtest.png",
		Description: "End of the week test",
		Directions:  "Listen carefully to the audio for each word. When you hear the word, write it on the blank line. After you’ve written all the words, compare with the answer key to see how you did.",
	},
	AlphabeticalOrder: {
		ID:          "alphabeticalOrder",
		Title:       "Alphabetical Order",
		Image:       "/images/alphaorder.png",
		Description: "Put the words in alphabetical order",
		Directions:  "Write the spelling words in alphabetical order on the lines below. Read each word carefully and think about which letter comes first.",
	},
}

// Config returns the registry entry for the activity.
func (a Activity) Config() ActivityConfig { return registry[a] }

// Activities returns the full registry in declaration order.
func Activities() []ActivityConfig {
	out := make([]ActivityConfig, len(registry))
	copy(out, registry[:])
	return out
}
