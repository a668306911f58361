package worksheet

import (
	"math/rand/v2"
	"strings"
)

// DefaultGridSize is the side length of a word-search grid.
const DefaultGridSize = 15

// placementAttempts bounds the random placement retries per word. A word
// that exhausts the budget is silently skipped; earlier placements are never
// undone to make room for a later word. The greedy, lossy behaviour is
// intentional.
const placementAttempts = 100

// Grid is the square letter matrix underlying a word-search activity.
// After BuildGrid returns, every cell holds an uppercase letter.
type Grid [][]rune

// gridDirections are the four legal reading directions: right, down,
// diagonal-down-right, diagonal-up-right.
var gridDirections = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{-1, 1},
}

// BuildGrid places the words into a size×size grid in their original list
// order, then fills every remaining cell with a random letter. Placement
// starts at a uniformly random cell along a random direction and is valid
// only when every cell it would occupy is empty or already holds the letter
// the word needs there.
func BuildGrid(rng *rand.Rand, words []string, size int) Grid {
	if size <= 0 {
		size = DefaultGridSize
	}

	grid := make(Grid, size)
	for r := range grid {
		grid[r] = make([]rune, size)
	}

	for _, word := range words {
		placeWord(rng, grid, strings.ToUpper(word))
	}

	for r := range grid {
		for c := range grid[r] {
			if grid[r][c] == 0 {
				grid[r][c] = rune('A' + rng.IntN(26))
			}
		}
	}
	return grid
}

// placeWord tries up to placementAttempts random positions and reports
// whether the word was committed to the grid.
func placeWord(rng *rand.Rand, grid Grid, word string) bool {
	size := len(grid)
	letters := []rune(word)

	for attempt := 0; attempt < placementAttempts; attempt++ {
		dir := gridDirections[rng.IntN(len(gridDirections))]
		row := rng.IntN(size)
		col := rng.IntN(size)

		if !fits(grid, letters, row, col, dir) {
			continue
		}

		r, c := row, col
		for _, letter := range letters {
			grid[r][c] = letter
			r += dir[0]
			c += dir[1]
		}
		return true
	}
	return false
}

// fits reports whether the word can occupy the run of cells starting at
// (row, col) along dir without leaving the grid or contradicting a
// previously placed letter.
func fits(grid Grid, letters []rune, row, col int, dir [2]int) bool {
	size := len(grid)
	r, c := row, col
	for _, letter := range letters {
		if r < 0 || c < 0 || r >= size || c >= size {
			return false
		}
		if grid[r][c] != 0 && grid[r][c] != letter {
			return false
		}
		r += dir[0]
		c += dir[1]
	}
	return true
}

// Cells returns the grid as single-letter strings for template binding.
func (g Grid) Cells() [][]string {
	rows := make([][]string, len(g))
	for i, row := range g {
		cells := make([]string, len(row))
		for j, letter := range row {
			cells[j] = string(letter)
		}
		rows[i] = cells
	}
	return rows
}
