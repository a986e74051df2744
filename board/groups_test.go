package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/sudoku/board"
)

func TestRowCoords(t *testing.T) {
	coords := board.RowCoords(4)
	for col := 0; col < 9; col++ {
		assert.Equal(t, board.Coord{Row: 4, Col: col}, coords[col])
	}
}

func TestColCoords(t *testing.T) {
	coords := board.ColCoords(7)
	for row := 0; row < 9; row++ {
		assert.Equal(t, board.Coord{Row: row, Col: 7}, coords[row])
	}
}

func TestBlockCoords_Block0(t *testing.T) {
	// The canonical enumeration order: row-major within the block.
	want := [9]board.Coord{
		{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2},
		{Row: 1, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2},
		{Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2},
	}
	assert.Equal(t, want, board.BlockCoords(0))
}

func TestBlockCoords_Corners(t *testing.T) {
	// Block i's top-left corner sits at row (i/3)*3, col (i%3)*3.
	cases := []struct {
		block    int
		topLeft  board.Coord
		botRight board.Coord
	}{
		{block: 1, topLeft: board.Coord{Row: 0, Col: 3}, botRight: board.Coord{Row: 2, Col: 5}},
		{block: 3, topLeft: board.Coord{Row: 3, Col: 0}, botRight: board.Coord{Row: 5, Col: 2}},
		{block: 5, topLeft: board.Coord{Row: 3, Col: 6}, botRight: board.Coord{Row: 5, Col: 8}},
		{block: 8, topLeft: board.Coord{Row: 6, Col: 6}, botRight: board.Coord{Row: 8, Col: 8}},
	}
	for _, tc := range cases {
		coords := board.BlockCoords(tc.block)
		assert.Equal(t, tc.topLeft, coords[0], "block %d", tc.block)
		assert.Equal(t, tc.botRight, coords[8], "block %d", tc.block)
	}
}

func TestBlocks_CoverEveryCellOnce(t *testing.T) {
	seen := make(map[board.Coord]int, 81)
	for i := 0; i < 9; i++ {
		for _, at := range board.BlockCoords(i) {
			seen[at]++
		}
	}

	assert.Len(t, seen, 81)
	for at, n := range seen {
		assert.Equal(t, 1, n, "cell %v covered %d times", at, n)
	}
}

func TestGroupCoords_PanicOutOfRange(t *testing.T) {
	assert.Panics(t, func() { board.RowCoords(9) })
	assert.Panics(t, func() { board.ColCoords(-1) })
	assert.Panics(t, func() { board.BlockCoords(42) })
}
