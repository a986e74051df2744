package board

// Board is a 9×9 grid of candidate Cells stored as one flat array.
// Board is a plain value: assignment copies all 81 cells, so a copy and
// its original never share mutable state — the property the backtracking
// solver relies on when it branches.
//
// The zero Board holds zero-mask (contradiction) cells; construct grids
// with New or Parse instead.
type Board struct {
	cells [CellCount]Cell
}

// New returns an empty Board: every cell unknown, all 9 candidates open.
func New() Board {
	var b Board
	for i := range b.cells {
		b.cells[i] = NewCell()
	}

	return b
}

// index maps (row, col) to the flat row-major cell index, panicking on
// out-of-range coordinates: indexing outside the 9×9 grid is a contract
// violation, not a recoverable error.
func index(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic("board: cell coordinates out of range")
	}

	return row*Size + col
}

// Get returns the cell at (row, col). Panics when either coordinate is
// outside [0,9).
func (b *Board) Get(row, col int) Cell {
	return b.cells[index(row, col)]
}

// Set forces the cell at (row, col) to the singleton {v}, discarding any
// other candidates. Panics when either coordinate is outside [0,9).
func (b *Board) Set(row, col int, v Value) {
	b.cells[index(row, col)].Set(v)
}

// ValidateGroup classifies one 9-cell group:
//
//   - Invalid:    two finals share a value, or a cell holds no candidates.
//   - Incomplete: not invalid, but at least one cell is undecided.
//   - Valid:      all 9 cells final; by pigeonhole they cover 1–9 exactly once.
func (b *Board) ValidateGroup(coords [Size]Coord) Solution {
	// seen accumulates the single-bit masks of finals found so far.
	var seen Cell
	undecided := false

	var cell Cell
	for _, at := range coords {
		cell = b.Get(at.Row, at.Col)

		// A zero mask means the branch is unsatisfiable.
		if cell == 0 {
			return Invalid
		}

		if !cell.IsFinal() {
			undecided = true
			continue
		}

		// cell is its own single-bit mask here.
		if seen&cell != 0 {
			return Invalid
		}
		seen |= cell
	}

	if undecided {
		return Incomplete
	}

	return Valid
}

// Validate classifies the whole grid by running ValidateGroup over all
// 27 groups. For each index i in 0..9 it checks row i, then column i,
// then block i, returning Invalid at the first invalid group; otherwise
// Incomplete if any group was incomplete, else Valid.
func (b *Board) Validate() Solution {
	incomplete := false
	for i := 0; i < Size; i++ {
		switch b.ValidateGroup(RowCoords(i)) {
		case Invalid:
			return Invalid
		case Incomplete:
			incomplete = true
		}

		switch b.ValidateGroup(ColCoords(i)) {
		case Invalid:
			return Invalid
		case Incomplete:
			incomplete = true
		}

		switch b.ValidateGroup(BlockCoords(i)) {
		case Invalid:
			return Invalid
		case Incomplete:
			incomplete = true
		}
	}

	if incomplete {
		return Incomplete
	}

	return Valid
}

// IsValid reports whether the grid is a complete, rule-consistent
// solution: Validate() == Valid.
func (b *Board) IsValid() bool {
	return b.Validate() == Valid
}
