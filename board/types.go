// Package board defines core types, constants, and sentinel errors
// for the board subpackage of github.com/katalvlaran/sudoku.
package board

import (
	"errors"
	"strconv"
)

const (
	// Size is the edge length of the grid: 9 rows, 9 columns, 9 groups of each kind.
	Size = 9

	// CellCount is the total number of cells on a Board (Size×Size).
	CellCount = Size * Size

	// blockSize is the edge length of one 3×3 block.
	blockSize = 3
)

// Sentinel errors for board operations.
var (
	// ErrValueOutOfRange indicates a digit outside the valid range 1–9.
	// Parsing the character '0' reports this error.
	ErrValueOutOfRange = errors.New("board: value out of range (digits are 1..9)")

	// ErrParse indicates a grid character that is neither a digit 1–9 nor a space.
	ErrParse = errors.New("board: cannot parse character as digit")

	// ErrGridShape indicates textual input exceeding 9 lines of 9 characters.
	ErrGridShape = errors.New("board: grid must fit 9 lines of 9 characters")
)

// Value is a Sudoku digit in [1,9]. The zero Value is not meaningful;
// obtain instances through NewValue or Cell.Value.
type Value uint8

// NewValue returns v as a Value, or ErrValueOutOfRange when v is not in [1,9].
func NewValue(v uint8) (Value, error) {
	if v < 1 || v > Size {
		return 0, ErrValueOutOfRange
	}

	return Value(v), nil
}

// String renders the digit as a single decimal character.
func (v Value) String() string {
	return strconv.Itoa(int(v))
}

// Coord identifies one cell position on the grid.
// Row and Col are both in [0,9).
type Coord struct {
	Row, Col int
}

// Solution classifies a grid (or a single group) against the Sudoku rules.
type Solution int

const (
	// Valid: every cell is final and each group covers 1–9 exactly once.
	Valid Solution = iota
	// Incomplete: no rule is violated yet, but at least one cell is undecided.
	Incomplete
	// Invalid: two finals share a value within a group, or a cell holds no
	// candidates at all (an unsatisfiable branch).
	Invalid
)

// String returns the lowercase classification name.
func (s Solution) String() string {
	switch s {
	case Valid:
		return "valid"
	case Incomplete:
		return "incomplete"
	case Invalid:
		return "invalid"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}
