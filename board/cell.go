package board

import "math/bits"

// Cell is the candidate set of one grid position, stored as a 9-bit mask:
// bit v-1 is set iff digit v is still possible. The all-ones mask means
// "unknown" (every digit open); a single set bit means the cell is final.
//
// The zero mask represents a contradiction — a cell with no candidates
// left. The exported API never produces it (Remove refuses to strip the
// last candidate), and validation treats it as Invalid, never as final.
type Cell uint16

// allCandidates has the low 9 bits set: every digit 1–9 is open.
const allCandidates Cell = 1<<Size - 1

// NewCell returns an unknown cell: all 9 candidates present.
func NewCell() Cell {
	return allCandidates
}

// mask returns the single-bit mask for digit v. A Value forged by
// conversion outside [1,9] is a contract violation: letting it through
// would plant an out-of-band bit (or the contradiction mask) in a cell,
// so it panics like out-of-range cell coordinates do.
func mask(v Value) Cell {
	if v < 1 || v > Size {
		panic("board: value out of range")
	}

	return 1 << (v - 1)
}

// Contains reports whether digit v is still a candidate.
func (c Cell) Contains(v Value) bool {
	return c&mask(v) != 0
}

// Set forces the cell to the singleton {v}, discarding all other
// candidates. It is unconditional: the caller decides whether the
// assignment is consistent with the cell's neighbors.
func (c *Cell) Set(v Value) {
	*c = mask(v)
}

// Remove eliminates digit v from the candidate set. Removing from an
// already-final cell is a no-op: a forced digit is immutable under
// elimination, which keeps propagation and backtracking rollback from
// corrupting decided cells.
func (c *Cell) Remove(v Value) {
	if c.IsFinal() {
		return
	}
	*c &^= mask(v)
}

// IsFinal reports whether exactly one candidate remains. The check is
// the power-of-two test c&(c-1)==0 with the zero mask excluded: an empty
// candidate set is a contradiction, not a decided cell.
func (c Cell) IsFinal() bool {
	return c != 0 && c&(c-1) == 0
}

// Value returns the single remaining candidate and true when the cell is
// final, or 0 and false otherwise.
func (c Cell) Value() (Value, bool) {
	if !c.IsFinal() {
		return 0, false
	}

	return Value(bits.TrailingZeros16(uint16(c)) + 1), true
}

// Count returns the number of candidates still open.
func (c Cell) Count() int {
	return bits.OnesCount16(uint16(c))
}

// String renders the forced digit for a final cell and a single space
// for any other state, matching the textual grid format.
func (c Cell) String() string {
	if v, ok := c.Value(); ok {
		return v.String()
	}

	return " "
}
