package solver

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
)

// walker encapsulates state shared across all recursion levels of one search.
type walker struct {
	opts  Options // search options
	nodes int     // candidate assignments tried
	max   int     // deepest cursor position reached
}

// Solve searches for the first complete, rule-consistent completion of b,
// trying digits in ascending order at each undecided cell in row-major
// order. Returns ErrUnsolvable when every branch ends Invalid, or the
// context/hook error when the search was aborted.
func Solve(b board.Board, opts ...Option) (*Result, error) {
	// 1. Apply options
	sopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&sopts)
	}

	w := &walker{opts: sopts}

	// 2. Recurse from the first cell
	solved, found, err := w.backtrack(b, 0)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrUnsolvable
	}

	return &Result{Board: solved, Nodes: w.nodes, MaxLevel: w.max}, nil
}

// backtrack explores the subtree rooted at cur, with level pointing at
// the first cell index that may still be undecided. Each branch receives
// its own Board copy; a failed branch is simply discarded.
func (w *walker) backtrack(cur board.Board, level int) (board.Board, bool, error) {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return board.Board{}, false, w.opts.Ctx.Err()
	default:
	}

	// 2. Classify the current grid
	switch cur.Validate() {
	case board.Valid:
		return cur, true, nil
	case board.Invalid:
		return board.Board{}, false, nil
	}

	// 3. Advance the cursor to the next undecided cell
	for level < board.CellCount && cur.Get(level/board.Size, level%board.Size).IsFinal() {
		level++
	}
	if level == board.CellCount {
		// Incomplete with every cell final is only reachable through a
		// corrupted candidate mask; fail the branch rather than index
		// past the grid.
		return board.Board{}, false, nil
	}
	if level+1 > w.max {
		w.max = level + 1
	}

	row, col := level/board.Size, level%board.Size

	// 4. Branch on each candidate digit, ascending
	for v := board.Value(1); v <= board.Size; v++ {
		candidate := cur
		candidate.Set(row, col, v)
		w.nodes++

		if w.opts.OnAssign != nil {
			if err := w.opts.OnAssign(level, v); err != nil {
				return board.Board{}, false, fmt.Errorf("solver: OnAssign hook at cell %d: %w", level, err)
			}
		}

		solved, found, err := w.backtrack(candidate, level+1)
		if err != nil || found {
			return solved, found, err
		}
	}

	// 5. All digits exhausted: fail upward
	return board.Board{}, false, nil
}
