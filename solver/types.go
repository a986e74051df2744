// Package solver defines options, results, and sentinel errors for the
// backtracking search.
package solver

import (
	"context"
	"errors"

	"github.com/katalvlaran/sudoku/board"
)

var (
	// ErrUnsolvable indicates that no assignment of the open cells
	// satisfies the grid: every branch of the search ended Invalid.
	// A normal outcome for contradictory puzzles, distinct from the
	// board package's parse errors.
	ErrUnsolvable = errors.New("solver: no solution")
)

// Option configures optional behavior of the search.
// Use with Solve(b, opts...).
type Option func(*Options)

// Options holds configurable parameters for one Solve call.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early with ctx.Err().
	// The default preserves run-to-exhaustion semantics.
	Ctx context.Context

	// OnAssign, if non-nil, is invoked each time a candidate digit is
	// placed on the decision cell, before recursing into that branch.
	// Returning an error aborts the entire search with that error.
	OnAssign func(index int, v board.Value) error
}

// DefaultOptions returns an Options struct with:
//   - Background context (no cancellation)
//   - No assignment hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnAssign: nil,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnAssign returns an Option that installs fn as the assignment hook.
// fn receives the flat row-major cell index (row*9+col) and the digit
// being tried.
func WithOnAssign(fn func(index int, v board.Value) error) Option {
	return func(o *Options) {
		o.OnAssign = fn
	}
}

// Result captures the outcome of a successful search.
type Result struct {
	// Board is the first complete, rule-consistent grid found.
	Board board.Board

	// Nodes counts candidate assignments tried across the whole search,
	// including the branches that failed.
	Nodes int

	// MaxLevel is the deepest decision cursor position reached, in flat
	// row-major cell indices. A puzzle solved without backtracking past
	// its last open cell reports that cell's index + 1.
	MaxLevel int
}
