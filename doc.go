// Package sudoku is a compact toolkit for representing and solving
// classic 9×9 Sudoku grids — from the per-cell candidate bitset up to
// exhaustive backtracking search.
//
// 🚀 What is sudoku?
//
//	A small, focused library that brings together:
//		• Cell primitives: a 9-bit candidate mask per grid position
//		• Board: 81 cells with row / column / block group validation
//		• Classification: Valid, Incomplete, or Invalid in one call
//		• Text codec: the canonical 9×9 digit-or-space grid format
//		• Solver: deterministic depth-first backtracking search
//
// ✨ Why choose sudoku?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Value semantics – boards copy freely, no shared mutable state
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – cancellation & hooks (WithContext, WithOnAssign)
//
// Under the hood, everything is organized under two subpackages:
//
//	board/  — Value, Cell, Board, group enumeration, validation, text codec
//	solver/ — recursive backtracking search over board.Board values
//
// Quick ASCII example:
//
//	53  7    	      534678912
//	6  195   	      672195348
//	 98    6 	  →   198342567
//	…        	      …
//
//	an incomplete grid on the left, its unique completion on the right.
//
// Dive into examples/ for runnable walkthroughs of parsing, validation,
// and solving.
//
//	go get github.com/katalvlaran/sudoku
package sudoku
