// Package board models a 9×9 Sudoku grid as 81 candidate bitsets, enabling
// group validation and the canonical text codec.
//
// What:
//
//   - Value is a digit in [1,9]; construction fails outside that range.
//   - Cell is a 9-bit candidate mask: membership, elimination, forced
//     assignment and finality checks are all O(1) bit operations.
//   - Board is a plain value of 81 Cells; assignment copies the whole grid,
//     so no two holders ever share mutable state.
//   - RowCoords, ColCoords and BlockCoords enumerate the 27 groups of 9
//     coordinates that must each cover the digits 1–9 exactly once.
//   - Validate classifies a grid as Valid, Incomplete, or Invalid;
//     ValidateGroup does the same for a single group.
//   - Parse and Board.String convert between grids and the 9-line
//     digit-or-space text form.
//
// Why:
//
//   - Search: backtracking solvers branch on Board copies and prune on
//     Invalid classifications (see the solver package).
//   - Entry validation: reject contradictory puzzles before solving.
//   - Tooling: the text codec drives CLIs, tests, and fixtures.
//
// Complexity:
//
//   - Cell operations:  O(1) time, zero allocations.
//   - ValidateGroup:    O(9) time.
//   - Validate:         O(27×9) time, short-circuits on the first Invalid.
//   - Parse / String:   O(81) time.
//
// Errors:
//
//   - ErrValueOutOfRange: a digit outside 1–9 (the character '0' included).
//   - ErrParse: a character that is neither a digit 1–9 nor a space.
//   - ErrGridShape: input exceeding 9 lines of 9 characters.
//
// Out-of-range row/column indices are contract violations and panic, as
// are Values forged by conversion outside [1,9]; neither is ever reported
// as a recoverable error.
package board
