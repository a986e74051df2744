package board

import (
	"fmt"
	"strings"
)

// Parse decodes the canonical textual grid format: up to 9 newline-
// separated lines of up to 9 characters, where a digit '1'–'9' forces a
// cell and a space ' ' leaves it unknown. Cells the input does not reach
// stay unknown, so short lines and missing trailing lines are accepted
// (a trailing newline after the 9th row is, too).
//
// Errors:
//
//   - ErrValueOutOfRange for the character '0' (digits start at 1).
//   - ErrParse for any other character outside {' ', '1'..'9'}.
//   - ErrGridShape for input spilling past 9 lines or 9 columns.
//
// Every error is wrapped with the 1-based line and column it was found at.
func Parse(s string) (Board, error) {
	b := New()

	for x, line := range strings.Split(s, "\n") {
		if x >= Size {
			// Only a trailing newline may follow the 9th row.
			if line != "" {
				return b, fmt.Errorf("board: line %d: %w", x+1, ErrGridShape)
			}
			continue
		}
		if len(line) > Size {
			return b, fmt.Errorf("board: line %d: %w", x+1, ErrGridShape)
		}

		for y := 0; y < len(line); y++ {
			switch c := line[y]; {
			case c == ' ':
				// unknown cell, all candidates stay open
			case c >= '1' && c <= '9':
				b.Set(x, y, Value(c-'0'))
			case c == '0':
				return b, fmt.Errorf("board: line %d column %d: %w", x+1, y+1, ErrValueOutOfRange)
			default:
				return b, fmt.Errorf("board: line %d column %d: %q: %w", x+1, y+1, c, ErrParse)
			}
		}
	}

	return b, nil
}

// String encodes the grid in the same textual format Parse reads:
// 9 newline-terminated rows of 9 characters, the forced digit for final
// cells and a space for anything still undecided. Round-trips exactly for
// fully final grids; open candidate sets collapse to the space character.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount + Size)

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			sb.WriteString(b.Get(row, col).String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
