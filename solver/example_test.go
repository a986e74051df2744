package solver_test

import (
	"fmt"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

// ExampleSolve parses a classic puzzle, runs the backtracking search,
// and prints its unique completion in the canonical text form.
func ExampleSolve() {
	b, err := board.Parse("53  7    \n" +
		"6  195   \n" +
		" 98    6 \n" +
		"8   6   3\n" +
		"4  8 3  1\n" +
		"7   2   6\n" +
		" 6    28 \n" +
		"   419  5\n" +
		"    8  79")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := solver.Solve(b)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(res.Board.String())

	// Output:
	// 534678912
	// 672195348
	// 198342567
	// 859761423
	// 426853791
	// 713924856
	// 961537284
	// 287419635
	// 345286179
}

// ExampleSolve_unsolvable shows the sentinel a contradictory grid reports.
func ExampleSolve_unsolvable() {
	b := board.New()
	b.Set(0, 0, 5)
	b.Set(0, 1, 5)

	_, err := solver.Solve(b)
	fmt.Println(err)

	// Output:
	// solver: no solution
}
