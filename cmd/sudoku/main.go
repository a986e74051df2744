// Command sudoku solves and validates 9×9 Sudoku grids in the canonical
// digit-or-space text format, read from a file argument or stdin.
//
// Usage:
//
//	sudoku solve puzzle.txt
//	sudoku validate < puzzle.txt
//	sudoku solve --profile puzzle.txt   # write a CPU profile for the run
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sudoku/board"
	"github.com/katalvlaran/sudoku/solver"
)

var profileRun bool

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "sudoku:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "sudoku",
		Short:         "Solve and validate 9×9 Sudoku grids",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&profileRun, "profile", false, "write a CPU profile for the run")
	root.AddCommand(newSolveCommand(), newValidateCommand())

	return root
}

// readGrid parses a grid from the optional file argument, or stdin.
func readGrid(args []string) (board.Board, error) {
	var src io.Reader = os.Stdin
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return board.Board{}, err
		}
		defer f.Close()
		src = f
	}

	text, err := io.ReadAll(src)
	if err != nil {
		return board.Board{}, err
	}

	return board.Parse(string(text))
}

func newSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file]",
		Short: "Print the first solution of a grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileRun {
				defer profile.Start().Stop()
			}

			b, err := readGrid(args)
			if err != nil {
				return err
			}

			res, err := solver.Solve(b)
			if err != nil {
				return err
			}
			// The grid text is the command's product: keep it on stdout
			// so it stays pipeable (cobra's Print helpers default to stderr).
			fmt.Fprint(cmd.OutOrStdout(), res.Board.String())

			return nil
		},
	}
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [file]",
		Short: "Print the classification of a grid: valid, incomplete, or invalid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if profileRun {
				defer profile.Start().Stop()
			}

			b, err := readGrid(args)
			if err != nil {
				return err
			}

			s := b.Validate()
			fmt.Fprintln(cmd.OutOrStdout(), s)
			if s == board.Invalid {
				return fmt.Errorf("grid is %s", s)
			}

			return nil
		},
	}
}
