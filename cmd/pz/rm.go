package main

import (
	"fmt"
	"strconv"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:     "rm <position>",
	Aliases: []string{"remove"},
	Short:   "Remove a prize by position",
	Long: `Remove the prize at the given position, as numbered by "pz list".

Positions start at 1. Prizes after the removed one move up by one.

Examples:
  pz rm 3`,
	Args: cobra.ExactArgs(1),
	RunE: runRm,
}

func init() {
	rootCmd.AddCommand(rmCmd)
}

func runRm(cmd *cobra.Command, args []string) error {
	pos, err := strconv.Atoi(args[0])
	if err != nil {
		return &cli.ValidationError{Field: "position", Message: fmt.Sprintf("%q is not a number", args[0])}
	}

	s, p, err := openPool()
	if err != nil {
		return err
	}

	entries := p.Entries()
	if pos < 1 || pos > len(entries) {
		return &cli.NotFoundError{Position: pos, Size: len(entries)}
	}

	p.RemoveAt(pos - 1)
	if err := checkSaved(s, p); err != nil {
		return err
	}

	fmt.Printf("Removed %s\n", entries[pos-1])
	return nil
}
