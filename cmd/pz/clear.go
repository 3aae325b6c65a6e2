package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove every prize from the pool",
	Long: `Remove every prize, leaving an empty prize file.

On a terminal, asks for confirmation unless --yes is given. Elsewhere
--yes is required.

The next command that opens an empty prize file starts again from the
default prizes.

Examples:
  pz clear
  pz clear --yes`,
	Args: cobra.NoArgs,
	RunE: runClear,
}

var clearYes bool

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "do not ask for confirmation")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	s, p, err := openPool()
	if err != nil {
		return err
	}

	if !clearYes {
		if !cli.IsTerminal(os.Stdin) {
			return &cli.ValidationError{Message: "refusing to clear without confirmation; pass --yes"}
		}
		if !cli.Confirm(os.Stdin, os.Stdout, fmt.Sprintf("Remove all %d prizes? This cannot be undone.", p.Len())) {
			fmt.Println(cli.Yellow("Cancelled"))
			return nil
		}
	}

	n := p.Len()
	p.Clear()
	if err := checkSaved(s, p); err != nil {
		return err
	}

	fmt.Printf("Removed %d prizes\n", n)
	return nil
}
