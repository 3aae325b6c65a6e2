package main

import (
	"fmt"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the pool in $EDITOR",
	Long: `Open the pool in $VISUAL or $EDITOR, one prize per line.

When the editor exits, the pool is replaced by the non-blank lines of the
edited text. Nothing is written if the text is unchanged.

Examples:
  pz edit
  EDITOR=nano pz edit`,
	Args: cobra.NoArgs,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s, p, err := openPool()
	if err != nil {
		return err
	}

	original := p.ExportText() + "\n"
	edited, changed, err := cli.EditText(original)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Println("No changes")
		return nil
	}

	n := p.ImportText(edited)
	if err := checkSaved(s, p); err != nil {
		return err
	}

	fmt.Printf("Saved %d prizes\n", n)
	return nil
}
