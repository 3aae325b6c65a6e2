package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/jacksmith/pz/internal/model"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the pool from a JSON or text file",
	Long: `Replace the whole pool with the prizes in a file. Use "-" to read stdin.

The default format is JSON, which must be an array of strings:

  ["一等奖：智能手机", "二等奖：平板电脑", "参与奖：谢谢参与"]

Any other shape (objects, numbers, nulls, nested arrays) is rejected and
the pool is left unchanged. Order, duplicates and empty strings are kept.

With --format text, the file holds one prize per line and blank lines are
skipped.

Examples:
  pz import prizes.json
  pz import --format text prizes.txt
  cat prizes.json | pz import -`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importFormat string

func init() {
	importCmd.Flags().StringVarP(&importFormat, "format", "f", string(model.FormatJSON), "input format: json or text")
	importCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(model.FormatJSON), string(model.FormatText)}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	format, ok := model.ParseFormat(importFormat)
	if !ok || format == model.FormatYAML {
		return &cli.ValidationError{Field: "format", Message: fmt.Sprintf("%q (want json or text)", importFormat)}
	}

	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	s, p, err := openPool()
	if err != nil {
		return err
	}

	n, err := p.Import(format, data)
	if err != nil {
		return &cli.ImportError{Source: args[0], Err: err}
	}
	if err := checkSaved(s, p); err != nil {
		return err
	}

	fmt.Printf("Imported %d prizes\n", n)
	return nil
}

// readInput returns the full content of path, or of stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
