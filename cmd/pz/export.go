package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/jacksmith/pz/internal/model"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the pool as JSON, text or YAML",
	Long: `Write the pool to stdout, or to a file with --output.

JSON and text exports can be read back with "pz import". YAML is for
reading only.

Examples:
  pz export > prizes.json
  pz export --format text -o backup.txt
  pz export -f yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

var (
	exportFormat string
	exportOutput string
)

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", string(model.FormatJSON), "output format: json, text or yaml")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{string(model.FormatJSON), string(model.FormatText), string(model.FormatYAML)}, cobra.ShellCompDirectiveNoFileComp
	})
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	format, ok := model.ParseFormat(exportFormat)
	if !ok {
		return &cli.ValidationError{Field: "format", Message: fmt.Sprintf("%q (want json, text or yaml)", exportFormat)}
	}

	_, p, err := openPool()
	if err != nil {
		return err
	}

	data, err := p.Export(format)
	if err != nil {
		return err
	}

	if exportOutput == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOutput, err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d prizes to %s\n", p.Len(), exportOutput)
	return nil
}
