package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List the prizes in the pool",
	Long: `List the prizes in the pool, numbered from 1 in draw-pool order.

The numbers are the positions accepted by "pz rm".

Examples:
  pz list
  pz list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print the pool as a JSON array")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	_, p, err := openPool()
	if err != nil {
		return err
	}

	if listJSON {
		data, err := p.ExportJSON()
		if err != nil {
			return err
		}
		os.Stdout.Write(data)
		return nil
	}

	entries := p.Entries()
	if len(entries) == 0 {
		fmt.Println("No prizes.")
		return nil
	}

	table := cli.NewTable()
	table.SetAlignRight(0)
	table.SetMaxWidth(1, cli.DefaultMaxPrizeWidth)
	for i, prize := range entries {
		table.AddRow(cli.Gray(fmt.Sprintf("%d.", i+1)), prize)
	}
	table.Render(os.Stdout)
	return nil
}
