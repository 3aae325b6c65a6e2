package main

import (
	"fmt"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/spf13/cobra"
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a random prize",
	Long: `Draw a prize uniformly at random from the pool.

Drawing does not remove the prize: every draw is made from the full pool.
With --count, several independent draws are made.

If --count is not specified, uses draw_count from .pzconfig.yaml.

Examples:
  pz draw
  pz draw -n 3`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

var drawCount int

func init() {
	drawCmd.Flags().IntVarP(&drawCount, "count", "n", 0, "number of draws")
	rootCmd.AddCommand(drawCmd)
}

func runDraw(cmd *cobra.Command, args []string) error {
	s, p, err := openPool()
	if err != nil {
		return err
	}

	n := s.Config().DrawCount
	if cmd.Flags().Changed("count") {
		n = drawCount
	}
	if n < 1 {
		return &cli.ValidationError{Field: "count", Message: fmt.Sprintf("must be at least 1, got %d", n)}
	}

	if n == 1 {
		prize, ok := p.Draw()
		if !ok {
			return &cli.EmptyPoolError{}
		}
		fmt.Println(cli.Bold(cli.Green(prize)))
		return nil
	}

	prizes := p.DrawN(n)
	if prizes == nil {
		return &cli.EmptyPoolError{}
	}
	for i, prize := range prizes {
		fmt.Printf("%s %s\n", cli.Gray(fmt.Sprintf("%d.", i+1)), cli.Green(prize))
	}
	return nil
}
