package main

import (
	"fmt"
	"strings"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/jacksmith/pz/internal/model"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <prize>...",
	Short: "Add prizes to the pool",
	Long: `Append one or more prizes to the end of the pool.

Each prize is trimmed and blank prizes are rejected. With --raw the prize
is stored exactly as given; note that a prize made only of whitespace is
dropped the next time the prize file is read.

Duplicates are allowed: adding a prize twice doubles its chance of being drawn.

Examples:
  pz add "特等奖：笔记本电脑"
  pz add "Mug" "Sticker pack"
  pz add --raw "  centered  "`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var addRaw bool

func init() {
	addCmd.Flags().BoolVar(&addRaw, "raw", false, "store prizes verbatim, without trimming or blank check")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, args []string) error {
	prizes := make([]string, 0, len(args))
	for _, arg := range args {
		if addRaw {
			prizes = append(prizes, arg)
			continue
		}
		prize := strings.TrimSpace(arg)
		if model.IsBlank(prize) {
			return &cli.ValidationError{Field: "prize", Message: "must not be blank"}
		}
		prizes = append(prizes, prize)
	}

	s, p, err := openPool()
	if err != nil {
		return err
	}

	for _, prize := range prizes {
		p.Add(prize)
		if err := checkSaved(s, p); err != nil {
			return err
		}
		fmt.Printf("%s %s\n", cli.Gray(fmt.Sprintf("%d.", p.Len())), prize)
	}
	return nil
}
