package main

import (
	"fmt"

	"github.com/jacksmith/pz/internal/storage"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of the prize file",
	Args:  cobra.NoArgs,
	RunE:  runPath,
}

func init() {
	rootCmd.AddCommand(pathCmd)
}

func runPath(cmd *cobra.Command, args []string) error {
	s, err := storage.Open(rootDir)
	if err != nil {
		return err
	}
	fmt.Println(s.PrizePath())
	return nil
}
