// Package main is the entry point for the pz CLI.
package main

import (
	"fmt"
	"os"

	"github.com/jacksmith/pz/internal/cli"
	"github.com/jacksmith/pz/internal/logging"
	"github.com/jacksmith/pz/internal/pool"
	"github.com/jacksmith/pz/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !cli.IsTerminal(os.Stderr) {
			cli.SetColorEnabled(false)
		}
		fmt.Fprintln(os.Stderr, cli.FormatError(err))
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pz",
	Short: "pz - a prize pool with random draws",
	Long: `pz keeps a list of prizes in a plain text file and draws one at random.

Every change is written back to the prize file immediately. When the file
is missing or holds no prizes, pz starts from a default list of six prizes.

Prizes can be imported from a JSON array of strings or a plain text file
with one prize per line, and exported as JSON, text or YAML.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var (
	rootDir  string
	logLevel string
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "directory holding the prize file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from .pzconfig.yaml)")

	rootCmd.SetVersionTemplate("pz version {{.Version}}\n")
}

// openPool opens the storage at rootDir, applies its config to logging and
// color output, and loads the prize pool.
func openPool() (*storage.Storage, *pool.Pool, error) {
	s, err := storage.Open(rootDir)
	if err != nil {
		return nil, nil, err
	}
	cfg := s.Config()

	levelName := cfg.LogLevel
	if logLevel != "" {
		levelName = logLevel
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return nil, nil, &cli.ValidationError{Field: "log level", Message: err.Error()}
	}

	if err := cli.ConfigureColor(cfg.Color, os.Stdout); err != nil {
		return nil, nil, err
	}
	logColor := cli.ColorEnabled() || (cfg.Color == storage.ColorAuto && cli.IsTerminal(os.Stderr))
	logger := logging.Setup(os.Stderr, level, logColor)

	logger.Debug("opening prize pool", "root", s.Root(), "path", s.PrizePath())
	return s, pool.Open(s, pool.WithLogger(logger)), nil
}

// checkSaved turns a swallowed write failure into a command error so the
// exit status reflects it.
func checkSaved(s *storage.Storage, p *pool.Pool) error {
	if err := p.SaveErr(); err != nil {
		return fmt.Errorf("prizes were not saved to %s: %w", s.PrizePath(), err)
	}
	return nil
}
