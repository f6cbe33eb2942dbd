package main

import (
	"fmt"
	"os"

	"festquote/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logFile string
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "quote",
	Short: "Request a party quote from the terminal",
	Long: `quote runs the quote-request wizard in the terminal.

It loads the event types, equipment and services from the data API, walks through the
seven wizard steps and copies the finished WhatsApp link to the clipboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		var err error
		logger, err = newLogger(logFile)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file (disabled when empty)")
	rootCmd.AddCommand(wizardCmd)
}

// newLogger keeps the terminal free for the UI: logs go to a file or nowhere.
func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
