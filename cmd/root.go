package cmd

import (
	"os"

	"github.com/docstore/docstore/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	version  = "dev"
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:     "docstore",
	Short:   "In-memory document store with upsert, lookup and filtered search",
	Version: version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if env := os.Getenv("LOG_LEVEL"); env != "" {
				level = env
			}
		}
		logger.Init(level)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug|info|warn|error")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
