package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tahajib/reelsite/internal/logger"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "reelsite",
	Short: "Portfolio site server with a remote-synced content pipeline",
	Long: `Reelsite serves a video editor's portfolio site. Content comes from a
remote source (or the built-in admin editor), merges over a complete
set of defaults, and is delivered through a single content snapshot
that every page section reads.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; real env vars always win.
		_ = godotenv.Load()

		level := "info"
		if verbose {
			level = "debug"
		}
		return logger.Init(level)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", ".reelsite.yml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
