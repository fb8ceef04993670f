package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tahajib/reelsite/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize reelsite configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the site and generates a .reelsite.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
