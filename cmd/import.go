package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tahajib/reelsite/internal/admin"
	"github.com/tahajib/reelsite/internal/config"
	"github.com/tahajib/reelsite/internal/csvimport"
	"github.com/tahajib/reelsite/internal/db"
	"github.com/tahajib/reelsite/internal/progress"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import legacy section/key/value content from a CSV export",
	Long: `Reads a three-column (section, key, value) CSV export, as produced by
the old spreadsheet workflow, and loads it into the local content
database. The rows overlay the defaults the next time the site loads.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load(cfgFile)
		exitOnError(err)

		f, err := os.Open(args[0])
		exitOnError(err)
		defer f.Close()

		rows, err := csvimport.ReadRows(f)
		exitOnError(err)
		if len(rows) == 0 {
			fmt.Println("No content rows found.")
			return
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "content.db"))
		exitOnError(err)
		defer database.Close()
		adminStore := admin.NewStore(database)

		ctx := context.Background()
		bar := progress.NewReporter("Importing content")
		bar.Start(len(rows))
		for i, row := range rows {
			if err := adminStore.SetText(ctx, row.Section, row.Key, row.Value); err != nil {
				bar.Finish()
				exitOnError(fmt.Errorf("importing %s/%s: %w", row.Section, row.Key, err))
			}
			bar.Update(i+1, "")
		}
		bar.Finish()

		fmt.Printf("Imported %d rows into %s\n", len(rows), filepath.Join(cfg.DataDir, "content.db"))
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
