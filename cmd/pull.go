package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tahajib/reelsite/internal/admin"
	"github.com/tahajib/reelsite/internal/config"
	"github.com/tahajib/reelsite/internal/db"
	"github.com/tahajib/reelsite/internal/fetch"
)

var pullOut string

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the merged content document once and print it",
	Long: `Runs the same fetch-and-merge the server performs at startup and
writes the resulting document as JSON. Useful for checking what the
site will actually serve before deploying a content change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		var src fetch.Source
		if cfg.SupabaseConfigured() {
			src = fetch.NewSupabaseSource(cfg.SupabaseURL, cfg.SupabaseKey)
		} else {
			database, err := db.Open(filepath.Join(cfg.DataDir, "content.db"))
			if err != nil {
				return fmt.Errorf("opening content database: %w", err)
			}
			defer database.Close()
			src = admin.NewStore(database)
		}

		doc, err := fetch.Fetch(ctx, src)
		if err != nil {
			return fmt.Errorf("fetching content: %w", err)
		}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding document: %w", err)
		}

		if pullOut != "" {
			if err := os.WriteFile(pullOut, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", pullOut, err)
			}
			fmt.Printf("Wrote %s\n", pullOut)
			return nil
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	pullCmd.Flags().StringVarP(&pullOut, "out", "o", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(pullCmd)
}
