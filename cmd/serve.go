package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tahajib/reelsite/internal/admin"
	"github.com/tahajib/reelsite/internal/config"
	"github.com/tahajib/reelsite/internal/content"
	"github.com/tahajib/reelsite/internal/db"
	"github.com/tahajib/reelsite/internal/fetch"
	"github.com/tahajib/reelsite/internal/logger"
	"github.com/tahajib/reelsite/internal/server"
	"github.com/tahajib/reelsite/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the site server",
	Long: `Serves the rendered page, the content API, and the admin editor.
Content loads asynchronously after startup: the first response always
carries the complete defaults, then the remote merge replaces them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}
		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		if err := logger.Init(level); err != nil {
			return err
		}

		database, err := db.Open(filepath.Join(cfg.DataDir, "content.db"))
		if err != nil {
			return fmt.Errorf("opening content database: %w", err)
		}
		defer database.Close()
		adminStore := admin.NewStore(database)

		loader := buildLoader(cfg, adminStore)
		contentStore := store.New(loader)

		srv, err := server.New(server.Config{Port: cfg.Port, AllowAll: cfg.AllowAllCORS}, contentStore)
		if err != nil {
			return err
		}
		admin.RegisterRoutes(srv.Router(), adminStore, cfg.AdminPassword, srv.Reload)

		// The page is servable immediately; the real content follows.
		go contentStore.Load(context.Background())

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-sigCh:
			logger.Info("shutting down", map[string]interface{}{"signal": sig.String()})
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

// buildLoader picks the content source. With Supabase credentials the
// remote tables are authoritative; otherwise the local admin database
// plays the same role through the identical merge path.
func buildLoader(cfg *config.Config, adminStore *admin.Store) store.Loader {
	if cfg.SupabaseConfigured() {
		src := fetch.NewSupabaseSource(cfg.SupabaseURL, cfg.SupabaseKey)
		return store.LoaderFunc(func(ctx context.Context) (*content.Document, error) {
			return fetch.Fetch(ctx, src)
		})
	}
	return admin.NewLoader(adminStore)
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
