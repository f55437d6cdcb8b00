package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/termfolio/internal/catalog"
	"github.com/Zachkp/termfolio/internal/config"
	"github.com/Zachkp/termfolio/internal/logger"
	"github.com/Zachkp/termfolio/internal/site"
	"github.com/Zachkp/termfolio/internal/theme"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*cfgFile)
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

// loadCatalog reads the catalog at path, or the built-in one when path is empty.
func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default()
	}
	return catalog.LoadFile(path)
}

func serve(ctx context.Context, cfg config.Config) error {
	log, err := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty, Writer: os.Stderr})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	gin.SetMode(cfg.Mode)

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to load catalog")
		return err
	}

	opts := site.Options{
		StaticDir:     cfg.StaticDir,
		SecureCookies: cfg.SecureCookies,
		Logger:        log,
	}
	if cfg.ThemeBackend == config.ThemeBackendSQLite {
		db, err := theme.OpenSQLite(cfg.DatabasePath, log)
		if err != nil {
			log.Error().Err(err).Str("path", cfg.DatabasePath).Msg("failed to open preferences database")
			return err
		}
		defer db.Close()
		opts.SharedStore = theme.NewStore(db, theme.WithLogger(log))
	}

	r, err := site.New(cat, opts)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()

	log.Info().
		Str("addr", cfg.Addr()).
		Str("mode", cfg.Mode).
		Str("theme_backend", cfg.ThemeBackend).
		Int("projects", cat.Len()).
		Msg("server started")

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
