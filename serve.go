package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jaba-landing/config"
	"github.com/jaba-landing/content"
	"github.com/jaba-landing/database"
	"github.com/jaba-landing/notify"
	"github.com/jaba-landing/routes"
	"github.com/jaba-landing/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// serveCmd starts the web server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing page and signup endpoints",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}
	if cfg.CommunityURL != "" {
		site.Community.URL = cfg.CommunityURL
		if err := site.Validate(); err != nil {
			return err
		}
	}

	inserter, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	router, err := routes.NewRouter(routes.RouterOptions{
		Site:        site,
		Inserter:    inserter,
		Catalog:     notify.Catalog{Duration: cfg.ToastDuration},
		Logger:      logger,
		CORSOrigins: cfg.CORSOrigins,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Jaba landing starting",
			zap.String("port", cfg.Port),
			zap.String("store", cfg.StoreDriver))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down")
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStore connects the store selected by STORE_DRIVER
func openStore(ctx context.Context, cfg *config.Config) (store.Inserter, func(), error) {
	switch cfg.StoreDriver {
	case config.DriverRest:
		s, err := store.NewRestStore(store.RestConfig{BaseURL: cfg.StoreRestURL, APIKey: cfg.StoreRestKey})
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	default:
		db, err := database.Open(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if err := database.Close(db); err != nil {
				logger.Warn("Failed to close database", zap.Error(err))
			}
		}
		return store.NewPostgresStore(db), closeDB, nil
	}
}
