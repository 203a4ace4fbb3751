// mockbackend serves the account API (register, login, saved addresses and
// read-only collections) from a single JSON file for local development.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/junaidrashid-git/paintstore-api/auth"
	"github.com/junaidrashid-git/paintstore-api/config"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/middleware"
	"github.com/junaidrashid-git/paintstore-api/routes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	log.Println("✅ Starting mock backend...")

	cfg, err := config.Load("mockbackend", os.Args[1:])
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("❌ Logger: %v", err)
	}
	defer logger.Sync()

	if err := os.MkdirAll(filepath.Dir(cfg.BackendDBPath), 0755); err != nil {
		logger.Fatal("❌ Data directory", zap.Error(err))
	}
	db, err := jsondb.Open(cfg.BackendDBPath)
	if err != nil {
		logger.Fatal("❌ Failed to open db", zap.String("path", cfg.BackendDBPath), zap.Error(err))
	}

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger.Named("http")))
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))
	routes.SetupBackendRoutes(r, db, auth.NewIssuer(cfg.JWTSecret), logger)

	srv := &http.Server{
		Addr:              ":" + cfg.BackendPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("🚀 Mock backend running", zap.String("port", cfg.BackendPort), zap.String("db", db.Path()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		logger.Fatal("❌ Mock backend stopped", zap.Error(err))
	}
	logger.Info("👋 Mock backend stopped")
}
