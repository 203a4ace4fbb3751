package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/junaidrashid-git/paintstore-api/auth"
	"github.com/junaidrashid-git/paintstore-api/backendclient"
	"github.com/junaidrashid-git/paintstore-api/catalog"
	"github.com/junaidrashid-git/paintstore-api/config"
	orderControllers "github.com/junaidrashid-git/paintstore-api/controllers/order"
	"github.com/junaidrashid-git/paintstore-api/jsondb"
	"github.com/junaidrashid-git/paintstore-api/kv"
	"github.com/junaidrashid-git/paintstore-api/middleware"
	"github.com/junaidrashid-git/paintstore-api/order"
	"github.com/junaidrashid-git/paintstore-api/routes"
	"github.com/junaidrashid-git/paintstore-api/session"
	"github.com/junaidrashid-git/paintstore-api/store"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("✅ Starting application...")

	cfg, err := config.Load("paintstore", os.Args[1:])
	if err != nil {
		log.Fatalf("❌ Config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("❌ Logger: %v", err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("❌ Server stopped", zap.Error(err))
	}
	logger.Info("👋 Shut down cleanly")
}

func run(cfg config.Config, logger *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Init DB
	db, err := initDatabase(cfg)
	if err != nil {
		return err
	}
	state, err := kv.NewGormStore(db)
	if err != nil {
		return fmt.Errorf("state store: %w", err)
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.OrdersDBPath), 0755); err != nil {
		return err
	}
	ordersDB, err := jsondb.Open(cfg.OrdersDBPath)
	if err != nil {
		return fmt.Errorf("orders db: %w", err)
	}

	writer := store.NewDebouncedWriter(cfg.SaveDebounce, logger.Named("writer"))
	sessions := session.NewManager(store.NewPersister(state), writer, logger.Named("session"))
	hub := orderControllers.NewHub(logger.Named("ws"))
	orders := order.NewService(cat, order.NewRecordingPlacer(ordersDB), hub, logger.Named("order"))

	var backend *backendclient.Client
	if cfg.BackendURL != "" {
		backend = backendclient.New(cfg.BackendURL, nil)
	}

	// Gin setup
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger.Named("http")))

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupStoreRoutes(r, routes.StoreDeps{
		Sessions:    sessions,
		Issuer:      auth.NewIssuer(cfg.JWTSecret),
		Catalog:     cat,
		Orders:      orders,
		OrdersDB:    ordersDB,
		Hub:         hub,
		Backend:     backend,
		AdminAPIKey: cfg.AdminAPIKey,
		Logger:      logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// The writer outlives the HTTP server so saves from requests still
	// draining during Shutdown are flushed.
	writerCtx, stopWriter := context.WithCancel(context.Background())
	defer stopWriter()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return writer.Run(writerCtx)
	})
	g.Go(func() error {
		every := time.Minute
		if cfg.SessionIdle < 2*every {
			every = cfg.SessionIdle / 2
		}
		return sessions.RunSweeper(gctx, every, cfg.SessionIdle)
	})
	g.Go(func() error {
		logger.Info("🚀 Server running", zap.String("port", cfg.Port), zap.String("db", cfg.DBDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("⏳ Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		defer stopWriter()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// initDatabase sets up the GORM DB connection for session state
func initDatabase(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DatabaseURL)
	default:
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0755); err != nil {
			return nil, err
		}
		dialector = sqlite.Open(cfg.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}
	return db, nil
}
