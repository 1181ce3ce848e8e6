package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"pick-your-pup/internal/adapters/auth/passwords"
	"pick-your-pup/internal/adapters/auth/tokens"
	"pick-your-pup/internal/adapters/notify"
	pg "pick-your-pup/internal/adapters/storage/postgres"
	"pick-your-pup/internal/adapters/storage/seed"
	"pick-your-pup/internal/domain/contact"
	"pick-your-pup/internal/platform/config"
	"pick-your-pup/internal/platform/httpclient"
	"pick-your-pup/internal/platform/logger"
	"pick-your-pup/internal/platform/metrics"
	"pick-your-pup/internal/router"
)

// @title Pick Your Pup API
// @version 1.0
// @description Puppy adoption and pet-product storefront.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New(logger.Options{}).Error("load config", map[string]any{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	if err := run(cfg, log); err != nil {
		log.Error("server stopped with error", map[string]any{"err": err})
		os.Exit(1)
	}
}

func run(cfg config.Config, log logger.Logger) error {
	if cfg.UsingDevSecret() {
		log.Warn("JWT_SECRET not set, using development secret", nil)
	}

	jwt, err := tokens.NewJWT(cfg.JWTSecret, cfg.JWTTTL)
	if err != nil {
		return err
	}

	db, err := openDB(cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Warn("close db", map[string]any{"err": err})
			}
		}()
	}

	// nil explícito: un *AsyncForwarder nil dentro de la interfaz no sería nil.
	var (
		fwd     contact.Forwarder
		pending *contact.AsyncForwarder
	)
	if cfg.ContactWebhookURL != "" {
		hook, err := notify.NewWebhook(httpclient.New(httpclient.Options{UserAgent: cfg.AppName}), cfg.ContactWebhookURL)
		if err != nil {
			return err
		}
		pending = contact.NewAsyncForwarder(hook, 10*time.Second, log)
		fwd = pending
	}

	proxies, err := cfg.TrustedProxies()
	if err != nil {
		return err
	}

	handler := router.NewRouter(router.Options{
		Logger:           log,
		Metrics:          metrics.New(),
		DB:               db,
		Verifier:         jwt,
		Issuer:           jwt,
		Hasher:           passwords.NewBcrypt(cfg.BcryptCost),
		AllowedOrigins:   cfg.AllowedOrigins(),
		TrustedProxies:   proxies,
		AuthRatePerSec:   float64(cfg.AuthRatePerSec),
		AuthRateBurst:    cfg.AuthRateBurst,
		ContactForwarder: fwd,
		StaticDir:        cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "store": storeName(db)})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case sig := <-quit:
		log.Info("shutting down", map[string]any{"signal": sig.String()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	if pending != nil {
		if err := pending.Wait(ctx); err != nil {
			log.Warn("contact forwards still pending at shutdown", map[string]any{"err": err})
		}
	}
	log.Info("server stopped", nil)
	return nil
}

// openDB devuelve nil si no hay DB_DSN (modo in-memory).
func openDB(cfg config.Config, log logger.Logger) (*sqlx.DB, error) {
	if cfg.DBDSN == "" {
		return nil, nil
	}

	db, err := pg.Open(cfg.DBDSN)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	if cfg.DBMigrate {
		ran, err := pg.Migrate(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if len(ran) > 0 {
			log.Info("migrations applied", map[string]any{"versions": ran})
		}
	}
	if cfg.DBSeed {
		seeded, err := pg.SeedCatalog(ctx, db, seed.Puppies(), seed.Products())
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		if seeded {
			log.Info("sample catalog seeded", nil)
		}
	}
	return db, nil
}

func storeName(db *sqlx.DB) string {
	if db == nil {
		return "memory"
	}
	return "postgres"
}
