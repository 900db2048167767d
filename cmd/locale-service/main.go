package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Cheertaboi/bookstore-locale-service/internal/api"
	"github.com/Cheertaboi/bookstore-locale-service/internal/api/middleware"
	"github.com/Cheertaboi/bookstore-locale-service/internal/cache"
	"github.com/Cheertaboi/bookstore-locale-service/internal/config"
	"github.com/Cheertaboi/bookstore-locale-service/internal/geo"
	"github.com/Cheertaboi/bookstore-locale-service/internal/logger"
	"github.com/Cheertaboi/bookstore-locale-service/internal/models"
	"github.com/Cheertaboi/bookstore-locale-service/internal/repository"
	"github.com/Cheertaboi/bookstore-locale-service/internal/service"
	"github.com/Cheertaboi/bookstore-locale-service/internal/session"
	"github.com/Cheertaboi/bookstore-locale-service/internal/storage"
	"github.com/Cheertaboi/bookstore-locale-service/pkg/db"
	"github.com/Cheertaboi/bookstore-locale-service/pkg/exchangerates"
)

const sessionSweepInterval = 10 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.InitLogger("")
		logger.Log.Fatal("load config", zap.Error(err))
	}

	logger.InitLogger(cfg.Stage)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(cfg.StorageDir)
	if err != nil {
		logger.Log.Fatal("open storage", zap.Error(err))
	}
	defer store.Close()

	// the database is optional; without it coupons come from the built-in
	// table and every country gets the default shipping rate
	var (
		coupons  service.CouponSource = service.NewStaticCoupons(service.DefaultCoupons())
		shipping service.ShippingRateRepo
		conn     *sql.DB
	)
	if cfg.Postgres.Enabled() {
		conn, err = db.NewPostgresConnection(cfg.Postgres)
		if err != nil {
			logger.Log.Fatal("db connect", zap.Error(err))
		}
		defer conn.Close()

		if err := repository.EnsureSchema(ctx, conn); err != nil {
			logger.Log.Fatal("db schema", zap.Error(err))
		}
		coupons = repository.NewCouponRepo(conn)
		shipping = repository.NewShippingRepo(conn)
	}

	resolver := geo.NewResolver(cfg.GeoTimeout,
		geo.NewIPAPIProvider(cfg.IPAPIBaseURL, cfg.GeoTimeout),
		geo.NewIPInfoProvider(cfg.IPInfoBaseURL, cfg.IPInfoToken, cfg.GeoTimeout),
	)

	rateSvc := service.NewExchangeRateService(
		exchangerates.NewClient(cfg.RatesBaseURL),
		cache.NewRateCache(cfg.RatesTTL),
		store,
		cfg.RatesBase,
	)
	go rateSvc.Prefetch(ctx, cfg.PrefetchBases)

	sessions := session.NewManager(store, resolver, cfg.SessionIdleTTL)
	go sessions.RunJanitor(ctx, sessionSweepInterval)

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSec, cfg.RateLimitBurst)
	go limiter.RunCleanup(ctx)

	trusted, err := middleware.ParseTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Log.Fatal("trusted proxies", zap.Error(err))
	}

	handler := api.NewRouter(api.Deps{
		Sessions: sessions,
		Rates:    rateSvc,
		Coupons:  service.NewCouponService(coupons, rateSvc),
		Shipping: service.NewShippingService(shipping, models.ShippingRate{
			ShippingCost:    cfg.DefaultShippingCost,
			MinDeliveryDays: cfg.DefaultMinDeliveryDays,
			MaxDeliveryDays: cfg.DefaultMaxDeliveryDays,
		}),
		Limiter:        limiter,
		TrustedProxies: trusted,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown", zap.Error(err))
		}
		close(idleConnsClosed)
	}()

	logger.Info("starting locale-service",
		zap.String("addr", cfg.HTTPAddr),
		zap.Bool("database", conn != nil),
		zap.Bool("persistent_storage", cfg.StorageDir != ""))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Log.Fatal("listen", zap.Error(err))
	}

	<-idleConnsClosed
	logger.Info("server stopped")
}

func openStore(dir string) (*storage.Store, error) {
	if dir == "" {
		return storage.NewMemoryStore(), nil
	}
	return storage.NewFileStore(dir)
}
