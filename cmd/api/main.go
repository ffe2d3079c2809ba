package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "bridge-lending-backend/internal/adapter/http"
	idemp "bridge-lending-backend/internal/adapter/middleware"
	"bridge-lending-backend/internal/adapter/repository/mysql"
	"bridge-lending-backend/internal/config"
	"bridge-lending-backend/internal/infrastructure/cache"
	"bridge-lending-backend/internal/infrastructure/db"
	"bridge-lending-backend/internal/infrastructure/logger"
	"bridge-lending-backend/internal/usecase/board"
	"bridge-lending-backend/internal/usecase/pricing"
)

const serviceName = "bridge-lending-api"

type deps struct {
	cfg *config.Config
	db  *gorm.DB
	rdb redis.Cmdable
	log *zap.Logger
}

func newServer(d deps) *echo.Echo {
	repo := mysql.NewColumnRepository(d.db)
	boardUC := board.NewUsecase(repo, mysql.NewGormUoW(d.db), d.log.Named("board"))
	pricingUC := pricing.NewUsecase(d.cfg.Locale(), d.log.Named("pricing"))

	h := httpadp.NewHandler(serviceName)
	ph := httpadp.NewPricingHandler(pricingUC)
	bh := httpadp.NewBoardHandler(boardUC)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.RequestID(), middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			d.log.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)))
			return nil
		},
	}))

	// routes
	e.GET("/health", h.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	rates := e.Group("/rates")
	rates.POST("/estimate", ph.Estimate)
	rates.POST("/choose", ph.Choose)

	ttl := time.Duration(d.cfg.IdempTTLSecs) * time.Second
	b := e.Group("/board")
	b.GET("/columns", bh.ListColumns)
	mut := b.Group("", idemp.Idempotency(d.rdb, ttl, d.log.Named("idempotency")))
	mut.POST("/columns", bh.AddColumn)
	mut.DELETE("/columns/:id", bh.DeleteColumn)
	mut.POST("/cards/move", bh.MoveCard)
	return e
}

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), zl)
	if err != nil {
		zl.Fatal("mysql connect failed", zap.Error(err))
	}
	if err := db.Migrate(gdb); err != nil {
		zl.Fatal("migrate failed", zap.Error(err))
	}
	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		zl.Fatal("redis connect failed", zap.Error(err))
	}
	defer rdb.Close()

	e := newServer(deps{cfg: cfg, db: gdb, rdb: rdb, log: zl})

	addr := ":" + cfg.AppPort
	go func() {
		zl.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown", zap.Error(err))
	}
}
