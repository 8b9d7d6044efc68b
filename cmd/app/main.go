package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlens/cmd/fx/account_fx"
	"wanderlens/cmd/fx/catalog_fx"
	"wanderlens/cmd/fx/config_fx"
	"wanderlens/cmd/fx/controllers_fx"
	"wanderlens/cmd/fx/dashboard_fx"
	"wanderlens/cmd/fx/db_fx"
	"wanderlens/cmd/fx/explore_fx"
	"wanderlens/cmd/fx/itinerary_fx"
	"wanderlens/cmd/fx/logger_fx"
	"wanderlens/cmd/fx/memcache_fx"
	"wanderlens/cmd/fx/preference_fx"
	"wanderlens/cmd/fx/utilities_fx"
	"wanderlens/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		logger_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		catalog_fx.Module,
		account_fx.Module,
		preference_fx.Module,
		itinerary_fx.Module,
		utilities_fx.Module,
		explore_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRateLimiter, ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				logger.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
