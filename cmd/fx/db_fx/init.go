package db_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"wanderlens/internal/api/controllers"
	"wanderlens/internal/config"
	"wanderlens/internal/infra"
)

var Module = fx.Provide(
	provideDB, providePinger)

func provideDB(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := infra.InitPostgresql(cfg, logger)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(func() {
		infra.ClosePostgresql(db, logger)
	}))
	return db, nil
}

func providePinger(db *gorm.DB) controllers.Pinger {
	return func(ctx context.Context) error {
		return infra.Ping(ctx, db)
	}
}
