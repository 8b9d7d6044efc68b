package memcache_fx

import (
	"context"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"wanderlens/internal/config"
	"wanderlens/internal/models/response_models"
	mem "wanderlens/pkg/memcache"
)

const sweepInterval = 10 * time.Minute

var Module = fx.Provide(provideItineraryStore)

// provideItineraryStore runs a sweeper for the life of the app so abandoned
// itineraries do not pile up between lookups.
func provideItineraryStore(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) *mem.TTLStore[response_models.Itinerary] {
	store := mem.NewBoundedTTLStore[response_models.Itinerary](cfg.ItineraryMaxEntries)
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				ticker := time.NewTicker(sweepInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ctx.Done():
						return
					case <-ticker.C:
						if n := store.Sweep(); n > 0 {
							logger.Debug("swept expired itineraries", zap.Int("count", n))
						}
					}
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
	return store
}
