package job

import (
	"context"
	"time"

	"whey/cache"
	"whey/usecase/fetch_products_usecase"
	"whey/utils/logger"
	"whey/utils/metrics"
)

// StartCacheSweeper evicts stale cache entries on a fixed interval and drops
// list controllers whose entry was evicted. Runs until ctx is cancelled.
func StartCacheSweeper(ctx context.Context, store *cache.Store, registry *fetch_products_usecase.ControllerRegistry, interval, maxAge time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				logger.SafeInfoContext(ctx, "cache sweeper stopped")
				return
			case <-ticker.C:
				swept := store.SweepStale(maxAge)
				orphaned := registry.DropOrphans()
				if swept > 0 || orphaned > 0 {
					metrics.CacheEntriesSwept.Add(float64(swept))
					logger.SafeInfoContext(ctx, "cache sweep completed",
						"swept_entries", swept,
						"dropped_controllers", orphaned,
						"remaining_entries", store.Len(),
					)
				}
			}
		}
	}()
}
