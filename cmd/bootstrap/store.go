package bootstrap

import (
	"context"
	"log/slog"

	"cinema-booking/internal/infra/memstore"
	"cinema-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Invoke(SeedCatalog),
)

// SeedCatalog fills the in-memory catalog and seat maps before the server accepts requests.
func SeedCatalog(lc fx.Lifecycle, cfg config.Config, catalog *memstore.CatalogStore, seatMaps *memstore.SeatMapStore, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := memstore.Seed(cfg.Catalog, catalog, seatMaps); err != nil {
				return err
			}
			all, err := catalog.FindAll(ctx)
			if err != nil {
				return err
			}
			logger.Info("catalog seeded", "showtimes", len(all), "hall", cfg.Catalog.HallName)
			return nil
		},
	})
}
