//go:build unit

package memstore_test

import (
	"context"
	"testing"
	"time"

	"cinema-booking/internal/infra"
	"cinema-booking/internal/infra/memstore"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogStore(t *testing.T) {
	ctx := context.Background()

	t.Run("FindAll orders by start time then id", func(t *testing.T) {
		store := memstore.NewCatalogStore()
		base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)

		for _, b := range []*builder.ShowtimeBuilder{
			builder.NewShowtimeBuilder().WithID("late").WithStartsAt(base.Add(time.Hour)),
			builder.NewShowtimeBuilder().WithID("b").WithStartsAt(base),
			builder.NewShowtimeBuilder().WithID("a").WithStartsAt(base),
		} {
			st, err := b.BuildDomain()
			require.NoError(t, err)
			require.NoError(t, store.Add(st))
		}

		all, err := store.FindAll(ctx)
		require.NoError(t, err)
		ids := make([]string, len(all))
		for i, st := range all {
			ids[i] = st.ID()
		}
		assert.Equal(t, []string{"a", "b", "late"}, ids)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		store := memstore.NewCatalogStore()
		st, err := builder.NewShowtimeBuilder().BuildDomain()
		require.NoError(t, err)
		require.NoError(t, store.Add(st))
		assert.True(t, infra.IsKind(store.Add(st), infra.KindDuplicateKey))
	})

	t.Run("FindByID of unknown id is not found", func(t *testing.T) {
		store := memstore.NewCatalogStore()
		st, err := store.FindByID(ctx, "s404")
		assert.Nil(t, st)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig().Catalog
	cfg.VIPPrice = 4000

	catalog := memstore.NewCatalogStore()
	seatMaps := memstore.NewSeatMapStore()
	require.NoError(t, memstore.Seed(cfg, catalog, seatMaps))

	all, err := catalog.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	for i, id := range []string{"s1", "s2", "s3"} {
		assert.Equal(t, id, all[i].ID())
		assert.Equal(t, int64(4000), all[i].Price())
		assert.Equal(t, cfg.HallName, all[i].Hall())
		assert.Equal(t, 20, all[i].StartsAt().Hour())

		seats, err := seatMaps.Snapshot(ctx, id)
		require.NoError(t, err)
		assert.Len(t, seats, 16)
	}

	t.Run("seeding twice fails on duplicate ids", func(t *testing.T) {
		err := memstore.Seed(cfg, catalog, seatMaps)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("zone missing from tzdata falls back to the configured offset", func(t *testing.T) {
		fallback := cfg
		fallback.TimeZone = "Nowhere/Atlantis"
		fallback.TimeZoneOffset = 2 * 60 * 60

		freshCatalog := memstore.NewCatalogStore()
		require.NoError(t, memstore.Seed(fallback, freshCatalog, memstore.NewSeatMapStore()))

		st, err := freshCatalog.FindByID(ctx, "s1")
		require.NoError(t, err)
		name, offset := st.StartsAt().Zone()
		assert.Equal(t, "Nowhere/Atlantis", name)
		assert.Equal(t, 2*60*60, offset)
		assert.Equal(t, 20, st.StartsAt().Hour())
	})
}

func TestBookingStore(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewBookingStore()
	receipt := builder.NewBookingBuilder().BuildReceipt()

	require.NoError(t, store.Save(ctx, receipt))
	assert.True(t, infra.IsKind(store.Save(ctx, receipt), infra.KindDuplicateKey))
	assert.Equal(t, 1, store.Count())

	found, err := store.FindByID(ctx, receipt.ID())
	require.NoError(t, err)
	assert.Same(t, receipt, found)

	_, err = store.FindByID(ctx, "BK-missing")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}
