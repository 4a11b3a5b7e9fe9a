package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cinema-booking/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis returns nil when REDIS_ADDR is unset, which disables rate limiting.
func NewRedis(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) redis.Scripter {
	if cfg.Redis.Addr == "" {
		logger.Info("redis not configured, booking rate limit disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			// the limiter fails open, so an unreachable Redis is not fatal
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("redis ping failed", "addr", cfg.Redis.Addr, "error", err)
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return client
}
