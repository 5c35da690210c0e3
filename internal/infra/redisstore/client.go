// Package redisstore holds the Redis-backed OTP store and redeemed-token marker.
package redisstore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"coupon-ledger/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "coupon-ledger:"

// Connect returns nil without error when no URL is configured.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, func(), error) {
	if cfg.URL == "" {
		slog.Warn("redis url not configured, running without redis")
		return nil, func() {}, nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	opt.DialTimeout = 5 * time.Second
	opt.ReadTimeout = 3 * time.Second
	opt.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Error("error closing redis connection", "error", err.Error())
			return
		}
		slog.Info("redis connection closed")
	}
	return client, cleanup, nil
}
