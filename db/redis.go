package db

import (
	"context"
	"fmt"
	"net"

	"bankist/config"
	"bankist/logger"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns the client backing the account cache.
func ConnectRedis() (*redis.Client, error) {
	cfg := config.AppConfig.Redis
	addr := net.JoinHostPort(cfg.Host, cfg.Port)

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		logger.Log.WithError(err).WithField("address", addr).Error("Account cache is unreachable")
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	logger.Log.WithField("address", addr).Info("Account cache connected")
	return rdb, nil
}
