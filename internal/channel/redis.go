package channel

import (
	"context"
	"fmt"

	"github.com/SergeyBogomolovv/food-dispatch/internal/config"
	"github.com/redis/go-redis/v9"
)

func NewClient(ctx context.Context, cfg config.Redis) (redis.UniversalClient, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}
