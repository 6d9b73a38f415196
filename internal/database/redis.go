package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KohanaIshitsuka/recipe-atelier/config"
)

// NewRedisClient connects the page-cache Redis client and verifies the
// connection with a short ping.
func NewRedisClient(cfg *config.Config) (*redis.Client, error) {
	opts, err := cfg.RedisOptions()
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.Printf("Connected to Redis at %s", opts.Addr)
	return client, nil
}
