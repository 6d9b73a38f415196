package config

import (
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisOptions resolves the Redis connection settings. A full REDIS_URL wins
// over the individual addr/password/db variables, which keeps hosted
// deployments to a single variable.
func (c *Config) RedisOptions() (*redis.Options, error) {
	if c.RedisURL != "" {
		opts, err := redis.ParseURL(c.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     c.RedisAddr,
		Password: c.RedisPassword,
		DB:       c.RedisDB,
	}, nil
}
