package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("DB_NAME", "atelier")
	t.Setenv("DB_SSL_MODE", "disable")
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("S3_BUCKET_NAME", "recipes")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "postgres", cfg.DBUser)
	assert.Equal(t, "postgres", cfg.DBPassword)
	assert.Equal(t, "atelier", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, "test-secret", cfg.SessionSecret)
	assert.Equal(t, "recipes", cfg.S3Bucket)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_USER", "postgres")
	t.Setenv("DB_PASSWORD", "postgres")
	t.Setenv("SESSION_SECRET", "test-secret")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "atelier", cfg.DBName)
	assert.Equal(t, "recipes", cfg.S3Bucket)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DB_USER", "")
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("SESSION_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")
}

func TestRedisOptions(t *testing.T) {
	cfg := &Config{RedisAddr: "localhost:6379", RedisPassword: "secret", RedisDB: 2}

	opts, err := cfg.RedisOptions()
	assert.NoError(t, err)
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, "secret", opts.Password)
	assert.Equal(t, 2, opts.DB)
}

func TestRedisOptionsURLWins(t *testing.T) {
	cfg := &Config{
		RedisAddr: "localhost:6379",
		RedisURL:  "redis://:hunter2@redis.internal:6380/3",
	}

	opts, err := cfg.RedisOptions()
	assert.NoError(t, err)
	assert.Equal(t, "redis.internal:6380", opts.Addr)
	assert.Equal(t, "hunter2", opts.Password)
	assert.Equal(t, 3, opts.DB)
}

func TestRedisOptionsBadURL(t *testing.T) {
	cfg := &Config{RedisURL: "not a url"}

	_, err := cfg.RedisOptions()
	assert.Error(t, err)
}

func TestPublicURL(t *testing.T) {
	s := &S3Config{BucketName: "recipes", Region: "ap-northeast-1"}
	assert.Equal(t,
		"https://recipes.s3.ap-northeast-1.amazonaws.com/abc.jpg",
		s.PublicURL("abc.jpg"))

	s.PublicBaseURL = "https://cdn.example.com/recipes/"
	assert.Equal(t, "https://cdn.example.com/recipes/abc.jpg", s.PublicURL("abc.jpg"))
}
