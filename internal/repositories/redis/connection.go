package redis

import (
	"context"
	"fmt"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisInternal encapsula o cliente Redis usado pelo controle de
// frequência de requisições
type RedisInternal struct {
	Redis *redis.Client
}

// NewRedisInternal conecta no Redis indicado por REDIS_HOST/REDIS_PORT,
// com fallback para localhost
func NewRedisInternal() (*RedisInternal, error) {

	host := os.Getenv("REDIS_HOST")
	port := os.Getenv("REDIS_PORT")
	if host == "" {
		host = "redis"
	}
	if port == "" {
		port = "6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port),
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {

		rdb = redis.NewClient(&redis.Options{
			Addr: "localhost:" + port,
		})

		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			return nil, fmt.Errorf("connecting to Redis: %w", err)
		}
	}

	return &RedisInternal{
		Redis: rdb,
	}, nil
}
