package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Get retorna o valor de uma chave
func (r *RedisInternal) Get(ctx context.Context, key string) *redis.StringCmd {
	return r.Redis.Get(ctx, key)
}

// Set grava um par chave/valor com expiração
func (r *RedisInternal) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return r.Redis.Set(ctx, key, value, expiration)
}

// Incr incrementa o contador de uma chave
func (r *RedisInternal) Incr(ctx context.Context, key string) *redis.IntCmd {
	return r.Redis.Incr(ctx, key)
}

// TTL retorna o tempo de vida restante de uma chave
func (r *RedisInternal) TTL(ctx context.Context, key string) *redis.DurationCmd {
	return r.Redis.TTL(ctx, key)
}

// FlushAll limpa todas as chaves
func (r *RedisInternal) FlushAll(ctx context.Context) *redis.StatusCmd {
	return r.Redis.FlushAll(ctx)
}
