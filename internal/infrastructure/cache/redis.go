package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/hugohenrick/food-backoffice/internal/infrastructure/metrics"
	"github.com/hugohenrick/food-backoffice/pkg/logger"
)

// RedisConfig contém os dados de conexão com o Redis
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisClient cria o cliente e verifica a conexão
func NewRedisClient(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

var _ Cache = (*RedisCache)(nil)

// RedisCache implementa Cache sobre o Redis. Um cliente nil é um cache vazio válido.
type RedisCache struct {
	client *redis.Client
	logger logger.Logger
}

// NewRedisCache cria o cache; client pode ser nil quando o Redis não está configurado
func NewRedisCache(client *redis.Client, log logger.Logger) *RedisCache {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisCache{client: client, logger: log}
}

func (c *RedisCache) Set(ctx context.Context, key, value string, ttl time.Duration) bool {
	if c.client == nil {
		return false
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Warn("falha ao gravar no cache", "key", key, "error", err)
		return false
	}
	return true
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	if c.client == nil {
		return "", false
	}
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("falha ao ler do cache", "key", key, "error", err)
		}
		metrics.CacheRequests.WithLabelValues("miss").Inc()
		return "", false
	}
	metrics.CacheRequests.WithLabelValues("hit").Inc()
	return value, true
}

func (c *RedisCache) Delete(ctx context.Context, key string) bool {
	if c.client == nil {
		return false
	}
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Warn("falha ao remover do cache", "key", key, "error", err)
		return false
	}
	return true
}

// Increment incrementa o contador; o TTL é aplicado no primeiro incremento
func (c *RedisCache) Increment(ctx context.Context, key string, ttl time.Duration) (int64, bool) {
	if c.client == nil {
		return 0, false
	}
	n, err := c.client.Incr(ctx, key).Result()
	if err != nil {
		c.logger.Warn("falha ao incrementar contador", "key", key, "error", err)
		return 0, false
	}
	if n == 1 && ttl > 0 {
		if err := c.client.Expire(ctx, key, ttl).Err(); err != nil {
			c.logger.Warn("falha ao definir expiração do contador", "key", key, "error", err)
		}
	}
	return n, true
}

// SetIfAbsent grava somente quando a chave não existe.
// Sem cache disponível retorna true: a deduplicação é perdida, a operação não.
func (c *RedisCache) SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) bool {
	if c.client == nil {
		return true
	}
	ok, err := c.client.SetNX(ctx, key, value, ttl).Result()
	if err != nil {
		c.logger.Warn("falha ao gravar chave exclusiva", "key", key, "error", err)
		return true
	}
	return ok
}
