package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"moviestream/internal/config"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// InitRedis connects to redis. The cache is best-effort: if redis is
// unreachable the client stays nil and every helper degrades to a miss,
// leaving mongo as the only source of truth.
func InitRedis(cfg *config.Config) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := c.Ping(ctx).Err(); err != nil {
		log.Printf("[redis] unavailable, running without cache: %v", err)
		return
	}

	client = c
	log.Println("[redis] connected")
}

// GetJSON reads a key and, if present, unmarshals it into dest.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}

	val, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals value and stores it with a TTL in seconds.
func SetJSON(ctx context.Context, key string, value any, ttlSeconds int) error {
	if client == nil {
		return nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return err
	}

	ttl := time.Duration(ttlSeconds) * time.Second
	return client.Set(ctx, key, b, ttl).Err()
}

// Delete drops keys, used to invalidate after admin mutations.
func Delete(ctx context.Context, keys ...string) error {
	if client == nil {
		return nil
	}
	return client.Del(ctx, keys...).Err()
}

func Close() {
	if client == nil {
		return
	}
	if err := client.Close(); err != nil {
		log.Printf("[redis] close failed: %v", err)
	}
}
