package source

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mohammad-safakhou/mundial/config"
)

// Cache stores fetched facts between runs. A miss, an expired entry and a
// backend error all look the same to callers: not found.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

var keySanitizer = regexp.MustCompile(`[^\w\-]`)

// cacheKey normalizes a request key into a safe file/redis suffix.
func cacheKey(key string) string {
	safe := keySanitizer.ReplaceAllString(key, "_")
	if len(safe) > 120 {
		safe = safe[:120]
	}
	return safe
}

type cacheEnvelope struct {
	TS   int64           `json:"_ts"`
	Data json.RawMessage `json:"data"`
}

// FileCache keeps one JSON file per fact under a cache directory. Entries
// carry their write timestamp and expire on read.
type FileCache struct {
	dir string
	ttl time.Duration
}

func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &FileCache{dir: dir, ttl: ttl}, nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, "wiki_"+cacheKey(key)+".json")
}

func (c *FileCache) Get(_ context.Context, key string) ([]byte, bool) {
	raw, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, false
	}
	var env cacheEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, false
	}
	if time.Now().Unix() >= env.TS+int64(c.ttl.Seconds()) {
		return nil, false
	}
	return env.Data, true
}

func (c *FileCache) Set(_ context.Context, key string, value []byte) {
	env := cacheEnvelope{TS: time.Now().Unix(), Data: value}
	raw, err := json.Marshal(env)
	if err != nil {
		return
	}
	path := c.path(key)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return
	}
	_ = os.Rename(tmp, path)
}

const redisKeyPrefix = "wiki:"

// RedisCache stores facts as plain JSON values with a native TTL.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, redisKeyPrefix+cacheKey(key)).Bytes()
	if err != nil {
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte) {
	_ = c.client.Set(ctx, redisKeyPrefix+cacheKey(key), value, c.ttl).Err()
}

// NewRedisClient connects and pings before handing the client out.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pong, err := client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	if pong != "PONG" {
		return nil, fmt.Errorf("expected PONG, got %s", pong)
	}
	return client, nil
}
