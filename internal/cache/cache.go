package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

var Rdb *redis.Client

const runTTL = 15 * time.Minute

// Init connects the run-summary cache. An empty addr leaves the cache
// disabled and every Get misses.
func Init(addr string) {
	if addr == "" {
		return
	}
	Rdb = redis.NewClient(&redis.Options{
		Addr: addr,
	})
}

func Set(key string, value string) {
	if Rdb == nil {
		return
	}
	Rdb.Set(context.Background(), key, value, runTTL)
}

func Get(key string) (string, error) {
	if Rdb == nil {
		return "", errors.New("cache disabled")
	}
	return Rdb.Get(context.Background(), key).Result()
}
