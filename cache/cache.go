package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/garyburd/redigo/redis"

	"mlplayground/datastructures"
)

// ResultCache stores classification results in Redis, keyed by a digest of
// the feature vector. The model is deterministic, so serving a cached result
// is indistinguishable from re-running inference. Entries expire so a
// redeployed artifact isn't shadowed by stale results forever.
//
// The cache is best effort: any Redis failure is logged and the caller falls
// through to plain inference.
type ResultCache struct {
	pool *redis.Pool
	ttl  int
}

func New(address string, maxConnections int, ttlSeconds int) *ResultCache {
	pool := redis.NewPool(func() (redis.Conn, error) {
		c, err := redis.Dial("tcp", address)

		if err != nil {
			return nil, err
		}

		return c, err
	}, maxConnections)

	return &ResultCache{pool: pool, ttl: ttlSeconds}
}

// Key derives the cache key for one feature vector.
func Key(features [8]float64) string {
	serialized, _ := json.Marshal(features)
	digest := sha256.Sum256(serialized)
	return "classify:" + hex.EncodeToString(digest[:])
}

// Get returns the cached result for key, if any.
func (c *ResultCache) Get(key string) (datastructures.Result, bool) {
	var result datastructures.Result

	conn := c.pool.Get()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", key))
	if err == redis.ErrNil {
		return result, false
	}
	if err != nil {
		log.Debug("[Cache] Couldn't get cached result: ", err.Error())
		return result, false
	}

	if err := json.Unmarshal(data, &result); err != nil {
		log.Debug("[Cache] Couldn't unmarshal cached result: ", err.Error())
		return result, false
	}

	return result, true
}

// Set stores a result under key with the configured expiration.
func (c *ResultCache) Set(key string, result datastructures.Result) {
	serialized, err := json.Marshal(result)
	if err != nil {
		log.Debug("[Cache] Couldn't marshal result: ", err.Error())
		return
	}

	conn := c.pool.Get()
	defer conn.Close()

	if _, err := conn.Do("SETEX", key, c.ttl, serialized); err != nil {
		log.Debug("[Cache] Couldn't store result: ", err.Error())
	}
}

// Ping checks the Redis connection, used at startup and in tests.
func (c *ResultCache) Ping() error {
	conn := c.pool.Get()
	defer conn.Close()

	_, err := conn.Do("PING")
	return err
}

func (c *ResultCache) Close() error {
	return c.pool.Close()
}
