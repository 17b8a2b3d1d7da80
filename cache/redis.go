package cache

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/gomodule/redigo/redis"
)

// the whole cache structure lives under one named key
const REDIS_CACHE_KEY = "ltobridge:addresses"

// RedisStore keeps the serialized cache as a single Redis value. Useful when
// the facade runs somewhere without a stable filesystem.
type RedisStore struct {
	pool *redis.Pool
	key  string
}

func timeoutDialOptions() []redis.DialOption {
	return []redis.DialOption{
		redis.DialConnectTimeout(5 * time.Second),
		redis.DialReadTimeout(5 * time.Second),
		redis.DialWriteTimeout(5 * time.Second),
	}
}

func NewRedisStore(host string, port int) *RedisStore {
	redisAddr := fmt.Sprintf("%s:%d", host, port)
	return &RedisStore{
		pool: &redis.Pool{
			MaxIdle: 5,
			Dial:    func() (redis.Conn, error) { return redis.Dial("tcp", redisAddr, timeoutDialOptions()...) },
		},
		key: REDIS_CACHE_KEY,
	}
}

func (s *RedisStore) Read() ([]byte, error) {
	conn := s.pool.Get()
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", s.key))
	if err != nil {
		// an absent key loads as an empty cache, no need to log it
		if !errors.Is(err, redis.ErrNil) {
			log.Printf("error Redis GET: %s", err.Error())
		}
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Write(data []byte) error {
	conn := s.pool.Get()
	defer conn.Close()

	_, err := conn.Do("SET", s.key, data)
	if err != nil {
		log.Printf("error Redis SET: %s", err.Error())
		return err
	}
	return nil
}
