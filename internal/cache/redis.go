package cache

import (
	"fmt"
	"time"

	"adoptar/internal/common"

	"github.com/go-redis/redis/v7"
)

const (
	DefaultNetworkTimeout     = 5 * time.Second
	DefaultNetworkIdleTimeout = 30 * time.Second
)

type redisCache struct {
	Client      *redis.Client
	ServiceLogs chan<- common.ServiceLog
}

func (r *redisCache) Set(key string, value string, ttl time.Duration) error {
	status := r.Client.Set(key, value, ttl)
	if status.Err() != nil {
		return fmt.Errorf("failed to set key[%s]: %s", key, status.Err())
	}
	r.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "set key[%s] response: %s", key, status.String())
	return nil
}

func (r *redisCache) Get(key string) (string, error) {
	response := r.Client.Get(key)
	if response.Err() != nil {
		if response.Err() == redis.Nil {
			return "", ErrorNotFound
		}
		return "", fmt.Errorf("failed to get key[%s]: %s", key, response.Err())
	}
	return response.Val(), nil
}

func (r *redisCache) Scan(pattern string) ([]string, error) {
	response := r.Client.Keys(pattern)
	if response.Err() != nil {
		return nil, fmt.Errorf("failed to list keys[%s]: %s", pattern, response.Err())
	}
	keys := response.Val()
	r.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "found %v keys[%s]", len(keys), pattern)
	return keys, nil
}

func (r *redisCache) Del(key string) error {
	response := r.Client.Unlink(key)
	if response.Err() != nil {
		return fmt.Errorf("failed to delete key[%s]: %s", key, response.Err())
	}
	r.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "delete key[%s] response: %s", key, response.String())
	return nil
}

// InitRedisOpts configures the InitRedis method
type InitRedisOpts struct {
	Addr     string
	Username string
	Password string

	ServiceLogs chan<- common.ServiceLog
}

// InitRedis initialises a singleton instance of a Redis cache
func InitRedis(opts InitRedisOpts) error {
	serviceLogs := opts.ServiceLogs
	if serviceLogs == nil {
		serviceLogs = common.GetNoopServiceLog()
	}
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.Username,
		Password:     opts.Password,
		DB:           0,
		DialTimeout:  DefaultNetworkTimeout,
		ReadTimeout:  DefaultNetworkTimeout,
		WriteTimeout: DefaultNetworkTimeout,
		IdleTimeout:  DefaultNetworkIdleTimeout,
	})
	if err := client.Ping().Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at addr[%s]: %v", opts.Addr, err)
	}
	instance = &redisCache{
		Client:      client,
		ServiceLogs: serviceLogs,
	}
	return nil
}
