package mock

import (
	"context"
	"sync"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var redisOnce sync.Once
var redisConn *redis.Client

// NewRedis returns a client connected to a process-wide miniredis instance.
// The API server's snapshot cache and the step definitions share it.
func NewRedis() *redis.Client {
	if redisConn == nil {
		redisOnce.Do(func() {
			server, err := miniredis.Run()
			if err != nil {
				panic(err)
			}
			redisConn = redis.NewClient(&redis.Options{Addr: server.Addr()})
		})
	}
	return redisConn
}

// ClearRedis drops every cached key.
func ClearRedis(client *redis.Client) error {
	return client.FlushAll(context.TODO()).Err()
}
