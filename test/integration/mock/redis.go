//go:build integration

package mock

import (
	"sync"

	"github.com/alicebob/miniredis/v2"
)

var redisOnce sync.Once
var redisServer *miniredis.Miniredis

// NewRedis starts a single in-memory Redis server shared by every scenario.
func NewRedis() *miniredis.Miniredis {
	redisOnce.Do(func() {
		server, err := miniredis.Run()
		if err != nil {
			panic(err)
		}
		redisServer = server
	})

	return redisServer
}

// RedisURL returns the connection URL of server.
func RedisURL(server *miniredis.Miniredis) string {
	return "redis://" + server.Addr()
}

// ClearRedis removes every key.
func ClearRedis(server *miniredis.Miniredis) {
	server.FlushAll()
}
