package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores can be handed a single
// instance, a cluster or a failover client alike
type Client interface {
	redis.UniversalClient
}
