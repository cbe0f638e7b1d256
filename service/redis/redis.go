package redis

import (
	"errors"
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("redis key not found")

	// ErrGapTime is returned when no pool can serve the command
	ErrGapTime = errors.New("redis pool unavailable")
)

// Service is the redis command surface used by caches and repositories
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, keys ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incr(context ctx.Ctx, key string) (int64, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
}
