package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/metrics"
	"github.com/hinatamarket/goapi/domain/keys"
)

const (
	// Forever marks a key without expiration
	Forever = time.Duration(-1)

	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

// ErrNoTTL is returned by TTL when the key has no associated expire
var ErrNoTTL = errors.New("redis key has no ttl")

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis pool
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	pool := r.pools.Src
	if pool == nil {
		return nil, ErrGapTime
	}

	conn := pool.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}

	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// Closing conn explicitly asap improves redigo's performance,
	// because longer an connection is hold and not closed, the
	// pool need to handle more connections at the same time and
	// getConn time might burst.
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	if err == redis.ErrNil {
		return reply, ErrNotFound
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := []string{"func", "get", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := []string{"func", "set", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(context, "SET", key, val)
	} else {
		_, err = r.connDo(context, "SET", key, val, "px", int(expire/time.Millisecond))
	}
	if err != nil {
		context.WithField("err", err).Error("SET redis failed")
	}
	return err
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := []string{"func", "setnx", "cluster", r.name, "prefix", keys.GetPrefix(key)}
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		_, err = r.connDo(context, "SET", key, val, "nx")
	} else {
		_, err = r.connDo(context, "SET", key, val, "nx", "px", int(expire/time.Millisecond))
	}

	return err
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, nil
	}

	tags := []string{"func", "del", "cluster", r.name, "prefix", keys.GetPrefix(ks[0])}
	defer r.met.BumpTime("time", tags...).End()

	args := make([]interface{}, 0, len(ks))
	for _, k := range ks {
		args = append(args, k)
	}
	res, err := redis.Int(r.connDo(context, "DEL", args...))
	if err != nil {
		context.WithField("err", err).Error("DEL redis failed")
		return 0, err
	}
	return res, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", "func", "TTL", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}

	if res == retTTLNoKey {
		return res, ErrNotFound
	} else if res == retTTLNoExpire {
		return res, ErrNoTTL
	}
	return res, nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	defer r.met.BumpTime("time", "func", "exists", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Bool(r.connDo(context, "EXISTS", key))
	if err != nil {
		context.WithField("err", err).Error("EXISTS redis failed")
	}
	return res, err
}

// Incr increments the number stored at key by one. If the key does not
// exist, it is set to 0 before performing the operation.
func (r *redImpl) Incr(context ctx.Ctx, key string) (int64, error) {
	defer r.met.BumpTime("time", "func", "incr", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int64(r.connDo(context, "INCR", key))
	if err != nil {
		context.WithField("err", err).Error("INCR redis failed")
	}
	return res, err
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, val int) (int64, error) {
	defer r.met.BumpTime("time", "func", "incrby", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int64(r.connDo(context, "INCRBY", key, val))
	if err != nil {
		context.WithField("err", err).Error("INCRBY redis failed")
	}
	return res, err
}
