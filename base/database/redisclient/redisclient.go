package redisclient

import (
	"math/rand"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/hinatamarket/goapi/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	Retry          bool
}

// MustConnectRedis connects to one redis uri or panics
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis connects to one redis uri
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 200
	maxActive := 1024
	retry := false
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		// allow 25% idle connections
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
		retry = param[0].Retry
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			// skip the test if the conn was recycled less than 1 sec ago
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	// a small number of containers fail their first dial on fresh networks,
	// so retry a few times with jitter before giving up
	retryCount := 3

	var c redis.Conn
	var dialErr error

	r1 := rand.New(rand.NewSource(time.Now().UnixNano()))
	sleepOffset := 1 * time.Second

	for i := retryCount; i >= 0; i-- {
		if i < retryCount {
			// retry is false only when running unit tests
			if !retry {
				break
			}
			randSleep := r1.Float32() * 1000
			time.Sleep(time.Duration(randSleep)*time.Millisecond + sleepOffset)
		}
		c, dialErr = p.Dial()
		if dialErr != nil {
			log.Log().WithFields(log.Fields{
				"redisURI": uri,
				"err":      dialErr,
				"retry":    i,
			}).Error("fail to dial Redis")
			continue
		}
		defer c.Close()
		if dialErr = p.TestOnBorrow(c, time.Now()); dialErr != nil {
			log.Log().WithFields(log.Fields{
				"redisURI": uri,
				"err":      dialErr,
				"retry":    i,
			}).Error("fail to TestOnBorrow Redis")
			continue
		}
		break
	}
	if dialErr != nil {
		log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      dialErr,
		}).Error("fail to dial Redis")
		return nil, dialErr
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")

	return p, nil
}
