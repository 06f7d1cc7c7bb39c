// Package redisbucket keeps the published stadium records in Redis.
//
// Each bucket is a hash of payloads (`<prefix>:<bucket>:data`) plus a sorted set
// (`<prefix>:<bucket>:order`) scoring keys by their first insert.
package redisbucket

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/jyvarssudha/Smartamenitiescampusapp/core"
	"github.com/jyvarssudha/Smartamenitiescampusapp/core/stadium"
)

const defaultPrefix = "campus:stadium"

type Store struct {
	client *redis.Client
	prefix string
}

var _ stadium.BucketStore = (*Store)(nil)

// NewClient connects to redis with short timeouts.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
}

func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Healthy verifies redis connectivity.
func (s *Store) Healthy(ctx context.Context) bool {
	return s.client.Ping(ctx).Err() == nil
}

func (s *Store) dataKey(bucket string) string  { return s.prefix + ":" + bucket + ":data" }
func (s *Store) orderKey(bucket string) string { return s.prefix + ":" + bucket + ":order" }
func (s *Store) seqKey(bucket string) string   { return s.prefix + ":" + bucket + ":seq" }

// unavailable maps connection failures to core.ErrBackendUnavailable.
func unavailable(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(core.ErrBackendUnavailable, "%s: %v", msg, err)
}

func (s *Store) Upsert(ctx context.Context, bucket, key string, payload []byte) error {
	seq, err := s.client.Incr(ctx, s.seqKey(bucket)).Result()
	if err != nil {
		return unavailable(err, "redis incr")
	}
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.dataKey(bucket), key, payload)
		pipe.ZAddNX(ctx, s.orderKey(bucket), redis.Z{Score: float64(seq), Member: key})
		return nil
	})
	return unavailable(err, "redis upsert")
}

func (s *Store) Delete(ctx context.Context, bucket, key string) error {
	var hdel *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		hdel = pipe.HDel(ctx, s.dataKey(bucket), key)
		pipe.ZRem(ctx, s.orderKey(bucket), key)
		return nil
	})
	if err != nil {
		return unavailable(err, "redis delete")
	}
	if hdel.Val() == 0 {
		return core.NewNotFoundError(bucket, key)
	}
	return nil
}

func (s *Store) List(ctx context.Context, bucket string) ([][]byte, error) {
	keys, err := s.client.ZRange(ctx, s.orderKey(bucket), 0, -1).Result()
	if err != nil {
		return nil, unavailable(err, "redis zrange")
	}
	out := make([][]byte, 0, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	vals, err := s.client.HMGet(ctx, s.dataKey(bucket), keys...).Result()
	if err != nil {
		return nil, unavailable(err, "redis hmget")
	}
	for _, v := range vals {
		// keys removed between both reads come back nil
		if str, ok := v.(string); ok {
			out = append(out, []byte(str))
		}
	}
	return out, nil
}

// Reset drops every bucket in names.
func (s *Store) Reset(ctx context.Context, names ...string) error {
	keys := make([]string, 0, 3*len(names))
	for _, name := range names {
		keys = append(keys, s.dataKey(name), s.orderKey(name), s.seqKey(name))
	}
	if len(keys) == 0 {
		return nil
	}
	return unavailable(s.client.Del(ctx, keys...).Err(), "redis del")
}
