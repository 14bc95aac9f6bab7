package infra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dehashed-sdk/sdk/dehashed/domain"

	"github.com/redis/go-redis/v9"
)

// RedisStatsStore contabiliza buscas em Redis. Faz sentido quando vários
// processos compartilham a mesma conta do provedor e o operador quer
// enxergar o consumo agregado (e o saldo) em um lugar só.
type RedisStatsStore struct {
	rdb *redis.Client

	prefix string
	// ttl aplica apenas em chaves de série temporal / por campo.
	// total é cumulativo e não expira.
	ttl time.Duration

	bucket string // "minute" (padrão) ou "none"

	trackFields bool
}

type RedisStatsOption func(*RedisStatsStore)

func WithStatsPrefix(prefix string) RedisStatsOption {
	return func(s *RedisStatsStore) {
		s.prefix = strings.Trim(prefix, ":")
	}
}

func WithStatsTTL(d time.Duration) RedisStatsOption {
	return func(s *RedisStatsStore) { s.ttl = d }
}

func WithStatsBucket(bucket string) RedisStatsOption {
	return func(s *RedisStatsStore) { s.bucket = strings.ToLower(strings.TrimSpace(bucket)) }
}

func WithStatsTrackFields(track bool) RedisStatsOption {
	return func(s *RedisStatsStore) { s.trackFields = track }
}

func NewRedisStatsStore(rdb *redis.Client, opts ...RedisStatsOption) *RedisStatsStore {
	s := &RedisStatsStore{
		rdb:    rdb,
		prefix: "dehashed:stats",
		ttl:    24 * time.Hour,
		bucket: "minute",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *RedisStatsStore) Record(ctx context.Context, ev domain.SearchEvent) error {
	if s == nil || s.rdb == nil {
		return nil
	}

	at := ev.At
	if at.IsZero() {
		at = time.Now()
	}

	field := "failed"
	if ev.OK {
		field = "ok"
	}

	totalKey := s.prefix + ":total"

	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, totalKey, field, 1)
	if ev.OK {
		pipe.HIncrBy(ctx, totalKey, "entries", int64(ev.Entries))
		pipe.HIncrBy(ctx, totalKey, "pages", int64(ev.Pages))
		// saldo é sobrescrito: o provedor reporta o valor corrente
		pipe.Set(ctx, s.prefix+":balance", ev.Balance, 0)
	}

	if s.bucket == "minute" {
		bucketKey := fmt.Sprintf("%s:minute:%s", s.prefix, at.UTC().Format("200601021504"))
		pipe.HIncrBy(ctx, bucketKey, field, 1)
		if s.ttl > 0 {
			pipe.Expire(ctx, bucketKey, s.ttl)
		}
	}

	if s.trackFields {
		f := strings.TrimSpace(string(ev.Field))
		if f != "" {
			fieldKey := s.prefix + ":field:" + f
			pipe.HIncrBy(ctx, fieldKey, field, 1)
			if s.ttl > 0 {
				pipe.Expire(ctx, fieldKey, s.ttl)
			}
		}
	}

	_, err := pipe.Exec(ctx)
	return err
}
