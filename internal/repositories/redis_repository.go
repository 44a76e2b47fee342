package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const revokedTokenPrefix = "starwars:revoked:"

// RedisRepository keeps the blacklist of revoked access tokens, keyed by jti.
type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func revokedTokenKey(jti string) string {
	return revokedTokenPrefix + jti
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	n, err := r.rdb.Exists(ctx, revokedTokenKey(jti)).Result()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// Blacklist stores the jti until ttl elapses. Callers pass the token's remaining
// lifetime, so an already expired token is not stored.
func (r *RedisRepository) Blacklist(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return r.rdb.Set(ctx, revokedTokenKey(jti), time.Now().Add(ttl).Unix(), ttl).Err()
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}
