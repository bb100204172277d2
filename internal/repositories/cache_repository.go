package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheRepository struct {
	rdb *redis.Client
}

func NewCacheRepository(rdb *redis.Client) *CacheRepository {
	return &CacheRepository{rdb: rdb}
}

const (
	sessionTTL = 30 * 24 * time.Hour
	columnsTTL = 10 * time.Minute
)

func (r *CacheRepository) StoreSession(ctx context.Context, jti string, userID string) error {
	return r.rdb.Set(ctx, "session:"+jti, userID, sessionTTL).Err()
}

func (r *CacheRepository) DeleteSession(ctx context.Context, jti string) error {
	return r.rdb.Del(ctx, "session:"+jti).Err()
}

func (r *CacheRepository) Blacklist(ctx context.Context, jti string) error {
	return r.rdb.Set(ctx, "blacklist:"+jti, "true", sessionTTL).Err()
}

func (r *CacheRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	exists, err := r.rdb.Exists(ctx, "blacklist:"+jti).Result()
	return exists == 1, err
}

// StoreColumns caches the introspected data-column list for an upload.
// Column sets are fixed at ingestion, so the only consistency concern is
// deletion, handled by InvalidateColumns.
func (r *CacheRepository) StoreColumns(ctx context.Context, fileID string, columns []string) error {
	payload, err := json.Marshal(columns)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, "columns:"+fileID, payload, columnsTTL).Err()
}

func (r *CacheRepository) GetColumns(ctx context.Context, fileID string) ([]string, bool, error) {
	payload, err := r.rdb.Get(ctx, "columns:"+fileID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	var columns []string
	if err := json.Unmarshal(payload, &columns); err != nil {
		return nil, false, err
	}
	return columns, true, nil
}

func (r *CacheRepository) InvalidateColumns(ctx context.Context, fileID string) error {
	return r.rdb.Del(ctx, "columns:"+fileID).Err()
}
