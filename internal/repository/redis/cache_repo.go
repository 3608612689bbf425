package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/pos-backend/internal/cfg"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/clients"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const dashboardStatsKey = "stats:dashboard"

// CacheRepo кэширует агрегаты дашборда в Redis с коротким TTL.
// Кэш вспомогательный: его ошибки логируются и не ломают запрос.
type CacheRepo struct {
	client *clients.RedisClient
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

// GetDashboardStats возвращает (nil, nil) при промахе кэша.
func (r *CacheRepo) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	data, err := r.client.Client.Get(ctx, dashboardStatsKey).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var stats usecase.DashboardStats
	if err := json.Unmarshal(data, &stats); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := r.client.Client.Del(context.Background(), dashboardStatsKey).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, nil // повреждённая запись равносильна промаху
	}

	return &stats, nil
}

// SetDashboardStats кэширует агрегаты с TTL из конфига.
// Ошибки записи логируются и не возвращаются наружу.
func (r *CacheRepo) SetDashboardStats(ctx context.Context, stats *usecase.DashboardStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		r.logger.Warnf("Failed to marshal stats for caching: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := r.client.Client.Set(ctx, dashboardStatsKey, data, r.cfg.StatsTTL).Err(); err != nil {
		r.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// InvalidateDashboardStats сбрасывает кэш после любой записи,
// меняющей каталог или журнал продаж.
func (r *CacheRepo) InvalidateDashboardStats(ctx context.Context) error {
	if err := r.client.Client.Del(ctx, dashboardStatsKey).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}
