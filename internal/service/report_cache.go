package service

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"jar-rating/internal/domain"
)

// ReportCache guarda reportes de comparación ya calculados por un TTL
// corto. La clave identifica al par de practicantes y la configuración
// con la que se calculó.
type ReportCache interface {
	Get(ctx context.Context, key string) (domain.MatchupReport, bool)
	Set(ctx context.Context, key string, report domain.MatchupReport, ttl time.Duration)
}

type memoryReportCache struct {
	mu    sync.Mutex
	items map[string]cachedReport
}

type cachedReport struct {
	report    domain.MatchupReport
	expiresAt time.Time
}

func NewMemoryReportCache() ReportCache {
	return &memoryReportCache{items: make(map[string]cachedReport)}
}

func (c *memoryReportCache) Get(_ context.Context, key string) (domain.MatchupReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[key]
	if !ok {
		return domain.MatchupReport{}, false
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, key)
		return domain.MatchupReport{}, false
	}
	return item.report, true
}

func (c *memoryReportCache) Set(_ context.Context, key string, report domain.MatchupReport, ttl time.Duration) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = cachedReport{report: report, expiresAt: time.Now().UTC().Add(ttl)}
}

type redisGetSetClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

type redisReportCache struct {
	client redisGetSetClient
	prefix string
}

// NewRedisReportCache crea una caché respaldada en redis. Devuelve nil si
// no hay cliente; el llamador decide el respaldo en memoria.
func NewRedisReportCache(client *redis.Client) ReportCache {
	if client == nil {
		return nil
	}
	return &redisReportCache{client: client, prefix: "jar:report:"}
}

func (c *redisReportCache) Get(ctx context.Context, key string) (domain.MatchupReport, bool) {
	payload, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		return domain.MatchupReport{}, false
	}
	var report domain.MatchupReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return domain.MatchupReport{}, false
	}
	return report, true
}

func (c *redisReportCache) Set(ctx context.Context, key string, report domain.MatchupReport, ttl time.Duration) {
	if ttl <= 0 {
		ttl = time.Minute
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	c.client.Set(ctx, c.prefix+key, payload, ttl)
}
