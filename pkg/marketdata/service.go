package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rishi-nd08/career-guidance/pkg/cache"
	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/metrics"
	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// SnapshotMaxAge is how long a stored company snapshot stays fresh
const SnapshotMaxAge = 7 * 24 * time.Hour

const (
	trendsCacheKey  = "market:trends"
	layoffsCacheKey = "market:layoffs"
	cacheTTL        = time.Hour
)

// Service serves company snapshots, market trends, and layoff
// statistics, refreshing stored data through the fetcher when stale
type Service struct {
	store   *database.Client
	cache   *cache.Client
	fetcher Fetcher
	metrics *metrics.Metrics
	log     logger.Logger
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates the market data service. cache and m may be nil
func NewService(store *database.Client, cacheClient *cache.Client, fetcher Fetcher, m *metrics.Metrics, log logger.Logger) *Service {
	return &Service{
		store:   store,
		cache:   cacheClient,
		fetcher: fetcher,
		metrics: m,
		log:     log,
		now:     time.Now,
		locks:   map[string]*sync.Mutex{},
	}
}

// GetCompany returns the snapshot for a company, refreshing through the
// fetcher when the stored copy is missing or older than SnapshotMaxAge.
// Lookups match by case-insensitive substring. When a refresh fails but
// a stale snapshot exists, the stale snapshot is served.
func (s *Service) GetCompany(ctx context.Context, name string) (*models.CompanySnapshot, error) {
	stored, err := s.store.FindSnapshot(ctx, name)
	if err != nil && !errors.Is(err, database.ErrSnapshotNotFound) {
		return nil, err
	}

	if stored != nil && s.now().Sub(stored.LastUpdated) < SnapshotMaxAge {
		s.recordCacheHit("snapshot")
		s.log.Debug("serving fresh snapshot from store", "company", name, "last_updated", stored.LastUpdated)
		return stored, nil
	}
	s.recordCacheMiss("snapshot")

	lock := s.companyLock(name)
	lock.Lock()
	defer lock.Unlock()

	// another request may have refreshed while we waited on the lock
	if refreshed, err := s.store.FindSnapshot(ctx, name); err == nil &&
		s.now().Sub(refreshed.LastUpdated) < SnapshotMaxAge {
		return refreshed, nil
	}

	fresh, err := s.fetcher.FetchCompany(ctx, name)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordSnapshotFailure()
		}
		if stored != nil {
			s.log.Warn("company refresh failed, serving stale snapshot",
				"company", name, "error", err, "last_updated", stored.LastUpdated)
			return stored, nil
		}
		return nil, err
	}

	if err := s.store.UpsertSnapshot(ctx, fresh); err != nil {
		s.log.Error("failed to store refreshed snapshot", "company", name, "error", err)
	} else if s.metrics != nil {
		s.metrics.RecordSnapshotRefresh("request")
	}

	return &fresh, nil
}

// GetMarketTrends returns current market trends, cached in Redis
func (s *Service) GetMarketTrends(ctx context.Context) ([]models.MarketTrend, error) {
	var trends []models.MarketTrend
	if s.cachedJSON(ctx, trendsCacheKey, &trends) {
		return trends, nil
	}

	trends, err := s.fetcher.FetchTrends(ctx)
	if err != nil {
		return nil, err
	}

	s.storeJSON(ctx, trendsCacheKey, trends)
	return trends, nil
}

// GetLayoffStatistics returns current layoff records, cached in Redis
func (s *Service) GetLayoffStatistics(ctx context.Context) ([]models.LayoffRecord, error) {
	var layoffs []models.LayoffRecord
	if s.cachedJSON(ctx, layoffsCacheKey, &layoffs) {
		return layoffs, nil
	}

	layoffs, err := s.fetcher.FetchLayoffs(ctx)
	if err != nil {
		return nil, err
	}

	s.storeJSON(ctx, layoffsCacheKey, layoffs)
	return layoffs, nil
}

// RefreshStale refreshes every snapshot older than SnapshotMaxAge and
// returns how many were refreshed. Used by the scheduled refresh job.
func (s *Service) RefreshStale(ctx context.Context) (int, error) {
	cutoff := s.now().Add(-SnapshotMaxAge)
	stale, err := s.store.ListStaleSnapshots(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, snapshot := range stale {
		fresh, err := s.fetcher.FetchCompany(ctx, snapshot.Name)
		if err != nil {
			if s.metrics != nil {
				s.metrics.RecordSnapshotFailure()
			}
			s.log.Error("scheduled refresh failed", "company", snapshot.Name, "error", err)
			continue
		}
		if err := s.store.UpsertSnapshot(ctx, fresh); err != nil {
			s.log.Error("scheduled refresh could not store snapshot", "company", snapshot.Name, "error", err)
			continue
		}
		if s.metrics != nil {
			s.metrics.RecordSnapshotRefresh("scheduled")
		}
		refreshed++
	}

	return refreshed, nil
}

// InvalidateListCaches drops the cached trend and layoff lists so the
// next read goes back to the fetcher. The scheduled warmup calls this
// before repopulating.
func (s *Service) InvalidateListCaches(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Delete(ctx, trendsCacheKey, layoffsCacheKey)
}

func (s *Service) companyLock(name string) *sync.Mutex {
	key := strings.ToLower(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

// cachedJSON loads a cached value into out; false means cache miss.
// Redis failures are treated as misses.
func (s *Service) cachedJSON(ctx context.Context, key string, out any) bool {
	if s.cache == nil {
		return false
	}

	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("cache read failed", "key", key, "error", err)
		}
		s.recordCacheMiss("redis")
		return false
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.log.Warn("cache entry corrupt, refetching", "key", key, "error", err)
		s.recordCacheMiss("redis")
		return false
	}

	s.recordCacheHit("redis")
	return true
}

func (s *Service) storeJSON(ctx context.Context, key string, value any) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, string(data), cacheTTL); err != nil {
		s.log.Warn("cache write failed", "key", key, "error", err)
	}
}

func (s *Service) recordCacheHit(cacheType string) {
	if s.metrics != nil {
		s.metrics.RecordCacheHit(cacheType)
	}
}

func (s *Service) recordCacheMiss(cacheType string) {
	if s.metrics != nil {
		s.metrics.RecordCacheMiss(cacheType)
	}
}
