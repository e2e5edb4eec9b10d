package marketdata

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rishi-nd08/career-guidance/pkg/cache"
	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/models"
)

type stubFetcher struct {
	companyCalls int
	trendCalls   int
	layoffCalls  int
	failCompany  bool
}

func (f *stubFetcher) FetchCompany(ctx context.Context, name string) (models.CompanySnapshot, error) {
	f.companyCalls++
	if f.failCompany {
		return models.CompanySnapshot{}, errors.New("source unavailable")
	}
	salary := 100000.0
	return models.CompanySnapshot{
		Name:           name,
		HiringStatus:   "Active",
		OpenPositions:  50,
		AverageSalary:  &salary,
		RequiredSkills: []string{"Python", "JavaScript", "SQL"},
		CompanySize:    "Large",
		Industry:       "Technology",
		LastUpdated:    time.Now(),
	}, nil
}

func (f *stubFetcher) FetchTrends(ctx context.Context) ([]models.MarketTrend, error) {
	f.trendCalls++
	return NewStaticFetcher().FetchTrends(ctx)
}

func (f *stubFetcher) FetchLayoffs(ctx context.Context) ([]models.LayoffRecord, error) {
	f.layoffCalls++
	return NewStaticFetcher().FetchLayoffs(ctx)
}

func newTestStore(t *testing.T) *database.Client {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	store, err := database.NewClientWithDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func newTestCache(t *testing.T) *cache.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	return &cache.Client{Redis: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
}

func ageSnapshot(t *testing.T, store *database.Client, name string, age time.Duration) {
	t.Helper()

	err := store.DB.Model(&database.CompanySnapshotRecord{}).
		Where("name = ?", name).
		Update("last_updated", time.Now().Add(-age)).Error
	require.NoError(t, err)
}

func TestGetCompany_FetchesAndStoresNewCompany(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, nil, fetcher, nil, logger.Default())
	ctx := context.Background()

	snapshot, err := svc.GetCompany(ctx, "Google")
	require.NoError(t, err)
	require.NotNil(t, snapshot)

	assert.Equal(t, "Google", snapshot.Name)
	assert.Equal(t, "Active", snapshot.HiringStatus)
	assert.Equal(t, 50, snapshot.OpenPositions)
	assert.Equal(t, 1, fetcher.companyCalls)

	// stored copy is fresh, so a second lookup hits the database only
	again, err := svc.GetCompany(ctx, "Google")
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.companyCalls)
	assert.WithinDuration(t, snapshot.LastUpdated, again.LastUpdated, time.Second)
}

func TestGetCompany_SubstringMatchIsCaseInsensitive(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, nil, fetcher, nil, logger.Default())
	ctx := context.Background()

	_, err := svc.GetCompany(ctx, "ZS Associates")
	require.NoError(t, err)
	require.Equal(t, 1, fetcher.companyCalls)

	snapshot, err := svc.GetCompany(ctx, "zs")
	require.NoError(t, err)
	assert.Equal(t, "ZS Associates", snapshot.Name)
	assert.Equal(t, 1, fetcher.companyCalls)
}

func TestGetCompany_RefreshesAgedSnapshot(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, nil, fetcher, nil, logger.Default())
	ctx := context.Background()

	_, err := svc.GetCompany(ctx, "Netflix")
	require.NoError(t, err)
	ageSnapshot(t, store, "Netflix", 8*24*time.Hour)

	snapshot, err := svc.GetCompany(ctx, "Netflix")
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.companyCalls)
	assert.WithinDuration(t, time.Now(), snapshot.LastUpdated, time.Minute)
}

func TestGetCompany_ServesStaleWhenRefreshFails(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, nil, fetcher, nil, logger.Default())
	ctx := context.Background()

	_, err := svc.GetCompany(ctx, "Spotify")
	require.NoError(t, err)
	ageSnapshot(t, store, "Spotify", 30*24*time.Hour)

	fetcher.failCompany = true
	snapshot, err := svc.GetCompany(ctx, "Spotify")
	require.NoError(t, err)
	assert.Equal(t, "Spotify", snapshot.Name)
	assert.True(t, time.Since(snapshot.LastUpdated) > SnapshotMaxAge)
}

func TestGetCompany_ErrorWhenUnknownAndFetchFails(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{failCompany: true}
	svc := NewService(store, nil, fetcher, nil, logger.Default())

	_, err := svc.GetCompany(context.Background(), "Nowhere Inc")
	require.Error(t, err)
}

func TestGetMarketTrends_CachesInRedis(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	cacheClient := newTestCache(t)
	svc := NewService(store, cacheClient, fetcher, nil, logger.Default())
	ctx := context.Background()

	trends, err := svc.GetMarketTrends(ctx)
	require.NoError(t, err)
	require.Len(t, trends, 4)
	assert.Equal(t, 1, fetcher.trendCalls)

	exists, err := cacheClient.Exists(ctx, trendsCacheKey)
	require.NoError(t, err)
	assert.True(t, exists)

	ttl, err := cacheClient.TTL(ctx, trendsCacheKey)
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, cacheTTL)

	cached, err := svc.GetMarketTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, trends, cached)
	assert.Equal(t, 1, fetcher.trendCalls)
}

func TestInvalidateListCaches_ForcesRefetch(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	cacheClient := newTestCache(t)
	svc := NewService(store, cacheClient, fetcher, nil, logger.Default())
	ctx := context.Background()

	_, err := svc.GetMarketTrends(ctx)
	require.NoError(t, err)
	_, err = svc.GetLayoffStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.trendCalls)
	assert.Equal(t, 1, fetcher.layoffCalls)

	require.NoError(t, svc.InvalidateListCaches(ctx))

	exists, err := cacheClient.Exists(ctx, trendsCacheKey)
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = svc.GetMarketTrends(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, fetcher.trendCalls)
}

func TestGetMarketTrends_WorksWithoutCache(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, nil, fetcher, nil, logger.Default())

	trends, err := svc.GetMarketTrends(context.Background())
	require.NoError(t, err)
	require.Len(t, trends, 4)

	highImpact := 0
	for _, trend := range trends {
		if trend.Impact == "High" {
			highImpact++
		}
	}
	assert.Equal(t, 2, highImpact)
}

func TestGetLayoffStatistics(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, newTestCache(t), fetcher, nil, logger.Default())
	ctx := context.Background()

	layoffs, err := svc.GetLayoffStatistics(ctx)
	require.NoError(t, err)
	require.Len(t, layoffs, 3)

	assert.Equal(t, "Meta", layoffs[0].Company)
	assert.Equal(t, 11000, layoffs[0].LayoffCount)
	assert.InDelta(t, 13.0, layoffs[0].Percentage, 0.001)

	_, err = svc.GetLayoffStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, fetcher.layoffCalls)
}

func TestRefreshStale_OnlyTouchesAgedSnapshots(t *testing.T) {
	store := newTestStore(t)
	fetcher := &stubFetcher{}
	svc := NewService(store, nil, fetcher, nil, logger.Default())
	ctx := context.Background()

	_, err := svc.GetCompany(ctx, "Apple")
	require.NoError(t, err)
	_, err = svc.GetCompany(ctx, "Tesla")
	require.NoError(t, err)
	ageSnapshot(t, store, "Tesla", 10*24*time.Hour)

	fetcher.companyCalls = 0
	refreshed, err := svc.RefreshStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, refreshed)
	assert.Equal(t, 1, fetcher.companyCalls)

	// refreshed snapshot is fresh again
	refreshed, err = svc.RefreshStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, refreshed)
}
