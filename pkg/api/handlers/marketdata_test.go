package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// missFetcher reports every company as unknown while the list sources stay up
type missFetcher struct {
	*marketdata.StaticFetcher
}

func (missFetcher) FetchCompany(ctx context.Context, name string) (models.CompanySnapshot, error) {
	return models.CompanySnapshot{}, fmt.Errorf("%s: %w", name, marketdata.ErrCompanyNotFound)
}

func TestGetMarketData(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/market-data/Google", "", env.marketData.GetMarketData, "company", "Google")
	requireStatus(t, rec, http.StatusOK)

	var snapshot models.CompanySnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, "Google", snapshot.Name)
	assert.Equal(t, "Active", snapshot.HiringStatus)
	assert.Equal(t, 50, snapshot.OpenPositions)
}

func TestGetMarketData_UnknownCompanyIsNotFound(t *testing.T) {
	env := newTestEnvWithFetcher(t, missFetcher{marketdata.NewStaticFetcher()})

	rec := env.request(http.MethodGet, "/api/market-data/Nonexistent", "", env.marketData.GetMarketData, "company", "Nonexistent")
	requireStatus(t, rec, http.StatusNotFound)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "not_found", body.Error)
}

func TestGetMarketData_StoreFailureIsInternalError(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Close())

	rec := env.request(http.MethodGet, "/api/market-data/Google", "", env.marketData.GetMarketData, "company", "Google")
	requireStatus(t, rec, http.StatusInternalServerError)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal_error", body.Error)
}

func TestGetMarketTrends(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/market-trends", "", env.marketData.GetMarketTrends)
	requireStatus(t, rec, http.StatusOK)

	var trends []models.MarketTrend
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trends))
	require.Len(t, trends, 4)
	assert.Equal(t, "AI/ML Growth", trends[0].TrendType)
}

func TestGetLayoffStatistics(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/layoff-stats", "", env.marketData.GetLayoffStatistics)
	requireStatus(t, rec, http.StatusOK)

	var layoffs []models.LayoffRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &layoffs))
	require.Len(t, layoffs, 3)
	assert.Equal(t, "Meta", layoffs[0].Company)
	assert.Equal(t, 11000, layoffs[0].LayoffCount)
}
