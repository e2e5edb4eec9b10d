package handlers

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/guidance"
	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
	"github.com/rishi-nd08/career-guidance/pkg/roadmaps"
	"github.com/rishi-nd08/career-guidance/pkg/skills"
)

type testEnv struct {
	echo       *echo.Echo
	store      *database.Client
	guidance   *GuidanceHandler
	roadmap    *RoadmapHandler
	marketData *MarketDataHandler
	skills     *SkillsHandler
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithFetcher(t, marketdata.NewStaticFetcher())
}

func newTestEnvWithFetcher(t *testing.T, fetcher marketdata.Fetcher) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	store, err := database.NewClientWithDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	log := logger.Default()
	roadmapSvc := roadmaps.NewService(log)
	skillsSvc := skills.NewService()
	marketSvc := marketdata.NewService(store, nil, fetcher, nil, log)
	guidanceSvc := guidance.NewService(store, roadmapSvc, marketSvc, skillsSvc, nil, log)

	return &testEnv{
		echo:       echo.New(),
		store:      store,
		guidance:   NewGuidanceHandler(guidanceSvc),
		roadmap:    NewRoadmapHandler(roadmapSvc, nil),
		marketData: NewMarketDataHandler(marketSvc),
		skills:     NewSkillsHandler(skillsSvc, nil),
	}
}

// request runs a handler against a synthetic request and returns the recorder
func (env *testEnv) request(method, target, body string, handler echo.HandlerFunc, pathParams ...string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.echo.NewContext(req, rec)

	var names, values []string
	for i := 0; i+1 < len(pathParams); i += 2 {
		names = append(names, pathParams[i])
		values = append(values, pathParams[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}

	_ = handler(c)
	return rec
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, "unexpected status, body: %s", rec.Body.String())
}
