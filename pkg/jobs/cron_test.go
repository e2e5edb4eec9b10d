package jobs

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/rishi-nd08/career-guidance/pkg/database"
	"github.com/rishi-nd08/career-guidance/pkg/logger"
	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
)

func TestSetupJobs(t *testing.T) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	store, err := database.NewClientWithDB(db)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	market := marketdata.NewService(store, nil, marketdata.NewStaticFetcher(), nil, logger.Default())
	cm := NewCronManager(market, nil)

	require.NoError(t, cm.SetupJobs())

	cm.Start()
	<-cm.Stop().Done()
}
