package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rishi-nd08/career-guidance/pkg/marketdata"
)

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	market *marketdata.Service
	logger *log.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(market *marketdata.Service, logger *log.Logger) *CronManager {
	if logger == nil {
		logger = log.Default()
	}

	return &CronManager{
		cron:   cron.New(),
		market: market,
		logger: logger,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	cm.logger.Println("Setting up cron jobs...")

	// Daily at 2 AM: refresh company snapshots older than a week
	_, err := cm.cron.AddFunc("0 2 * * *", func() {
		cm.logger.Println("🕐 Running daily snapshot refresh job...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
		defer cancel()

		refreshed, err := cm.market.RefreshStale(ctx)
		if err != nil {
			cm.logger.Printf("❌ Snapshot refresh failed: %v", err)
			return
		}

		if refreshed == 0 {
			cm.logger.Println("✅ All company snapshots are fresh")
			return
		}
		cm.logger.Printf("✅ Refreshed %d stale company snapshots", refreshed)
	})
	if err != nil {
		return err
	}

	// Hourly: drop and rewarm the trend and layoff caches so request
	// paths stay fast without serving an aged entry mid-TTL
	_, err = cm.cron.AddFunc("0 * * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if err := cm.market.InvalidateListCaches(ctx); err != nil {
			cm.logger.Printf("⚠️ Cache invalidation failed: %v", err)
		}
		if _, err := cm.market.GetMarketTrends(ctx); err != nil {
			cm.logger.Printf("⚠️ Trend cache warmup failed: %v", err)
		}
		if _, err := cm.market.GetLayoffStatistics(ctx); err != nil {
			cm.logger.Printf("⚠️ Layoff cache warmup failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Printf("✅ Configured %d cron jobs", len(cm.cron.Entries()))
	return nil
}

// Start begins executing scheduled jobs
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Println("🚀 Cron scheduler started")
}

// Stop gracefully stops the cron scheduler
func (cm *CronManager) Stop() context.Context {
	cm.logger.Println("Stopping cron scheduler...")
	return cm.cron.Stop()
}
