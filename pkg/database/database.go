package database

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Client holds the database client
type Client struct {
	DB *gorm.DB
}

// NewClient creates a new database client and runs migrations
func NewClient(databaseURL string) (*Client, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed opening connection to postgres: %w", err)
	}

	client := &Client{DB: db}
	if err := client.Migrate(); err != nil {
		return nil, err
	}

	log.Println("✅ Database connected and migrations applied")

	return client, nil
}

// NewClientWithDB wraps an already opened gorm DB (used by tests)
func NewClientWithDB(db *gorm.DB) (*Client, error) {
	client := &Client{DB: db}
	if err := client.Migrate(); err != nil {
		return nil, err
	}
	return client, nil
}

// Migrate creates or updates all record tables
func (c *Client) Migrate() error {
	err := c.DB.AutoMigrate(
		&CareerQueryRecord{},
		&CompanySnapshotRecord{},
		&JobPostingRecord{},
		&MarketTrendRecord{},
		&LayoffRecord{},
		&SkillRequirementRecord{},
		&RoadmapAuditRecord{},
	)
	if err != nil {
		return fmt.Errorf("failed creating schema resources: %w", err)
	}
	return nil
}

// Close closes the database connection
func (c *Client) Close() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Ping checks if the database is reachable
func (c *Client) Ping() error {
	sqlDB, err := c.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
