package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// ErrSnapshotNotFound is returned when no company snapshot matches a lookup
var ErrSnapshotNotFound = errors.New("company snapshot not found")

// SaveQuery persists an incoming career query for audit
func (c *Client) SaveQuery(ctx context.Context, q models.CareerQuery) error {
	record := CareerQueryRecord{
		Field:              string(q.Field),
		Specialization:     q.Specialization,
		ExperienceLevel:    string(q.ExperienceLevel),
		TargetCompanies:    marshalList(q.TargetCompanies),
		TargetRoles:        marshalList(q.TargetRoles),
		Skills:             marshalList(q.Skills),
		LocationPreference: q.LocationPreference,
		QueryText:          q.QueryText,
	}

	if err := c.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to save career query: %w", err)
	}

	return nil
}

// FindSnapshot looks up a company snapshot by case-insensitive substring match
func (c *Client) FindSnapshot(ctx context.Context, name string) (*models.CompanySnapshot, error) {
	var record CompanySnapshotRecord
	err := c.DB.WithContext(ctx).
		Where("LOWER(name) LIKE ?", "%"+strings.ToLower(name)+"%").
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to query company snapshot: %w", err)
	}

	snapshot := snapshotFromRecord(record)
	return &snapshot, nil
}

// UpsertSnapshot inserts a snapshot or refreshes the row with the same name.
// The ON CONFLICT clause keeps concurrent refreshes of one company atomic.
func (c *Client) UpsertSnapshot(ctx context.Context, s models.CompanySnapshot) error {
	record := CompanySnapshotRecord{
		Name:           s.Name,
		HiringStatus:   s.HiringStatus,
		OpenPositions:  s.OpenPositions,
		AverageSalary:  s.AverageSalary,
		RequiredSkills: marshalList(s.RequiredSkills),
		CompanySize:    s.CompanySize,
		Industry:       s.Industry,
		LastUpdated:    s.LastUpdated,
	}

	err := c.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"hiring_status", "open_positions", "average_salary",
			"required_skills", "company_size", "industry", "last_updated",
		}),
	}).Create(&record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert company snapshot: %w", err)
	}

	return nil
}

// ListStaleSnapshots returns snapshots last updated before the cutoff
func (c *Client) ListStaleSnapshots(ctx context.Context, cutoff time.Time) ([]models.CompanySnapshot, error) {
	var records []CompanySnapshotRecord
	err := c.DB.WithContext(ctx).
		Where("last_updated < ?", cutoff).
		Order("last_updated ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list stale snapshots: %w", err)
	}

	snapshots := make([]models.CompanySnapshot, 0, len(records))
	for _, record := range records {
		snapshots = append(snapshots, snapshotFromRecord(record))
	}
	return snapshots, nil
}

// CreateMarketTrend inserts a seeded market trend row
func (c *Client) CreateMarketTrend(ctx context.Context, t models.MarketTrend) error {
	record := MarketTrendRecord{
		TrendType:   t.TrendType,
		Description: t.Description,
		Impact:      t.Impact,
		Timeframe:   t.Timeframe,
		Source:      t.Source,
	}
	if err := c.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create market trend: %w", err)
	}
	return nil
}

// CreateLayoffRecord inserts a seeded layoff statistics row
func (c *Client) CreateLayoffRecord(ctx context.Context, l models.LayoffRecord) error {
	record := LayoffRecord{
		Company:             l.Company,
		LayoffCount:         l.LayoffCount,
		Percentage:          l.Percentage,
		Date:                l.Date,
		Reason:              l.Reason,
		AffectedDepartments: marshalList(l.AffectedDepartments),
	}
	if err := c.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create layoff record: %w", err)
	}
	return nil
}

// CreateSkillRequirement inserts a seeded skill requirement row
func (c *Client) CreateSkillRequirement(ctx context.Context, s models.SkillRequirement) error {
	record := SkillRequirementRecord{
		Role:               s.Role,
		EssentialSkills:    marshalList(s.EssentialSkills),
		NiceToHaveSkills:   marshalList(s.NiceToHaveSkills),
		ExperienceRequired: s.ExperienceRequired,
		Certifications:     marshalList(s.Certifications),
	}
	if err := c.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create skill requirement: %w", err)
	}
	return nil
}

// CreateJobPosting inserts a seeded job posting row
func (c *Client) CreateJobPosting(ctx context.Context, p models.JobPosting, source string) error {
	record := JobPostingRecord{
		Title:           p.Title,
		Company:         p.Company,
		Location:        p.Location,
		SalaryRange:     p.SalaryRange,
		Requirements:    marshalList(p.Requirements),
		PostedDate:      p.PostedDate,
		JobType:         p.JobType,
		ExperienceLevel: p.ExperienceLevel,
		SkillsRequired:  marshalList(p.SkillsRequired),
		Source:          source,
	}
	if err := c.DB.WithContext(ctx).Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create job posting: %w", err)
	}
	return nil
}

func snapshotFromRecord(record CompanySnapshotRecord) models.CompanySnapshot {
	return models.CompanySnapshot{
		Name:           record.Name,
		HiringStatus:   record.HiringStatus,
		OpenPositions:  record.OpenPositions,
		AverageSalary:  record.AverageSalary,
		RequiredSkills: unmarshalList(record.RequiredSkills),
		CompanySize:    record.CompanySize,
		Industry:       record.Industry,
		LastUpdated:    record.LastUpdated,
	}
}

func marshalList(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "[]"
	}
	return string(data)
}

func unmarshalList(data string) []string {
	if data == "" {
		return []string{}
	}
	var values []string
	if err := json.Unmarshal([]byte(data), &values); err != nil {
		return []string{}
	}
	return values
}
