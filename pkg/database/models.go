package database

import "time"

// CareerQueryRecord stores each incoming guidance query for audit
type CareerQueryRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	Field              string `gorm:"not null"`
	Specialization     string
	ExperienceLevel    string `gorm:"not null"`
	TargetCompanies    string `gorm:"type:text"` // JSON array
	TargetRoles        string `gorm:"type:text"` // JSON array
	Skills             string `gorm:"type:text"` // JSON array
	LocationPreference string
	QueryText          string    `gorm:"type:text;not null"`
	CreatedAt          time.Time `gorm:"autoCreateTime"`
}

func (CareerQueryRecord) TableName() string { return "career_queries" }

// CompanySnapshotRecord stores point-in-time company hiring data.
// Name is the upsert key; LastUpdated drives the 7-day staleness rule.
type CompanySnapshotRecord struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"uniqueIndex;not null"`
	HiringStatus   string `gorm:"not null"`
	OpenPositions  int    `gorm:"default:0"`
	AverageSalary  *float64
	RequiredSkills string `gorm:"type:text"` // JSON array
	CompanySize    string
	Industry       string
	LastUpdated    time.Time `gorm:"not null"`
}

func (CompanySnapshotRecord) TableName() string { return "company_snapshots" }

// JobPostingRecord stores job postings (seed/schema only in the main flow)
type JobPostingRecord struct {
	ID              uint   `gorm:"primaryKey"`
	Title           string `gorm:"not null"`
	Company         string `gorm:"not null"`
	Location        string
	SalaryRange     string
	Requirements    string `gorm:"type:text"` // JSON array
	PostedDate      time.Time
	JobType         string
	ExperienceLevel string
	SkillsRequired  string `gorm:"type:text"` // JSON array
	Source          string
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (JobPostingRecord) TableName() string { return "job_postings" }

// MarketTrendRecord stores seeded market trends
type MarketTrendRecord struct {
	ID          uint   `gorm:"primaryKey"`
	TrendType   string `gorm:"not null"`
	Description string `gorm:"type:text;not null"`
	Impact      string
	Timeframe   string
	Source      string
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (MarketTrendRecord) TableName() string { return "market_trends" }

// LayoffRecord stores seeded layoff statistics
type LayoffRecord struct {
	ID                  uint   `gorm:"primaryKey"`
	Company             string `gorm:"not null"`
	LayoffCount         int    `gorm:"not null"`
	Percentage          float64
	Date                time.Time `gorm:"not null"`
	Reason              string    `gorm:"type:text"`
	AffectedDepartments string    `gorm:"type:text"` // JSON array
	CreatedAt           time.Time `gorm:"autoCreateTime"`
}

func (LayoffRecord) TableName() string { return "layoff_records" }

// SkillRequirementRecord stores seeded role skill requirements
type SkillRequirementRecord struct {
	ID                 uint   `gorm:"primaryKey"`
	Role               string `gorm:"not null"`
	EssentialSkills    string `gorm:"type:text"` // JSON array
	NiceToHaveSkills   string `gorm:"type:text"` // JSON array
	ExperienceRequired string
	Certifications     string    `gorm:"type:text"` // JSON array
	LastUpdated        time.Time `gorm:"autoUpdateTime"`
}

func (SkillRequirementRecord) TableName() string { return "skill_requirements" }

// RoadmapAuditRecord exists as schema; the request flow never writes it
type RoadmapAuditRecord struct {
	ID             uint   `gorm:"primaryKey"`
	Field          string `gorm:"not null"`
	Specialization string
	TotalDuration  string
	Steps          string    `gorm:"type:text"` // JSON array
	SkillsCovered  string    `gorm:"type:text"` // JSON array
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (RoadmapAuditRecord) TableName() string { return "roadmap_audits" }
