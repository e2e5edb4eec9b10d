package models

import "time"

// Field is the study field a guidance query targets
type Field string

const (
	FieldTech Field = "tech"
	FieldMBA  Field = "mba"
)

// ExperienceLevel describes where the candidate is in their career
type ExperienceLevel string

const (
	ExperienceFreshGraduate ExperienceLevel = "fresh_graduate"
	ExperienceEntryLevel    ExperienceLevel = "entry_level"
	ExperienceMidLevel      ExperienceLevel = "mid_level"
	ExperienceSeniorLevel   ExperienceLevel = "senior_level"
)

// CareerQuery is the input for a career guidance request
type CareerQuery struct {
	Field              Field           `json:"field" validate:"required,oneof=tech mba"`
	Specialization     string          `json:"specialization,omitempty"`
	ExperienceLevel    ExperienceLevel `json:"experience_level" validate:"required,oneof=fresh_graduate entry_level mid_level senior_level"`
	TargetCompanies    []string        `json:"target_companies,omitempty"`
	TargetRoles        []string        `json:"target_roles,omitempty"`
	Skills             []string        `json:"skills,omitempty"`
	LocationPreference string          `json:"location_preference,omitempty"`
	QueryText          string          `json:"query_text" validate:"required"`
}

// RoadmapStep is a single step in a career roadmap
type RoadmapStep struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Duration      string   `json:"duration"`
	Resources     []string `json:"resources"`
	Prerequisites []string `json:"prerequisites"`
	Difficulty    string   `json:"difficulty"`
}

// Roadmap is an ordered learning plan for a field + specialization
type Roadmap struct {
	Field          string        `json:"field"`
	Specialization string        `json:"specialization"`
	TotalDuration  string        `json:"total_duration"`
	Steps          []RoadmapStep `json:"steps"`
	SkillsCovered  []string      `json:"skills_covered"`
}

// CompanySnapshot is point-in-time hiring and salary data for a company
type CompanySnapshot struct {
	Name           string    `json:"name"`
	HiringStatus   string    `json:"hiring_status"`
	OpenPositions  int       `json:"open_positions"`
	AverageSalary  *float64  `json:"average_salary,omitempty"`
	RequiredSkills []string  `json:"required_skills"`
	CompanySize    string    `json:"company_size"`
	Industry       string    `json:"industry"`
	LastUpdated    time.Time `json:"last_updated"`
}

// MarketTrend is a seeded job-market trend record
type MarketTrend struct {
	TrendType   string `json:"trend_type"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
	Timeframe   string `json:"timeframe"`
	Source      string `json:"source"`
}

// LayoffRecord is a seeded layoff statistics record
type LayoffRecord struct {
	Company              string    `json:"company"`
	LayoffCount          int       `json:"layoff_count"`
	Percentage           float64   `json:"percentage"`
	Date                 time.Time `json:"date"`
	Reason               string    `json:"reason"`
	AffectedDepartments  []string  `json:"affected_departments"`
}

// SkillRequirement lists the skills expected for a role
type SkillRequirement struct {
	Role               string   `json:"role"`
	EssentialSkills    []string `json:"essential_skills"`
	NiceToHaveSkills   []string `json:"nice_to_have_skills"`
	ExperienceRequired string   `json:"experience_required"`
	Certifications     []string `json:"certifications"`
}

// GuidanceResponse is the assembled answer for one career query
type GuidanceResponse struct {
	Query             CareerQuery        `json:"query"`
	Roadmap           *Roadmap           `json:"roadmap,omitempty"`
	MarketData        []CompanySnapshot  `json:"market_data"`
	MarketTrends      []MarketTrend      `json:"market_trends"`
	LayoffStatistics  []LayoffRecord     `json:"layoff_statistics"`
	SkillRequirements []SkillRequirement `json:"skill_requirements"`
	Recommendations   []string           `json:"recommendations"`
	GeneratedAt       time.Time          `json:"generated_at"`
}

// JobPosting is a scraped or seeded job posting record
type JobPosting struct {
	Title           string    `json:"title"`
	Company         string    `json:"company"`
	Location        string    `json:"location"`
	SalaryRange     string    `json:"salary_range,omitempty"`
	Requirements    []string  `json:"requirements"`
	PostedDate      time.Time `json:"posted_date"`
	JobType         string    `json:"job_type"`
	ExperienceLevel string    `json:"experience_level"`
	SkillsRequired  []string  `json:"skills_required"`
}

// GapAnalysis compares a candidate's skills against a target role
type GapAnalysis struct {
	TargetRole              string   `json:"target_role"`
	SkillsYouHave           []string `json:"skills_you_have"`
	MissingEssentialSkills  []string `json:"missing_essential_skills"`
	MissingNiceToHaveSkills []string `json:"missing_nice_to_have_skills"`
	SkillsGapScore          float64  `json:"skills_gap_score"`
	Recommendations         []string `json:"recommendations"`
}

// CareerInsights is the field-level market summary
type CareerInsights struct {
	Field            string         `json:"field"`
	MarketTrends     []MarketTrend  `json:"market_trends"`
	LayoffStatistics []LayoffRecord `json:"layoff_statistics"`
	PopularCompanies []string       `json:"popular_companies"`
	CommonRoles      []string       `json:"common_roles"`
}
