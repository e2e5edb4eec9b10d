package testdata

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/rishi-nd08/career-guidance/pkg/models"
	"github.com/rishi-nd08/career-guidance/pkg/skills"
)

// PostingGeneratorConfig configures job posting generation parameters
type PostingGeneratorConfig struct {
	Field        string
	Count        int
	SalaryChance float64 // 0.0-1.0 (probability of listing a salary range)
	RemoteChance float64
}

// Hiring hubs by field. Tech postings skew toward engineering hubs,
// MBA postings toward cities where the big consulting firms staff from.
var hiringHubs = map[string][]string{
	"tech": {"Bangalore", "Hyderabad", "Pune", "San Francisco", "Seattle",
		"Austin", "New York", "London", "Berlin", "Singapore"},
	"mba": {"Mumbai", "Gurgaon", "Bangalore", "New York", "Chicago",
		"Boston", "London", "Dubai", "Singapore", "Frankfurt"},
}

// Role titles with field-appropriate seniority variants
var roleTitles = map[string][]string{
	"tech": {
		"Software Engineer", "Senior Software Engineer", "Frontend Developer",
		"Backend Developer", "Full Stack Developer", "Data Scientist",
		"Machine Learning Engineer", "DevOps Engineer", "Site Reliability Engineer",
		"Data Engineer", "Product Manager",
	},
	"mba": {
		"Management Consultant", "Associate Consultant", "Business Analyst",
		"Strategy Consultant", "Marketing Consultant", "Brand Manager",
		"Product Marketing Manager", "Operations Manager", "Financial Analyst",
		"Engagement Manager",
	},
}

var hiringCompanies = map[string][]string{
	"tech": {"Google", "Microsoft", "Amazon", "Meta", "Apple",
		"Netflix", "Uber", "Airbnb", "Stripe", "Spotify"},
	"mba": {"McKinsey", "BCG", "Bain", "Deloitte", "PwC",
		"EY", "KPMG", "Accenture", "ZS Associates", "Kearney"},
}

var salaryBands = map[string][]string{
	"tech": {"$80,000 - $120,000", "$100,000 - $150,000", "$120,000 - $180,000",
		"₹12,00,000 - ₹25,00,000", "₹18,00,000 - ₹40,00,000"},
	"mba": {"$90,000 - $130,000", "$110,000 - $160,000",
		"₹15,00,000 - ₹30,00,000", "₹20,00,000 - ₹45,00,000"},
}

var experienceLevels = []string{"Entry Level", "Mid Level", "Senior Level"}

// postingSkills picks the skill list for a title from the role catalog,
// falling back to generated buzzwords for titles outside it.
func postingSkills(title string) []string {
	for _, entry := range skills.Catalog() {
		if entry.Requirement.Role == title {
			return entry.Requirement.EssentialSkills
		}
	}
	n := 3 + rand.Intn(3)
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, gofakeit.BuzzWord())
	}
	return out
}

// GeneratePosting creates a single job posting with realistic data
func GeneratePosting(config PostingGeneratorConfig) models.JobPosting {
	field := config.Field
	titles, ok := roleTitles[field]
	if !ok {
		field = "tech"
		titles = roleTitles[field]
	}

	title := titles[rand.Intn(len(titles))]
	company := hiringCompanies[field][rand.Intn(len(hiringCompanies[field]))]

	location := hiringHubs[field][rand.Intn(len(hiringHubs[field]))]
	if rand.Float64() < config.RemoteChance {
		location = "Remote"
	}

	var salaryRange string
	if rand.Float64() < config.SalaryChance {
		bands := salaryBands[field]
		salaryRange = bands[rand.Intn(len(bands))]
	}

	required := postingSkills(title)
	level := experienceLevels[rand.Intn(len(experienceLevels))]

	return models.JobPosting{
		Title:           title,
		Company:         company,
		Location:        location,
		SalaryRange:     salaryRange,
		Requirements:    []string{fmt.Sprintf("%s experience", level), gofakeit.JobDescriptor() + " communication skills"},
		PostedDate:      time.Now().AddDate(0, 0, -rand.Intn(30)),
		JobType:         "Full-time",
		ExperienceLevel: level,
		SkillsRequired:  required,
	}
}

// GeneratePostings creates multiple postings with the given config
func GeneratePostings(config PostingGeneratorConfig) []models.JobPosting {
	postings := make([]models.JobPosting, config.Count)
	for i := 0; i < config.Count; i++ {
		postings[i] = GeneratePosting(config)
	}
	return postings
}

// GeneratePostingsForField generates postings for a field with default settings
func GeneratePostingsForField(field string, count int) []models.JobPosting {
	config := PostingGeneratorConfig{
		Field:        field,
		Count:        count,
		SalaryChance: 0.6,
		RemoteChance: 0.2,
	}
	return GeneratePostings(config)
}
