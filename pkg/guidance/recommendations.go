package guidance

import (
	"fmt"
	"strings"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// maxRecommendations caps the advice list per response
const maxRecommendations = 10

// Recommendations builds the advice list for a query. Rules fire in a
// fixed order (trends, salary, hiring, field, experience, location) and
// the result is capped at maxRecommendations, so earlier rules win
// slots when many fire.
func Recommendations(query models.CareerQuery, marketData []models.CompanySnapshot, trends []models.MarketTrend) []string {
	recommendations := []string{}

	for _, trend := range trends {
		if trend.Impact == "High" {
			recommendations = append(recommendations, fmt.Sprintf(
				"High Impact Trend: %s. Consider focusing on skills related to this trend.",
				trend.Description))
		}
	}

	if len(marketData) > 0 {
		if salary, ok := meanSalary(marketData); ok {
			recommendations = append(recommendations, fmt.Sprintf(
				"Average salary in your target companies: $%s. Use this as a benchmark for salary negotiations.",
				formatAmount(salary)))
		}

		active := 0
		for _, company := range marketData {
			if company.HiringStatus == "Active" {
				active++
			}
		}
		if active > 0 {
			recommendations = append(recommendations, fmt.Sprintf(
				"%d out of %d target companies are actively hiring. Focus your applications on these companies first.",
				active, len(marketData)))
		}
	}

	recommendations = append(recommendations, fieldRecommendations(query)...)
	recommendations = append(recommendations, experienceRecommendations(query.ExperienceLevel)...)

	if query.LocationPreference != "" {
		recommendations = append(recommendations, fmt.Sprintf(
			"Research the job market in %s and connect with local professionals in your field.",
			query.LocationPreference))
	}

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}

func fieldRecommendations(query models.CareerQuery) []string {
	switch query.Field {
	case models.FieldTech:
		return []string{
			"Build a strong portfolio with real projects on GitHub",
			"Contribute to open source projects to gain experience",
			"Consider getting cloud certifications (AWS, Azure, GCP)",
			"Practice coding problems on platforms like LeetCode and HackerRank",
		}
	case models.FieldMBA:
		specialization := strings.ToLower(query.Specialization)
		switch {
		case strings.Contains(specialization, "marketing"):
			return []string{
				"Start case interview preparation immediately - don't wait until January",
				"Complete at least one live consulting project before applying to firms",
				"Build relationships with 2nd year MBA students who secured consulting offers",
				"Create thought leadership content on LinkedIn about marketing trends",
				"Target both MBB firms and specialized marketing consultancies like ZS Associates",
				"Practice 50+ case interviews focusing on marketing-specific scenarios",
				"Prepare 10+ STAR stories for behavioral interviews",
				"Attend all consulting firm presentations on campus",
				"Join both Marketing Club and Consulting Club for networking",
			}
		case strings.Contains(specialization, "consulting"):
			return []string{
				"Master MECE frameworks and structured problem-solving approaches",
				"Practice case interviews daily using Case in Point and PrepLounge",
				"Develop quick mental math skills - crucial for case interviews",
				"Read McKinsey Insights, Bain Insights, and BCG Perspectives daily",
				"Join consulting clubs and practice with peers regularly",
				"Build 10+ STAR stories for behavioral interviews",
				"Master Excel shortcuts and PowerPoint design skills",
				"Stay current on business news through The Economist and Morning Brew",
				"Practice explaining complex concepts in simple terms",
				"Network with alumni in consulting firms for referrals",
			}
		default:
			return []string{
				"Build strong analytical and problem-solving skills",
				"Practice case interviews extensively",
				"Develop industry-specific knowledge through research",
				"Build a professional network through LinkedIn and industry events",
			}
		}
	default:
		return nil
	}
}

func experienceRecommendations(level models.ExperienceLevel) []string {
	switch level {
	case models.ExperienceFreshGraduate:
		return []string{
			"Focus on building foundational skills and gaining practical experience",
			"Consider internships or entry-level positions to build your resume",
			"Join professional organizations and attend networking events",
		}
	case models.ExperienceEntryLevel:
		return []string{
			"Look for opportunities to take on more responsibility",
			"Seek mentorship from senior professionals",
			"Consider lateral moves to gain diverse experience",
		}
	default:
		return nil
	}
}

// meanSalary averages over entries that carry salary data; false means
// no entry did
func meanSalary(marketData []models.CompanySnapshot) (float64, bool) {
	sum := 0.0
	count := 0
	for _, company := range marketData {
		if company.AverageSalary != nil {
			sum += *company.AverageSalary
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// formatAmount renders a dollar amount with thousands separators, no cents
func formatAmount(amount float64) string {
	whole := fmt.Sprintf("%.0f", amount)

	negative := strings.HasPrefix(whole, "-")
	if negative {
		whole = whole[1:]
	}

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
