package skills

import (
	"fmt"
	"strings"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// Service resolves free-text role names against the static skill catalog
type Service struct {
	entries []CatalogEntry
}

// NewService creates a new skills service backed by the static catalog
func NewService() *Service {
	return &Service{entries: Catalog()}
}

// Normalize lowers a role name and folds spaces and hyphens to underscores
func Normalize(role string) string {
	key := strings.ToLower(strings.TrimSpace(role))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

// Resolve maps a role name to its skill requirements. Resolution order:
// exact key match, then substring match in either direction walking the
// catalog in authoring order, then the generic default. It never fails.
func (s *Service) Resolve(role string) models.SkillRequirement {
	key := Normalize(role)

	for _, entry := range s.entries {
		if entry.Key == key {
			return entry.Requirement
		}
	}

	for _, entry := range s.entries {
		if strings.Contains(key, entry.Key) || strings.Contains(entry.Key, key) {
			return entry.Requirement
		}
	}

	return DefaultRequirement(role)
}

// AnalyzeGap compares current skills against the target role's requirements
func (s *Service) AnalyzeGap(currentSkills []string, targetRole string) models.GapAnalysis {
	requirement := s.Resolve(targetRole)

	have := make(map[string]bool, len(currentSkills))
	for _, skill := range currentSkills {
		have[strings.ToLower(skill)] = true
	}

	known := make(map[string]bool, len(requirement.EssentialSkills)+len(requirement.NiceToHaveSkills))
	for _, skill := range requirement.EssentialSkills {
		known[strings.ToLower(skill)] = true
	}
	for _, skill := range requirement.NiceToHaveSkills {
		known[strings.ToLower(skill)] = true
	}

	missingEssential := []string{}
	for _, skill := range requirement.EssentialSkills {
		if !have[strings.ToLower(skill)] {
			missingEssential = append(missingEssential, skill)
		}
	}

	missingNiceToHave := []string{}
	for _, skill := range requirement.NiceToHaveSkills {
		if !have[strings.ToLower(skill)] {
			missingNiceToHave = append(missingNiceToHave, skill)
		}
	}

	skillsYouHave := []string{}
	for _, skill := range currentSkills {
		if known[strings.ToLower(skill)] {
			skillsYouHave = append(skillsYouHave, skill)
		}
	}

	score := 0.0
	if len(requirement.EssentialSkills) > 0 {
		score = float64(len(skillsYouHave)) / float64(len(requirement.EssentialSkills)) * 100
	}

	return models.GapAnalysis{
		TargetRole:              targetRole,
		SkillsYouHave:           skillsYouHave,
		MissingEssentialSkills:  missingEssential,
		MissingNiceToHaveSkills: missingNiceToHave,
		SkillsGapScore:          score,
		Recommendations: []string{
			fmt.Sprintf("Focus on learning: %s", strings.Join(firstN(missingEssential, 3), ", ")),
			fmt.Sprintf("Consider adding: %s", strings.Join(firstN(missingNiceToHave, 3), ", ")),
			fmt.Sprintf("Leverage your existing skills: %s", strings.Join(firstN(skillsYouHave, 3), ", ")),
		},
	}
}

func firstN(values []string, n int) []string {
	if len(values) < n {
		return values
	}
	return values[:n]
}
