package skills

import "github.com/rishi-nd08/career-guidance/pkg/models"

// CatalogEntry binds a normalized role key to its skill requirements.
// Entries are kept in a slice so substring matching walks them in
// authoring order, which keeps resolution deterministic.
type CatalogEntry struct {
	Key         string
	Requirement models.SkillRequirement
}

// Catalog returns all role skill requirements
func Catalog() []CatalogEntry {
	return []CatalogEntry{
		{
			Key: "software_engineer",
			Requirement: models.SkillRequirement{
				Role:               "Software Engineer",
				EssentialSkills:    []string{"Programming Languages", "Data Structures", "Algorithms", "Version Control"},
				NiceToHaveSkills:   []string{"Cloud Computing", "DevOps", "Machine Learning", "Mobile Development"},
				ExperienceRequired: "0-2 years",
				Certifications:     []string{"AWS Certified Developer", "Google Cloud Professional"},
			},
		},
		{
			Key: "data_scientist",
			Requirement: models.SkillRequirement{
				Role:               "Data Scientist",
				EssentialSkills:    []string{"Python", "R", "SQL", "Machine Learning", "Statistics"},
				NiceToHaveSkills:   []string{"Deep Learning", "Big Data", "Cloud Computing", "Data Visualization"},
				ExperienceRequired: "1-3 years",
				Certifications:     []string{"AWS Machine Learning", "Google Data Analytics"},
			},
		},
		{
			Key: "product_manager",
			Requirement: models.SkillRequirement{
				Role:               "Product Manager",
				EssentialSkills:    []string{"Product Strategy", "User Research", "Analytics", "Project Management"},
				NiceToHaveSkills:   []string{"Technical Background", "Design Thinking", "Agile/Scrum", "Business Analysis"},
				ExperienceRequired: "2-5 years",
				Certifications:     []string{"PMP", "Certified Scrum Product Owner"},
			},
		},
		{
			Key: "consultant",
			Requirement: models.SkillRequirement{
				Role:               "Management Consultant",
				EssentialSkills:    []string{"Problem-Solving & Analytical Thinking", "Strategic Thinking", "Exceptional Communication Skills", "Data Analysis Proficiency", "Interpersonal Skills"},
				NiceToHaveSkills:   []string{"Project Management Expertise", "Adaptability and Flexibility", "Business Acumen", "SQL", "Python", "Tableau", "Advanced Excel", "Power BI"},
				ExperienceRequired: "2-3 years (Entry-level), 5+ years (Senior)",
				Certifications:     []string{"Certified Management Consultant (CMC)", "Financial Modeling Certification", "Business Strategy (Wharton)", "Consulting Foundations (LinkedIn Learning)"},
			},
		},
		{
			Key: "marketing",
			Requirement: models.SkillRequirement{
				Role:               "Marketing Consultant",
				EssentialSkills:    []string{"Marketing Expertise", "Consulting Tools", "Data Analytics", "Problem-solving", "Client Communication", "Storytelling"},
				NiceToHaveSkills:   []string{"Brand Management", "Digital Marketing", "Customer Insights", "SWOT Analysis", "4Ps Framework", "STP Analysis", "Customer Journey Mapping"},
				ExperienceRequired: "MBA Final Year",
				Certifications:     []string{"Google Digital Marketing", "HubSpot Content Marketing", "LinkedIn Learning Marketing Strategy", "Coursera Marketing Analytics by Wharton"},
			},
		},
	}
}

// DefaultRequirement returns the generic requirement for unknown roles
func DefaultRequirement(role string) models.SkillRequirement {
	return models.SkillRequirement{
		Role:               role,
		EssentialSkills:    []string{"Communication", "Problem Solving", "Teamwork"},
		NiceToHaveSkills:   []string{"Leadership", "Analytics", "Project Management"},
		ExperienceRequired: "Varies",
		Certifications:     []string{},
	}
}
