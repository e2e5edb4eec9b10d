package roadmaps

import (
	"fmt"
	"strings"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// MarketingPhase is one month-range phase of the marketing consultant plan
type MarketingPhase struct {
	Timeframe  string   `json:"timeframe"`
	FocusArea  string   `json:"focus_area"`
	Actions    []string `json:"actions"`
	Duration   string   `json:"duration"`
	Difficulty string   `json:"difficulty"`
}

// FinalYearPlan carries the guidance specific to final-year MBA students
type FinalYearPlan struct {
	AcademicRequirements []string          `json:"academic_requirements"`
	NetworkingStrategies []string          `json:"networking_strategies"`
	JobSearchTactics     []string          `json:"job_search_tactics"`
	TimelineMilestones   map[string]string `json:"timeline_milestones"`
}

// MarketingRoadmapDetail is the full marketing consultant career plan
// served at /api/marketing-consultant-roadmap
type MarketingRoadmapDetail struct {
	Goal              string              `json:"goal"`
	Timeline          string              `json:"timeline"`
	TotalDuration     string              `json:"total_duration"`
	TargetAudience    string              `json:"target_audience"`
	SuccessMetrics    []string            `json:"success_metrics"`
	Steps             []MarketingPhase    `json:"steps"`
	KeySkills         map[string][]string `json:"key_skills"`
	Certifications    []string            `json:"certifications"`
	ToolsToLearn      map[string][]string `json:"tools_to_learn"`
	SideProjects      []string            `json:"side_projects"`
	FinalDeliverables []string            `json:"final_deliverables"`
	TargetCompanies   map[string][]string `json:"target_companies"`
	FinalYearSpecific FinalYearPlan       `json:"final_year_specific"`
	CommonPitfalls    []string            `json:"common_pitfalls"`
	SuccessTips       []string            `json:"success_tips"`
}

// skillCategories preserves the authoring order of KeySkills when the
// detail document is flattened into a roadmap
var skillCategories = []string{"marketing_expertise", "consulting_tools", "data_savvy", "soft_skills"}

// MarketingConsultantDetail returns the detailed month-by-month plan
// for final year MBA students targeting marketing consulting
func MarketingConsultantDetail() MarketingRoadmapDetail {
	return MarketingRoadmapDetail{
		Goal:           "Secure a role in marketing consulting (or a related role with consulting elements) by the end of your MBA program",
		Timeline:       "Final MBA Year (Month-by-Month Breakdown)",
		TotalDuration:  "8 months (Oct-Jun)",
		TargetAudience: "Final Year MBA Students",
		SuccessMetrics: []string{
			"Land interviews at 3+ consulting firms",
			"Complete 2+ live consulting projects",
			"Build network of 50+ marketing professionals",
			"Secure job offer by graduation",
		},
		Steps: []MarketingPhase{
			{
				Timeframe: "Oct–Nov (Now)",
				FocusArea: "🔍 Refine Focus + Skills",
				Actions: []string{
					"Identify niche: brand, digital, analytics, strategy, etc.",
					"Take advanced electives (e.g. Strategic Marketing, Brand Management)",
					"Update CV & LinkedIn with marketing projects",
				},
				Duration:   "2 months",
				Difficulty: "Beginner",
			},
			{
				Timeframe: "Nov–Dec",
				FocusArea: "🧠 Build Consulting Skills",
				Actions: []string{
					"Practice case interviews (marketing-specific cases)",
					"Use books like Case in Point, Crack the Marketing Case",
					"Join consulting clubs/mock interviews",
				},
				Duration:   "2 months",
				Difficulty: "Intermediate",
			},
			{
				Timeframe: "Dec–Jan",
				FocusArea: "🛠️ Portfolio Building",
				Actions: []string{
					"Start a personal blog/LinkedIn posts on marketing trends",
					"Do a live project/freelance consulting for a startup/NGO",
					"Create a 1-page case study of your work",
				},
				Duration:   "2 months",
				Difficulty: "Intermediate",
			},
			{
				Timeframe: "Jan–Feb",
				FocusArea: "💼 Apply for Roles",
				Actions: []string{
					"Target consulting firms with marketing verticals (e.g., Bain, McKinsey, ZS, Nielsen, boutique firms)",
					"Also apply to marketing strategy roles at MNCs/startups",
					"Prepare STAR stories for behavioral interviews",
				},
				Duration:   "2 months",
				Difficulty: "Advanced",
			},
			{
				Timeframe: "Feb–Apr",
				FocusArea: "💬 Networking + Mentorship",
				Actions: []string{
					"Reach out to alumni in marketing/consulting on LinkedIn",
					"Set up informational interviews",
					"Ask for referrals or project shadowing",
				},
				Duration:   "2 months",
				Difficulty: "Advanced",
			},
			{
				Timeframe: "Apr–Jun",
				FocusArea: "🚀 Final Push",
				Actions: []string{
					"Interview preparation continues",
					"Stay flexible (entry roles: analyst, associate, brand strategist)",
					"Finalize job/internship offers",
				},
				Duration:   "2 months",
				Difficulty: "Advanced",
			},
		},
		KeySkills: map[string][]string{
			"marketing_expertise": {"Branding", "Digital", "Customer Insights"},
			"consulting_tools":    {"SWOT", "4Ps", "STP", "Customer Journey Mapping"},
			"data_savvy":          {"Google Analytics", "Excel", "Tableau", "PowerPoint"},
			"soft_skills":         {"Problem-solving", "Client communication", "Storytelling"},
		},
		Certifications: []string{
			"Google Digital Marketing or Analytics Certificate",
			"HubSpot Content Marketing Certification",
			"LinkedIn Learning: Marketing Strategy or Consumer Behavior",
			"Coursera: Marketing Analytics by Wharton",
		},
		ToolsToLearn: map[string][]string{
			"analytics":          {"Google Analytics", "Excel (Pivot, VLOOKUP)", "Power BI/Tableau"},
			"research":           {"Statista", "Nielsen", "McKinsey Insights", "Google Trends"},
			"presentation":       {"PowerPoint", "Canva", "Figma (for mockups)"},
			"project_management": {"Trello", "Notion", "Asana (for consulting project management)"},
		},
		SideProjects: []string{
			"Write marketing case studies on real brands (publish on LinkedIn)",
			"Start a personal marketing blog or newsletter",
			"Run a mini social media campaign for a local business",
			"Volunteer for marketing roles in NGOs",
		},
		FinalDeliverables: []string{
			"Marketing-focused resume + portfolio",
			"1–2 consulting projects (live/freelance/internship)",
			"Strong LinkedIn profile with marketing content or thought leadership",
			"Referrals/networking connections at target firms",
			"Confidence with case and behavioral interviews",
		},
		TargetCompanies: map[string][]string{
			"top_tier":    {"Bain", "McKinsey", "BCG"},
			"specialized": {"ZS Associates", "Nielsen", "Kantar"},
			"boutique":    {"Prophet", "Siegel+Gale", "Landor"},
			"corporate":   {"P&G", "Unilever", "Coca-Cola", "Nike"},
		},
		FinalYearSpecific: FinalYearPlan{
			AcademicRequirements: []string{
				"Maintain GPA above 3.5",
				"Complete Strategic Marketing elective",
				"Take Brand Management course",
				"Participate in marketing case competitions",
				"Complete capstone project in marketing",
			},
			NetworkingStrategies: []string{
				"Attend all consulting firm presentations on campus",
				"Join MBA Marketing Club and Consulting Club",
				"Participate in case interview workshops",
				"Connect with 2nd year MBA students who got consulting offers",
				"Attend industry conferences and events",
			},
			JobSearchTactics: []string{
				"Apply to both consulting and corporate strategy roles",
				"Target firms with marketing verticals",
				"Prepare 10+ STAR stories for behavioral interviews",
				"Practice 50+ case interviews",
				"Create a consulting-style resume",
			},
			TimelineMilestones: map[string]string{
				"October":  "Complete skill assessment and gap analysis",
				"November": "First round of applications submitted",
				"December": "Complete first live consulting project",
				"January":  "Interview season begins",
				"February": "Networking and referral requests",
				"March":    "Second round interviews",
				"April":    "Final interviews and offer negotiations",
				"May":      "Accept offer and prepare for role",
				"June":     "Graduation and transition planning",
			},
		},
		CommonPitfalls: []string{
			"Not starting case interview prep early enough",
			"Focusing only on MBB firms (ignore specialized boutiques)",
			"Not building a strong portfolio of real projects",
			"Neglecting networking and relationship building",
			"Not preparing for behavioral interviews thoroughly",
		},
		SuccessTips: []string{
			"Start case interview prep in October, not January",
			"Build relationships with 2nd year students who got offers",
			"Do at least one live consulting project before applying",
			"Create a personal brand on LinkedIn with marketing content",
			"Practice both case and behavioral interviews equally",
		},
	}
}

// MarketingConsultantRoadmap flattens the detailed plan into the common
// roadmap shape used by the guidance flow
func MarketingConsultantRoadmap() models.Roadmap {
	detail := MarketingConsultantDetail()

	steps := make([]models.RoadmapStep, 0, len(detail.Steps))
	for _, phase := range detail.Steps {
		var desc strings.Builder
		fmt.Fprintf(&desc, "Focus: %s\n\nActions:\n", phase.FocusArea)
		for i, action := range phase.Actions {
			if i > 0 {
				desc.WriteString("\n")
			}
			desc.WriteString("• " + action)
		}
		steps = append(steps, models.RoadmapStep{
			Title:         fmt.Sprintf("%s: %s", phase.Timeframe, phase.FocusArea),
			Description:   desc.String(),
			Duration:      phase.Duration,
			Resources:     phase.Actions,
			Prerequisites: []string{},
			Difficulty:    phase.Difficulty,
		})
	}

	var skills []string
	for _, category := range skillCategories {
		skills = append(skills, detail.KeySkills[category]...)
	}

	return models.Roadmap{
		Field:          "mba",
		Specialization: "marketing_consultant",
		TotalDuration:  detail.TotalDuration,
		Steps:          steps,
		SkillsCovered:  skills,
	}
}
