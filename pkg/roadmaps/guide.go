package roadmaps

// SkillArea is one competency group of the consulting skills breakdown.
// Optional lists vary by area and are omitted when empty.
type SkillArea struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	KeySkills     []string `json:"key_skills"`
	ToolsConcepts []string `json:"tools_concepts,omitempty"`
	ToolsToLearn  []string `json:"tools_to_learn,omitempty"`
	SkillsToBuild []string `json:"skills_to_build,omitempty"`
}

// LearningResource is a single study resource. Type and Platform are
// mutually exclusive depending on the resource group.
type LearningResource struct {
	Resource    string `json:"resource"`
	Description string `json:"description"`
	Type        string `json:"type,omitempty"`
	Platform    string `json:"platform,omitempty"`
}

// EmployerSkill describes one skill sought by employers, with sourcing
type EmployerSkill struct {
	Skill      string `json:"skill"`
	Importance string `json:"importance"`
	Practice   string `json:"practice"`
	Source     string `json:"source"`
}

// EmployerInsights carries hiring-market context for consultants in India
type EmployerInsights struct {
	Title              string            `json:"title"`
	Skills             []EmployerSkill   `json:"skills"`
	AdditionalInsights map[string]string `json:"additional_insights"`
	SpecificTools      []string          `json:"indian_specific_tools"`
	ConsultingFirms    []string          `json:"indian_consulting_firms"`
}

// ConsultingGuide is the full management consulting skills and
// resources guide served at /api/management-consulting-guide
type ConsultingGuide struct {
	Title                      string                        `json:"title"`
	SkillsBreakdown            map[string]SkillArea          `json:"skills_breakdown"`
	LearningResources          map[string][]LearningResource `json:"learning_resources"`
	Timeline                   map[string]string             `json:"timeline"`
	SuccessTips                []string                      `json:"success_tips"`
	IndianEmployerRequirements EmployerInsights              `json:"indian_employer_requirements"`
}

// ManagementConsultingGuide returns the complete static guide
func ManagementConsultingGuide() ConsultingGuide {
	return ConsultingGuide{
		Title:             "Management Consulting Skills & Resources Guide",
		SkillsBreakdown:   consultingSkillsBreakdown(),
		LearningResources: consultingLearningResources(),
		Timeline: map[string]string{
			"months_1_2":   "Focus on Problem Solving & Structured Thinking",
			"months_3_4":   "Develop Analytical & Quantitative Skills",
			"months_5_6":   "Build Communication & Storytelling Skills",
			"months_7_10":  "Master Case Interview Preparation",
			"months_11_12": "Develop Business & Industry Knowledge",
			"ongoing":      "Networking & Applications",
		},
		SuccessTips: []string{
			"Start case interview prep early - don't wait until the last minute",
			"Practice mental math daily - it's crucial for case interviews",
			"Read business news daily to stay current on industry trends",
			"Join consulting clubs and practice with peers",
			"Build a strong network of alumni in consulting",
			"Prepare 10+ STAR stories for behavioral interviews",
			"Master Excel shortcuts and PowerPoint design",
			"Practice explaining complex concepts simply",
		},
		IndianEmployerRequirements: indianEmployerRequirements(),
	}
}

func consultingSkillsBreakdown() map[string]SkillArea {
	return map[string]SkillArea{
		"problem_solving": {
			Title:       "🧠 Problem Solving & Structured Thinking",
			Description: "Ability to break down complex problems using frameworks (MECE, issue trees)",
			KeySkills: []string{
				"Hypothesis-driven thinking",
				"Prioritization of issues",
				"MECE (Mutually Exclusive, Collectively Exhaustive) structuring",
				"Root cause analysis",
			},
			ToolsConcepts: []string{
				"Market entry frameworks",
				"Profitability frameworks",
				"Pricing frameworks",
				"M&A frameworks",
				"80/20 rule",
				"Issue trees",
			},
		},
		"analytical": {
			Title:       "📊 Analytical & Quantitative Skills",
			Description: "Quick mental math, data analysis and interpretation, logical reasoning",
			KeySkills: []string{
				"Quick mental math",
				"Data analysis and interpretation",
				"Logical reasoning",
				"Basic business math",
			},
			ToolsToLearn: []string{
				"Microsoft Excel (VLOOKUP, PivotTables, quick models)",
				"Charts & Graphs interpretation",
				"Basic modeling (revenue, cost, break-even, etc.)",
			},
		},
		"communication": {
			Title:       "🗣️ Communication & Storytelling",
			Description: "Clear and concise verbal communication, executive-style writing and slide-making",
			KeySkills: []string{
				"Clear and concise verbal communication",
				"Executive-style writing and slide-making",
				"Storytelling with data",
				"Handling stress and pressure in interviews",
			},
			SkillsToBuild: []string{
				"Structuring your answers (PREP/STAR method)",
				"Client-friendly email and PowerPoint skills",
				"Data visualization and presentation",
			},
		},
		"teamwork": {
			Title:       "👥 Teamwork & Leadership",
			Description: "Ability to work in diverse teams, project management skills",
			KeySkills: []string{
				"Ability to work in diverse teams",
				"Project management skills",
				"Handling feedback and client dynamics",
				"Leadership in team settings",
			},
		},
		"business_knowledge": {
			Title:       "🎯 Business & Industry Knowledge",
			Description: "Understanding of common industries and awareness of current events",
			KeySkills: []string{
				"Understanding of common industries: healthcare, retail, tech, finance",
				"Awareness of current events, market trends, and case studies",
				"Industry-specific knowledge and insights",
			},
		},
	}
}

func consultingLearningResources() map[string][]LearningResource {
	return map[string][]LearningResource{
		"case_interview_prep": {
			{Resource: "Case in Point by Marc Cosentino", Description: "Classic book with beginner-friendly frameworks", Type: "Book"},
			{Resource: "Case Interview Secrets by Victor Cheng", Description: "Focuses on mindset, structure, and strategy", Type: "Book"},
			{Resource: "PrepLounge", Description: "Practice platform with peers and experts (has paid/free cases)", Type: "Platform"},
			{Resource: "CaseCoach", Description: "Premium course used by many MBA students (school discounts may apply)", Type: "Course"},
			{Resource: "RocketBlocks", Description: "Interactive drills on math, frameworks, and fit", Type: "Platform"},
			{Resource: "Crafting Cases (YouTube)", Description: "Free, well-explained case walkthroughs and frameworks", Type: "Video"},
			{Resource: "Victor Cheng's LOMS (Look Over My Shoulder)", Description: "Real recordings of case interviews (audio)", Type: "Audio"},
		},
		"behavioral_interview_prep": {
			{Resource: "Consulting Interview Bible (by Management Consulted)", Description: "Real examples of 'fit' questions and how to answer them", Type: "Book"},
			{Resource: "Big Interview (Behavioral Section)", Description: "STAR method prep for stories", Type: "Platform"},
			{Resource: "Tell Me About a Time… by Rob Yeung", Description: "Book for behavioral interview storytelling", Type: "Book"},
			{Resource: "HBR's Guide to Persuasive Presentations", Description: "Build communication and storytelling skills", Type: "Book"},
		},
		"business_industry_awareness": {
			{Resource: "McKinsey Insights", Description: "Latest research, trends, and industry briefs", Type: "Website"},
			{Resource: "Bain Insights / BCG Perspectives", Description: "Real consulting cases and trends", Type: "Website"},
			{Resource: "Harvard Business Review", Description: "Articles on strategy, management, and innovation", Type: "Publication"},
			{Resource: "The Economist / Financial Times", Description: "Stay updated on global business context", Type: "Publication"},
			{Resource: "Morning Brew (Newsletter)", Description: "Daily summary of business news (free & fast)", Type: "Newsletter"},
		},
		"tools": {
			{Resource: "Excel", Description: "Basic modeling, analysis, client deliverables", Type: "Software"},
			{Resource: "PowerPoint", Description: "Slide creation, structured communication", Type: "Software"},
			{Resource: "Notion / Miro / Whimsical", Description: "Brainstorming frameworks, mapping ideas", Type: "Software"},
			{Resource: "Grammarly", Description: "Writing clarity for documents and communication", Type: "Software"},
		},
		"free_courses": {
			{Resource: "Business Strategy (Wharton)", Description: "Coursera course on business strategy", Platform: "Coursera"},
			{Resource: "Foundations of Business Strategy", Description: "Coursera course on business strategy foundations", Platform: "Coursera"},
			{Resource: "Strategy and the Sustainable Enterprise", Description: "U. of Virginia course on strategy", Platform: "edX"},
			{Resource: "Consulting Foundations", Description: "LinkedIn Learning course on consulting", Platform: "LinkedIn Learning"},
			{Resource: "Business Analysis for Consultants", Description: "LinkedIn Learning course on business analysis", Platform: "LinkedIn Learning"},
			{Resource: "Making Sense of Strategy", Description: "Free course on strategy", Platform: "OpenLearn"},
		},
	}
}

func indianEmployerRequirements() EmployerInsights {
	return EmployerInsights{
		Title: "🔧 Top Skills Sought by Indian Employers in Management Consultants",
		Skills: []EmployerSkill{
			{
				Skill:      "Problem-Solving & Analytical Thinking",
				Importance: "Consultants are expected to dissect complex business challenges and devise actionable solutions",
				Practice:   "Employers look for candidates who can analyze data, identify root causes, and apply frameworks to address issues effectively",
				Source:     "Indeed",
			},
			{
				Skill:      "Strategic Thinking",
				Importance: "The ability to anticipate market trends and align strategies with business goals is crucial",
				Practice:   "Consultants should demonstrate foresight in designing impactful strategies that consider risks and opportunities",
				Source:     "TimesPro",
			},
			{
				Skill:      "Exceptional Communication Skills",
				Importance: "Clear articulation of findings and recommendations is essential for client engagement",
				Practice:   "Proficiency in preparing detailed reports, delivering presentations, and maintaining transparent communication with clients is highly valued",
				Source:     "TimesPro",
			},
			{
				Skill:      "Data Analysis Proficiency",
				Importance: "In the digital age, data-driven decisions are paramount",
				Practice:   "Consultants should be adept in tools like SQL, Python, Tableau, and advanced Excel to process complex datasets and derive meaningful insights",
				Source:     "TimesPro",
			},
			{
				Skill:      "Interpersonal Skills",
				Importance: "Building trust and understanding client needs are fundamental to successful consulting",
				Practice:   "Consultants must foster professional relationships, listen actively, and collaborate effectively with diverse stakeholders",
				Source:     "Indeed",
			},
			{
				Skill:      "Project Management Expertise",
				Importance: "Managing consulting projects requires effective coordination and resource allocation",
				Practice:   "Employers seek candidates with experience in overseeing project timelines, managing teams, and ensuring successful project outcomes",
				Source:     "thecareerhub.brainwonders.in",
			},
			{
				Skill:      "Adaptability and Flexibility",
				Importance: "The consulting landscape is dynamic, requiring professionals to adjust to varying client needs and industries",
				Practice:   "Consultants should demonstrate openness to new challenges and the ability to pivot strategies as necessary",
				Source:     "thecareerhub.brainwonders.in",
			},
			{
				Skill:      "Business Acumen",
				Importance: "Understanding business operations and market dynamics is critical for providing strategic advice",
				Practice:   "Consultants should possess a deep understanding of business operations, market dynamics, and financial principles to offer relevant recommendations",
				Source:     "thecareerhub.brainwonders.in",
			},
		},
		AdditionalInsights: map[string]string{
			"educational_background": "A bachelor's degree in economics, finance, marketing, or related fields is typically required. An MBA from a reputed institution is often preferred",
			"certifications":         "While not mandatory, certifications such as Certified Management Consultant (CMC) or in financial modeling can enhance credibility and demonstrate expertise",
			"experience":             "Entry-level positions may require 2–3 years of relevant experience, while senior roles demand proven expertise in consulting or a specialized field",
		},
		SpecificTools: []string{
			"SQL for data analysis",
			"Python for advanced analytics",
			"Tableau for data visualization",
			"Advanced Excel for financial modeling",
			"Power BI for business intelligence",
			"R for statistical analysis",
		},
		ConsultingFirms: []string{
			"McKinsey India",
			"Bain India",
			"BCG India",
			"Deloitte Consulting India",
			"PwC India",
			"EY India",
			"KPMG India",
			"Accenture India",
			"IBM Consulting India",
			"Capgemini India",
		},
	}
}
