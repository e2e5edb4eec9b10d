package roadmaps

import "github.com/rishi-nd08/career-guidance/pkg/models"

// roadmapSpec holds the catalog content for one specialization
type roadmapSpec struct {
	TotalDuration string
	Steps         []models.RoadmapStep
	SkillsCovered []string
}

// TechRoadmaps returns the roadmap catalog for the tech field.
// Step order is chronological and part of the contract.
func TechRoadmaps() map[string]roadmapSpec {
	return map[string]roadmapSpec{
		"frontend": {
			TotalDuration: "6-12 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "HTML & CSS Fundamentals",
					Description:   "Learn the basics of web structure and styling",
					Duration:      "2-3 weeks",
					Resources:     []string{"MDN Web Docs", "freeCodeCamp", "CSS-Tricks"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "JavaScript Basics",
					Description:   "Master JavaScript fundamentals and ES6+ features",
					Duration:      "4-6 weeks",
					Resources:     []string{"JavaScript.info", "Eloquent JavaScript", "MDN JavaScript Guide"},
					Prerequisites: []string{"HTML & CSS"},
					Difficulty:    "Beginner",
				},
				{
					Title:         "React/Vue/Angular",
					Description:   "Choose and master a modern frontend framework",
					Duration:      "6-8 weeks",
					Resources:     []string{"React Official Docs", "Vue.js Guide", "Angular Tutorial"},
					Prerequisites: []string{"JavaScript"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "State Management",
					Description:   "Learn Redux, Vuex, or NgRx for complex applications",
					Duration:      "3-4 weeks",
					Resources:     []string{"Redux Toolkit", "Vuex Guide", "NgRx Documentation"},
					Prerequisites: []string{"React/Vue/Angular"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Testing & Deployment",
					Description:   "Learn testing frameworks and deployment strategies",
					Duration:      "3-4 weeks",
					Resources:     []string{"Jest", "Cypress", "Vercel", "Netlify"},
					Prerequisites: []string{"Frontend Framework"},
					Difficulty:    "Intermediate",
				},
			},
			SkillsCovered: []string{"HTML", "CSS", "JavaScript", "React", "Testing", "Git", "Responsive Design"},
		},
		"backend": {
			TotalDuration: "8-12 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "Programming Language",
					Description:   "Master Python, Java, or Node.js for backend development",
					Duration:      "6-8 weeks",
					Resources:     []string{"Python.org", "Oracle Java Docs", "Node.js Guide"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Database Management",
					Description:   "Learn SQL and NoSQL databases",
					Duration:      "4-6 weeks",
					Resources:     []string{"PostgreSQL Docs", "MongoDB University", "SQLBolt"},
					Prerequisites: []string{"Programming Language"},
					Difficulty:    "Beginner",
				},
				{
					Title:         "API Development",
					Description:   "Build RESTful APIs and GraphQL endpoints",
					Duration:      "4-6 weeks",
					Resources:     []string{"FastAPI", "Spring Boot", "Express.js"},
					Prerequisites: []string{"Programming Language", "Database"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Authentication & Security",
					Description:   "Implement secure authentication and authorization",
					Duration:      "3-4 weeks",
					Resources:     []string{"JWT.io", "OAuth 2.0", "OWASP Security"},
					Prerequisites: []string{"API Development"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Cloud & DevOps",
					Description:   "Deploy applications using cloud platforms",
					Duration:      "4-6 weeks",
					Resources:     []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
					Prerequisites: []string{"API Development"},
					Difficulty:    "Advanced",
				},
			},
			SkillsCovered: []string{"Python/Java/Node.js", "SQL", "REST APIs", "Authentication", "Cloud Computing", "Docker"},
		},
		"data_science": {
			TotalDuration: "10-14 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "Python & Statistics",
					Description:   "Learn Python programming and statistical concepts",
					Duration:      "6-8 weeks",
					Resources:     []string{"Python.org", "Statistics.com", "Khan Academy"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Data Manipulation",
					Description:   "Master pandas, NumPy, and data cleaning techniques",
					Duration:      "4-6 weeks",
					Resources:     []string{"Pandas Docs", "NumPy Guide", "DataCamp"},
					Prerequisites: []string{"Python"},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Machine Learning",
					Description:   "Learn ML algorithms and scikit-learn",
					Duration:      "6-8 weeks",
					Resources:     []string{"Scikit-learn", "Coursera ML Course", "Kaggle Learn"},
					Prerequisites: []string{"Data Manipulation"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Deep Learning",
					Description:   "Explore neural networks and TensorFlow/PyTorch",
					Duration:      "6-8 weeks",
					Resources:     []string{"TensorFlow", "PyTorch", "Deep Learning Specialization"},
					Prerequisites: []string{"Machine Learning"},
					Difficulty:    "Advanced",
				},
				{
					Title:         "Data Visualization",
					Description:   "Create compelling visualizations and dashboards",
					Duration:      "3-4 weeks",
					Resources:     []string{"Matplotlib", "Seaborn", "Plotly", "Tableau"},
					Prerequisites: []string{"Data Manipulation"},
					Difficulty:    "Intermediate",
				},
			},
			SkillsCovered: []string{"Python", "Statistics", "Machine Learning", "Deep Learning", "Data Visualization", "SQL"},
		},
		"devops": {
			TotalDuration: "8-12 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "Linux & Command Line",
					Description:   "Master Linux administration and shell scripting",
					Duration:      "4-6 weeks",
					Resources:     []string{"Linux Academy", "Bash Guide", "Linux Documentation"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Version Control",
					Description:   "Learn Git and GitHub/GitLab workflows",
					Duration:      "2-3 weeks",
					Resources:     []string{"Git Documentation", "GitHub Learning Lab", "Atlassian Git Tutorials"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Containerization",
					Description:   "Master Docker and container orchestration",
					Duration:      "4-6 weeks",
					Resources:     []string{"Docker Docs", "Kubernetes.io", "Docker Compose"},
					Prerequisites: []string{"Linux"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Cloud Platforms",
					Description:   "Learn AWS, Azure, or GCP services",
					Duration:      "6-8 weeks",
					Resources:     []string{"AWS Training", "Azure Learn", "Google Cloud Training"},
					Prerequisites: []string{"Containerization"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "CI/CD & Monitoring",
					Description:   "Implement continuous integration and monitoring",
					Duration:      "4-6 weeks",
					Resources:     []string{"Jenkins", "GitLab CI", "Prometheus", "Grafana"},
					Prerequisites: []string{"Cloud Platforms"},
					Difficulty:    "Advanced",
				},
			},
			SkillsCovered: []string{"Linux", "Docker", "Kubernetes", "AWS/Azure/GCP", "CI/CD", "Monitoring"},
		},
	}
}

// MBARoadmaps returns the roadmap catalog for the mba field
func MBARoadmaps() map[string]roadmapSpec {
	return map[string]roadmapSpec{
		"consulting": {
			TotalDuration: "12-18 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "Problem Solving & Structured Thinking",
					Description:   "Master MECE frameworks, hypothesis-driven thinking, and issue prioritization",
					Duration:      "6-8 weeks",
					Resources:     []string{"Case in Point", "Victor Cheng", "MECE Frameworks", "80/20 Rule"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Analytical & Quantitative Skills",
					Description:   "Develop mental math, data analysis, and business modeling capabilities",
					Duration:      "6-8 weeks",
					Resources:     []string{"Excel Mastery", "Quick Mental Math", "Business Math", "Chart Interpretation"},
					Prerequisites: []string{"Problem Solving"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Communication & Storytelling",
					Description:   "Build executive communication, presentation, and storytelling skills",
					Duration:      "4-6 weeks",
					Resources:     []string{"PREP/STAR Method", "PowerPoint Skills", "Executive Writing", "Data Storytelling"},
					Prerequisites: []string{"Analytical Skills"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Case Interview Mastery",
					Description:   "Practice case interviews with frameworks and real scenarios",
					Duration:      "8-10 weeks",
					Resources:     []string{"Case in Point", "PrepLounge", "CaseCoach", "RocketBlocks", "Crafting Cases"},
					Prerequisites: []string{"Communication Skills"},
					Difficulty:    "Advanced",
				},
				{
					Title:         "Business & Industry Knowledge",
					Description:   "Develop deep understanding of key industries and market trends",
					Duration:      "4-6 weeks",
					Resources:     []string{"McKinsey Insights", "Bain Insights", "BCG Perspectives", "HBR", "The Economist"},
					Prerequisites: []string{"Case Interview Prep"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Networking & Applications",
					Description:   "Build professional network and apply to consulting firms",
					Duration:      "Ongoing",
					Resources:     []string{"LinkedIn", "Alumni Networks", "Company Events", "Behavioral Interview Prep"},
					Prerequisites: []string{"Industry Knowledge"},
					Difficulty:    "Advanced",
				},
			},
			SkillsCovered: []string{"Problem Solving", "Analytical Skills", "Communication", "Case Interview", "Business Knowledge", "Leadership"},
		},
		"finance": {
			TotalDuration: "10-14 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "Financial Fundamentals",
					Description:   "Learn accounting, finance, and valuation principles",
					Duration:      "8-10 weeks",
					Resources:     []string{"CFA Institute", "Investopedia", "Financial Modeling Prep"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Financial Modeling",
					Description:   "Master Excel and build financial models",
					Duration:      "6-8 weeks",
					Resources:     []string{"Wall Street Prep", "Corporate Finance Institute", "Excel Skills"},
					Prerequisites: []string{"Financial Fundamentals"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Investment Banking Prep",
					Description:   "Prepare for investment banking interviews and technical questions",
					Duration:      "6-8 weeks",
					Resources:     []string{"Breaking Into Wall Street", "Vault Guides", "Technical Interview Prep"},
					Prerequisites: []string{"Financial Modeling"},
					Difficulty:    "Advanced",
				},
				{
					Title:         "Networking & Applications",
					Description:   "Connect with finance professionals and apply to roles",
					Duration:      "Ongoing",
					Resources:     []string{"LinkedIn", "Finance Clubs", "Industry Events"},
					Prerequisites: []string{"Investment Banking Prep"},
					Difficulty:    "Advanced",
				},
			},
			SkillsCovered: []string{"Financial Modeling", "Valuation", "Excel", "PowerPoint", "Industry Analysis"},
		},
		"operations": {
			TotalDuration: "10-14 months",
			Steps: []models.RoadmapStep{
				{
					Title:         "Operations Fundamentals",
					Description:   "Learn supply chain, operations management, and process optimization",
					Duration:      "8-10 weeks",
					Resources:     []string{"APICS", "MIT Operations Course", "Lean Six Sigma"},
					Prerequisites: []string{},
					Difficulty:    "Beginner",
				},
				{
					Title:         "Data Analysis & Tools",
					Description:   "Master Excel, SQL, and operations analytics",
					Duration:      "6-8 weeks",
					Resources:     []string{"Excel Advanced", "SQL for Operations", "Tableau"},
					Prerequisites: []string{"Operations Fundamentals"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Project Management",
					Description:   "Learn project management methodologies and tools",
					Duration:      "4-6 weeks",
					Resources:     []string{"PMI", "Agile/Scrum", "Microsoft Project"},
					Prerequisites: []string{"Data Analysis"},
					Difficulty:    "Intermediate",
				},
				{
					Title:         "Industry Applications",
					Description:   "Apply operations knowledge to specific industries",
					Duration:      "4-6 weeks",
					Resources:     []string{"Industry Case Studies", "Company Research", "Professional Networks"},
					Prerequisites: []string{"Project Management"},
					Difficulty:    "Advanced",
				},
			},
			SkillsCovered: []string{"Supply Chain", "Process Optimization", "Project Management", "Data Analysis", "Lean Six Sigma"},
		},
	}
}

// GenericRoadmap is the fallback returned for unsupported fields,
// tagged with the original field name
func GenericRoadmap(field string) models.Roadmap {
	return models.Roadmap{
		Field:          field,
		Specialization: "general",
		TotalDuration:  "6-12 months",
		Steps: []models.RoadmapStep{
			{
				Title:         "Foundation Learning",
				Description:   "Build fundamental knowledge in your chosen field",
				Duration:      "2-3 months",
				Resources:     []string{"Online Courses", "Books", "Tutorials"},
				Prerequisites: []string{},
				Difficulty:    "Beginner",
			},
			{
				Title:         "Skill Development",
				Description:   "Develop specific skills relevant to your career goals",
				Duration:      "2-3 months",
				Resources:     []string{"Practice Projects", "Certifications", "Mentorship"},
				Prerequisites: []string{"Foundation Learning"},
				Difficulty:    "Intermediate",
			},
			{
				Title:         "Portfolio Building",
				Description:   "Create a portfolio showcasing your skills and projects",
				Duration:      "1-2 months",
				Resources:     []string{"Personal Projects", "Case Studies", "GitHub"},
				Prerequisites: []string{"Skill Development"},
				Difficulty:    "Intermediate",
			},
			{
				Title:         "Job Search & Networking",
				Description:   "Apply to positions and build professional network",
				Duration:      "Ongoing",
				Resources:     []string{"LinkedIn", "Job Boards", "Professional Events"},
				Prerequisites: []string{"Portfolio Building"},
				Difficulty:    "Advanced",
			},
		},
		SkillsCovered: []string{"Communication", "Problem Solving", "Technical Skills", "Industry Knowledge"},
	}
}
