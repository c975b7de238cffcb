// Package features matches a fixed skill taxonomy against annotated resume
// text and collects named entities of interest.
package features

// SoftSkillCategory is the taxonomy category holding interpersonal skills.
// Quest generation treats every other category as technical.
const SoftSkillCategory = "SOFT_SKILL"

// Taxonomy maps a skill category to the literal phrases that identify it.
// Matching is exact-phrase and case-insensitive, never fuzzy.
type Taxonomy map[string][]string

// DefaultTaxonomy returns the built-in skill dictionary. It is static
// process-wide configuration: loaded once and read-only afterwards.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		"PROGRAMMING": {
			"Python", "Java", "JavaScript", "TypeScript", "C++", "C#", "C", "Go", "Rust", "Ruby",
			"PHP", "Swift", "Kotlin", "Scala", "Perl", "R", "MATLAB", "Lua", "Objective-C", "Bash",
			"Shell Scripting", "PowerShell",
		},
		"WEB_DEVELOPMENT": {
			"HTML", "CSS", "Sass", "LESS", "Node.js", "Express.js", "React", "Angular", "Vue.js",
			"jQuery", "ASP.NET", "Django", "Flask", "Ruby on Rails", "Spring Boot", "Next.js",
			"Nuxt.js", "Svelte", "Gatsby", "Bootstrap", "Tailwind CSS", "Redux", "MobX", "Webpack",
			"Vite", "WebSockets", "SEO", "Web Accessibility", "WCAG", "Progressive Web Apps", "PWA",
		},
		"DATABASE": {
			"SQL", "MySQL", "PostgreSQL", "SQLite", "Microsoft SQL Server", "Oracle", "MongoDB",
			"Redis", "Cassandra", "DynamoDB", "Firebase", "Elasticsearch", "SQLAlchemy", "Prisma",
			"InfluxDB", "Neo4j", "Graph Databases", "DBeaver",
		},
		"AI_MACHINE_LEARNING": {
			"Machine Learning", "Deep Learning", "Natural Language Processing", "NLP", "Computer Vision",
			"Reinforcement Learning", "TensorFlow", "PyTorch", "Keras", "Scikit-learn", "Pandas",
			"NumPy", "SciPy", "Matplotlib", "Seaborn", "spaCy", "NLTK", "OpenCV", "XGBoost",
			"LightGBM", "Hugging Face", "Transformers", "Generative AI", "LLM", "Large Language Models",
		},
		"DATA_SCIENCE": {
			"Data Analysis", "Data Mining", "ETL", "Data Warehousing", "Business Intelligence",
			"Apache Spark", "Hadoop", "Kafka", "Tableau", "Power BI", "Looker", "Airflow", "dbt",
			"Data Bricks",
		},
		"DEVOPS_CLOUD": {
			"CI/CD", "Jenkins", "GitLab CI", "GitHub Actions", "Docker", "Kubernetes", "Terraform",
			"Ansible", "Puppet", "Chef", "AWS", "Amazon Web Services", "Azure", "Google Cloud Platform",
			"GCP", "Heroku", "DigitalOcean", "Vercel", "Netlify", "Linux", "EC2", "S3", "Lambda",
			"RDS", "VPC", "CloudFormation", "Azure VMs", "Blob Storage", "Azure Functions", "Prometheus",
			"Grafana", "Datadog", "Splunk",
		},
		"MOBILE_DEVELOPMENT": {
			"Swift", "SwiftUI", "Objective-C", "Kotlin", "Java", "React Native", "Flutter", "Xamarin",
			"Android SDK", "iOS SDK",
		},
		"ARCHITECTURE_DESIGN": {
			"Microservices", "REST API", "GraphQL", "gRPC", "Agile", "Scrum", "Kanban", "Waterfall",
			"Design Patterns", "SOLID", "TDD", "BDD", "Domain-Driven Design", "DDD", "SOA",
		},
		"DESIGN_UI_UX": {
			"Figma", "Sketch", "Adobe XD", "InVision", "Zeplin", "User Interface Design", "UI",
			"User Experience Design", "UX", "Wireframing", "Prototyping", "User Research",
		},
		"TESTING_QA": {
			"Selenium", "JUnit", "TestNG", "PyTest", "Cypress", "Jest", "Mocha", "Chai", "Postman",
			"SoapUI", "JMeter", "Quality Assurance", "QA", "Automated Testing", "Manual Testing",
			"Performance Testing", "End-to-End Testing", "Unit Testing", "Integration Testing",
		},
		"CYBER_SECURITY": {
			"Cybersecurity", "Network Security", "Penetration Testing", "Ethical Hacking", "SIEM",
			"Vulnerability Assessment", "Encryption", "Cryptography", "OWASP", "Wireshark",
			"Metasploit", "Burp Suite", "Nmap", "Firewalls",
		},
		"BUSINESS_TOOLS": {
			"Microsoft Office Suite", "MS Office", "Microsoft Excel", "Microsoft Word", "PowerPoint",
			"Google Workspace", "Salesforce", "SAP", "SharePoint",
		},
		"PROJECT_MANAGEMENT_TOOLS": {
			"Jira", "Confluence", "Trello", "Asana", "Slack", "Monday.com", "ClickUp", "Microsoft Project",
		},
		SoftSkillCategory: {
			"Leadership", "Teamwork", "Collaboration", "Communication", "Problem Solving",
			"Creativity", "Adaptability", "Time Management", "Critical Thinking", "Detail-oriented",
			"Emotional Intelligence", "Mentorship", "Public Speaking", "Negotiation",
			"Conflict Resolution", "Stakeholder Management", "Client Relations", "Active Listening",
			"Interpersonal Skills", "Strategic Thinking",
		},
	}
}
