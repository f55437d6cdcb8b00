package site

var (
	Intro = `Full-stack developer passionate about building tools that solve real problems.
	I enjoy working with modern technologies and contributing to open source projects.`

	AboutMe = []string{
		`I'm a full-stack developer with a passion for creating efficient, scalable solutions.
		My journey in software development started with curiosity about how things work under the hood.`,
		`I specialize in Python and TypeScript ecosystems, with experience ranging from CLI utilities
		to complex web applications. I believe in writing clean, maintainable code.`,
		`When I'm not coding, you'll find me contributing to open source projects, writing technical
		documentation, or experimenting with new frameworks and tools.`,
	}
)

type SkillGroup struct {
	Name  string
	Items []string
}

var Skills = []SkillGroup{
	{Name: "Languages", Items: []string{"Python", "TypeScript", "JavaScript", "Go", "Rust", "SQL"}},
	{Name: "Frontend", Items: []string{"React", "Next.js", "Vue.js", "Tailwind CSS", "HTML5", "CSS3"}},
	{Name: "Backend", Items: []string{"Node.js", "FastAPI", "Django", "Express", "PostgreSQL", "Redis"}},
	{Name: "Tools", Items: []string{"Git", "Docker", "AWS", "Vercel", "Linux", "VS Code"}},
	{Name: "Practices", Items: []string{"REST APIs", "GraphQL", "Microservices", "CI/CD", "Testing", "Agile"}},
}

type Role struct {
	Period      string
	Title       string
	Company     string
	Description string
}

var Experience = []Role{
	{
		Period:      "2023 - Present",
		Title:       "Senior Full-Stack Developer",
		Company:     "Tech Innovations Inc.",
		Description: "Leading development of scalable web applications. Mentoring junior developers and architecting cloud-native solutions.",
	},
	{
		Period:      "2021 - 2023",
		Title:       "Full-Stack Developer",
		Company:     "Digital Solutions Co.",
		Description: "Built and maintained client applications using React, Node.js, and Python. Improved application performance by 40% through optimization.",
	},
	{
		Period:      "2020 - 2021",
		Title:       "Frontend Developer",
		Company:     "StartupXYZ",
		Description: "Developed responsive web applications and worked with design teams on intuitive user experiences.",
	},
}

// Tool is an entry on the uses page.
type Tool struct {
	Name        string
	Description string
	Category    string
}

var Hardware = []Tool{
	{Name: `MacBook Pro 16" M2 Max`, Description: "Primary development machine with 32GB RAM"},
	{Name: `Dell UltraSharp 27" 4K`, Description: "External monitor for extended workspace"},
	{Name: "Keychron K8 Mechanical", Description: "Wireless mechanical keyboard with brown switches"},
	{Name: "Logitech MX Master 3", Description: "Wireless mouse with precision scrolling"},
	{Name: "Sony WH-1000XM4", Description: "Noise-cancelling headphones for focus"},
}

var Software = []Tool{
	{Name: "VS Code", Description: "Primary code editor with Vim extension", Category: "Editor"},
	{Name: "iTerm2 + Zsh", Description: "Terminal with Oh My Zsh and custom theme", Category: "Terminal"},
	{Name: "Docker Desktop", Description: "Containerization for development environments", Category: "DevOps"},
	{Name: "Postman", Description: "API development and testing", Category: "API"},
	{Name: "Figma", Description: "Design collaboration and prototyping", Category: "Design"},
	{Name: "Notion", Description: "Note-taking and project management", Category: "Productivity"},
}
