package store

import "github.com/jojongai/portfolio/internal/catalog"

// Seed returns the default catalog.
func Seed() []catalog.Playlist {
	return []catalog.Playlist{
		{
			ID:             catalog.WorkPlaylistID,
			Title:          "Work Experience",
			Description:    "My professional journey through different companies",
			Category:       catalog.CategoryWork,
			ImageReference: "💼",
			Items: []catalog.Item{
				{
					ID:          "techcorp-song-id",
					Title:       "Software Engineer at TechCorp",
					Role:        "Software Engineer",
					Company:     "TechCorp",
					Artist:      "2022 - 2024",
					Duration:    "2 years",
					Description: "Led development of microservices architecture using Node.js and React",
					MediaPath:   "/audio/every_summertime.mp3",
					Accomplishments: []string{
						"Architected and implemented a scalable microservices system serving 1M+ daily active users",
						"Reduced API response time by 40% through database optimization and caching strategies",
						"Mentored a team of 3 junior developers, improving code quality and deployment frequency",
						"Led migration from monolithic architecture to microservices, reducing deployment time by 60%",
						"Implemented CI/CD pipelines that increased deployment frequency from weekly to daily",
					},
				},
				{
					ID:          "startupxyz-song-id",
					Title:       "Junior Developer at StartupXYZ",
					Role:        "Junior Developer",
					Company:     "StartupXYZ",
					Artist:      "2021 - 2022",
					Duration:    "1 year",
					Description: "Built full-stack web applications and learned agile development practices",
					MediaPath:   "/audio/startupxyz-experience.mp3",
					Accomplishments: []string{
						"Developed 5+ production features using React and Node.js",
						"Participated in daily standups and sprint planning sessions",
						"Fixed 50+ bugs and improved application performance",
						"Collaborated with designers to implement pixel-perfect UI components",
					},
				},
				{
					ID:          "bigtech-song-id",
					Title:       "Intern at BigTech Inc",
					Role:        "Intern",
					Company:     "BigTech Inc",
					Artist:      "2020 - 2021",
					Duration:    "6 months",
					Description: "Gained experience in Python, data analysis, and team collaboration",
					MediaPath:   "/audio/bigtech-intern-experience.mp3",
					Accomplishments: []string{
						"Analyzed large datasets using Python and pandas",
						"Created data visualizations and reports for stakeholders",
						"Participated in code reviews and learned best practices",
						"Contributed to internal tools and documentation",
					},
				},
			},
		},
		{
			ID:             catalog.ProjectsPlaylistID,
			Title:          "Personal Projects",
			Description:    "Side projects and creative coding experiments",
			Category:       catalog.CategoryProjects,
			ImageReference: "🚀",
			Items: []catalog.Item{
				{
					ID:          "portfolio-website-song-id",
					Title:       "Portfolio Website",
					Artist:      "React, Node.js",
					Duration:    "2 weeks",
					Description: "A Spotify-inspired portfolio website with modern design",
				},
				{
					ID:          "task-management-song-id",
					Title:       "Task Management App",
					Artist:      "Vue.js, Express",
					Duration:    "1 month",
					Description: "Full-stack application for team collaboration and project tracking",
				},
				{
					ID:          "weather-dashboard-song-id",
					Title:       "Weather Dashboard",
					Artist:      "JavaScript, APIs",
					Duration:    "1 week",
					Description: "Real-time weather data visualization with interactive charts",
				},
			},
		},
		{
			ID:             catalog.SkillsPlaylistID,
			Title:          "Skills & Technologies",
			Description:    "My technical skills and learning journey",
			Category:       catalog.CategorySkills,
			ImageReference: "⚡",
			Items: []catalog.Item{
				{
					ID:          "frontend-dev-song-id",
					Title:       "Frontend Development",
					Artist:      "React, Vue.js, TypeScript",
					Duration:    "3+ years",
					Description: "Building responsive and interactive user interfaces",
				},
				{
					ID:          "backend-dev-song-id",
					Title:       "Backend Development",
					Artist:      "Node.js, Python, Java",
					Duration:    "2+ years",
					Description: "Server-side development and API design",
				},
				{
					ID:          "database-mgmt-song-id",
					Title:       "Database Management",
					Artist:      "MongoDB, PostgreSQL",
					Duration:    "2+ years",
					Description: "Data modeling and database optimization",
				},
			},
		},
		{
			ID:             catalog.HobbiesPlaylistID,
			Title:          "Hobbies and Interests",
			Description:    "Things I enjoy doing in my free time and activities that keep me inspired and motivated.",
			Category:       catalog.CategoryHobbies,
			ImageReference: "🎯",
			Items: []catalog.Item{
				{ID: "photography", Name: "Photography", Category: "Creative", ImageReference: "📷",
					Description: "Capturing moments and exploring different perspectives through the lens."},
				{ID: "reading", Name: "Reading", Category: "Learning", ImageReference: "📚",
					Description: "Avid reader of technology books, science fiction, and personal development."},
				{ID: "hiking", Name: "Hiking & Nature", Category: "Outdoors", ImageReference: "⛰️",
					Description: "Exploring trails and spending time outdoors."},
				{ID: "cooking", Name: "Cooking", Category: "Creative", ImageReference: "👨‍🍳",
					Description: "Experimenting with new recipes and cuisines."},
				{ID: "gaming", Name: "Gaming", Category: "Games", ImageReference: "🎮",
					Description: "Strategy and puzzle games with good design and storytelling."},
				{ID: "learning-tech", Name: "Learning New Technologies", Category: "Learning", ImageReference: "💻",
					Description: "Exploring new frameworks, tools, and programming languages."},
			},
		},
	}
}
