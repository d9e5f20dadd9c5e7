package content

var profileData = Profile{
	Name:     "Yash Shrivastav",
	Title:    "Full Stack Developer",
	Quote:    "Code is like humor. When you have to explain it, it's bad.",
	Photo:    "/public/yash-main-Image.png",
	Email:    "yash@example.com",
	Phone:    "+91 00000 00000",
	Location: "India",
	Bio:      "Passionate full-stack developer with expertise in modern web technologies.",
}

var skillsData = []Skill{
	{ID: "1", Name: "React", Category: "Frontend", Icon: "⚛️", Level: 95},
	{ID: "2", Name: "TypeScript", Category: "Frontend", Icon: "📘", Level: 80},
	{ID: "3", Name: "Node.js", Category: "Backend", Icon: "🟢", Level: 85},
	{ID: "4", Name: "Express", Category: "Backend", Icon: "🚀", Level: 80},
	{ID: "5", Name: "MongoDB", Category: "Database", Icon: "🍃", Level: 75},
	{ID: "6", Name: "PostgreSQL", Category: "Database", Icon: "🐘", Level: 70},
	{ID: "7", Name: "Three.js", Category: "3D Graphics", Icon: "🎨", Level: 65},
	{ID: "8", Name: "Docker", Category: "DevOps", Icon: "🐳", Level: 60},
}

var projectsData = []Project{
	{
		ID:           "1",
		Title:        "E-Commerce Platform",
		Description:  "A full-featured e-commerce platform with payment integration and inventory management.",
		Technologies: []string{"React", "Node.js", "MongoDB", "Stripe"},
		GitHub:       "https://github.com/johndoe/ecommerce",
		Demo:         "https://ecommerce-demo.com",
		Image:        "/public/projects/ecommerce.jpg",
		Featured:     true,
	},
	{
		ID:           "2",
		Title:        "Task Management App",
		Description:  "A collaborative task management application with real-time updates and team features.",
		Technologies: []string{"Vue.js", "Express", "PostgreSQL", "Socket.io"},
		GitHub:       "https://github.com/johndoe/taskmanager",
		Demo:         "https://taskmanager-demo.com",
		Image:        "/public/projects/taskmanager.jpg",
		Featured:     true,
	},
	{
		ID:           "3",
		Title:        "Weather Dashboard",
		Description:  "A beautiful weather dashboard with 3D visualizations and detailed forecasts.",
		Technologies: []string{"Three.js", "React", "Weather API", "Chart.js"},
		GitHub:       "https://github.com/johndoe/weather",
		Demo:         "https://weather-demo.com",
		Image:        "/public/projects/weather.jpg",
		Featured:     false,
	},
}

var blogsData = []Blog{
	{
		ID:      "1",
		Title:   "Building Scalable React Applications",
		Excerpt: "Best practices and patterns for building large-scale React applications.",
		Date:    "2024-01-15",
		URL:     "https://blog.example.com/scalable-react",
		Tags:    []string{"React", "Architecture", "Best Practices"},
	},
	{
		ID:      "2",
		Title:   "Understanding Three.js Fundamentals",
		Excerpt: "A comprehensive guide to getting started with 3D web development using Three.js.",
		Date:    "2024-02-01",
		URL:     "https://blog.example.com/threejs-fundamentals",
		Tags:    []string{"Three.js", "3D Graphics", "WebGL"},
	},
	{
		ID:      "3",
		Title:   "Modern Full-Stack Development",
		Excerpt: "Exploring the latest trends and technologies in full-stack development.",
		Date:    "2024-02-20",
		URL:     "https://blog.example.com/modern-fullstack",
		Tags:    []string{"Full-Stack", "Trends", "Technology"},
	},
}

var resumeData = ResumeData{
	Name:     "Yash Shrivastav",
	Title:    "Full Stack Developer",
	Email:    "john.doe@example.com",
	Phone:    "+1 (555) 123-4567",
	Location: "San Francisco, CA",
	LinkedIn: "linkedin.com/in/johndoe",
	Summary:  "Experienced full-stack developer with 5+ years of experience building scalable web applications. Specialized in React, Node.js, and modern web technologies.",
	Skills: &ResumeSkills{
		Frontend:  []string{"React", "TypeScript", "Vue.js", "HTML5", "CSS3", "Tailwind CSS"},
		Backend:   []string{"Node.js", "Express", "Python", "REST APIs"},
		Databases: []string{"MongoDB", "PostgreSQL", "Redis"},
		Tools:     []string{"Git", "Docker", "AWS", "CI/CD"},
	},
	Experience: []Experience{
		{
			Title:   "Senior Full-Stack Developer",
			Company: "ABC Tech Inc.",
			Period:  "January 2022 - Present",
			Achievements: []string{
				"Led development of customer-facing web applications",
				"Improved application performance by 40% through optimization",
				"Mentored junior developers and conducted code reviews",
			},
		},
		{
			Title:   "Full Stack Developer",
			Company: "XYZ Solutions",
			Period:  "June 2020 - December 2021",
			Achievements: []string{
				"Built and maintained multiple client projects",
				"Implemented RESTful APIs and microservices",
				"Collaborated with design team on UI/UX improvements",
			},
		},
	},
	Education: []Education{
		{
			Degree:      "Bachelor of Science in Computer Science",
			Institution: "University of Technology",
			Period:      "2016 - 2020",
		},
	},
}

const resumeLatex = `\documentclass[11pt,a4paper]{article}
\usepackage[utf8]{inputenc}
\usepackage{amsmath}
\usepackage{amsfonts}
\usepackage{amssymb}
\usepackage{graphicx}

\title{John Doe - Resume}
\author{John Doe}
\date{January 2024}

\begin{document}

\maketitle

\section*{Contact Information}
\begin{itemize}
    \item Email: john.doe@example.com
    \item Phone: +1 (555) 123-4567
    \item Location: San Francisco, CA
    \item LinkedIn: linkedin.com/in/johndoe
\end{itemize}

\section*{Professional Summary}
Experienced full-stack developer with 5+ years of experience building scalable web applications.
Specialized in React, Node.js, and modern web technologies.

\section*{Technical Skills}
\textbf{Frontend:} React, TypeScript, Vue.js, HTML5, CSS3, Tailwind CSS\\
\textbf{Backend:} Node.js, Express, Python, REST APIs\\
\textbf{Databases:} MongoDB, PostgreSQL, Redis\\
\textbf{Tools:} Git, Docker, AWS, CI/CD

\section*{Experience}
\textbf{Senior Full-Stack Developer} \\ ABC Tech Inc. \\ January 2022 - Present
\begin{itemize}
    \item Led development of customer-facing web applications
    \item Improved application performance by 40% through optimization
    \item Mentored junior developers and conducted code reviews
\end{itemize}

\textbf{Full-Stack Developer} \\ XYZ Solutions \\ June 2020 - December 2021
\begin{itemize}
    \item Built and maintained multiple client projects
    \item Implemented RESTful APIs and microservices
    \item Collaborated with design team on UI/UX improvements
\end{itemize}

\section*{Education}
\textbf{Bachelor of Science in Computer Science} \\ University of Technology \\ 2016 - 2020

\end{document}`
