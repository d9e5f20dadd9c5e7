package loader

import "github.com/eringen/portfolio/content"

// skillMeta is the display metadata attached to a résumé-derived skill.
type skillMeta struct {
	Image string
	Level int
}

// defaultSkillLevel is assigned to skill names missing from skillCatalog.
const defaultSkillLevel = 85

const devicon = "https://cdn.jsdelivr.net/gh/devicons/devicon/icons/"

// skillCatalog maps résumé skill names onto an icon image and proficiency.
var skillCatalog = map[string]skillMeta{
	"React JS":     {Image: devicon + "react/react-original.svg", Level: 90},
	"JavaScript":   {Image: devicon + "javascript/javascript-original.svg", Level: 90},
	"TypeScript":   {Image: devicon + "typescript/typescript-original.svg", Level: 75},
	"HTML":         {Image: devicon + "html5/html5-original.svg", Level: 95},
	"CSS":          {Image: devicon + "css3/css3-original.svg", Level: 95},
	"Tailwind CSS": {Image: devicon + "tailwindcss/tailwindcss-original.svg", Level: 85},
	"Bootstrap":    {Image: devicon + "bootstrap/bootstrap-original.svg", Level: 75},
	"Canva":        {Image: devicon + "canva/canva-original.svg", Level: 85},
	"Node JS":      {Image: devicon + "nodejs/nodejs-original.svg", Level: 70},
	"Express.js":   {Image: devicon + "express/express-original.svg", Level: 70},
	"PHP":          {Image: devicon + "php/php-original.svg", Level: 70},
	"Laravel":      {Image: devicon + "laravel/laravel-original.svg", Level: 65},
	"MongoDB":      {Image: devicon + "mongodb/mongodb-original.svg", Level: 80},
	"Git":          {Image: devicon + "git/git-original.svg", Level: 85},
	"GitHub":       {Image: devicon + "github/github-original.svg", Level: 85},
	"C++":          {Image: devicon + "cplusplus/cplusplus-original.svg", Level: 90},
	"Python":       {Image: devicon + "python/python-original.svg", Level: 85},
}

// skillCategory is one of the four résumé skill groups, in display order.
type skillCategory struct {
	Label string
	Icon  string
	Names func(s *content.ResumeSkills) []string
}

var skillCategories = []skillCategory{
	{Label: "Frontend", Icon: "💻", Names: func(s *content.ResumeSkills) []string { return s.Frontend }},
	{Label: "Backend", Icon: "🧩", Names: func(s *content.ResumeSkills) []string { return s.Backend }},
	{Label: "Databases", Icon: "🗄️", Names: func(s *content.ResumeSkills) []string { return s.Databases }},
	{Label: "Tools", Icon: "🛠️", Names: func(s *content.ResumeSkills) []string { return s.Tools }},
}
