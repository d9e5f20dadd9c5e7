package views

//go:generate templ generate

import "github.com/eringen/portfolio/content"

// Site holds site-wide settings populated from environment variables.
// Every page receives it so nothing is hardcoded.
type Site struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
	Year        int    // copyright year in the footer
}

// Media holds the resolved optional files. Empty fields mean the file was
// not found and the element using it is left out.
type Media struct {
	Banner    string `json:"banner"`
	Contact   string `json:"contact"`
	ResumePDF string `json:"resumePdf"`
	ResumeDoc string `json:"resumeDoc"`
}

// Flash is a one-shot notice shown above the contact form. Form holds what
// the visitor sent when the message was not delivered, so the form can be
// filled in again.
type Flash struct {
	Success bool
	Message string
	Form    content.ContactMessage
}

// PageData is everything the home page renders.
type PageData struct {
	Site     Site
	Profile  content.Profile
	Skills   []content.Skill
	Projects []content.Project
	Resume   *content.ResumeData
	Media    Media
	Flash    *Flash
	CSRF     string
}

// SkillGroup is one category heading in the skills grid.
type SkillGroup struct {
	Category string
	Skills   []content.Skill
}
