package views

import (
	"net/url"
	"path"
	"strconv"
	"strings"

	"github.com/eringen/portfolio/content"
)

// buildURL joins path segments onto a base URL, ensuring a trailing slash.
func buildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// GroupSkills groups skills by category. Categories keep the order in which
// they first appear.
func GroupSkills(skills []content.Skill) []SkillGroup {
	var groups []SkillGroup
	index := make(map[string]int)
	for _, s := range skills {
		i, ok := index[s.Category]
		if !ok {
			i = len(groups)
			index[s.Category] = i
			groups = append(groups, SkillGroup{Category: s.Category})
		}
		groups[i].Skills = append(groups[i].Skills, s)
	}
	return groups
}

// PartitionProjects splits projects into featured and other, keeping order.
func PartitionProjects(projects []content.Project) (featured, other []content.Project) {
	for _, p := range projects {
		if p.Featured {
			featured = append(featured, p)
		} else {
			other = append(other, p)
		}
	}
	return featured, other
}

// ExternalURL adds an https scheme to bare host paths such as
// "linkedin.com/in/someone". Empty input stays empty.
func ExternalURL(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "://") || strings.HasPrefix(s, "/") || strings.HasPrefix(s, "#") || strings.HasPrefix(s, "mailto:") {
		return s
	}
	return "https://" + s
}

// ResumeFilename is the download name for the résumé JSON export.
func ResumeFilename(name, ext string) string {
	return strings.Join(strings.Fields(name), "_") + "_Resume." + ext
}

// PersonJsonLD produces a Schema.org Person JSON-LD block for the profile.
func PersonJsonLD(site Site, p content.Profile) map[string]any {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "Person",
		"name":     p.Name,
		"jobTitle": p.Title,
		"url":      buildURL(site.URL),
	}
	if p.Email != "" {
		data["email"] = "mailto:" + p.Email
	}
	if p.Location != "" {
		data["address"] = map[string]string{
			"@type":           "PostalAddress",
			"addressLocality": p.Location,
		}
	}
	return data
}

// WebsiteJsonLD produces a Schema.org WebSite JSON-LD block using site values.
func WebsiteJsonLD(site Site) map[string]any {
	data := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     site.Name,
		"url":      buildURL(site.URL),
	}
	if site.Description != "" {
		data["description"] = site.Description
	}
	if site.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  site.Author,
		}
	}
	return data
}

var navItems = []struct{ ID, Label string }{
	{"home", "Home"},
	{"skills", "Skills"},
	{"projects", "Projects"},
	{"resume", "Resume"},
	{"contact", "Contact"},
}

func brandName(name string) string {
	if name == "" {
		return "Portfolio"
	}
	return name
}

func pageTitle(p content.Profile) string {
	if p.Title == "" {
		return p.Name
	}
	return p.Name + " | " + p.Title
}

func pageDescription(p PageData) string {
	if p.Site.Description != "" {
		return p.Site.Description
	}
	return p.Profile.Bio
}

// bannerImage prefers the resolved banner media over the profile photo.
func bannerImage(p PageData) string {
	if p.Media.Banner != "" {
		return p.Media.Banner
	}
	return p.Profile.Photo
}

func linkedIn(r *content.ResumeData) string {
	if r == nil {
		return ""
	}
	return ExternalURL(r.LinkedIn)
}

func meterWidth(level int) map[string]string {
	return map[string]string{"width": strconv.Itoa(level) + "%"}
}

// cardTechnologies caps compact project cards at three technologies.
func cardTechnologies(p content.Project, featured bool) []string {
	if !featured && len(p.Technologies) > 3 {
		return p.Technologies[:3]
	}
	return p.Technologies
}

func contactLines(r content.ResumeData) []string {
	var lines []string
	for _, v := range []string{r.Email, r.Phone, r.Location, r.LinkedIn} {
		if v != "" {
			lines = append(lines, v)
		}
	}
	return lines
}

type skillRow struct {
	Label string
	Names []string
}

func skillRows(s *content.ResumeSkills) []skillRow {
	return []skillRow{
		{"Frontend", s.Frontend},
		{"Backend", s.Backend},
		{"Databases", s.Databases},
		{"Tools", s.Tools},
	}
}

// refill is what the contact form shows in its fields: the rejected
// submission after a failure, otherwise nothing.
func refill(f *Flash) content.ContactMessage {
	if f == nil || f.Success {
		return content.ContactMessage{}
	}
	return f.Form
}
