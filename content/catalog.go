package content

import "errors"

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("content: not found")

// Catalog is a read-only set of portfolio records. It is safe for concurrent
// use because nothing mutates it after construction; accessors hand out copies
// of the slices so callers cannot reach back into it.
type Catalog struct {
	profile  Profile
	skills   []Skill
	projects []Project
	blogs    []Blog
	resume   ResumeData
	latex    string
}

// NewCatalog builds a Catalog from the given records.
func NewCatalog(profile Profile, skills []Skill, projects []Project, blogs []Blog, resume ResumeData, latex string) *Catalog {
	return &Catalog{
		profile:  profile,
		skills:   skills,
		projects: projects,
		blogs:    blogs,
		resume:   resume,
		latex:    latex,
	}
}

// Default returns the catalog holding the site's built-in data.
func Default() *Catalog {
	return NewCatalog(profileData, skillsData, projectsData, blogsData, resumeData, resumeLatex)
}

func (c *Catalog) Profile() Profile {
	return c.profile
}

func (c *Catalog) Skills() []Skill {
	return append([]Skill{}, c.skills...)
}

func (c *Catalog) Projects() []Project {
	return append([]Project{}, c.projects...)
}

// Project returns the project with the given id.
func (c *Catalog) Project(id string) (Project, error) {
	for _, p := range c.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrNotFound
}

func (c *Catalog) Blogs() []Blog {
	return append([]Blog{}, c.blogs...)
}

func (c *Catalog) Resume() ResumeData {
	return c.resume
}

// ResumeLatex returns the LaTeX source of the printable résumé.
func (c *Catalog) ResumeLatex() string {
	return c.latex
}
