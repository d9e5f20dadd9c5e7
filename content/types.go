// Package content holds the portfolio records and the hard-coded data the API serves.
package content

// Profile is the site owner's banner and contact card.
type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Quote    string `json:"quote"`
	Photo    string `json:"photo"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Bio      string `json:"bio"`
}

// Skill is one card in the skills grid. Level is a 0-100 proficiency that is
// not range-checked.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	Image    string `json:"image,omitempty"`
	Level    int    `json:"level"`
}

// Project is a showcase entry. Featured splits the display into two groups.
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Demo         string   `json:"demo"`
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
}

// Blog links to an externally hosted article.
type Blog struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Excerpt string   `json:"excerpt"`
	Date    string   `json:"date"`
	URL     string   `json:"url"`
	Tags    []string `json:"tags"`
}

// ResumeData is the structured résumé. Skills is a pointer so a missing block
// can be told apart from an empty one; Projects is nil when the source has no
// projects array.
type ResumeData struct {
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Email        string          `json:"email"`
	Phone        string          `json:"phone"`
	Location     string          `json:"location"`
	LinkedIn     string          `json:"linkedin"`
	Summary      string          `json:"summary"`
	Skills       *ResumeSkills   `json:"skills,omitempty"`
	Experience   []Experience    `json:"experience"`
	Education    []Education     `json:"education"`
	Certificates []Certificate   `json:"certificates,omitempty"`
	Projects     []ResumeProject `json:"projects,omitempty"`
}

// ResumeSkills groups skill names by the four fixed résumé categories.
type ResumeSkills struct {
	Frontend  []string `json:"frontend"`
	Backend   []string `json:"backend"`
	Databases []string `json:"databases"`
	Tools     []string `json:"tools"`
}

type Experience struct {
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Period       string   `json:"period"`
	Achievements []string `json:"achievements"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Period      string `json:"period"`
}

type Certificate struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

// ResumeProject is a project listed inside a résumé document. Every field is
// optional; nil means the document did not set it.
type ResumeProject struct {
	ID           *string  `json:"id,omitempty"`
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Technologies []string `json:"technologies,omitempty"`
	GitHub       *string  `json:"github,omitempty"`
	Demo         *string  `json:"demo,omitempty"`
	Image        *string  `json:"image,omitempty"`
	Featured     *bool    `json:"featured,omitempty"`
}

// ContactMessage is a contact-form submission. It is never stored.
type ContactMessage struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}
