package loader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/eringen/portfolio/content"
)

// maxProjects caps the project list whatever its source.
const maxProjects = 2

// overrideQuote is the quote given to a profile synthesized from a résumé.
const overrideQuote = "Turning ideas into reality through code."

// Sources holds the raw payloads gathered by Load. A nil field means the
// source was absent.
type Sources struct {
	Profile  json.RawMessage
	Skills   json.RawMessage
	Projects json.RawMessage
	Resume   json.RawMessage

	ProjectsOverride json.RawMessage
	ResumeOverride   json.RawMessage
	SkillsOverride   json.RawMessage
}

// Portfolio is the merged view-model handed to the page.
type Portfolio struct {
	Profile  content.Profile     `json:"profile"`
	Skills   []content.Skill     `json:"skills"`
	Projects []content.Project   `json:"projects"`
	Resume   *content.ResumeData `json:"resume"`
}

// Reconcile merges API payloads with the override files. photo is the photo
// path given to a profile synthesized from the override résumé. Undecodable
// API payloads and a missing profile fail with ErrLoad; broken override files
// are treated as absent.
func Reconcile(src Sources, photo string) (*Portfolio, error) {
	var (
		apiProfile  *content.Profile
		apiSkills   []content.Skill
		apiProjects []content.Project
		apiResume   *content.ResumeData
	)
	if err := decodeAPI(src.Profile, &apiProfile); err != nil {
		return nil, fmt.Errorf("%w: profile: %v", ErrLoad, err)
	}
	if err := decodeAPI(src.Skills, &apiSkills); err != nil {
		return nil, fmt.Errorf("%w: skills: %v", ErrLoad, err)
	}
	if err := decodeAPI(src.Projects, &apiProjects); err != nil {
		return nil, fmt.Errorf("%w: projects: %v", ErrLoad, err)
	}
	if err := decodeAPI(src.Resume, &apiResume); err != nil {
		return nil, fmt.Errorf("%w: resume: %v", ErrLoad, err)
	}

	override := decodeOverrideResume(src.ResumeOverride)

	resume := apiResume
	if override != nil && ValidResume(src.ResumeOverride) {
		resume = override
	}

	var profile *content.Profile
	if override != nil {
		p := ProfileFromResume(*override, photo)
		profile = &p
	} else {
		profile = apiProfile
	}
	if profile == nil {
		return nil, fmt.Errorf("%w: no profile", ErrLoad)
	}

	skills := DeriveSkills(resume)
	if skills == nil {
		var fromFile []content.Skill
		switch {
		case ValidSkills(src.SkillsOverride) && json.Unmarshal(src.SkillsOverride, &fromFile) == nil:
			skills = fromFile
		case apiSkills != nil:
			skills = apiSkills
		default:
			skills = []content.Skill{}
		}
	}

	projects := ProjectsFromResume(resume)
	if projects == nil {
		var fromFile []content.Project
		switch {
		case isArray(src.ProjectsOverride) && json.Unmarshal(src.ProjectsOverride, &fromFile) == nil:
			projects = fromFile
		case apiProjects != nil:
			projects = apiProjects
		default:
			projects = []content.Project{}
		}
	}
	if len(projects) > maxProjects {
		projects = projects[:maxProjects]
	}

	return &Portfolio{
		Profile:  *profile,
		Skills:   skills,
		Projects: projects,
		Resume:   resume,
	}, nil
}

// ProfileFromResume synthesizes a profile from résumé contact fields.
func ProfileFromResume(r content.ResumeData, photo string) content.Profile {
	return content.Profile{
		Name:     r.Name,
		Title:    r.Title,
		Quote:    overrideQuote,
		Photo:    photo,
		Email:    r.Email,
		Phone:    r.Phone,
		Location: r.Location,
		Bio:      r.Summary,
	}
}

// DeriveSkills flattens the résumé skill groups into skill cards, in the
// order frontend, backend, databases, tools. It returns nil when the résumé
// has no skills block.
func DeriveSkills(r *content.ResumeData) []content.Skill {
	if r == nil || r.Skills == nil {
		return nil
	}
	out := []content.Skill{}
	for _, cat := range skillCategories {
		for i, name := range cat.Names(r.Skills) {
			meta, ok := skillCatalog[name]
			if !ok {
				meta = skillMeta{Level: defaultSkillLevel}
			}
			out = append(out, content.Skill{
				ID:       cat.Label + "-" + strconv.Itoa(i) + "-" + name,
				Name:     name,
				Category: cat.Label,
				Icon:     cat.Icon,
				Image:    meta.Image,
				Level:    meta.Level,
			})
		}
	}
	return out
}

// ProjectsFromResume maps résumé projects onto the Project shape, filling
// unset fields. The first two entries default to featured. It returns nil
// when the résumé has no projects array.
func ProjectsFromResume(r *content.ResumeData) []content.Project {
	if r == nil || r.Projects == nil {
		return nil
	}
	out := make([]content.Project, 0, len(r.Projects))
	for i, p := range r.Projects {
		technologies := p.Technologies
		if technologies == nil {
			technologies = []string{}
		}
		out = append(out, content.Project{
			ID:           stringOr(p.ID, "resume-"+strconv.Itoa(i)),
			Title:        stringOr(p.Title, "Project "+strconv.Itoa(i+1)),
			Description:  stringOr(p.Description, ""),
			Technologies: technologies,
			GitHub:       stringOr(p.GitHub, "#"),
			Demo:         stringOr(p.Demo, "#"),
			Image:        stringOr(p.Image, ""),
			Featured:     boolOr(p.Featured, i < 2),
		})
	}
	return out
}

// ValidResume reports whether raw looks like a complete résumé: a string
// name, a skills object with the four category arrays, and experience and
// education arrays.
func ValidResume(raw json.RawMessage) bool {
	var doc map[string]json.RawMessage
	if json.Unmarshal(raw, &doc) != nil || doc == nil {
		return false
	}
	if !isString(doc["name"]) || !isArray(doc["experience"]) || !isArray(doc["education"]) {
		return false
	}
	var skills map[string]json.RawMessage
	if json.Unmarshal(doc["skills"], &skills) != nil || skills == nil {
		return false
	}
	for _, key := range []string{"frontend", "backend", "databases", "tools"} {
		if !isArray(skills[key]) {
			return false
		}
	}
	return true
}

// ValidSkills reports whether raw is an array of skill objects with string
// id, name and category, a numeric level, and an image that is a string or
// missing.
func ValidSkills(raw json.RawMessage) bool {
	var items []map[string]json.RawMessage
	if !isArray(raw) || json.Unmarshal(raw, &items) != nil {
		return false
	}
	for _, s := range items {
		if s == nil || !isString(s["id"]) || !isString(s["name"]) || !isString(s["category"]) || !isNumber(s["level"]) {
			return false
		}
		if img, ok := s["image"]; ok && !isString(img) {
			return false
		}
	}
	return true
}

// decodeOverrideResume decodes the override résumé. Fields of the wrong type
// are left at their zero value instead of discarding the whole file; only a
// payload that is not a JSON object counts as absent.
func decodeOverrideResume(raw json.RawMessage) *content.ResumeData {
	if firstByte(raw) != '{' {
		return nil
	}
	var r content.ResumeData
	err := json.Unmarshal(raw, &r)
	var typeErr *json.UnmarshalTypeError
	if err != nil && !errors.As(err, &typeErr) {
		return nil
	}
	return &r
}

// decodeAPI decodes an API payload into dst. Absent and null payloads leave
// dst untouched.
func decodeAPI(raw json.RawMessage, dst any) error {
	if !present(raw) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

func present(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && !bytes.Equal(t, []byte("null"))
}

func firstByte(raw json.RawMessage) byte {
	t := bytes.TrimSpace(raw)
	if len(t) == 0 {
		return 0
	}
	return t[0]
}

func isArray(raw json.RawMessage) bool  { return firstByte(raw) == '[' }
func isString(raw json.RawMessage) bool { return firstByte(raw) == '"' }

func isNumber(raw json.RawMessage) bool {
	b := firstByte(raw)
	return b == '-' || (b >= '0' && b <= '9')
}

func stringOr(p *string, fallback string) string {
	if p == nil {
		return fallback
	}
	return *p
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
