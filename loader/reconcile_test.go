package loader

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/eringen/portfolio/content"
)

const apiProfileJSON = `{"name":"API Name","title":"API Title","quote":"q","photo":"/p.png","email":"api@example.com","phone":"1","location":"here","bio":"api bio"}`

const apiSkillsJSON = `[{"id":"1","name":"Go","category":"Backend","icon":"x","level":70}]`

const apiProjectsJSON = `[
	{"id":"1","title":"One","description":"","technologies":[],"github":"","demo":"","image":"","featured":true},
	{"id":"2","title":"Two","description":"","technologies":[],"github":"","demo":"","image":"","featured":true},
	{"id":"3","title":"Three","description":"","technologies":[],"github":"","demo":"","image":"","featured":false}
]`

const apiResumeJSON = `{"name":"API Resume","skills":{"frontend":["HTML"],"backend":[],"databases":[],"tools":[]},"experience":[],"education":[]}`

func apiSources() Sources {
	return Sources{
		Profile:  json.RawMessage(apiProfileJSON),
		Skills:   json.RawMessage(apiSkillsJSON),
		Projects: json.RawMessage(apiProjectsJSON),
		Resume:   json.RawMessage(apiResumeJSON),
	}
}

func TestReconcileAPIOnly(t *testing.T) {
	p, err := Reconcile(apiSources(), "/photo.png")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if p.Profile.Name != "API Name" {
		t.Errorf("Profile.Name = %q, want %q", p.Profile.Name, "API Name")
	}
	if p.Resume == nil || p.Resume.Name != "API Resume" {
		t.Fatalf("Resume = %+v, want the API resume", p.Resume)
	}
	// The API resume has a skills block, so skills are derived from it.
	if len(p.Skills) != 1 || p.Skills[0].Name != "HTML" || p.Skills[0].Level != 95 {
		t.Errorf("Skills = %+v, want one derived HTML skill at level 95", p.Skills)
	}
	if len(p.Projects) != 2 {
		t.Errorf("Projects count = %d, want 2", len(p.Projects))
	}
}

func TestReconcileDerivedSkillFromOverride(t *testing.T) {
	src := apiSources()
	src.ResumeOverride = json.RawMessage(`{
		"name":"Override","title":"Dev","email":"o@example.com","phone":"2","location":"there","summary":"sum",
		"skills":{"frontend":["React JS"],"backend":[],"databases":[],"tools":[]},
		"experience":[],"education":[]
	}`)

	p, err := Reconcile(src, "/photo.png")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(p.Skills) != 1 {
		t.Fatalf("Skills count = %d, want 1: %+v", len(p.Skills), p.Skills)
	}
	s := p.Skills[0]
	if s.Category != "Frontend" {
		t.Errorf("Category = %q, want Frontend", s.Category)
	}
	if s.Level != 90 {
		t.Errorf("Level = %d, want 90", s.Level)
	}
	if s.ID != "Frontend-0-React JS" {
		t.Errorf("ID = %q, want %q", s.ID, "Frontend-0-React JS")
	}
	if s.Image == "" {
		t.Error("expected an icon image from the lookup table")
	}
}

func TestReconcileProfileFromOverride(t *testing.T) {
	src := apiSources()
	src.ResumeOverride = json.RawMessage(`{"name":"Override","title":"Dev","email":"o@example.com","phone":"2","location":"there","summary":"sum"}`)

	p, err := Reconcile(src, "/photo.png")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	want := content.Profile{
		Name:     "Override",
		Title:    "Dev",
		Quote:    "Turning ideas into reality through code.",
		Photo:    "/photo.png",
		Email:    "o@example.com",
		Phone:    "2",
		Location: "there",
		Bio:      "sum",
	}
	if p.Profile != want {
		t.Errorf("Profile = %+v, want %+v", p.Profile, want)
	}
	// The override fails the shape check, so the API resume stays canonical.
	if p.Resume == nil || p.Resume.Name != "API Resume" {
		t.Errorf("Resume = %+v, want the API resume", p.Resume)
	}
}

func TestReconcileOverrideWithMistypedFields(t *testing.T) {
	src := apiSources()
	src.ResumeOverride = json.RawMessage(`{
		"name":"Override","title":"Dev","phone":5551234,"summary":"sum",
		"skills":{"frontend":["React JS"],"backend":[],"databases":[],"tools":[]},
		"experience":[],"education":[],
		"projects":[{"title":"Typed","technologies":"Go, React"}]
	}`)

	p, err := Reconcile(src, "/photo.png")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if p.Profile.Name != "Override" || p.Profile.Phone != "" {
		t.Errorf("Profile = %+v, want the override profile with no phone", p.Profile)
	}
	if p.Resume == nil || p.Resume.Name != "Override" {
		t.Fatalf("Resume = %+v, want the override resume", p.Resume)
	}
	if len(p.Projects) != 1 || p.Projects[0].Title != "Typed" {
		t.Fatalf("Projects = %+v, want the override project", p.Projects)
	}
	if p.Projects[0].Technologies == nil || len(p.Projects[0].Technologies) != 0 {
		t.Errorf("Technologies = %#v, want empty", p.Projects[0].Technologies)
	}
}

func TestReconcileOverrideNotAnObject(t *testing.T) {
	src := apiSources()
	src.ResumeOverride = json.RawMessage(`["name"]`)

	p, err := Reconcile(src, "/photo.png")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if p.Profile.Name != "API Name" {
		t.Errorf("Profile.Name = %q, want the API profile", p.Profile.Name)
	}
}

func TestReconcileResumeProjectsDefaults(t *testing.T) {
	src := apiSources()
	src.ResumeOverride = json.RawMessage(`{
		"name":"Override",
		"skills":{"frontend":[],"backend":[],"databases":[],"tools":[]},
		"experience":[],"education":[],
		"projects":[{"title":"A"},{"title":"B","github":"https://github.com/b"},{"title":"C"}]
	}`)

	all := ProjectsFromResume(mustResume(t, src.ResumeOverride))
	if len(all) != 3 {
		t.Fatalf("ProjectsFromResume count = %d, want 3", len(all))
	}
	if !all[0].Featured || !all[1].Featured || all[2].Featured {
		t.Errorf("featured = %v %v %v, want true true false", all[0].Featured, all[1].Featured, all[2].Featured)
	}
	if all[0].ID != "resume-0" || all[2].ID != "resume-2" {
		t.Errorf("ids = %q, %q, want resume-0, resume-2", all[0].ID, all[2].ID)
	}
	if all[0].GitHub != "#" || all[0].Demo != "#" {
		t.Errorf("links = %q %q, want # #", all[0].GitHub, all[0].Demo)
	}
	if all[1].GitHub != "https://github.com/b" {
		t.Errorf("GitHub = %q, want explicit value kept", all[1].GitHub)
	}

	p, err := Reconcile(src, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(p.Projects) != 2 {
		t.Fatalf("Projects count = %d, want 2", len(p.Projects))
	}
	if p.Projects[0].Title != "A" || p.Projects[1].Title != "B" {
		t.Errorf("Projects = %+v, want A and B", p.Projects)
	}
}

func TestReconcileExplicitFeaturedKept(t *testing.T) {
	r := mustResume(t, json.RawMessage(`{"projects":[{"featured":false},{},{"featured":true}]}`))
	got := ProjectsFromResume(r)
	if got[0].Featured || !got[1].Featured || !got[2].Featured {
		t.Errorf("featured = %v %v %v, want false true true", got[0].Featured, got[1].Featured, got[2].Featured)
	}
	if got[1].Title != "Project 2" {
		t.Errorf("Title = %q, want %q", got[1].Title, "Project 2")
	}
}

func TestReconcileNoResumeAnywhere(t *testing.T) {
	src := apiSources()
	src.Resume = nil

	p, err := Reconcile(src, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if p.Resume != nil {
		t.Errorf("Resume = %+v, want nil", p.Resume)
	}
	if len(p.Skills) != 1 || p.Skills[0].Name != "Go" {
		t.Errorf("Skills = %+v, want the API skills", p.Skills)
	}
}

func TestReconcileSkillsOverride(t *testing.T) {
	src := apiSources()
	src.Resume = json.RawMessage(`null`)
	src.SkillsOverride = json.RawMessage(`[{"id":"a","name":"Rust","category":"Systems","icon":"r","level":50}]`)

	p, err := Reconcile(src, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(p.Skills) != 1 || p.Skills[0].Name != "Rust" {
		t.Errorf("Skills = %+v, want the override skills", p.Skills)
	}
}

func TestReconcileInvalidSkillsOverrideIgnored(t *testing.T) {
	src := apiSources()
	src.Resume = nil
	src.SkillsOverride = json.RawMessage(`[{"id":1,"name":"Rust","category":"Systems","level":50}]`)

	p, err := Reconcile(src, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(p.Skills) != 1 || p.Skills[0].Name != "Go" {
		t.Errorf("Skills = %+v, want the API skills", p.Skills)
	}
}

func TestReconcileProjectsOverride(t *testing.T) {
	src := apiSources()
	src.ProjectsOverride = json.RawMessage(`[{"id":"x","title":"From file","featured":true}]`)

	p, err := Reconcile(src, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(p.Projects) != 1 || p.Projects[0].Title != "From file" {
		t.Errorf("Projects = %+v, want the override projects", p.Projects)
	}
}

func TestReconcileProjectsOverrideNotArray(t *testing.T) {
	src := apiSources()
	src.ProjectsOverride = json.RawMessage(`{"projects":[]}`)

	p, err := Reconcile(src, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if len(p.Projects) != 2 || p.Projects[0].ID != "1" {
		t.Errorf("Projects = %+v, want the API projects", p.Projects)
	}
}

func TestReconcileEmptyFallbacks(t *testing.T) {
	p, err := Reconcile(Sources{Profile: json.RawMessage(apiProfileJSON)}, "")
	if err != nil {
		t.Fatalf("Reconcile failed: %v", err)
	}
	if p.Skills == nil || len(p.Skills) != 0 {
		t.Errorf("Skills = %#v, want empty non-nil", p.Skills)
	}
	if p.Projects == nil || len(p.Projects) != 0 {
		t.Errorf("Projects = %#v, want empty non-nil", p.Projects)
	}
}

func TestReconcileFailures(t *testing.T) {
	tests := []struct {
		name string
		src  Sources
	}{
		{"no profile", Sources{}},
		{"malformed profile", Sources{Profile: json.RawMessage(`{"name":`)}},
		{"malformed skills", Sources{Profile: json.RawMessage(apiProfileJSON), Skills: json.RawMessage(`{"not":"a list"}`)}},
	}
	for _, tt := range tests {
		_, err := Reconcile(tt.src, "")
		if !errors.Is(err, ErrLoad) {
			t.Errorf("%s: expected ErrLoad, got %v", tt.name, err)
		}
	}
}

func TestValidResume(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"name":"a","skills":{"frontend":[],"backend":[],"databases":[],"tools":[]},"experience":[],"education":[]}`, true},
		{`{"name":"a","skills":{"frontend":[],"backend":[],"databases":[]},"experience":[],"education":[]}`, false},
		{`{"name":1,"skills":{"frontend":[],"backend":[],"databases":[],"tools":[]},"experience":[],"education":[]}`, false},
		{`{"name":"a","skills":{"frontend":[],"backend":[],"databases":[],"tools":[]},"experience":{},"education":[]}`, false},
		{`{"name":"a","experience":[],"education":[]}`, false},
		{`[]`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		if got := ValidResume(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("ValidResume(%s) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestDeriveSkillsOrderAndDefaults(t *testing.T) {
	r := &content.ResumeData{Skills: &content.ResumeSkills{
		Frontend:  []string{"HTML"},
		Backend:   []string{"Go"},
		Databases: []string{"MongoDB"},
		Tools:     []string{"Git"},
	}}
	got := DeriveSkills(r)
	wantCats := []string{"Frontend", "Backend", "Databases", "Tools"}
	wantLevels := []int{95, 85, 80, 85}
	if len(got) != 4 {
		t.Fatalf("DeriveSkills count = %d, want 4", len(got))
	}
	for i, s := range got {
		if s.Category != wantCats[i] {
			t.Errorf("skill %d Category = %q, want %q", i, s.Category, wantCats[i])
		}
		if s.Level != wantLevels[i] {
			t.Errorf("skill %d Level = %d, want %d", i, s.Level, wantLevels[i])
		}
		if s.Icon == "" {
			t.Errorf("skill %d has no icon", i)
		}
	}
	if got[1].Image != "" {
		t.Errorf("unknown skill Image = %q, want empty", got[1].Image)
	}
}

func TestDeriveSkillsWithoutBlock(t *testing.T) {
	if got := DeriveSkills(&content.ResumeData{}); got != nil {
		t.Errorf("DeriveSkills = %+v, want nil", got)
	}
	if got := DeriveSkills(nil); got != nil {
		t.Errorf("DeriveSkills(nil) = %+v, want nil", got)
	}
}

func mustResume(t *testing.T, raw json.RawMessage) *content.ResumeData {
	t.Helper()
	var r content.ResumeData
	if err := json.Unmarshal(raw, &r); err != nil {
		t.Fatalf("decode resume: %v", err)
	}
	return &r
}
