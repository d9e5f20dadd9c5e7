package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"github.com/eringen/portfolio/content"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return buf.String()
}

func TestGroupSkillsKeepsFirstAppearanceOrder(t *testing.T) {
	skills := []content.Skill{
		{ID: "1", Category: "Backend"},
		{ID: "2", Category: "Frontend"},
		{ID: "3", Category: "Backend"},
	}
	groups := GroupSkills(skills)
	if len(groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(groups))
	}
	if groups[0].Category != "Backend" || len(groups[0].Skills) != 2 {
		t.Errorf("first group = %+v", groups[0])
	}
	if groups[1].Category != "Frontend" || groups[1].Skills[0].ID != "2" {
		t.Errorf("second group = %+v", groups[1])
	}
}

func TestPartitionProjects(t *testing.T) {
	featured, other := PartitionProjects([]content.Project{
		{ID: "a", Featured: true},
		{ID: "b"},
		{ID: "c", Featured: true},
	})
	if len(featured) != 2 || featured[0].ID != "a" || featured[1].ID != "c" {
		t.Errorf("featured = %+v", featured)
	}
	if len(other) != 1 || other[0].ID != "b" {
		t.Errorf("other = %+v", other)
	}
}

func TestExternalURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"linkedin.com/in/x", "https://linkedin.com/in/x"},
		{"https://example.com", "https://example.com"},
		{"", ""},
		{"/local", "/local"},
	}
	for _, tt := range tests {
		if got := ExternalURL(tt.input); got != tt.expected {
			t.Errorf("ExternalURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestResumeFilename(t *testing.T) {
	if got := ResumeFilename("John  Doe", "json"); got != "John_Doe_Resume.json" {
		t.Errorf("ResumeFilename = %q", got)
	}
}

func testPage() PageData {
	c := content.Default()
	resume := c.Resume()
	return PageData{
		Site:     Site{Name: "Site", URL: "https://example.com", Year: 2026},
		Profile:  c.Profile(),
		Skills:   c.Skills(),
		Projects: c.Projects()[:2],
		Resume:   &resume,
		CSRF:     "tok",
	}
}

func TestPageRendersAllSections(t *testing.T) {
	html := render(t, Page(testPage()))
	for _, want := range []string{
		`id="home"`, `id="skills"`, `id="projects"`, `id="resume"`, `id="contact"`,
		`Technical Skills`, `Featured Work`, `id="resume-content"`,
		`name="_csrf" value="tok"`, `action="/contact/"`, `&copy; 2026`,
		`/public/app.js`, `application/ld+json`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestPageWithoutResumeShowsEmpty(t *testing.T) {
	p := testPage()
	p.Resume = nil
	html := render(t, Page(p))
	if !strings.Contains(html, `data-empty="resume"`) {
		t.Error("expected the empty résumé placeholder")
	}
	if strings.Contains(html, `id="resume-content"`) {
		t.Error("did not expect the résumé preview")
	}
}

func TestPageBannerFallsBackToPhoto(t *testing.T) {
	p := testPage()
	html := render(t, Page(p))
	if !strings.Contains(html, `src="`+p.Profile.Photo+`"`) {
		t.Errorf("expected banner to use the profile photo %q", p.Profile.Photo)
	}
	p.Media.Banner = "/media/banner.jpg"
	html = render(t, Page(p))
	if !strings.Contains(html, `src="/media/banner.jpg"`) {
		t.Error("expected banner to use the resolved media")
	}
}

func TestProjectsPartitioned(t *testing.T) {
	html := render(t, Projects([]content.Project{
		{ID: "a", Title: "A", Featured: true, GitHub: "#", Demo: "#"},
		{ID: "b", Title: "B", Technologies: []string{"1", "2", "3", "4"}, GitHub: "#", Demo: "#"},
	}))
	if !strings.Contains(html, "Featured Work") || !strings.Contains(html, "Other Projects") {
		t.Error("expected both project groups")
	}
	if strings.Contains(html, `<span class="tag">4</span>`) {
		t.Error("other projects should show at most three technologies")
	}
}

func TestProjectsUnsafeLinks(t *testing.T) {
	html := render(t, Projects([]content.Project{
		{ID: "a", Title: "A", Featured: true, GitHub: "javascript:alert(1)", Demo: "https://example.com"},
	}))
	if strings.Contains(html, "javascript:") {
		t.Error("unsafe URL rendered")
	}
	if !strings.Contains(html, `href="https://example.com"`) {
		t.Error("expected the demo link")
	}
	if !strings.Contains(html, `href="`+string(templ.FailedSanitizationURL)+`"`) {
		t.Error("expected the unsafe link to be replaced")
	}
}

func TestSkillMeterWidth(t *testing.T) {
	html := render(t, Skills([]content.Skill{{ID: "go", Name: "Go", Category: "Backend", Level: 90}}))
	if !strings.Contains(html, `style="width:90%;"`) || !strings.Contains(html, "<span>90%</span>") {
		t.Errorf("unexpected skill meter: %s", html)
	}
}

func TestPageJSONLD(t *testing.T) {
	html := render(t, Page(testPage()))
	for _, want := range []string{`<script type="application/ld+json">`, `"@type":"WebSite"`, `"@type":"Person"`, `<script id="resume-data" type="application/json">`} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestResumeDownloadLinks(t *testing.T) {
	r := content.Default().Resume()
	html := render(t, Resume(r, Media{}))
	if strings.Contains(html, ">PDF<") || strings.Contains(html, ">DOC<") {
		t.Error("no document links expected without resolved files")
	}
	html = render(t, Resume(r, Media{ResumePDF: "/public/cv.pdf", ResumeDoc: "/public/cv.docx"}))
	if !strings.Contains(html, `href="/public/cv.pdf"`) || !strings.Contains(html, `href="/public/cv.docx"`) {
		t.Error("expected document links")
	}
}

func TestResumeDataScriptIsEscaped(t *testing.T) {
	r := content.ResumeData{Name: "</script><b>x"}
	html := render(t, Resume(r, Media{}))
	if strings.Contains(html, "</script><b>") {
		t.Error("résumé JSON was not escaped")
	}
}

func TestContactFlash(t *testing.T) {
	html := render(t, Contact(content.Profile{}, "", "", &Flash{Success: true, Message: "Sent"}, ""))
	if !strings.Contains(html, "flash-success") || !strings.Contains(html, "data-autohide") {
		t.Error("expected an auto-hiding success flash")
	}
	html = render(t, Contact(content.Profile{}, "", "", &Flash{Message: "<bad>"}, ""))
	if !strings.Contains(html, "flash-error") || !strings.Contains(html, "&lt;bad&gt;") {
		t.Error("expected an escaped error flash")
	}
	if !strings.Contains(html, "email@example.com") || !strings.Contains(html, "N/A") {
		t.Error("expected placeholder contact details")
	}
}

func TestContactRefillsRejectedForm(t *testing.T) {
	form := content.ContactMessage{Name: "<Ada>", Email: "ada@", Subject: "Hi", Message: "Hello & bye"}
	html := render(t, Contact(content.Profile{}, "", "", &Flash{Message: "Invalid email format", Form: form}, ""))
	for _, want := range []string{`value="&lt;Ada&gt;"`, `value="ada@"`, `value="Hi"`, `>Hello &amp; bye</textarea>`} {
		if !strings.Contains(html, want) {
			t.Errorf("form missing %s", want)
		}
	}

	html = render(t, Contact(content.Profile{}, "", "", &Flash{Success: true, Message: "Sent", Form: form}, ""))
	if strings.Contains(html, "Ada") || strings.Contains(html, "Hello") {
		t.Error("a delivered message should not be filled back in")
	}
}

func TestContactLinksAreSanitized(t *testing.T) {
	html := render(t, Contact(content.Profile{Email: "me@example.com"}, "javascript:alert(1)", "", nil, ""))
	if !strings.Contains(html, `href="mailto:me@example.com"`) {
		t.Error("expected the mailto link")
	}
	if strings.Contains(html, "javascript:") {
		t.Error("unsafe LinkedIn URL rendered")
	}
}

func TestLoadErrorHasRetry(t *testing.T) {
	html := render(t, LoadError(Site{Name: "Site"}))
	if !strings.Contains(html, "Error loading portfolio") || !strings.Contains(html, ">Retry</a>") {
		t.Errorf("unexpected load error page: %s", html)
	}
}

func TestNavEscapesName(t *testing.T) {
	html := render(t, Nav("<x>"))
	if !strings.Contains(html, "&lt;x&gt;") {
		t.Error("name not escaped")
	}
	if !strings.Contains(render(t, Nav("")), "Portfolio") {
		t.Error("expected default brand")
	}
}
