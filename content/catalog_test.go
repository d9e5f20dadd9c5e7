package content

import (
	"errors"
	"testing"
)

func TestDefaultCatalogProjectLookup(t *testing.T) {
	c := Default()

	for _, p := range c.Projects() {
		got, err := c.Project(p.ID)
		if err != nil {
			t.Fatalf("Project(%q) failed: %v", p.ID, err)
		}
		if got.Title != p.Title {
			t.Errorf("Project(%q).Title = %q, want %q", p.ID, got.Title, p.Title)
		}
	}
}

func TestProjectNotFound(t *testing.T) {
	c := Default()

	_, err := c.Project("does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := Default()

	skills := c.Skills()
	skills[0].Name = "changed"
	if c.Skills()[0].Name == "changed" {
		t.Error("mutating the returned skills slice changed the catalog")
	}
}

func TestDefaultResumeHasAllSkillCategories(t *testing.T) {
	r := Default().Resume()
	if r.Skills == nil {
		t.Fatal("default resume should carry a skills block")
	}
	if len(r.Skills.Frontend) == 0 || len(r.Skills.Backend) == 0 || len(r.Skills.Databases) == 0 || len(r.Skills.Tools) == 0 {
		t.Errorf("skills = %+v, want every category populated", r.Skills)
	}
	if len(r.Experience) != 2 {
		t.Errorf("Experience count = %d, want 2", len(r.Experience))
	}
}

func TestDefaultCatalogCounts(t *testing.T) {
	c := Default()
	if n := len(c.Skills()); n != 8 {
		t.Errorf("Skills count = %d, want 8", n)
	}
	if n := len(c.Projects()); n != 3 {
		t.Errorf("Projects count = %d, want 3", n)
	}
	if n := len(c.Blogs()); n != 3 {
		t.Errorf("Blogs count = %d, want 3", n)
	}
	if c.ResumeLatex() == "" {
		t.Error("ResumeLatex should not be empty")
	}
}
