package portfolio

import (
	"encoding/xml"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// sitemapSections are the home page anchors listed after the page itself.
var sitemapSections = []string{"skills", "projects", "resume", "contact"}

// renderSitemap lists the home page, its section anchors and whichever
// résumé documents are present in the static dir.
func (a *App) renderSitemap(c echo.Context) error {
	base := BuildURL(a.Config.URL)
	set := sitemapURLSet{XMLNS: sitemapNS, URLs: []sitemapURL{{Loc: base}}}
	for _, id := range sitemapSections {
		set.URLs = append(set.URLs, sitemapURL{Loc: sectionURL(a.Config.URL, id)})
	}

	m := a.resolveMedia(c)
	for _, doc := range []string{m.ResumePDF, m.ResumeDoc} {
		if doc == "" {
			continue
		}
		u := sitemapURL{Loc: base + strings.TrimPrefix(doc, "/")}
		if file, ok := a.files.Path(doc); ok {
			if fi, err := os.Stat(file); err == nil {
				u.LastMod = fi.ModTime().UTC().Format("2006-01-02")
			}
		}
		set.URLs = append(set.URLs, u)
	}

	out, err := xml.Marshal(set)
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}
