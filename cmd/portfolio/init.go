package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/eringen/portfolio"
	"github.com/eringen/portfolio/scaffold"
)

func runInit(dir string) error {
	data := scaffold.Data{
		SiteName: portfolio.EnvOr("SITE_NAME", toTitle(filepath.Base(dir))),
		Owner:    portfolio.EnvOr("SITE_AUTHOR", "Your Name"),
		Email:    portfolio.EnvOr("SITE_EMAIL", "you@example.com"),
		URL:      portfolio.EnvOr("SITE_URL", "http://localhost:3000"),
	}

	fmt.Printf("Creating portfolio files in %s\n\n", dir)
	created, err := scaffold.Write(dir, data)
	for _, path := range created {
		fmt.Printf("  created %s\n", path)
	}
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Done! Next steps:")
	fmt.Println()
	fmt.Printf("  cp %s .env\n", filepath.Join(dir, ".env.example"))
	fmt.Printf("  edit %s to taste\n", filepath.Join(dir, "public", "resume.json"))
	fmt.Println("  portfolio serve")
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-site" -> "My Site", "mysite" -> "Mysite"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
