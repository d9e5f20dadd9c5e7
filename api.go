package portfolio

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/eringen/portfolio/content"
)

const contactSuccessMessage = "Message sent successfully!"

func (a *App) registerAPI(g *echo.Group) {
	g.GET("/profile", a.handleProfile)
	g.GET("/skills", a.handleSkills)
	g.GET("/projects", a.handleProjects)
	g.GET("/projects/:id", a.handleProject)
	g.GET("/blogs", a.handleBlogs)
	g.GET("/resume-data", a.handleResumeData)
	g.GET("/resume", a.handleResumeLatex)
	g.GET("/health", handleHealth)
	g.POST("/contact", a.handleContact)
}

func jsonError(c echo.Context, code int, msg string) error {
	return c.JSON(code, map[string]string{"error": msg})
}

func (a *App) handleProfile(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Profile())
}

func (a *App) handleSkills(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Skills())
}

func (a *App) handleProjects(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Projects())
}

func (a *App) handleProject(c echo.Context) error {
	p, err := a.Catalog.Project(c.Param("id"))
	if errors.Is(err, content.ErrNotFound) {
		return jsonError(c, http.StatusNotFound, "Project not found")
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

func (a *App) handleBlogs(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Blogs())
}

func (a *App) handleResumeData(c echo.Context) error {
	return c.JSON(http.StatusOK, a.Catalog.Resume())
}

func (a *App) handleResumeLatex(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"latex": a.Catalog.ResumeLatex()})
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleContact validates a contact message and acknowledges it. The message
// is logged and then dropped; nothing is stored or sent.
func (a *App) handleContact(c echo.Context) error {
	var msg content.ContactMessage
	if err := c.Bind(&msg); err != nil {
		return jsonError(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := ValidateContact(msg); err != nil {
		return jsonError(c, http.StatusBadRequest, err.Error())
	}
	c.Logger().Infof("contact: from=%q email=%q subject=%q (%d bytes)", msg.Name, msg.Email, msg.Subject, len(msg.Message))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"message": contactSuccessMessage,
	})
}
