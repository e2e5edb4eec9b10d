package handlers

import (
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
)

const fallbackLanding = `<!DOCTYPE html>
<html>
<head><title>Career Guidance Agent</title></head>
<body>
<h1>🎓 Career Guidance Agent</h1>
<p>Your Personal Career Guidance Platform for PG Students</p>
<p>✅ Server is Running Successfully!</p>
</body>
</html>`

// SystemHandler serves the landing page and health check
type SystemHandler struct {
	templatePath string
	startedAt    time.Time
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(templatePath string) *SystemHandler {
	return &SystemHandler{
		templatePath: templatePath,
		startedAt:    time.Now(),
	}
}

// Root serves the web interface, falling back to a minimal page when
// the template file is missing
func (h *SystemHandler) Root(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Response().Header().Set("Pragma", "no-cache")
	c.Response().Header().Set("Expires", "0")

	content, err := os.ReadFile(h.templatePath)
	if err != nil {
		return c.HTML(http.StatusOK, fallbackLanding)
	}
	return c.HTML(http.StatusOK, string(content))
}

// Health reports service liveness and uptime
func (h *SystemHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "healthy",
		"service": "career-guidance",
		"uptime":  time.Since(h.startedAt).String(),
	})
}
