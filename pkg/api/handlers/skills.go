package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/rishi-nd08/career-guidance/pkg/api/errors"
	"github.com/rishi-nd08/career-guidance/pkg/metrics"
	"github.com/rishi-nd08/career-guidance/pkg/skills"
)

// SkillsHandler serves skill requirements and gap analysis
type SkillsHandler struct {
	service   *skills.Service
	metrics   *metrics.Metrics
	validator *validator.Validate
}

// NewSkillsHandler creates a new skills handler. m may be nil
func NewSkillsHandler(service *skills.Service, m *metrics.Metrics) *SkillsHandler {
	return &SkillsHandler{
		service:   service,
		metrics:   m,
		validator: validator.New(),
	}
}

// SkillsGapRequest is the payload for a skills gap analysis
type SkillsGapRequest struct {
	CurrentSkills []string `json:"current_skills" validate:"required"`
	TargetRole    string   `json:"target_role" validate:"required"`
}

// GetRoleSkills godoc
// @Summary Get skill requirements for a role
// @Description Role names are normalized; unknown roles get a generic requirement set
// @Tags Skills
// @Produce json
// @Param role path string true "Role name"
// @Success 200 {object} models.SkillRequirement
// @Router /api/skills/{role} [get]
func (h *SkillsHandler) GetRoleSkills(c echo.Context) error {
	role := c.Param("role")
	return c.JSON(http.StatusOK, h.service.Resolve(role))
}

// AnalyzeSkillsGap godoc
// @Summary Analyze the gap between current skills and a target role
// @Tags Skills
// @Accept json
// @Produce json
// @Param request body SkillsGapRequest true "Current skills and target role"
// @Success 200 {object} models.GapAnalysis
// @Failure 400 {object} models.ErrorResponse
// @Router /api/skills-gap [post]
func (h *SkillsHandler) AnalyzeSkillsGap(c echo.Context) error {
	var req SkillsGapRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	analysis := h.service.AnalyzeGap(req.CurrentSkills, req.TargetRole)
	if h.metrics != nil {
		h.metrics.RecordSkillsGapAnalysis()
	}

	return c.JSON(http.StatusOK, analysis)
}
