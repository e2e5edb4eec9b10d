package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apierrors "github.com/rishi-nd08/career-guidance/pkg/api/errors"
	"github.com/rishi-nd08/career-guidance/pkg/guidance"
	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// GuidanceHandler handles career guidance queries
type GuidanceHandler struct {
	service   *guidance.Service
	validator *validator.Validate
}

// NewGuidanceHandler creates a new guidance handler
func NewGuidanceHandler(service *guidance.Service) *GuidanceHandler {
	return &GuidanceHandler{
		service:   service,
		validator: validator.New(),
	}
}

// GetCareerGuidance godoc
// @Summary Process a career guidance query
// @Description Build a personalized response with roadmap, market data, and recommendations
// @Tags Guidance
// @Accept json
// @Produce json
// @Param query body models.CareerQuery true "Career query"
// @Success 200 {object} models.GuidanceResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /api/career-guidance [post]
func (h *GuidanceHandler) GetCareerGuidance(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	var query models.CareerQuery
	if err := c.Bind(&query); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := h.validator.Struct(query); err != nil {
		return apierrors.ValidationError(c, err)
	}

	response, err := h.service.Handle(ctx, query)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, response)
}

// GetCareerInsights godoc
// @Summary Get market insights for a field
// @Description Field-level trends, layoffs, popular companies, and common roles
// @Tags Guidance
// @Produce json
// @Param field path string true "Career field"
// @Success 200 {object} models.CareerInsights
// @Router /api/career-insights/{field} [get]
func (h *GuidanceHandler) GetCareerInsights(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	field := c.Param("field")
	insights := h.service.Insights(ctx, field)

	return c.JSON(http.StatusOK, insights)
}
