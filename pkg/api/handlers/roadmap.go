package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rishi-nd08/career-guidance/pkg/metrics"
	"github.com/rishi-nd08/career-guidance/pkg/roadmaps"
)

// RoadmapHandler serves roadmaps and the static career guides
type RoadmapHandler struct {
	service *roadmaps.Service
	metrics *metrics.Metrics
}

// NewRoadmapHandler creates a new roadmap handler. m may be nil
func NewRoadmapHandler(service *roadmaps.Service, m *metrics.Metrics) *RoadmapHandler {
	return &RoadmapHandler{service: service, metrics: m}
}

// GetRoadmap godoc
// @Summary Get a career roadmap
// @Description Roadmap for a field, optionally narrowed by specialization. Unsupported fields get a generic plan.
// @Tags Roadmaps
// @Produce json
// @Param field path string true "Career field"
// @Param specialization query string false "Specialization"
// @Success 200 {object} models.Roadmap
// @Router /api/roadmap/{field} [get]
func (h *RoadmapHandler) GetRoadmap(c echo.Context) error {
	field := c.Param("field")
	specialization := c.QueryParam("specialization")

	roadmap := h.service.BuildOrFallback(field, specialization)
	if h.metrics != nil {
		h.metrics.RecordRoadmapServed(roadmap.Field)
	}

	return c.JSON(http.StatusOK, roadmap)
}

// GetMarketingConsultantRoadmap godoc
// @Summary Get the detailed marketing consultant roadmap
// @Description Month-by-month plan for final year MBA students targeting marketing consulting
// @Tags Roadmaps
// @Produce json
// @Success 200 {object} roadmaps.MarketingRoadmapDetail
// @Router /api/marketing-consultant-roadmap [get]
func (h *RoadmapHandler) GetMarketingConsultantRoadmap(c echo.Context) error {
	return c.JSON(http.StatusOK, roadmaps.MarketingConsultantDetail())
}

// GetManagementConsultingGuide godoc
// @Summary Get the management consulting skills and resources guide
// @Tags Roadmaps
// @Produce json
// @Success 200 {object} roadmaps.ConsultingGuide
// @Router /api/management-consulting-guide [get]
func (h *RoadmapHandler) GetManagementConsultingGuide(c echo.Context) error {
	return c.JSON(http.StatusOK, roadmaps.ManagementConsultingGuide())
}
