package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

func TestGetCareerGuidance_FullResponse(t *testing.T) {
	env := newTestEnv(t)

	body := `{
		"field": "mba",
		"specialization": "marketing consultant",
		"experience_level": "fresh_graduate",
		"target_companies": ["ZS Associates"],
		"query_text": "How do I become a marketing consultant?"
	}`

	rec := env.request(http.MethodPost, "/api/career-guidance", body, env.guidance.GetCareerGuidance)
	requireStatus(t, rec, http.StatusOK)

	var response models.GuidanceResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	require.NotNil(t, response.Roadmap)
	assert.Equal(t, "marketing_consultant", response.Roadmap.Specialization)
	require.Len(t, response.MarketData, 1)
	assert.Equal(t, "ZS Associates", response.MarketData[0].Name)
	assert.LessOrEqual(t, len(response.Recommendations), 10)
}

func TestGetCareerGuidance_RejectsUnknownField(t *testing.T) {
	env := newTestEnv(t)

	body := `{"field": "quantum", "experience_level": "fresh_graduate", "query_text": "help"}`
	rec := env.request(http.MethodPost, "/api/career-guidance", body, env.guidance.GetCareerGuidance)

	requireStatus(t, rec, http.StatusBadRequest)
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Error)
}

func TestGetCareerGuidance_RequiresQueryText(t *testing.T) {
	env := newTestEnv(t)

	body := `{"field": "tech", "experience_level": "entry_level"}`
	rec := env.request(http.MethodPost, "/api/career-guidance", body, env.guidance.GetCareerGuidance)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetCareerGuidance_RejectsMalformedJSON(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodPost, "/api/career-guidance", `{"field": `, env.guidance.GetCareerGuidance)

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestGetCareerInsights(t *testing.T) {
	env := newTestEnv(t)

	rec := env.request(http.MethodGet, "/api/career-insights/tech", "", env.guidance.GetCareerInsights, "field", "tech")
	requireStatus(t, rec, http.StatusOK)

	var insights models.CareerInsights
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &insights))
	assert.Equal(t, "tech", insights.Field)
	assert.Len(t, insights.PopularCompanies, 10)
	assert.Len(t, insights.CommonRoles, 6)
}
