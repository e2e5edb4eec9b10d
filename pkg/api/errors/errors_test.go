package errors

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rishi-nd08/career-guidance/pkg/models"
)

// newContext creates an echo.Context backed by an httptest.NewRecorder for the
// given HTTP method and path. It returns both the context and the recorder so
// callers can inspect the written response.
func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}

// parseBody is a small helper that unmarshals the recorder body into an
// ErrorResponse, failing the test on any JSON error.
func parseBody(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// captureLog redirects the standard logger to a buffer for the duration of fn
// and returns everything that was logged.
func captureLog(fn func()) string {
	var buf bytes.Buffer
	orig := log.Writer()
	log.SetOutput(&buf)
	defer log.SetOutput(orig)
	fn()
	return buf.String()
}

// ---------- ValidationError ----------

func TestValidationError_StatusCode(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/career-guidance")
	err := ValidationError(c, errors.New("field 'field' is required"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestValidationError_ResponseBody(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/career-guidance")
	_ = ValidationError(c, errors.New("field 'field' is required"))

	resp := parseBody(t, rec)
	assert.Equal(t, "validation_error", resp.Error)
	assert.Equal(t, "Invalid request data. Please check your input and try again.", resp.Message)
}

func TestValidationError_DoesNotLeakDetails(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/career-guidance")
	_ = ValidationError(c, errors.New("query_text missing for user 42"))

	assert.NotContains(t, rec.Body.String(), "user 42")
}

func TestValidationError_LogsActualError(t *testing.T) {
	c, _ := newContext(http.MethodPost, "/api/skills-gap")

	logged := captureLog(func() {
		_ = ValidationError(c, errors.New("target_role is required"))
	})

	assert.Contains(t, logged, "[VALIDATION ERROR]")
	assert.Contains(t, logged, "/api/skills-gap")
	assert.Contains(t, logged, "target_role is required")
}

// ---------- DatabaseError ----------

func TestDatabaseError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/market-data/Google")

	logged := captureLog(func() {
		_ = DatabaseError(c, errors.New("connection refused"))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := parseBody(t, rec)
	assert.Equal(t, "database_error", resp.Error)
	assert.NotContains(t, rec.Body.String(), "connection refused")
	assert.Contains(t, logged, "connection refused")
}

// ---------- InternalError ----------

func TestInternalError(t *testing.T) {
	c, rec := newContext(http.MethodPost, "/api/career-guidance")
	_ = InternalError(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := parseBody(t, rec)
	assert.Equal(t, "internal_error", resp.Error)
	assert.Equal(t, "An internal error occurred. Please try again later.", resp.Message)
}

// ---------- NotFoundError ----------

func TestNotFoundError(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/api/market-data/Nowhere")
	_ = NotFoundError(c, "company")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := parseBody(t, rec)
	assert.Equal(t, "not_found", resp.Error)
}
