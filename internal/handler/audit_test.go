package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
)

func TestAuditHandler_GetByMinDensity(t *testing.T) {
	handler := NewAuditHandler(repository.NewImageAuditRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/image-audits/density/0.25", nil)
	req.SetPathValue("minScore", "0.25")
	rr := httptest.NewRecorder()
	handler.GetByMinDensity(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var audits []model.ImageAudit
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &audits))
	assert.Len(t, audits, 3)
}

func TestAuditHandler_GetByMinDensity_InvalidScore(t *testing.T) {
	handler := NewAuditHandler(repository.NewImageAuditRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/image-audits/density/very-dense", nil)
	req.SetPathValue("minScore", "very-dense")
	rr := httptest.NewRecorder()
	handler.GetByMinDensity(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid density score", decodeError(t, rr))
}

func TestAuditHandler_GetByFileName_NotFound(t *testing.T) {
	handler := NewAuditHandler(repository.NewImageAuditRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/image-audits/file/missing.jpeg", nil)
	req.SetPathValue("fileName", "missing.jpeg")
	rr := httptest.NewRecorder()
	handler.GetByFileName(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Image audit not found", decodeError(t, rr))
}
