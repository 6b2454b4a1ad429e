package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
	"github.com/evolverse/api/internal/service"
)

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body["error"]
}

func newSocietyHandler(t *testing.T, societiesCSV string) (*SocietyHandler, *repository.HiddenSocietyRepository) {
	t.Helper()
	dir := t.TempDir()
	if societiesCSV != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "societies.csv"), []byte(societiesCSV), 0o644))
	}
	societyRepo := repository.NewHiddenSocietyRepository()
	seedService := service.NewSeedService(service.SeedServiceConfig{
		DomainRepo:  repository.NewOverscaleDomainRepository(),
		SocietyRepo: societyRepo,
		AssetsDir:   dir,
		DomainsFile: "domains.csv",
		SocietyFile: "societies.csv",
	})
	return NewSocietyHandler(societyRepo, seedService), societyRepo
}

func TestSocietyHandler_List(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/hidden-societies", nil)
	rr := httptest.NewRecorder()
	handler.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var societies []model.HiddenSociety
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &societies))
	assert.Len(t, societies, 24)
}

func TestSocietyHandler_Get_NotFound(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodGet, "/api/hidden-societies/no-such-id", nil)
	req.SetPathValue("id", "no-such-id")
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Society not found", decodeError(t, rr))
}

func TestSocietyHandler_UpdateStatus_MissingStatus(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodPatch, "/api/hidden-societies/x/status", strings.NewReader(`{}`))
	req.SetPathValue("id", "x")
	rr := httptest.NewRecorder()
	handler.UpdateStatus(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Status is required", decodeError(t, rr))
}

func TestSocietyHandler_UpdateStatus_InvalidStatus(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodPatch, "/api/hidden-societies/x/status",
		strings.NewReader(`{"status":"Vaporized"}`))
	req.SetPathValue("id", "x")
	rr := httptest.NewRecorder()
	handler.UpdateStatus(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid status", decodeError(t, rr))
}

func TestSocietyHandler_UpdateStatus_UnknownSociety(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodPatch, "/api/hidden-societies/no-such-id/status",
		strings.NewReader(`{"status":"Active"}`))
	req.SetPathValue("id", "no-such-id")
	rr := httptest.NewRecorder()
	handler.UpdateStatus(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Society not found", decodeError(t, rr))
}

func TestSocietyHandler_UpdateStatus_Persists(t *testing.T) {
	handler, repo := newSocietyHandler(t, "")

	target, err := repo.GetByName(context.Background(), "Illuminati")
	require.NoError(t, err)
	require.NotNil(t, target)

	req := httptest.NewRequest(http.MethodPatch, "/api/hidden-societies/"+target.ID+"/status",
		strings.NewReader(`{"status":"Guarded"}`))
	req.SetPathValue("id", target.ID)
	rr := httptest.NewRecorder()
	handler.UpdateStatus(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var updated model.HiddenSociety
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
	assert.Equal(t, "Guarded", updated.Status)

	stored, err := repo.GetByID(req.Context(), target.ID)
	require.NoError(t, err)
	assert.Equal(t, "Guarded", stored.Status)
}

func TestSocietyHandler_Create_InvalidStatus(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/hidden-societies",
		strings.NewReader(`{"name":"New Order","status":"Made Up"}`))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid status", decodeError(t, rr))
}

func TestSocietyHandler_Seed(t *testing.T) {
	handler, repo := newSocietyHandler(t, "Name,Symbol,Status,Access Level\n"+
		"The Quiet Table,🪑,Dormant,High\n"+
		"Tiny\n"+
		"Order of Glass,🔮,Active,Medium\n")

	req := httptest.NewRequest(http.MethodPost, "/api/hidden-societies/seed", nil)
	rr := httptest.NewRecorder()
	handler.Seed(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp seedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Seeded 2 hidden societies", resp.Message)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 1, resp.Skipped)

	all, err := repo.GetAll(req.Context())
	require.NoError(t, err)
	assert.Len(t, all, 26)
}

func TestSocietyHandler_Seed_MissingFile(t *testing.T) {
	handler, _ := newSocietyHandler(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/hidden-societies/seed", nil)
	rr := httptest.NewRecorder()
	handler.Seed(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Failed to seed hidden societies", decodeError(t, rr))
}
