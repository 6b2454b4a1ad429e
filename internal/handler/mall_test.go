package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evolverse/api/internal/model"
	"github.com/evolverse/api/internal/repository"
)

func TestMallHandler_Create(t *testing.T) {
	handler := NewMallHandler(repository.NewMallNodeRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/mall-nodes", strings.NewReader(`{
		"name": "Evolverse Galleria",
		"cityName": "New Bleu City",
		"valuation": "1200000000000",
		"roles": ["Retail", "Ceremony"]
	}`))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created model.MallNode
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Evolverse Galleria", created.Name)
	assert.Nil(t, created.RetailSales)

	// Optional fields serialize as explicit nulls, not omitted keys.
	assert.Contains(t, rr.Body.String(), `"retailSales":null`)
}

func TestMallHandler_Create_MissingFields(t *testing.T) {
	handler := NewMallHandler(repository.NewMallNodeRepository())

	cases := []struct {
		name string
		body string
		want string
	}{
		{"missing name", `{"cityName":"New Bleu City","valuation":"1","roles":["Retail"]}`, "name is required"},
		{"missing city", `{"name":"Galleria","valuation":"1","roles":["Retail"]}`, "cityName is required"},
		{"missing valuation", `{"name":"Galleria","cityName":"New Bleu City","roles":["Retail"]}`, "valuation is required"},
		{"missing roles", `{"name":"Galleria","cityName":"New Bleu City","valuation":"1"}`, "roles is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/mall-nodes", strings.NewReader(tc.body))
			rr := httptest.NewRecorder()
			handler.Create(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tc.want, decodeError(t, rr))
		})
	}
}

func TestMallHandler_Get_NotFound(t *testing.T) {
	handler := NewMallHandler(repository.NewMallNodeRepository())

	req := httptest.NewRequest(http.MethodGet, "/api/mall-nodes/no-such-id", nil)
	req.SetPathValue("id", "no-such-id")
	rr := httptest.NewRecorder()
	handler.Get(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Mall node not found", decodeError(t, rr))
}
