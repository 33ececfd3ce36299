package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"hybridretrofit/internal/apperr"
	"hybridretrofit/internal/data"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c, w
}

func TestListCostScenariosReturnsAllFour(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/api/v1/cost-scenarios", nil)
	ListCostScenarios(c)

	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Len(t, out, 4)
	assert.Contains(t, out, "base")
	assert.Contains(t, out, "high_gas")
	assert.NotContains(t, out["base"], "solar_life_years")
}

func TestOptimizeHandlerRejectsMissingPlantID(t *testing.T) {
	h := NewOptimizeHandler()
	c, w := newTestContext(http.MethodPost, "/api/v1/optimize", map[string]any{
		"target_load_mw": 50.0,
	})
	h.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp, "error")
}

func TestSimulateHandlerRejectsMissingSiteContext(t *testing.T) {
	h := NewSimulateHandler()
	c, w := newTestContext(http.MethodPost, "/api/v1/simulate", map[string]any{
		"asset_parameters": map[string]any{},
	})
	h.Run(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlantsHandlerReturnsRegisteredPlant(t *testing.T) {
	registry := data.NewRegistry(data.SeedPlants())
	h := NewPlantsHandler(registry)

	c, w := newTestContext(http.MethodGet, "/api/v1/plants/ercot-ccgt-01", nil)
	c.Params = gin.Params{{Key: "id", Value: "ercot-ccgt-01"}}
	h.Get(c)

	require.Equal(t, http.StatusOK, w.Code)
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "ercot-ccgt-01", out["id"])
}

func TestPlantsHandlerUnknownIDReturnsValidationError(t *testing.T) {
	registry := data.NewRegistry(data.SeedPlants())
	h := NewPlantsHandler(registry)

	c, w := newTestContext(http.MethodGet, "/api/v1/plants/does-not-exist", nil)
	c.Params = gin.Params{{Key: "id", Value: "does-not-exist"}}
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRespondErrorMapsApperrKind(t *testing.T) {
	c, w := newTestContext(http.MethodGet, "/x", nil)
	respondError(c, apperr.Validation("bad input: %s", "reason"))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	c2, w2 := newTestContext(http.MethodGet, "/x", nil)
	respondError(c2, apperr.Internalf("boom"))
	assert.Equal(t, http.StatusInternalServerError, w2.Code)
}
