package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/employment-api/internal/middleware"
	"github.com/hirewire/employment-api/internal/models"
)

// companiesDoc seeds a collection no custom route claims, so every request
// hits the generic fallback layer.
func companiesDoc() map[string][]models.Record {
	return map[string][]models.Record{
		"companies": {
			{"id": float64(1), "name": "Acme"},
			{"id": float64(2), "name": "Globex"},
		},
	}
}

func TestFallbackListCollection(t *testing.T) {
	r, _ := newTestAPI(t, companiesDoc())

	w := perform(t, r, http.MethodGet, "/companies", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestFallbackCreateAssignsSequentialIDs(t *testing.T) {
	r, _ := newTestAPI(t, companiesDoc())

	w := perform(t, r, http.MethodPost, "/companies", map[string]any{"name": "Initech"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(3), decodeObject(t, w)["id"])

	w = perform(t, r, http.MethodPost, "/companies", map[string]any{"name": "Hooli"}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(4), decodeObject(t, w)["id"])
}

func TestFallbackGetByInternalID(t *testing.T) {
	r, _ := newTestAPI(t, companiesDoc())

	w := perform(t, r, http.MethodGet, "/companies/2", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Globex", decodeObject(t, w)["name"])

	w = perform(t, r, http.MethodGet, "/companies/99", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFallbackPatchMergesPutReplaces(t *testing.T) {
	r, _ := newTestAPI(t, map[string][]models.Record{
		"companies": {
			{"id": float64(1), "name": "Acme", "city": "Springfield"},
		},
	})

	w := perform(t, r, http.MethodPatch, "/companies/1", map[string]any{"name": "Acme Corp"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decodeObject(t, w)
	assert.Equal(t, "Acme Corp", rec["name"])
	assert.Equal(t, "Springfield", rec["city"]) // merge keeps it

	w = perform(t, r, http.MethodPut, "/companies/1", map[string]any{"name": "Acme Inc"}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec = decodeObject(t, w)
	assert.Equal(t, "Acme Inc", rec["name"])
	assert.NotContains(t, rec, "city") // replace drops it
	assert.Equal(t, float64(1), rec["id"])
}

func TestFallbackDelete(t *testing.T) {
	r, _ := newTestAPI(t, companiesDoc())

	w := perform(t, r, http.MethodDelete, "/companies/1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = perform(t, r, http.MethodGet, "/companies/1", nil, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFallbackUnknownCollection(t *testing.T) {
	r, _ := newTestAPI(t, nil)

	w := perform(t, r, http.MethodGet, "/widgets", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, decodeObject(t, w)["message"], "widgets")
}

func TestFallbackEmploymentsCreateStillGated(t *testing.T) {
	// POST /employments has no custom route, but the bearer gate covers the
	// whole path prefix before the fallback runs.
	r, st := newTestAPI(t, map[string][]models.Record{
		models.Admins: {seededAdmin()},
	})

	w := perform(t, r, http.MethodPost, "/employments", map[string]any{"employmentId": "E1", "status": "Pending"}, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w = perform(t, r, http.MethodPost, "/employments", map[string]any{"employmentId": "E1", "status": "Pending"}, bearer(seedToken))
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, float64(1), decodeObject(t, w)["id"])

	records, err := st.Read(models.Employments)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestResponsesCarryRequestID(t *testing.T) {
	r, _ := newTestAPI(t, nil)

	w := perform(t, r, http.MethodGet, "/health", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.HeaderRequestID))
}
