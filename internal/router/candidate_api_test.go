package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirewire/employment-api/internal/models"
)

func TestCandidateRoundTrip(t *testing.T) {
	r, _ := newTestAPI(t, nil)

	w := perform(t, r, http.MethodPost, "/candidates", map[string]any{
		"candidateId":   "C1",
		"candidateName": "Alice",
		"Role":          "Tester",
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(t, r, http.MethodGet, "/candidates/C1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decodeObject(t, w)
	assert.Equal(t, "C1", rec["candidateId"])
	assert.Equal(t, "Alice", rec["candidateName"])
	assert.Equal(t, "Tester", rec["Role"])
	assert.Equal(t, true, rec["available"])
	assert.Nil(t, rec["Company"])
	assert.Equal(t, float64(1), rec["id"])
}

func TestCreateCandidateMissingFieldRejected(t *testing.T) {
	r, st := newTestAPI(t, nil)

	w := perform(t, r, http.MethodPost, "/candidates", map[string]any{
		"candidateId":   "C1",
		"candidateName": "Alice",
		// Role omitted
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Bad Request", body["error"])
	assert.Contains(t, body["message"], "Role")

	// rejected request must not have touched the collection
	records, err := st.Read(models.Candidates)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestCreateCandidateDuplicateConflicts(t *testing.T) {
	r, st := newTestAPI(t, nil)

	payload := map[string]any{"candidateId": "C1", "candidateName": "Alice", "Role": "Tester"}
	w := perform(t, r, http.MethodPost, "/candidates", payload, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = perform(t, r, http.MethodPost, "/candidates", payload, nil)
	require.Equal(t, http.StatusConflict, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Conflict", body["error"])

	records, err := st.Read(models.Candidates)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestListCandidatesRoleFilter(t *testing.T) {
	r, _ := newTestAPI(t, map[string][]models.Record{
		models.Candidates: {
			{"id": float64(1), "candidateId": "C1", "candidateName": "Alice", "Role": "Tester"},
			{"id": float64(2), "candidateId": "C2", "candidateName": "Bob", "Role": "Developer"},
			{"id": float64(3), "candidateId": "C3", "candidateName": "Carol", "Role": "Tester"},
		},
	})

	w := perform(t, r, http.MethodGet, "/candidates?Role=Tester", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	records := decodeList(t, w)
	require.Len(t, records, 2)
	for _, rec := range records {
		assert.Equal(t, "Tester", rec["Role"])
	}
}

func TestListCandidatesInvalidRoleRejected(t *testing.T) {
	r, _ := newTestAPI(t, nil)

	w := perform(t, r, http.MethodGet, "/candidates?Role=Manager", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Invalid Role", body["error"])
	assert.Contains(t, body["message"], "Manager")
	assert.Contains(t, body["message"], "Tester, Developer, Data Scientist")
}

func TestListCandidatesWithoutFilterReturnsAll(t *testing.T) {
	r, _ := newTestAPI(t, map[string][]models.Record{
		models.Candidates: {
			{"id": float64(1), "candidateId": "C1", "Role": "Tester"},
			{"id": float64(2), "candidateId": "C2", "Role": "Developer"},
		},
	})

	w := perform(t, r, http.MethodGet, "/candidates", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestPatchCandidateMergesFields(t *testing.T) {
	r, _ := newTestAPI(t, map[string][]models.Record{
		models.Candidates: {
			{"id": float64(1), "candidateId": "C1", "candidateName": "Alice", "Role": "Tester", "available": true},
		},
	})

	w := perform(t, r, http.MethodPatch, "/candidates/C1", map[string]any{"Company": "Acme", "available": false}, nil)
	require.Equal(t, http.StatusOK, w.Code)
	rec := decodeObject(t, w)
	assert.Equal(t, "Acme", rec["Company"])
	assert.Equal(t, false, rec["available"])
	// untouched fields survive the merge
	assert.Equal(t, "Alice", rec["candidateName"])
	assert.Equal(t, float64(1), rec["id"])
}

func TestDeleteCandidateThenGetNotFound(t *testing.T) {
	r, _ := newTestAPI(t, map[string][]models.Record{
		models.Candidates: {
			{"id": float64(1), "candidateId": "C1", "candidateName": "Alice", "Role": "Tester"},
		},
	})

	w := perform(t, r, http.MethodDelete, "/candidates/C1", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeObject(t, w)["message"], "deleted successfully")

	w = perform(t, r, http.MethodGet, "/candidates/C1", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Candidate not found", decodeObject(t, w)["message"])
}

func TestDeleteMissingCandidate(t *testing.T) {
	r, _ := newTestAPI(t, nil)

	w := perform(t, r, http.MethodDelete, "/candidates/C9", nil, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	body := decodeObject(t, w)
	assert.Equal(t, "Not Found", body["error"])
	assert.Contains(t, body["message"], "C9")
}

func TestGetCandidateNumericKeyCoercion(t *testing.T) {
	r, _ := newTestAPI(t, map[string][]models.Record{
		models.Candidates: {
			{"id": float64(1), "candidateId": float64(7), "candidateName": "Nina", "Role": "Developer"},
		},
	})

	// "7" and "007" both coerce to the number 7
	for _, raw := range []string{"7", "007"} {
		w := perform(t, r, http.MethodGet, "/candidates/"+raw, nil, nil)
		require.Equal(t, http.StatusOK, w.Code, "lookup via %q", raw)
		assert.Equal(t, "Nina", decodeObject(t, w)["candidateName"])
	}
}
