package store

import (
	"strconv"

	"github.com/hirewire/employment-api/internal/models"
)

// The public-facing identifiers (candidateId, JobId, employmentId) arrive as
// raw path strings but may be stored as JSON numbers or strings. The coercion
// policy is two-branch: if the raw value parses fully as a number, the
// comparison is numeric and only matches stored numbers; otherwise it is a
// literal string comparison and only matches stored strings. A stored string
// "007" is therefore unreachable — the path value "007" coerces to the
// number 7. That boundary is deliberate and pinned by tests.

// Match reports whether a record's field equals the raw path value under the
// coercion policy above.
func Match(rec models.Record, field, raw string) bool {
	v, ok := rec[field]
	if !ok {
		return false
	}
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		num, isNum := v.(float64)
		return isNum && num == n
	}
	str, isStr := v.(string)
	return isStr && str == raw
}

// Find returns the first record in collection order whose field matches raw,
// along with its position. First-match is the tie-break when duplicates have
// slipped in; uniqueness itself is enforced at creation time, not here.
func Find(records []models.Record, field, raw string) (models.Record, int, bool) {
	for i, rec := range records {
		if Match(rec, field, raw) {
			return rec, i, true
		}
	}
	return nil, -1, false
}

// FindByAltKey resolves a public identifier to its record and internal id.
// Returns ErrNotFound (wrapped) when nothing matches.
func (s *Store) FindByAltKey(collection, field, raw string) (models.Record, any, error) {
	records, err := s.Read(collection)
	if err != nil {
		return nil, nil, err
	}
	rec, _, ok := Find(records, field, raw)
	if !ok {
		return nil, nil, ErrNotFound
	}
	return rec, rec["id"], nil
}
