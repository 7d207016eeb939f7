package services

import (
	"errors"

	"github.com/hirewire/employment-api/internal/models"
)

// ErrConflict means a create collided with an existing public key.
var ErrConflict = errors.New("duplicate key")

// sameKey compares two public-key values as they come out of decoded JSON.
// Keys are strings or numbers; anything else never matches.
func sameKey(a, b any) bool {
	switch x := a.(type) {
	case string:
		y, ok := b.(string)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	default:
		return false
	}
}

// mergeRecord shallow-merges patch over base: patch fields override, base
// fields without a patch counterpart survive. The internal id is immutable
// and cannot be patched away.
func mergeRecord(base, patch models.Record) models.Record {
	out := make(models.Record, len(base)+len(patch))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}

// nullable keeps an omitted optional field as an explicit JSON null, matching
// the stored shape of seeded records.
func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
