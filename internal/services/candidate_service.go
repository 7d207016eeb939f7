package services

import (
	"github.com/hirewire/employment-api/internal/dtos"
	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/store"
)

type CandidateService struct {
	Store *store.Store
}

func NewCandidateService(s *store.Store) *CandidateService {
	return &CandidateService{Store: s}
}

// List returns all candidates, narrowed to one Role when the filter is set.
// The Role value is validated upstream against the closed enumeration.
func (s *CandidateService) List(role string) ([]models.Record, error) {
	records, err := s.Store.Read(models.Candidates)
	if err != nil {
		return nil, err
	}
	if role == "" {
		return records, nil
	}
	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if r, ok := rec["Role"].(string); ok && r == role {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (s *CandidateService) GetByCandidateID(raw string) (models.Record, error) {
	rec, _, err := s.Store.FindByAltKey(models.Candidates, "candidateId", raw)
	return rec, err
}

// Create appends a new candidate. The public key is checked for uniqueness by
// a direct scan against the request value, the internal id is
// sequence-assigned, and available defaults to true.
func (s *CandidateService) Create(req *dtos.CreateCandidateRequest) (models.Record, error) {
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	var created models.Record
	err := s.Store.Update(models.Candidates, func(records []models.Record) ([]models.Record, error) {
		for _, rec := range records {
			if sameKey(rec["candidateId"], req.CandidateID) {
				return nil, ErrConflict
			}
		}
		created = models.Record{
			"id":            store.NextID(records),
			"candidateId":   req.CandidateID,
			"candidateName": req.CandidateName,
			"Role":          req.Role,
			"Company":       nullable(req.Company),
			"available":     available,
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *CandidateService) UpdateByCandidateID(raw string, patch models.Record) (models.Record, error) {
	var updated models.Record
	err := s.Store.Update(models.Candidates, func(records []models.Record) ([]models.Record, error) {
		_, i, ok := store.Find(records, "candidateId", raw)
		if !ok {
			return nil, store.ErrNotFound
		}
		records[i] = mergeRecord(records[i], patch)
		updated = records[i]
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *CandidateService) DeleteByCandidateID(raw string) error {
	return s.Store.Update(models.Candidates, func(records []models.Record) ([]models.Record, error) {
		_, i, ok := store.Find(records, "candidateId", raw)
		if !ok {
			return nil, store.ErrNotFound
		}
		return append(records[:i], records[i+1:]...), nil
	})
}
