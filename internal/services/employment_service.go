package services

import (
	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/store"
)

// EmploymentService handles the bearer-protected collection. Employments are
// fully schemaless — records are created through the generic fallback and
// mutated here via partial merge, so there is no creation DTO.
type EmploymentService struct {
	Store *store.Store
}

func NewEmploymentService(s *store.Store) *EmploymentService {
	return &EmploymentService{Store: s}
}

func (s *EmploymentService) List() ([]models.Record, error) {
	return s.Store.Read(models.Employments)
}

func (s *EmploymentService) GetByEmploymentID(raw string) (models.Record, error) {
	rec, _, err := s.Store.FindByAltKey(models.Employments, "employmentId", raw)
	return rec, err
}

func (s *EmploymentService) UpdateByEmploymentID(raw string, patch models.Record) (models.Record, error) {
	var updated models.Record
	err := s.Store.Update(models.Employments, func(records []models.Record) ([]models.Record, error) {
		_, i, ok := store.Find(records, "employmentId", raw)
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

func (s *EmploymentService) DeleteByEmploymentID(raw string) error {
	return s.Store.Update(models.Employments, func(records []models.Record) ([]models.Record, error) {
		_, i, ok := store.Find(records, "employmentId", raw)
		if !ok {
			return nil, store.ErrNotFound
		}
		return append(records[:i], records[i+1:]...), nil
	})
}
