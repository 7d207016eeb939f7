package services

import (
	"github.com/hirewire/employment-api/internal/dtos"
	"github.com/hirewire/employment-api/internal/models"
	"github.com/hirewire/employment-api/internal/store"
)

type JobService struct {
	Store *store.Store
}

func NewJobService(s *store.Store) *JobService {
	return &JobService{Store: s}
}

func (s *JobService) List(domain string) ([]models.Record, error) {
	records, err := s.Store.Read(models.Jobs)
	if err != nil {
		return nil, err
	}
	if domain == "" {
		return records, nil
	}
	filtered := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if d, ok := rec["Domain"].(string); ok && d == domain {
			filtered = append(filtered, rec)
		}
	}
	return filtered, nil
}

func (s *JobService) GetByJobID(raw string) (models.Record, error) {
	rec, _, err := s.Store.FindByAltKey(models.Jobs, "JobId", raw)
	return rec, err
}

// Create appends a new job. Unlike candidates, available defaults to false —
// a job is closed until somebody opens it.
func (s *JobService) Create(req *dtos.CreateJobRequest) (models.Record, error) {
	available := false
	if req.Available != nil {
		available = *req.Available
	}

	var created models.Record
	err := s.Store.Update(models.Jobs, func(records []models.Record) ([]models.Record, error) {
		for _, rec := range records {
			if sameKey(rec["JobId"], req.JobID) {
				return nil, ErrConflict
			}
		}
		created = models.Record{
			"id":        store.NextID(records),
			"JobId":     req.JobID,
			"JobName":   req.JobName,
			"Domain":    req.Domain,
			"Company":   nullable(req.Company),
			"available": available,
		}
		return append(records, created), nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *JobService) UpdateByJobID(raw string, patch models.Record) (models.Record, error) {
	var updated models.Record
	err := s.Store.Update(models.Jobs, func(records []models.Record) ([]models.Record, error) {
		_, i, ok := store.Find(records, "JobId", raw)
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

func (s *JobService) DeleteByJobID(raw string) error {
	return s.Store.Update(models.Jobs, func(records []models.Record) ([]models.Record, error) {
		_, i, ok := store.Find(records, "JobId", raw)
		if !ok {
			return nil, store.ErrNotFound
		}
		return append(records[:i], records[i+1:]...), nil
	})
}
