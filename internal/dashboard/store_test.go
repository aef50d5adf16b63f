package dashboard

import (
	"context"
	"fmt"

	"NobelDashboard/internal/models"
	"NobelDashboard/internal/storage"
)

var _ storage.Store = (*memStore)(nil)

// memStore is an in-process Store that records the order of calls.
type memStore struct {
	records  []models.AwardRecord
	calls    []string
	nextID   int
	fetchErr error
	writeErr error
}

func (s *memStore) FetchAll(context.Context) ([]models.AwardRecord, error) {
	s.calls = append(s.calls, "fetch")
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return append([]models.AwardRecord(nil), s.records...), nil
}

func (s *memStore) Insert(_ context.Context, r models.AwardRecord) error {
	s.calls = append(s.calls, "insert")
	if s.writeErr != nil {
		return s.writeErr
	}
	s.nextID++
	r.ID = fmt.Sprint(s.nextID)
	s.records = append(s.records, r)
	return nil
}

func (s *memStore) find(key models.AwardKey) int {
	for i, r := range s.records {
		if y, ok := r.Year.Int(); ok && y == key.Year && r.Category == key.Category {
			return i
		}
	}
	return -1
}

func (s *memStore) UpdateOne(_ context.Context, key models.AwardKey, patch models.AwardPatch) (int64, error) {
	s.calls = append(s.calls, "update")
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	i := s.find(key)
	if i < 0 {
		return 0, nil
	}
	if patch.Gender != nil {
		s.records[i].Gender = models.StringPtr(*patch.Gender)
	}
	if patch.BornCountry != nil {
		s.records[i].BornCountry = models.StringPtr(*patch.BornCountry)
	}
	return 1, nil
}

func (s *memStore) DeleteOne(_ context.Context, key models.AwardKey) (int64, error) {
	s.calls = append(s.calls, "delete")
	if s.writeErr != nil {
		return 0, s.writeErr
	}
	i := s.find(key)
	if i < 0 {
		return 0, nil
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	return 1, nil
}

func (s *memStore) Ping(context.Context) error {
	if s.fetchErr != nil {
		return s.fetchErr
	}
	return nil
}

func (s *memStore) Close(context.Context) error { return nil }

var errDown = fmt.Errorf("dial tcp: %w", storage.ErrStoreUnavailable)
