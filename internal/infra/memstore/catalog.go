package memstore

import (
	"context"
	"sort"
	"sync"

	"cinema-booking/internal/domain/showtime"
	"cinema-booking/internal/infra"
)

// CatalogStore holds the showtimes seeded at startup. It is read-mostly.
type CatalogStore struct {
	mu        sync.RWMutex
	showtimes map[string]*showtime.Showtime
}

func NewCatalogStore() *CatalogStore {
	return &CatalogStore{
		showtimes: make(map[string]*showtime.Showtime),
	}
}

func (s *CatalogStore) Add(st *showtime.Showtime) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.showtimes[st.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "showtime already exists: "+st.ID())
	}
	s.showtimes[st.ID()] = st
	return nil
}

// FindAll returns showtimes ordered by start time, then id.
func (s *CatalogStore) FindAll(_ context.Context) ([]*showtime.Showtime, error) {
	s.mu.RLock()
	result := make([]*showtime.Showtime, 0, len(s.showtimes))
	for _, st := range s.showtimes {
		result = append(result, st)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartsAt().Equal(result[j].StartsAt()) {
			return result[i].StartsAt().Before(result[j].StartsAt())
		}
		return result[i].ID() < result[j].ID()
	})
	return result, nil
}

func (s *CatalogStore) FindByID(_ context.Context, id string) (*showtime.Showtime, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.showtimes[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "showtime not found: "+id)
	}
	return st, nil
}
