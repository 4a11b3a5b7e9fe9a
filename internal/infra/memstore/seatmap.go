package memstore

import (
	"context"
	"sync"

	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/infra"
)

type seatMapEntry struct {
	// one-slot semaphore so waiting writers can give up when their context ends
	lock  chan struct{}
	seats *seatmap.SeatMap
}

// SeatMapStore owns one seat map per showtime. Each map has its own lock, so
// reservations on different showtimes never wait on each other.
type SeatMapStore struct {
	mu      sync.RWMutex
	entries map[string]*seatMapEntry
}

func NewSeatMapStore() *SeatMapStore {
	return &SeatMapStore{
		entries: make(map[string]*seatMapEntry),
	}
}

func (s *SeatMapStore) Register(showtimeID string, m *seatmap.SeatMap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[showtimeID]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "seat map already registered: "+showtimeID)
	}
	s.entries[showtimeID] = &seatMapEntry{
		lock:  make(chan struct{}, 1),
		seats: m,
	}
	return nil
}

// WithLock runs fn with exclusive access to the showtime's seat map. fn must not
// retain the map after returning.
func (s *SeatMapStore) WithLock(ctx context.Context, showtimeID string, fn func(m *seatmap.SeatMap) error) error {
	entry, err := s.entry(showtimeID)
	if err != nil {
		return err
	}

	select {
	case entry.lock <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-entry.lock }()

	return fn(entry.seats)
}

// Snapshot copies the current seats. The copy may be stale by the time the caller
// renders it.
func (s *SeatMapStore) Snapshot(ctx context.Context, showtimeID string) ([]seatmap.Seat, error) {
	var seats []seatmap.Seat
	err := s.WithLock(ctx, showtimeID, func(m *seatmap.SeatMap) error {
		seats = m.Seats()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return seats, nil
}

func (s *SeatMapStore) entry(showtimeID string) (*seatMapEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries[showtimeID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "seat map not found: "+showtimeID)
	}
	return entry, nil
}
