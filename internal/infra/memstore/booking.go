package memstore

import (
	"context"
	"sync"

	"cinema-booking/internal/domain/booking"
	"cinema-booking/internal/infra"
)

// BookingStore keeps receipts for the life of the process only.
type BookingStore struct {
	mu       sync.RWMutex
	receipts map[string]*booking.Receipt
}

func NewBookingStore() *BookingStore {
	return &BookingStore{
		receipts: make(map[string]*booking.Receipt),
	}
}

func (s *BookingStore) Save(_ context.Context, r *booking.Receipt) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.receipts[r.ID()]; exists {
		return infra.NewRepoErr(infra.KindDuplicateKey, "booking id already used: "+r.ID())
	}
	s.receipts[r.ID()] = r
	return nil
}

func (s *BookingStore) FindByID(_ context.Context, id string) (*booking.Receipt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.receipts[id]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found: "+id)
	}
	return r, nil
}

func (s *BookingStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.receipts)
}
