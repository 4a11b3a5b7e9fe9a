package booking

import "time"

// Receipt is the immutable record of one committed reservation.
type Receipt struct {
	id         string
	showtimeID string
	seats      []string
	total      int64
	customer   Customer
	bookedAt   time.Time
}

func ReconstructReceipt(id, showtimeID string, seats []string, total int64, customer Customer, bookedAt time.Time) *Receipt {
	return &Receipt{
		id:         id,
		showtimeID: showtimeID,
		seats:      cloneCodes(seats),
		total:      total,
		customer:   customer,
		bookedAt:   bookedAt,
	}
}

func (r *Receipt) ID() string          { return r.id }
func (r *Receipt) ShowtimeID() string  { return r.showtimeID }
func (r *Receipt) Seats() []string     { return cloneCodes(r.seats) }
func (r *Receipt) SeatCount() int      { return len(r.seats) }
func (r *Receipt) Total() int64        { return r.total }
func (r *Receipt) Customer() Customer  { return r.customer }
func (r *Receipt) BookedAt() time.Time { return r.bookedAt }

func cloneCodes(codes []string) []string {
	out := make([]string, len(codes))
	copy(out, codes)
	return out
}
