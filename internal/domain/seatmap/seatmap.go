package seatmap

import "fmt"

type Seat struct {
	code     string
	row      int
	number   int
	colStart int
	status   Status
}

func (s Seat) Code() string   { return s.code }
func (s Seat) Row() int       { return s.row }
func (s Seat) Number() int    { return s.number }
func (s Seat) ColStart() int  { return s.colStart }
func (s Seat) Status() Status { return s.status }
func (s Seat) IsFree() bool   { return s.status == StatusFree }

func SeatCode(row, number int) string {
	return fmt.Sprintf("R%d-%d", row, number)
}

// SeatMap is the seat collection of one showtime. It does no locking of its own; the
// store serializes every TryReserve per showtime.
type SeatMap struct {
	seats []Seat
	index map[string]int
}

// Generate builds a fresh seat map with every seat free. The same layout always yields the
// same codes in the same order.
func Generate(layout Layout) (*SeatMap, error) {
	if len(layout) == 0 {
		return nil, ErrEmptyLayout
	}

	seenRows := make(map[int]struct{}, len(layout))
	seats := make([]Seat, 0, layout.SeatCount())
	for _, rowDef := range layout {
		if rowDef.Row <= 0 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidRow, rowDef.Row)
		}
		if len(rowDef.Cols) == 0 {
			return nil, fmt.Errorf("%w: row %d", ErrEmptyRow, rowDef.Row)
		}
		if _, dup := seenRows[rowDef.Row]; dup {
			return nil, fmt.Errorf("%w: row %d", ErrDuplicateRow, rowDef.Row)
		}
		seenRows[rowDef.Row] = struct{}{}

		for i, col := range rowDef.Cols {
			seats = append(seats, Seat{
				code:     SeatCode(rowDef.Row, i+1),
				row:      rowDef.Row,
				number:   i + 1,
				colStart: col,
				status:   StatusFree,
			})
		}
	}

	index := make(map[string]int, len(seats))
	for i, s := range seats {
		index[s.code] = i
	}

	return &SeatMap{seats: seats, index: index}, nil
}

// Seats returns a copy in layout order.
func (m *SeatMap) Seats() []Seat {
	out := make([]Seat, len(m.seats))
	copy(out, m.seats)
	return out
}

func (m *SeatMap) Seat(code string) (Seat, bool) {
	i, ok := m.index[code]
	if !ok {
		return Seat{}, false
	}
	return m.seats[i], true
}

func (m *SeatMap) Len() int { return len(m.seats) }

func (m *SeatMap) FreeCount() int {
	n := 0
	for _, s := range m.seats {
		if s.IsFree() {
			n++
		}
	}
	return n
}

// TryReserve occupies every requested seat or none of them. The decision is made against
// the whole batch before any status changes.
func (m *SeatMap) TryReserve(codes []string) ([]string, error) {
	positions, err := m.resolve(codes)
	if err != nil {
		return nil, err
	}

	var taken []string
	for i, pos := range positions {
		if !m.seats[pos].IsFree() {
			taken = append(taken, codes[i])
		}
	}
	if len(taken) > 0 {
		return nil, &ConflictError{Codes: taken}
	}

	for _, pos := range positions {
		m.seats[pos].status = StatusOccupied
	}

	committed := make([]string, len(codes))
	copy(committed, codes)
	return committed, nil
}

func (m *SeatMap) resolve(codes []string) ([]int, error) {
	if len(codes) == 0 {
		return nil, &InvalidSelectionError{Reason: ReasonEmpty}
	}

	seen := make(map[string]struct{}, len(codes))
	var duplicates, unknown []string
	positions := make([]int, 0, len(codes))
	for _, code := range codes {
		if _, dup := seen[code]; dup {
			duplicates = append(duplicates, code)
			continue
		}
		seen[code] = struct{}{}

		pos, ok := m.index[code]
		if !ok {
			unknown = append(unknown, code)
			continue
		}
		positions = append(positions, pos)
	}

	if len(duplicates) > 0 {
		return nil, &InvalidSelectionError{Reason: ReasonDuplicate, Codes: duplicates}
	}
	if len(unknown) > 0 {
		return nil, &InvalidSelectionError{Reason: ReasonUnknown, Codes: unknown}
	}
	return positions, nil
}
