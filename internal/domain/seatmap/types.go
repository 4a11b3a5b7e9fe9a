package seatmap

type Status string

const (
	StatusFree     Status = "free"
	StatusOccupied Status = "occupied"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusFree, StatusOccupied:
		return true
	default:
		return false
	}
}

// RowLayout places the seats of one row: Cols holds the horizontal grid column of each
// seat, in seat order.
type RowLayout struct {
	Row  int
	Cols []int
}

type Layout []RowLayout

// VIPLayout is the sofa layout of the VIP hall, back row first.
func VIPLayout() Layout {
	return Layout{
		{Row: 5, Cols: []int{1, 4, 7, 10}},
		{Row: 4, Cols: []int{2, 5, 10}},
		{Row: 3, Cols: []int{2, 5, 10}},
		{Row: 2, Cols: []int{2, 5, 10}},
		{Row: 1, Cols: []int{2, 5, 10}},
	}
}

// SeatCount is the number of seats the layout produces.
func (l Layout) SeatCount() int {
	n := 0
	for _, r := range l {
		n += len(r.Cols)
	}
	return n
}
