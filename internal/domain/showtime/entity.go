package showtime

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyShowtimeID  = errors.New("showtime id cannot be empty")
	ErrEmptyTitle       = errors.New("showtime title cannot be empty")
	ErrInvalidDuration  = errors.New("duration must be positive")
	ErrNegativePrice    = errors.New("price cannot be negative")
	ErrMissingStartTime = errors.New("start time is required")
)

// Showtime is one bookable screening of a movie. It is immutable once created.
type Showtime struct {
	id          string
	movieID     string
	title       string
	shortTitle  string
	durationMin int
	ageRating   string
	hall        string
	seatType    string
	price       int64
	startsAt    time.Time
	banner      string
}

type Params struct {
	ID          string
	MovieID     string
	Title       string
	ShortTitle  string
	DurationMin int
	AgeRating   string
	Hall        string
	SeatType    string
	Price       int64
	StartsAt    time.Time
	Banner      string
}

func NewShowtime(p Params) (*Showtime, error) {
	id := strings.TrimSpace(p.ID)
	if id == "" {
		return nil, ErrEmptyShowtimeID
	}
	title := strings.TrimSpace(p.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if p.DurationMin <= 0 {
		return nil, ErrInvalidDuration
	}
	if p.Price < 0 {
		return nil, ErrNegativePrice
	}
	if p.StartsAt.IsZero() {
		return nil, ErrMissingStartTime
	}

	shortTitle := strings.TrimSpace(p.ShortTitle)
	if shortTitle == "" {
		shortTitle = title
	}

	return &Showtime{
		id:          id,
		movieID:     strings.TrimSpace(p.MovieID),
		title:       title,
		shortTitle:  shortTitle,
		durationMin: p.DurationMin,
		ageRating:   p.AgeRating,
		hall:        p.Hall,
		seatType:    p.SeatType,
		price:       p.Price,
		startsAt:    p.StartsAt,
		banner:      p.Banner,
	}, nil
}

// TotalFor is the flat price of n seats.
func (s *Showtime) TotalFor(n int) int64 {
	return s.price * int64(n)
}

func (s *Showtime) ID() string              { return s.id }
func (s *Showtime) MovieID() string         { return s.movieID }
func (s *Showtime) Title() string           { return s.title }
func (s *Showtime) ShortTitle() string      { return s.shortTitle }
func (s *Showtime) DurationMin() int        { return s.durationMin }
func (s *Showtime) Duration() time.Duration { return time.Duration(s.durationMin) * time.Minute }
func (s *Showtime) AgeRating() string       { return s.ageRating }
func (s *Showtime) Hall() string            { return s.hall }
func (s *Showtime) SeatType() string        { return s.seatType }
func (s *Showtime) Price() int64            { return s.price }
func (s *Showtime) StartsAt() time.Time     { return s.startsAt }
func (s *Showtime) EndsAt() time.Time       { return s.startsAt.Add(s.Duration()) }
func (s *Showtime) Banner() string          { return s.banner }
