//go:build unit || e2e

package builder

import (
	"time"

	"cinema-booking/internal/domain/showtime"
	"cinema-booking/internal/usecase/queries"
)

type ShowtimeBuilder struct {
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

func NewShowtimeBuilder() *ShowtimeBuilder {
	return &ShowtimeBuilder{
		ID:          "s1",
		MovieID:     "m1",
		Title:       "Пираты Карибского моря: Проклятие Черной жемчужины",
		ShortTitle:  "Пираты Карибского моря",
		DurationMin: 143,
		AgeRating:   "12+",
		Hall:        "VIP-зал",
		SeatType:    "VIP диван для двоих",
		Price:       3500,
		StartsAt:    time.Date(2026, 2, 27, 20, 0, 0, 0, time.FixedZone("MSK", 3*60*60)),
		Banner:      "/images/pirates.jpg",
	}
}

func (b *ShowtimeBuilder) With(mutate func(*ShowtimeBuilder)) *ShowtimeBuilder {
	mutate(b)
	return b
}

func (b *ShowtimeBuilder) WithID(id string) *ShowtimeBuilder {
	b.ID = id
	return b
}

func (b *ShowtimeBuilder) WithStartsAt(t time.Time) *ShowtimeBuilder {
	b.StartsAt = t
	return b
}

func (b *ShowtimeBuilder) WithPrice(price int64) *ShowtimeBuilder {
	b.Price = price
	return b
}

// Build methods
func (b *ShowtimeBuilder) BuildDomain() (*showtime.Showtime, error) {
	return showtime.NewShowtime(showtime.Params{
		ID:          b.ID,
		MovieID:     b.MovieID,
		Title:       b.Title,
		ShortTitle:  b.ShortTitle,
		DurationMin: b.DurationMin,
		AgeRating:   b.AgeRating,
		Hall:        b.Hall,
		SeatType:    b.SeatType,
		Price:       b.Price,
		StartsAt:    b.StartsAt,
		Banner:      b.Banner,
	})
}

// panics on invalid fields; use BuildDomain to test validation
func (b *ShowtimeBuilder) MustBuildDomain() *showtime.Showtime {
	st, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return st
}

func (b *ShowtimeBuilder) BuildView() *queries.ShowtimeView {
	return &queries.ShowtimeView{
		ShowtimeID: b.ID,
		MovieID:    b.MovieID,
		Title:      b.Title,
		ShortTitle: b.ShortTitle,
		Duration:   b.DurationMin,
		Age:        b.AgeRating,
		Hall:       b.Hall,
		SeatType:   b.SeatType,
		Price:      b.Price,
		StartsAt:   b.StartsAt,
		Banner:     b.Banner,
		FreeSeats:  16,
		TotalSeats: 16,
	}
}
