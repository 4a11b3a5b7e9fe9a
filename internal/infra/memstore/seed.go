package memstore

import (
	"time"

	"cinema-booking/internal/domain/seatmap"
	"cinema-booking/internal/domain/showtime"
	"cinema-booking/internal/pkg/config"
	"cinema-booking/internal/pkg/errs"
)

type movieSeed struct {
	id          string
	title       string
	shortTitle  string
	durationMin int
	ageRating   string
	banner      string
	showtimes   []showtimeSeed
}

type showtimeSeed struct {
	id       string
	startsAt string
}

var vipMovies = []movieSeed{
	{
		id:          "m1",
		title:       "Пираты Карибского моря: Проклятие Черной жемчужины",
		shortTitle:  "Пираты 1",
		durationMin: 143,
		ageRating:   "12+",
		banner:      "https://image.tmdb.org/t/p/w780/z8onk7LV9Mmw6zKz4hT6pzzvmvl.jpg",
		showtimes:   []showtimeSeed{{id: "s1", startsAt: "2026-02-27T20:00:00"}},
	},
	{
		id:          "m2",
		title:       "Пираты Карибского моря: Сундук мертвеца",
		shortTitle:  "Пираты 2",
		durationMin: 151,
		ageRating:   "12+",
		banner:      "https://image.tmdb.org/t/p/w780/uXEqmloGyP7UXAiphJUu2v2pcuE.jpg",
		showtimes:   []showtimeSeed{{id: "s2", startsAt: "2026-03-06T20:00:00"}},
	},
	{
		id:          "m3",
		title:       "Пираты Карибского моря: На краю света",
		shortTitle:  "Пираты 3",
		durationMin: 169,
		ageRating:   "12+",
		banner:      "https://image.tmdb.org/t/p/w780/jGWpG4YhpQwVmjyHEGkxEkeRf0S.jpg",
		showtimes:   []showtimeSeed{{id: "s3", startsAt: "2026-03-13T20:00:00"}},
	},
}

const seedTimeLayout = "2006-01-02T15:04:05"

// Seed fills both stores with the VIP hall catalog. Every showtime gets its own seat map,
// generated from the same layout.
func Seed(cfg config.CatalogConfig, catalog *CatalogStore, seatMaps *SeatMapStore) error {
	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		// tzdata may be missing in slim images
		loc = time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	}

	for _, mv := range vipMovies {
		for _, ss := range mv.showtimes {
			startsAt, err := time.ParseInLocation(seedTimeLayout, ss.startsAt, loc)
			if err != nil {
				return errs.Wrapf(err, "parse start time of showtime %s", ss.id)
			}

			st, err := showtime.NewShowtime(showtime.Params{
				ID:          ss.id,
				MovieID:     mv.id,
				Title:       mv.title,
				ShortTitle:  mv.shortTitle,
				DurationMin: mv.durationMin,
				AgeRating:   mv.ageRating,
				Hall:        cfg.HallName,
				SeatType:    cfg.SeatType,
				Price:       cfg.VIPPrice,
				StartsAt:    startsAt,
				Banner:      mv.banner,
			})
			if err != nil {
				return errs.Wrapf(err, "build showtime %s", ss.id)
			}

			seats, err := seatmap.Generate(seatmap.VIPLayout())
			if err != nil {
				return errs.Wrapf(err, "generate seat map for showtime %s", ss.id)
			}

			if err := catalog.Add(st); err != nil {
				return err
			}
			if err := seatMaps.Register(st.ID(), seats); err != nil {
				return err
			}
		}
	}
	return nil
}
