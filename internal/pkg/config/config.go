package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, etc.)
// - default: Values common across all environments (timezone, catalog seed, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Catalog   CatalogConfig
	Booking   BookingConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Broker    BrokerConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"3000"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Retry-After"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
}

// CatalogConfig controls the showtimes seeded at startup.
type CatalogConfig struct {
	VIPPrice       int64  `envconfig:"CATALOG_VIP_PRICE" default:"3500"`
	HallName       string `envconfig:"CATALOG_HALL_NAME" default:"VIP-зал"`
	SeatType       string `envconfig:"CATALOG_SEAT_TYPE" default:"VIP диван для двоих"`
	TimeZone       string `envconfig:"CATALOG_TIMEZONE" default:"Europe/Moscow"`
	TimeZoneOffset int    `envconfig:"CATALOG_TIMEZONE_OFFSET" default:"10800"` // used when tzdata has no TimeZone
}

type BookingConfig struct {
	IDPrefix      string `envconfig:"BOOKING_ID_PREFIX" default:"BK"`
	MaxSeatsPerTx int    `envconfig:"BOOKING_MAX_SEATS" default:"16"`
}

// RedisConfig is optional; an empty Addr disables every Redis-backed feature.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR"`
	Password string `envconfig:"REDIS_PASSWORD"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type RateLimitConfig struct {
	Enabled        bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	Capacity       int           `envconfig:"RATE_LIMIT_CAPACITY" default:"10"`
	RefillTokens   int           `envconfig:"RATE_LIMIT_REFILL_TOKENS" default:"1"`
	RefillInterval time.Duration `envconfig:"RATE_LIMIT_REFILL_INTERVAL" default:"6s"`
	TTL            time.Duration `envconfig:"RATE_LIMIT_TTL" default:"10m"`
	Prefix         string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl:bookings"`
}

// BrokerConfig is optional; an empty URL selects the no-op publisher.
type BrokerConfig struct {
	URL            string        `envconfig:"AMQP_URL"`
	Queue          string        `envconfig:"AMQP_BOOKING_QUEUE" default:"booking.confirmed"`
	PublishTimeout time.Duration `envconfig:"AMQP_PUBLISH_TIMEOUT" default:"3s"`
}

func LoadConfig() (Config, error) {
	// .env is a convenience for local runs; real environments set variables directly
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Booking.MaxSeatsPerTx <= 0 {
		return fmt.Errorf("BOOKING_MAX_SEATS must be positive, got %d", c.Booking.MaxSeatsPerTx)
	}
	if c.RateLimit.Enabled && c.RateLimit.TTL < time.Second {
		return fmt.Errorf("RATE_LIMIT_TTL must be at least 1s, got %s", c.RateLimit.TTL)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
		Catalog: CatalogConfig{
			VIPPrice:       3500,
			HallName:       "VIP-зал",
			SeatType:       "VIP диван для двоих",
			TimeZone:       "Europe/Moscow",
			TimeZoneOffset: 10800,
		},
		Booking: BookingConfig{
			IDPrefix:      "BK",
			MaxSeatsPerTx: 16,
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Broker: BrokerConfig{
			Queue:          "booking.confirmed",
			PublishTimeout: time.Second,
		},
	}
}
