package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Redis Redis `validate:"required"`

	Auth Auth `validate:"required"`

	Fee Fee `validate:"required"`

	Dispatch Dispatch

	Channel Channel

	Cache Cache

	Geocoder Geocoder

	Buffer Buffer `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`

	RequestTimeout time.Duration `validate:"gte=0"`
}

type Kafka struct {
	// у каждого экземпляра своя группа: подсказки нужны всем websocket-клиентам
	GroupID     string   `validate:"required"`
	Brokers     []string `validate:"required,min=1,dive,hostname_port"`
	EventsTopic string   `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Redis struct {
	Addr     string `validate:"required,hostname_port"`
	Password string
	DB       int `validate:"gte=0"`

	DialTimeout  time.Duration `validate:"gte=0"`
	ReadTimeout  time.Duration `validate:"gte=0"`
	WriteTimeout time.Duration `validate:"gte=0"`
}

type Auth struct {
	JWTSecret string `validate:"required,min=16"`
}

type Fee struct {
	MinFee        float64 `validate:"gte=0"`
	RatePerKm     float64 `validate:"gte=0"`
	EarningsShare float64 `validate:"gte=0,lte=1"`
}

type Dispatch struct {
	ClaimableLimit    int           `validate:"gte=1,lte=500"`
	AssignmentTimeout time.Duration `validate:"gte=0"`
	SweepInterval     time.Duration `validate:"gte=0"`
}

type Channel struct {
	LocationInterval time.Duration `validate:"gt=0"`
	CallSignalTTL    time.Duration `validate:"gt=0"`
}

type Cache struct {
	Capacity  int           `validate:"gte=1"`
	Staleness time.Duration `validate:"gt=0"`
}

type Geocoder struct {
	// пустой ключ отключает провайдера, все запросы уходят в fallback
	APIKey      string
	Timeout     time.Duration `validate:"gt=0"`
	RateLimit   float64       `validate:"gt=0"`
	CityCenters map[string]entities.Coordinates
}

type Buffer struct {
	Path              string        `validate:"required"`
	ReconcileInterval time.Duration `validate:"gt=0"`
	BatchSize         int           `validate:"gte=1"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host:           env("HOST", "localhost"),
			Port:           env("PORT", "8080"),
			RequestTimeout: envDuration("HTTP_REQUEST_TIMEOUT", 10*time.Second),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:     instanceGroupID(env("KAFKA_GROUP_PREFIX", "food-dispatch"), env("INSTANCE_ID", defaultInstanceID())),
			EventsTopic: env("KAFKA_EVENTS_TOPIC", "order-events"),
			Brokers:     strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "food_dispatch"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Redis: Redis{
			Addr:     env("REDIS_ADDR", "localhost:6379"),
			Password: env("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),

			DialTimeout:  envDuration("REDIS_DIAL_TIMEOUT", 2*time.Second),
			ReadTimeout:  envDuration("REDIS_READ_TIMEOUT", time.Second),
			WriteTimeout: envDuration("REDIS_WRITE_TIMEOUT", time.Second),
		},

		Auth: Auth{
			JWTSecret: env("JWT_SECRET", ""),
		},

		Fee: Fee{
			MinFee:        envFloat("FEE_MIN", 5),
			RatePerKm:     envFloat("FEE_RATE_PER_KM", 5),
			EarningsShare: envFloat("FEE_EARNINGS_SHARE", 0.2),
		},

		Dispatch: Dispatch{
			ClaimableLimit:    envInt("DISPATCH_CLAIMABLE_LIMIT", 50),
			AssignmentTimeout: envDuration("DISPATCH_ASSIGNMENT_TIMEOUT", 10*time.Minute),
			SweepInterval:     envDuration("DISPATCH_SWEEP_INTERVAL", 30*time.Second),
		},

		Channel: Channel{
			LocationInterval: envDuration("LOCATION_PUSH_INTERVAL", 15*time.Second),
			CallSignalTTL:    envDuration("CALL_SIGNAL_TTL", 60*time.Second),
		},

		Cache: Cache{
			Capacity:  envInt("CACHE_CAPACITY", 1000),
			Staleness: envDuration("CACHE_STALENESS", 10*time.Second),
		},

		Geocoder: Geocoder{
			APIKey:      env("GEOCODER_API_KEY", ""),
			Timeout:     envDuration("GEOCODER_TIMEOUT", 3*time.Second),
			RateLimit:   envFloat("GEOCODER_RATE_LIMIT", 10),
			CityCenters: envCityCenters("GEOCODER_CITY_CENTERS", "almaty=43.2383,76.9456;astana=51.1605,71.4704"),
		},

		Buffer: Buffer{
			Path:              env("BUFFER_PATH", "./data/buffer.db"),
			ReconcileInterval: envDuration("BUFFER_RECONCILE_INTERVAL", 5*time.Second),
			BatchSize:         envInt("BUFFER_BATCH_SIZE", 50),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func instanceGroupID(prefix, instance string) string {
	if instance == "" {
		return prefix
	}
	return prefix + "-" + instance
}

// defaultInstanceID уникален и для двух процессов на одном хосте.
func defaultInstanceID() string {
	suffix := uuid.NewString()[:8]
	host, err := os.Hostname()
	if err != nil || host == "" {
		return suffix
	}
	return host + "-" + suffix
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		f, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envCityCenters(key string, fallback string) map[string]entities.Coordinates {
	centers, err := ParseCityCenters(env(key, fallback))
	if err != nil {
		centers, _ = ParseCityCenters(fallback)
	}
	return centers
}

// ParseCityCenters разбирает "city=lat,lng;city=lat,lng". Названия городов приводятся к нижнему регистру.
func ParseCityCenters(raw string) (map[string]entities.Coordinates, error) {
	centers := make(map[string]entities.Coordinates)
	for _, pair := range strings.Split(raw, ";") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		name, coords, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("invalid city center %q", pair)
		}
		latRaw, lngRaw, ok := strings.Cut(coords, ",")
		if !ok {
			return nil, fmt.Errorf("invalid coordinates for %q", name)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude for %q: %w", name, err)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude for %q: %w", name, err)
		}
		centers[strings.ToLower(strings.TrimSpace(name))] = entities.Coordinates{Lat: lat, Lng: lng}
	}
	return centers, nil
}
