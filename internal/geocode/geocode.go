package geocode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/pkg/utils"
	"golang.org/x/time/rate"
	"googlemaps.github.io/maps"
)

var errNoResults = errors.New("no geocoding results")

// Provider is the subset of *maps.Client the geocoder needs.
type Provider interface {
	Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
	ReverseGeocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error)
}

// GeoPoint is a resolved location. Fallback is set when the provider
// could not resolve it and the point is the city center, if one is known.
type GeoPoint struct {
	Coordinates      *entities.Coordinates
	FormattedAddress string
	City             string
	Fallback         bool
}

type Options struct {
	Timeout     time.Duration
	RateLimit   float64
	CityCenters map[string]entities.Coordinates
}

type Client struct {
	logger   *slog.Logger
	provider Provider
	limiter  *rate.Limiter
	timeout  time.Duration
	centers  map[string]entities.Coordinates
	retry    utils.RetryConfig
}

// NewProvider builds a Google Maps client. An empty key yields a nil
// provider and every lookup falls back to the city center.
func NewProvider(apiKey string) (Provider, error) {
	if apiKey == "" {
		return nil, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return client, nil
}

func New(logger *slog.Logger, provider Provider, opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 3 * time.Second
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 10
	}
	centers := make(map[string]entities.Coordinates, len(opts.CityCenters))
	for city, c := range opts.CityCenters {
		centers[normalizeCity(city)] = c
	}
	return &Client{
		logger:   logger.With(slog.String("component", "geocoder")),
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(opts.RateLimit), int(opts.RateLimit)+1),
		timeout:  opts.Timeout,
		centers:  centers,
		retry:    utils.RetryConfig{MaxAttempts: 2, InitialDelay: 100 * time.Millisecond},
	}
}

func (c *Client) CityCenter(city string) (entities.Coordinates, bool) {
	center, ok := c.centers[normalizeCity(city)]
	return center, ok
}

// Forward resolves an address within city. On failure it returns the
// city fallback point together with an error wrapping ErrUpstreamUnavailable.
func (c *Client) Forward(ctx context.Context, address, city string) (GeoPoint, error) {
	req := &maps.GeocodingRequest{
		Address:    address,
		Components: map[maps.Component]string{maps.ComponentLocality: city},
	}
	point, err := c.lookup(ctx, func(ctx context.Context) ([]maps.GeocodingResult, error) {
		return c.provider.Geocode(ctx, req)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "forward geocoding failed", slog.String("city", city), slog.Any("error", err))
		return c.fallback(city), err
	}
	if point.City == "" {
		point.City = city
	}
	return point, nil
}

func (c *Client) Reverse(ctx context.Context, coords entities.Coordinates) (GeoPoint, error) {
	req := &maps.GeocodingRequest{
		LatLng: &maps.LatLng{Lat: coords.Lat, Lng: coords.Lng},
	}
	point, err := c.lookup(ctx, func(ctx context.Context) ([]maps.GeocodingResult, error) {
		return c.provider.ReverseGeocode(ctx, req)
	})
	if err != nil {
		c.logger.WarnContext(ctx, "reverse geocoding failed", slog.Any("error", err))
		return GeoPoint{Coordinates: &coords, Fallback: true}, err
	}
	return point, nil
}

func (c *Client) fallback(city string) GeoPoint {
	point := GeoPoint{City: city, Fallback: true}
	if center, ok := c.CityCenter(city); ok {
		point.Coordinates = &center
	}
	return point
}

func (c *Client) lookup(ctx context.Context, call func(ctx context.Context) ([]maps.GeocodingResult, error)) (GeoPoint, error) {
	if c.provider == nil {
		return GeoPoint{}, fmt.Errorf("geocoder disabled: %w", entities.ErrUpstreamUnavailable)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var results []maps.GeocodingResult
	err := utils.Retry(ctx, c.retry, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		res, err := call(ctx)
		if err != nil {
			return err
		}
		if len(res) == 0 {
			return errNoResults
		}
		results = res
		return nil
	}, errNoResults)
	if err != nil {
		return GeoPoint{}, fmt.Errorf("geocoding: %w: %w", entities.ErrUpstreamUnavailable, err)
	}

	return toGeoPoint(results[0]), nil
}

func toGeoPoint(res maps.GeocodingResult) GeoPoint {
	loc := entities.Coordinates{Lat: res.Geometry.Location.Lat, Lng: res.Geometry.Location.Lng}
	point := GeoPoint{
		Coordinates:      &loc,
		FormattedAddress: res.FormattedAddress,
	}
	for _, comp := range res.AddressComponents {
		for _, typ := range comp.Types {
			if typ == string(maps.ComponentLocality) {
				point.City = comp.LongName
			}
		}
	}
	return point
}

func normalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
