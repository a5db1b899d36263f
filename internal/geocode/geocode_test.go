package geocode_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/SergeyBogomolovv/food-dispatch/internal/geocode"
	mocks "github.com/SergeyBogomolovv/food-dispatch/internal/geocode/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"googlemaps.github.io/maps"
)

var almaty = entities.Coordinates{Lat: 43.2383, Lng: 76.9456}

func newClient(provider geocode.Provider) *geocode.Client {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return geocode.New(logger, provider, geocode.Options{
		Timeout:     time.Second,
		RateLimit:   100,
		CityCenters: map[string]entities.Coordinates{"Almaty": almaty},
	})
}

func result(lat, lng float64, city string) []maps.GeocodingResult {
	return []maps.GeocodingResult{{
		FormattedAddress: "Abay Ave 10, " + city,
		Geometry:         maps.AddressGeometry{Location: maps.LatLng{Lat: lat, Lng: lng}},
		AddressComponents: []maps.AddressComponent{
			{LongName: city, Types: []string{"locality", "political"}},
		},
	}}
}

func TestClient_Forward(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(p *mocks.MockProvider)
		wantCoords   *entities.Coordinates
		wantFallback bool
		wantErr      error
	}{
		{
			name: "resolved",
			mockBehavior: func(p *mocks.MockProvider) {
				p.EXPECT().Geocode(mock.Anything, mock.MatchedBy(func(r *maps.GeocodingRequest) bool {
					return r.Address == "Abay Ave 10" && r.Components[maps.ComponentLocality] == "Almaty"
				})).Return(result(43.25, 76.95, "Almaty"), nil).Once()
			},
			wantCoords: &entities.Coordinates{Lat: 43.25, Lng: 76.95},
		},
		{
			name: "retry once then success",
			mockBehavior: func(p *mocks.MockProvider) {
				p.EXPECT().Geocode(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
				p.EXPECT().Geocode(mock.Anything, mock.Anything).Return(result(43.25, 76.95, "Almaty"), nil).Once()
			},
			wantCoords: &entities.Coordinates{Lat: 43.25, Lng: 76.95},
		},
		{
			name: "provider down falls back to city center",
			mockBehavior: func(p *mocks.MockProvider) {
				p.EXPECT().Geocode(mock.Anything, mock.Anything).Return(nil, errors.New("503")).Times(2)
			},
			wantCoords:   &almaty,
			wantFallback: true,
			wantErr:      entities.ErrUpstreamUnavailable,
		},
		{
			name: "zero results is not retried",
			mockBehavior: func(p *mocks.MockProvider) {
				p.EXPECT().Geocode(mock.Anything, mock.Anything).Return([]maps.GeocodingResult{}, nil).Once()
			},
			wantCoords:   &almaty,
			wantFallback: true,
			wantErr:      entities.ErrUpstreamUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			provider := mocks.NewMockProvider(t)
			tc.mockBehavior(provider)

			point, err := newClient(provider).Forward(context.Background(), "Abay Ave 10", "Almaty")
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "Almaty", point.City)
			}
			assert.Equal(t, tc.wantFallback, point.Fallback)
			assert.Equal(t, tc.wantCoords, point.Coordinates)
		})
	}
}

func TestClient_ForwardUnknownCity(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.EXPECT().Geocode(mock.Anything, mock.Anything).Return(nil, errors.New("down")).Times(2)

	point, err := newClient(provider).Forward(context.Background(), "Main st 1", "Shymkent")
	assert.ErrorIs(t, err, entities.ErrUpstreamUnavailable)
	assert.True(t, point.Fallback)
	assert.Nil(t, point.Coordinates)
}

func TestClient_Disabled(t *testing.T) {
	c := newClient(nil)

	point, err := c.Forward(context.Background(), "Abay Ave 10", "almaty")
	assert.ErrorIs(t, err, entities.ErrUpstreamUnavailable)
	assert.True(t, point.Fallback)
	assert.Equal(t, &almaty, point.Coordinates)

	center, ok := c.CityCenter(" ALMATY ")
	assert.True(t, ok)
	assert.Equal(t, almaty, center)
}

func TestClient_Reverse(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.EXPECT().ReverseGeocode(mock.Anything, mock.MatchedBy(func(r *maps.GeocodingRequest) bool {
		return r.LatLng != nil && r.LatLng.Lat == 43.25
	})).Return(result(43.25, 76.95, "Almaty"), nil).Once()

	point, err := newClient(provider).Reverse(context.Background(), entities.Coordinates{Lat: 43.25, Lng: 76.95})
	require.NoError(t, err)
	assert.Equal(t, "Abay Ave 10, Almaty", point.FormattedAddress)
	assert.Equal(t, "Almaty", point.City)
	assert.False(t, point.Fallback)
}

func TestClient_ReverseFailure(t *testing.T) {
	provider := mocks.NewMockProvider(t)
	provider.EXPECT().ReverseGeocode(mock.Anything, mock.Anything).Return(nil, errors.New("down")).Times(2)

	coords := entities.Coordinates{Lat: 1, Lng: 2}
	point, err := newClient(provider).Reverse(context.Background(), coords)
	assert.ErrorIs(t, err, entities.ErrUpstreamUnavailable)
	assert.True(t, point.Fallback)
	assert.Equal(t, &coords, point.Coordinates)
}
