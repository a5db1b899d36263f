package config

import (
	"strings"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCityCenters(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		want    map[string]entities.Coordinates
		wantErr bool
	}{
		{
			name: "two cities",
			raw:  "Almaty=43.2383,76.9456; astana=51.1605,71.4704",
			want: map[string]entities.Coordinates{
				"almaty": {Lat: 43.2383, Lng: 76.9456},
				"astana": {Lat: 51.1605, Lng: 71.4704},
			},
		},
		{name: "empty", raw: "", want: map[string]entities.Coordinates{}},
		{name: "missing separator", raw: "almaty", wantErr: true},
		{name: "bad latitude", raw: "almaty=x,76", wantErr: true},
		{name: "missing longitude", raw: "almaty=43.2", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseCityCenters(tc.raw)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("JWT_SECRET", "0123456789abcdef")

	cfg := New()
	assert.NoError(t, cfg.Validate())

	assert.Equal(t, 5.0, cfg.Fee.MinFee)
	assert.Equal(t, 5.0, cfg.Fee.RatePerKm)
	assert.Equal(t, 0.2, cfg.Fee.EarningsShare)
	assert.Equal(t, 10*time.Second, cfg.Cache.Staleness)
	assert.Equal(t, 15*time.Second, cfg.Channel.LocationInterval)
	assert.Equal(t, 3*time.Second, cfg.Geocoder.Timeout)
	assert.Equal(t, "order-events", cfg.Kafka.EventsTopic)
	assert.Contains(t, cfg.Geocoder.CityCenters, "almaty")
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("FEE_MIN", "7.5")
	t.Setenv("FEE_RATE_PER_KM", "not-a-number")
	t.Setenv("CACHE_STALENESS", "3s")
	t.Setenv("GEOCODER_CITY_CENTERS", "broken")

	cfg := New()
	assert.Equal(t, 7.5, cfg.Fee.MinFee)
	assert.Equal(t, 5.0, cfg.Fee.RatePerKm)
	assert.Equal(t, 3*time.Second, cfg.Cache.Staleness)
	assert.Contains(t, cfg.Geocoder.CityCenters, "astana")
}

func TestValidate_MissingSecret(t *testing.T) {
	t.Setenv("POSTGRES_USER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "postgres")
	t.Setenv("JWT_SECRET", "")

	assert.Error(t, New().Validate())
}

func TestNew_KafkaGroupPerInstance(t *testing.T) {
	a, b := New(), New()
	assert.True(t, strings.HasPrefix(a.Kafka.GroupID, "food-dispatch-"))
	assert.NotEqual(t, a.Kafka.GroupID, b.Kafka.GroupID)

	t.Setenv("KAFKA_GROUP_PREFIX", "dispatch")
	t.Setenv("INSTANCE_ID", "pod-7")
	assert.Equal(t, "dispatch-pod-7", New().Kafka.GroupID)
}
