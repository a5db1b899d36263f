package channel

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/redis/go-redis/v9"
)

// Store keeps ephemeral channel state: live driver positions and call signals.
// Durable state lives in postgres.
type Store struct {
	rdb         redis.UniversalClient
	locationTTL time.Duration
	callTTL     time.Duration
}

func NewStore(rdb redis.UniversalClient, locationTTL, callTTL time.Duration) *Store {
	return &Store{rdb: rdb, locationTTL: locationTTL, callTTL: callTTL}
}

func locationKey(orderID string) string {
	return "order:" + orderID + ":driver_location"
}

func callKey(callID string) string {
	return "call_signal:" + callID
}

func driverCallsKey(driverID string) string {
	return "driver:" + driverID + ":calls"
}

type location struct {
	OrderID   string    `json:"order_id"`
	DriverID  string    `json:"driver_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Store) SaveLocation(ctx context.Context, loc entities.DriverLocation) error {
	data, err := json.Marshal(location{
		OrderID:   loc.OrderID,
		DriverID:  loc.DriverID,
		Lat:       loc.Coordinates.Lat,
		Lng:       loc.Coordinates.Lng,
		UpdatedAt: loc.UpdatedAt,
	})
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, locationKey(loc.OrderID), data, s.locationTTL).Err(); err != nil {
		return fmt.Errorf("failed to save location: %w", err)
	}
	return nil
}

// GetLocation returns the live position and false if none is fresh.
func (s *Store) GetLocation(ctx context.Context, orderID string) (entities.DriverLocation, bool, error) {
	data, err := s.rdb.Get(ctx, locationKey(orderID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.DriverLocation{}, false, nil
	}
	if err != nil {
		return entities.DriverLocation{}, false, fmt.Errorf("failed to get location: %w", err)
	}

	var loc location
	if err := json.Unmarshal(data, &loc); err != nil {
		return entities.DriverLocation{}, false, fmt.Errorf("failed to decode location: %w", err)
	}
	return entities.DriverLocation{
		OrderID:     loc.OrderID,
		DriverID:    loc.DriverID,
		Coordinates: entities.Coordinates{Lat: loc.Lat, Lng: loc.Lng},
		UpdatedAt:   loc.UpdatedAt,
	}, true, nil
}

func (s *Store) ClearLocation(ctx context.Context, orderID string) error {
	if err := s.rdb.Del(ctx, locationKey(orderID)).Err(); err != nil {
		return fmt.Errorf("failed to clear location: %w", err)
	}
	return nil
}

type callSignal struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	DriverID      string    `json:"driver_id"`
	CustomerID    string    `json:"customer_id"`
	CustomerPhone string    `json:"customer_phone"`
	CreatedAt     time.Time `json:"created_at"`
	ExpiresAt     time.Time `json:"expires_at"`
}

// SaveCall stores the signal under its own key with a TTL and indexes it in
// the driver's sorted set scored by expiry.
func (s *Store) SaveCall(ctx context.Context, c entities.CallSignal) error {
	data, err := json.Marshal(callSignal(c))
	if err != nil {
		return err
	}

	index := driverCallsKey(c.DriverID)
	_, err = s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, callKey(c.ID), data, s.callTTL)
		pipe.ZAdd(ctx, index, redis.Z{Score: float64(c.ExpiresAt.UnixMilli()), Member: c.ID})
		pipe.ZRemRangeByScore(ctx, index, "-inf", strconv.FormatInt(c.CreatedAt.UnixMilli(), 10))
		pipe.Expire(ctx, index, s.callTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save call signal: %w", err)
	}
	return nil
}

// PendingCalls returns the driver's signals that have not expired at now.
func (s *Store) PendingCalls(ctx context.Context, driverID string, now time.Time) ([]entities.CallSignal, error) {
	index := driverCallsKey(driverID)
	nowMs := strconv.FormatInt(now.UnixMilli(), 10)

	if err := s.rdb.ZRemRangeByScore(ctx, index, "-inf", nowMs).Err(); err != nil {
		return nil, fmt.Errorf("failed to trim call index: %w", err)
	}
	ids, err := s.rdb.ZRangeByScore(ctx, index, &redis.ZRangeBy{Min: "(" + nowMs, Max: "+inf"}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read call index: %w", err)
	}
	if len(ids) == 0 {
		return []entities.CallSignal{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = callKey(id)
	}
	values, err := s.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read call signals: %w", err)
	}

	res := make([]entities.CallSignal, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var c callSignal
		if err := json.Unmarshal([]byte(raw), &c); err != nil {
			continue
		}
		res = append(res, entities.CallSignal(c))
	}
	return res, nil
}

// DeleteCall removes a signal from the driver's index. A signal that is not
// in that driver's index is reported as ErrCallNotFound.
func (s *Store) DeleteCall(ctx context.Context, driverID, callID string) error {
	removed, err := s.rdb.ZRem(ctx, driverCallsKey(driverID), callID).Result()
	if err != nil {
		return fmt.Errorf("failed to dismiss call: %w", err)
	}
	if removed == 0 {
		return entities.ErrCallNotFound
	}
	if err := s.rdb.Del(ctx, callKey(callID)).Err(); err != nil {
		return fmt.Errorf("failed to dismiss call: %w", err)
	}
	return nil
}
