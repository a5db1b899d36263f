package buffer_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/buffer"
	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSink struct {
	mu       sync.Mutex
	failures int
	reject   error
	stored   map[string]int
}

var errUnreachable = fmt.Errorf("%w: connection refused", entities.ErrStoreUnavailable)

func (s *fakeSink) ReconcileBuffered(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reject != nil {
		return s.reject
	}
	if s.failures > 0 {
		s.failures--
		return errUnreachable
	}
	if s.stored == nil {
		s.stored = make(map[string]int)
	}
	s.stored[o.ID]++
	return nil
}

func newQueue(t *testing.T) *buffer.Queue {
	q, err := buffer.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { q.Close() })
	return q
}

func newOrder(id string) entities.Order {
	return entities.Order{
		ID:         id,
		CustomerID: "c1",
		Status:     entities.StatusPending,
		Items:      []entities.LineItem{{ProductID: "p1", Name: "Plov", UnitPrice: 50, Quantity: 2}},
		Subtotal:   100,
		Total:      105,
		CreatedAt:  time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestQueue_EnqueueIsIdempotent(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, newOrder("o1")))
	changed := newOrder("o1")
	changed.Total = 999
	require.NoError(t, q.Enqueue(ctx, changed))

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	entries, broken, err := q.Pending(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, broken)
	require.Len(t, entries, 1)
	assert.Equal(t, 105.0, entries[0].Order.Total)
	assert.True(t, entries[0].Order.Buffered)
	assert.Equal(t, "Plov", entries[0].Order.Items[0].Name)
}

func TestReconciler_ReconcilesExactlyOnce(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()
	sink := &fakeSink{failures: 1}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := buffer.NewReconciler(logger, q, sink, time.Second, 10)

	require.NoError(t, q.Enqueue(ctx, newOrder("o1")))

	// первый проход: хранилище недоступно, запись остаётся
	done, err := r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, done)

	entries, _, err := q.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Attempts)
	assert.Equal(t, errUnreachable.Error(), entries[0].LastError)

	done, err = r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, done)

	done, err = r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, done)

	assert.Equal(t, map[string]int{"o1": 1}, sink.stored)
	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReconciler_DropsRejectedOrder(t *testing.T) {
	q := newQueue(t)
	ctx := context.Background()
	sink := &fakeSink{reject: errors.New("numeric field overflow")}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := buffer.NewReconciler(logger, q, sink, time.Second, 10)

	require.NoError(t, q.Enqueue(ctx, newOrder("o1")))

	done, err := r.Drain(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, done)

	// отказ хранилища не повторяется на каждом тике
	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestQueue_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "buffer.db")
	ctx := context.Background()

	q, err := buffer.Open(path)
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(ctx, newOrder("o1")))
	require.NoError(t, q.Close())

	q, err = buffer.Open(path)
	require.NoError(t, err)
	defer q.Close()

	n, err := q.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestReconciler_StartStopsOnCancel(t *testing.T) {
	q := newQueue(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := buffer.NewReconciler(logger, q, &fakeSink{}, 10*time.Millisecond, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Start(ctx) }()

	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop")
	}
}
