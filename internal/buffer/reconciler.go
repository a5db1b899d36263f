package buffer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/food-dispatch/internal/entities"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	bufferedOrders = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "food_dispatch",
		Subsystem: "buffer",
		Name:      "pending_orders",
		Help:      "Orders waiting in the local buffer for the primary store",
	})
	reconciledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "food_dispatch",
		Subsystem: "buffer",
		Name:      "reconciled_total",
		Help:      "Buffered orders handed to the primary store by result",
	}, []string{"result"})
)

// Sink принимает заказы из буфера, когда хранилище снова доступно.
type Sink interface {
	ReconcileBuffered(ctx context.Context, o entities.Order) error
}

type Reconciler struct {
	logger   *slog.Logger
	queue    *Queue
	sink     Sink
	interval time.Duration
	batch    int
}

func NewReconciler(logger *slog.Logger, queue *Queue, sink Sink, interval time.Duration, batch int) *Reconciler {
	return &Reconciler{
		logger:   logger.With(slog.String("starter", "buffer-reconciler")),
		queue:    queue,
		sink:     sink,
		interval: interval,
		batch:    batch,
	}
}

func (r *Reconciler) Start(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := r.Drain(ctx); err != nil && !errors.Is(err, context.Canceled) {
				r.logger.Error("failed to drain buffer", slog.Any("error", err))
			}
		}
	}
}

// Drain передаёт в sink одну пачку. Строка удаляется, когда sink её принял
// или окончательно отверг. При недоступном хранилище строка остаётся,
// а счётчик попыток растёт.
func (r *Reconciler) Drain(ctx context.Context) (int, error) {
	entries, broken, err := r.queue.Pending(ctx, r.batch)
	if err != nil {
		return 0, err
	}
	for _, id := range broken {
		r.logger.Error("buffered order is unreadable", slog.String("order_id", id))
		_ = r.queue.MarkFailed(ctx, id, entities.ErrInvalidOrder)
	}

	done := 0
	for _, e := range entries {
		if err := r.sink.ReconcileBuffered(ctx, e.Order); err != nil {
			if ctx.Err() != nil {
				return done, ctx.Err()
			}
			if !errors.Is(err, entities.ErrStoreUnavailable) {
				// хранилище доступно, но заказ не принимает: повтор не поможет
				reconciledTotal.WithLabelValues("rejected").Inc()
				r.logger.Error("buffered order rejected by store, dropping",
					slog.String("order_id", e.Order.ID),
					slog.String("customer_id", e.Order.CustomerID),
					slog.Any("error", err),
				)
				if err := r.queue.Delete(ctx, e.Order.ID); err != nil {
					return done, err
				}
				continue
			}
			reconciledTotal.WithLabelValues("error").Inc()
			r.logger.Warn("failed to reconcile buffered order",
				slog.String("order_id", e.Order.ID),
				slog.Int("attempts", e.Attempts+1),
				slog.Any("error", err),
			)
			if err := r.queue.MarkFailed(ctx, e.Order.ID, err); err != nil {
				return done, err
			}
			continue
		}
		if err := r.queue.Delete(ctx, e.Order.ID); err != nil {
			return done, err
		}
		reconciledTotal.WithLabelValues("ok").Inc()
		done++
	}

	if n, err := r.queue.Len(ctx); err == nil {
		bufferedOrders.Set(float64(n))
	}
	if done > 0 {
		r.logger.Info("buffered orders reconciled", slog.Int("count", done))
	}
	return done, nil
}
