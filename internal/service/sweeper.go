package service

import (
	"context"
	"log/slog"
	"time"
)

type AssignmentExpirer interface {
	ExpireStaleAssignments(ctx context.Context, olderThan time.Duration) (int, error)
}

// Sweeper periodically releases assignments the driver never picked up.
type Sweeper struct {
	logger   *slog.Logger
	expirer  AssignmentExpirer
	timeout  time.Duration
	interval time.Duration
}

func NewSweeper(logger *slog.Logger, expirer AssignmentExpirer, timeout, interval time.Duration) *Sweeper {
	return &Sweeper{
		logger:   logger.With(slog.String("service", "sweeper")),
		expirer:  expirer,
		timeout:  timeout,
		interval: interval,
	}
}

// Start blocks until ctx is done. A zero timeout or interval disables the sweeper.
func (s *Sweeper) Start(ctx context.Context) error {
	if s.timeout <= 0 || s.interval <= 0 {
		s.logger.Info("assignment sweeper disabled")
		return nil
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := s.expirer.ExpireStaleAssignments(ctx, s.timeout)
			if err != nil {
				s.logger.ErrorContext(ctx, "failed to expire assignments", slog.Any("error", err))
				continue
			}
			if n > 0 {
				s.logger.InfoContext(ctx, "stale assignments released", slog.Int("count", n))
			}
		}
	}
}
