// Package worker runs background jobs that are not tied to a request.
package worker

import (
	"context"
	"log/slog"
	"time"

	"chatline/config"
	"chatline/internal/delivery"
	"chatline/internal/usecase"

	"go.uber.org/fx"
)

// sessionSweeper periodically purges expired rows from the session registry.
// Expired credentials are already rejected at authentication time; the sweep
// only keeps the registry from growing without bound.
type sessionSweeper struct {
	cfg            *config.Config
	logger         *slog.Logger
	accountUsecase usecase.AccountUsecase
	stop           chan struct{}
	stopped        chan struct{}
}

// SweeperParams holds dependencies for the session sweeper.
type SweeperParams struct {
	fx.In

	Lc             fx.Lifecycle
	Cfg            *config.Config
	Logger         *slog.Logger
	AccountUsecase usecase.AccountUsecase
}

// NewSessionSweeper creates the background session sweeper.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	sweeper := &sessionSweeper{
		cfg:            params.Cfg,
		logger:         params.Logger,
		accountUsecase: params.AccountUsecase,
		stop:           make(chan struct{}),
		stopped:        make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: sweeper.shutdown,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until shutdown.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.stopped)

	interval := s.cfg.Auth.SweepInterval
	s.logger.Info("Starting session sweeper", slog.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	removed, err := s.accountUsecase.CleanupExpiredSessions(ctx)
	if err != nil {
		s.logger.Error("Session sweep failed", slog.Any("error", err))

		return
	}

	if removed > 0 {
		s.logger.Info("Purged expired sessions", slog.Int64("removed", removed))
	}
}

func (s *sessionSweeper) shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down session sweeper")
	close(s.stop)

	select {
	case <-s.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
