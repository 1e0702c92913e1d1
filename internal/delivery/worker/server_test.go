package worker

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"chatline/config"
	mocksusecase "chatline/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSessionSweeper_SweepsOnInterval(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.SweepInterval = 10 * time.Millisecond

	mockUC := mocksusecase.NewMockAccountUsecase(t)
	var sweeps atomic.Int32
	mockUC.EXPECT().
		CleanupExpiredSessions(mock.Anything).
		RunAndReturn(func(context.Context) (int64, error) {
			sweeps.Add(1)

			return 2, nil
		})

	sweeper := &sessionSweeper{
		cfg:            cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		accountUsecase: mockUC,
		stop:           make(chan struct{}),
		stopped:        make(chan struct{}),
	}

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- sweeper.Serve(context.Background())
	}()

	require.Eventually(t, func() bool {
		return sweeps.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	require.NoError(t, sweeper.shutdown(context.Background()))
	assert.NoError(t, <-serveDone)
}

func TestSessionSweeper_ShutdownBeforeFirstTick(t *testing.T) {
	cfg := &config.Config{}
	cfg.Auth.SweepInterval = time.Hour

	mockUC := mocksusecase.NewMockAccountUsecase(t)

	sweeper := &sessionSweeper{
		cfg:            cfg,
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		accountUsecase: mockUC,
		stop:           make(chan struct{}),
		stopped:        make(chan struct{}),
	}

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- sweeper.Serve(context.Background())
	}()

	require.NoError(t, sweeper.shutdown(context.Background()))
	assert.NoError(t, <-serveDone)
	mockUC.AssertNotCalled(t, "CleanupExpiredSessions", mock.Anything)
}
