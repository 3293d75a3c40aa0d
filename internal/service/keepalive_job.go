package service

import (
	"context"
	"sync"
	"time"

	"github.com/kazijehangir/monarch-bridge/internal/logger"
)

const defaultKeepAliveInterval = 15 * time.Minute

type keepAliveJob struct {
	session SessionService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewKeepAliveJob constructs the periodic session pinger.
func NewKeepAliveJob(session SessionService, logger *logger.Logger) KeepAliveJob {
	return &keepAliveJob{session: session, logger: logger}
}

func (j *keepAliveJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		interval = defaultKeepAliveInterval
	}

	ctx, cancel := context.WithCancel(ctx)

	j.mu.Lock()
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run(ctx, interval)

	j.logger.Info().Dur("interval", interval).Msg("keep-alive job started")
}

func (j *keepAliveJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel == nil {
		return
	}

	cancel()
	j.wg.Wait()
	j.logger.Info().Msg("keep-alive job stopped")
}

func (j *keepAliveJob) run(ctx context.Context, interval time.Duration) {
	defer j.wg.Done()

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.tick(ctx)
		}
	}
}

// tick performs a single keep-alive attempt. Failures are logged and the
// loop keeps running: the next tick retries.
func (j *keepAliveJob) tick(ctx context.Context) {
	if !j.session.Authenticated() {
		j.logger.Debug().Msg("keep-alive skipped, no active session")
		return
	}

	j.logger.Info().Msg("performing keep-alive ping...")
	if err := j.session.KeepAlive(ctx); err != nil {
		j.logger.Error().Err(err).Msg("keep-alive ping failed")
		return
	}

	j.logger.Info().Msg("keep-alive ping succeeded")
}
