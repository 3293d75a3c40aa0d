package workers

import (
	"context"
	"time"

	"github.com/kazijehangir/monarch-bridge/internal/service"
)

// keepAliveWorker binds a KeepAliveJob and its tick interval into the
// Worker shape so the aggregate can manage it alongside future workers.
type keepAliveWorker struct {
	job      service.KeepAliveJob
	interval time.Duration
}

func NewKeepAliveWorker(job service.KeepAliveJob, interval time.Duration) Worker {
	return &keepAliveWorker{job: job, interval: interval}
}

func (w *keepAliveWorker) Start(ctx context.Context) {
	w.job.Start(ctx, w.interval)
}

func (w *keepAliveWorker) Stop() {
	w.job.Stop()
}
