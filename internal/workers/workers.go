package workers

import "context"

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates the given workers. Start launches them in order;
// Stop shuts them down in reverse.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}
