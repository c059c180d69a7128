package workers

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. An idle timeout of zero
// disables auto-lock.
func NewWorkers(cfg config.Workers, engine Lockable, log *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.AutoLockAfter > 0 {
		w.workers = append(w.workers, NewAutoLocker(engine, cfg.AutoLockAfter, log))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Len returns the number of enabled workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
