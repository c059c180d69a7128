// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// Run starts the worker and returns; the worker stops when ctx is done.
type Worker interface {
	Run(ctx context.Context)
}

// Lockable is the part of the vault engine the auto-lock worker needs.
// service.VaultEngine satisfies it.
type Lockable interface {
	IsLocked() bool
	Lock()
	LastActivity() time.Time
}
