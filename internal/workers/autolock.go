// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

const (
	minCheckInterval = time.Second
	maxCheckInterval = 30 * time.Second
)

// AutoLocker locks the engine once it has been idle for the configured
// duration.
type AutoLocker struct {
	engine   Lockable
	after    time.Duration
	interval time.Duration
	now      func() time.Time
	done     chan struct{}
	logger   *logger.Logger
}

func NewAutoLocker(engine Lockable, after time.Duration, log *logger.Logger) *AutoLocker {
	return &AutoLocker{
		engine:   engine,
		after:    after,
		interval: min(max(after/4, minCheckInterval), maxCheckInterval),
		now:      time.Now,
		done:     make(chan struct{}),
		logger:   log,
	}
}

// Run starts the check loop in a goroutine.
func (a *AutoLocker) Run(ctx context.Context) {
	go a.loop(ctx)
}

// Done is closed when the loop has stopped.
func (a *AutoLocker) Done() <-chan struct{} {
	return a.done
}

func (a *AutoLocker) loop(ctx context.Context) {
	defer close(a.done)

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	a.logger.Debug().Str("func", "*AutoLocker.loop").Dur("after", a.after).Msg("auto-lock started")
	for {
		select {
		case <-ctx.Done():
			a.logger.Debug().Str("func", "*AutoLocker.loop").Msg("auto-lock stopped")
			return
		case <-ticker.C:
			a.check()
		}
	}
}

// check locks an unlocked engine that has been idle long enough. It
// reports whether it locked.
func (a *AutoLocker) check() bool {
	if a.engine.IsLocked() {
		return false
	}

	idle := a.now().Sub(a.engine.LastActivity())
	if idle < a.after {
		return false
	}

	a.engine.Lock()
	a.logger.Info().Str("func", "*AutoLocker.check").Dur("idle", idle).Msg("vaults locked after inactivity")
	return true
}
