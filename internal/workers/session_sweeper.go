// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/cardify/internal/logger"
)

// DefaultSweepInterval is used when a non-positive interval is given.
const DefaultSweepInterval = time.Minute

// SessionSweeper periodically evicts expired sessions from an in-process
// store. The Redis store relies on key TTLs and needs no sweeper.
type SessionSweeper struct {
	store    Sweeper
	interval time.Duration

	logger *logger.Logger
}

// NewSessionSweeper returns a worker sweeping store every interval.
func NewSessionSweeper(store Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &SessionSweeper{store: store, interval: interval, logger: logger}
}

// Run implements [Worker].
func (s *SessionSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return nil
		case <-ticker.C:
			if removed := s.store.Sweep(); removed > 0 {
				s.logger.Debug().Int("removed", removed).Msg("expired sessions swept")
			}
		}
	}
}
