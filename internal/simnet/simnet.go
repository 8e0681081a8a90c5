// Package simnet emulates the network round-trip behind every mock operation:
// a uniform delay drawn from the policy's window, then a failure roll against
// the policy's rate. The delay is a plain sleep on the calling goroutine, so
// overlapping calls never serialize. There is no cancellation: a started delay
// always runs to completion, matching the contract the mock stands in for.
package simnet

import (
	"context"
	"math/rand/v2"
	"time"

	"stash-backend/internal/pkg/config"
	"stash-backend/internal/pkg/errs"
)

// Policy describes one endpoint's latency and failure profile.
type Policy struct {
	MinDelay       time.Duration
	MaxDelay       time.Duration
	FailureRate    float64
	FailureCode    string
	FailureMessage string
	RetryAfter     time.Duration
}

// Simulator runs policies. Implementations must be safe for concurrent use.
type Simulator interface {
	// Call sleeps for a duration in [MinDelay, MaxDelay] and then either
	// returns nil or a SERVICE_UNAVAILABLE-class error per FailureRate.
	// The failure roll is true randomness on purpose: it must never feed
	// into seeded business values.
	Call(ctx context.Context, p Policy) error

	// Roll draws a single failure check with no delay, for soft failures
	// reported inside a success envelope rather than as errors. Always
	// false when failures are disabled.
	Roll(rate float64) bool
}

type simulator struct {
	delayScale      float64
	failuresEnabled bool
}

func New(cfg config.SimConfig) Simulator {
	return &simulator{
		delayScale:      cfg.DelayScale,
		failuresEnabled: cfg.FailuresEnabled,
	}
}

func (s *simulator) Call(_ context.Context, p Policy) error {
	if d := s.drawDelay(p); d > 0 {
		time.Sleep(d)
	}

	if s.failuresEnabled && p.FailureRate > 0 && rand.Float64() < p.FailureRate {
		msg := p.FailureMessage
		if msg == "" {
			msg = "Service temporarily unavailable"
		}
		return errs.Unavailable(p.FailureCode, msg, p.RetryAfter)
	}
	return nil
}

func (s *simulator) Roll(rate float64) bool {
	return s.failuresEnabled && rate > 0 && rand.Float64() < rate
}

func (s *simulator) drawDelay(p Policy) time.Duration {
	if s.delayScale <= 0 || p.MaxDelay <= 0 {
		return 0
	}
	window := p.MaxDelay - p.MinDelay
	d := p.MinDelay
	if window > 0 {
		d += time.Duration(rand.Int64N(int64(window) + 1))
	}
	return time.Duration(float64(d) * s.delayScale)
}
