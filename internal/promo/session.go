package promo

import (
	"context"
	"sync"

	"github.com/shopverse/storefront/internal/models"
)

// State is the lifecycle of one promo input session:
// Idle -> Validating -> {Valid, Invalid}, re-entering Validating on edits.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateValid
	StateInvalid
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateValid:
		return "valid"
	case StateInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Session tracks one promo code input as the user edits it. Lookups run
// asynchronously and may overlap further edits; every edit bumps a sequence
// number and a lookup result is applied only if its edit is still the latest,
// so a stale response can never overwrite newer state. Superseded lookups are
// also cancelled.
type Session struct {
	validator *Validator

	mu     sync.Mutex
	seq    uint64
	state  State
	result models.DiscountResult
	cancel context.CancelFunc
}

func NewSession(validator *Validator) *Session {
	return &Session{validator: validator, state: StateIdle}
}

// Edit records a new value of the code input and kicks off validation.
// Short or gated codes resolve to Invalid synchronously without a lookup.
func (s *Session) Edit(ctx context.Context, rawCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	editSeq := s.seq

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	code := Normalize(rawCode)

	if !s.validator.Enabled() || len(code) < MinCodeLength {
		s.state = StateInvalid
		s.result = models.DiscountResult{Valid: false}

		return
	}

	s.state = StateValidating

	lookupCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	go func() {
		result := s.validator.Validate(lookupCtx, code)
		cancel()

		s.mu.Lock()
		defer s.mu.Unlock()

		// A newer edit owns the session now; this response is stale.
		if s.seq != editSeq {
			return
		}

		s.result = result
		if result.Valid {
			s.state = StateValid
		} else {
			s.state = StateInvalid
		}
	}()
}

// Snapshot returns the current state and last applied result.
func (s *Session) Snapshot() (State, models.DiscountResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state, s.result
}
