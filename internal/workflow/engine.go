// Package workflow drives the propose/disambiguate/confirm/cancel state
// machine behind every edit and remove. Prompts are keyed by a uuid that
// the bot embeds in button custom ids, so a stale or superseded prompt is
// detected the moment someone clicks it.
package workflow

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// State of a prompt. Confirmed, Cancelled and Expired are terminal.
type State int

const (
	StateAwaitingChoice State = iota
	StateProposed
	StateConfirmed
	StateCancelled
	StateExpired
)

// Action is the mutation a prompt guards.
type Action int

const (
	ActionEdit Action = iota
	ActionRemove
)

var (
	// ErrStalePrompt covers expired, superseded and unknown prompts;
	// distinct from an authorization refusal.
	ErrStalePrompt = errors.New("prompt is no longer valid")
	// ErrUnauthorized is returned when the acting user lacks the manage
	// events capability. The prompt stays live for an authorized actor.
	ErrUnauthorized = errors.New("missing manage events permission")
	// ErrNotAwaitingChoice rejects a candidate pick on a prompt that is
	// past disambiguation.
	ErrNotAwaitingChoice = errors.New("prompt is not awaiting a choice")
	// ErrUnknownCandidate rejects a pick that was never offered.
	ErrUnknownCandidate = errors.New("event is not among the candidates")
)

// Prompt is one in-flight confirmation. EventID is zero until a candidate
// has been chosen.
type Prompt struct {
	ID         string
	GuildID    int64
	Action     Action
	State      State
	EventID    uint
	Candidates []uint
	Changes    Changes
	CreatedAt  time.Time
}

// Engine owns all live prompts. The timeout is the engine's, explicit and
// configurable, not a property of any UI framework.
type Engine struct {
	mu      sync.Mutex
	prompts map[string]*Prompt
	timeout time.Duration
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects a time source; tests use it to force expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(timeout time.Duration, logger *zap.Logger, opts ...Option) *Engine {
	e := &Engine{
		prompts: make(map[string]*Prompt),
		timeout: timeout,
		now:     time.Now,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Propose opens a confirmation prompt for a single resolved event.
func (e *Engine) Propose(guildID int64, action Action, eventID uint, changes Changes) *Prompt {
	return e.add(&Prompt{
		GuildID: guildID,
		Action:  action,
		State:   StateProposed,
		EventID: eventID,
		Changes: changes,
	})
}

// ProposeChoice opens a disambiguation prompt over several candidates.
func (e *Engine) ProposeChoice(guildID int64, action Action, candidates []uint, changes Changes) *Prompt {
	return e.add(&Prompt{
		GuildID:    guildID,
		Action:     action,
		State:      StateAwaitingChoice,
		Candidates: candidates,
		Changes:    changes,
	})
}

func (e *Engine) add(p *Prompt) *Prompt {
	p.ID = uuid.NewString()
	p.CreatedAt = e.now()

	e.mu.Lock()
	e.prompts[p.ID] = p
	e.mu.Unlock()

	snapshot := *p
	return &snapshot
}

// Select moves an AwaitingChoice prompt to Proposed for the picked
// candidate.
func (e *Engine) Select(promptID string, eventID uint) (*Prompt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.live(promptID)
	if err != nil {
		return nil, err
	}
	if p.State != StateAwaitingChoice {
		return nil, ErrNotAwaitingChoice
	}
	for _, candidate := range p.Candidates {
		if candidate == eventID {
			p.State = StateProposed
			p.EventID = eventID
			snapshot := *p
			return &snapshot, nil
		}
	}
	return nil, ErrUnknownCandidate
}

// Confirm terminates the prompt successfully and hands it to the caller,
// which performs the store mutation. Expiry is checked before
// authorization: a stale prompt is stale for everyone. An unauthorized
// confirm refuses without touching the prompt.
func (e *Engine) Confirm(promptID string, authorized bool) (*Prompt, error) {
	return e.finish(promptID, authorized, StateConfirmed)
}

// Cancel terminates the prompt without mutating anything. Because both
// Confirm and Cancel remove the prompt under the same lock, whichever
// arrives first wins a race.
func (e *Engine) Cancel(promptID string, authorized bool) (*Prompt, error) {
	return e.finish(promptID, authorized, StateCancelled)
}

func (e *Engine) finish(promptID string, authorized bool, terminal State) (*Prompt, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	p, err := e.live(promptID)
	if err != nil {
		return nil, err
	}
	if !authorized {
		return nil, ErrUnauthorized
	}
	if terminal == StateConfirmed && p.State != StateProposed {
		return nil, ErrNotAwaitingChoice
	}
	p.State = terminal
	delete(e.prompts, promptID)
	snapshot := *p
	return &snapshot, nil
}

// live returns the prompt if it exists and has not expired; an expired
// prompt is removed on the spot. Callers hold e.mu.
func (e *Engine) live(promptID string) (*Prompt, error) {
	p, ok := e.prompts[promptID]
	if !ok {
		return nil, ErrStalePrompt
	}
	if e.now().Sub(p.CreatedAt) > e.timeout {
		p.State = StateExpired
		delete(e.prompts, promptID)
		return nil, ErrStalePrompt
	}
	return p, nil
}

// Sweep drops every expired prompt and reports how many were removed.
// Run periodically; expiry is also enforced lazily on access.
func (e *Engine) Sweep() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()
	removed := 0
	for id, p := range e.prompts {
		if now.Sub(p.CreatedAt) > e.timeout {
			delete(e.prompts, id)
			removed++
		}
	}
	if removed > 0 {
		e.logger.Debug("swept expired prompts", zap.Int("count", removed))
	}
	return removed
}

// Pending reports how many prompts are live.
func (e *Engine) Pending() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.prompts)
}
