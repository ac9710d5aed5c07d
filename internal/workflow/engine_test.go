package workflow

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// testClock is a settable time source.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newTestEngine() (*Engine, *testClock) {
	clock := newTestClock()
	return NewEngine(3*time.Minute, zap.NewNop(), WithClock(clock.Now)), clock
}

func TestConfirmProposedPrompt(t *testing.T) {
	engine, _ := newTestEngine()
	title := "new title"
	prompt := engine.Propose(1, ActionEdit, 42, Changes{Title: &title})

	confirmed, err := engine.Confirm(prompt.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, confirmed.State)
	assert.Equal(t, uint(42), confirmed.EventID)
	require.NotNil(t, confirmed.Changes.Title)
	assert.Equal(t, "new title", *confirmed.Changes.Title)

	// The prompt is gone; a second confirm is stale.
	_, err = engine.Confirm(prompt.ID, true)
	assert.ErrorIs(t, err, ErrStalePrompt)
	assert.Zero(t, engine.Pending())
}

func TestUnauthorizedConfirmKeepsPromptLive(t *testing.T) {
	engine, _ := newTestEngine()
	prompt := engine.Propose(1, ActionRemove, 42, Changes{})

	_, err := engine.Confirm(prompt.ID, false)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, engine.Pending())

	// Still confirmable by an authorized actor.
	confirmed, err := engine.Confirm(prompt.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, confirmed.State)
}

func TestConfirmAfterExpiryIsStaleEvenWhenAuthorized(t *testing.T) {
	engine, clock := newTestEngine()
	prompt := engine.Propose(1, ActionEdit, 42, Changes{})

	clock.Advance(3*time.Minute + time.Second)

	_, err := engine.Confirm(prompt.ID, true)
	assert.ErrorIs(t, err, ErrStalePrompt)
	assert.Zero(t, engine.Pending())
}

func TestCancelBeatsLaterConfirm(t *testing.T) {
	engine, _ := newTestEngine()
	prompt := engine.Propose(1, ActionRemove, 42, Changes{})

	cancelled, err := engine.Cancel(prompt.ID, true)
	require.NoError(t, err)
	assert.Equal(t, StateCancelled, cancelled.State)

	_, err = engine.Confirm(prompt.ID, true)
	assert.ErrorIs(t, err, ErrStalePrompt)
}

func TestUnauthorizedCancelRefused(t *testing.T) {
	engine, _ := newTestEngine()
	prompt := engine.Propose(1, ActionRemove, 42, Changes{})

	_, err := engine.Cancel(prompt.ID, false)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, engine.Pending())
}

func TestSelectCandidate(t *testing.T) {
	engine, _ := newTestEngine()
	prompt := engine.ProposeChoice(1, ActionEdit, []uint{10, 11, 12}, Changes{})
	assert.Equal(t, StateAwaitingChoice, prompt.State)

	_, err := engine.Select(prompt.ID, 99)
	assert.ErrorIs(t, err, ErrUnknownCandidate)

	selected, err := engine.Select(prompt.ID, 11)
	require.NoError(t, err)
	assert.Equal(t, StateProposed, selected.State)
	assert.Equal(t, uint(11), selected.EventID)

	// Picking again is rejected; the prompt has moved on.
	_, err = engine.Select(prompt.ID, 10)
	assert.ErrorIs(t, err, ErrNotAwaitingChoice)

	confirmed, err := engine.Confirm(prompt.ID, true)
	require.NoError(t, err)
	assert.Equal(t, uint(11), confirmed.EventID)
}

func TestConfirmBeforeChoiceRejected(t *testing.T) {
	engine, _ := newTestEngine()
	prompt := engine.ProposeChoice(1, ActionRemove, []uint{10, 11}, Changes{})

	_, err := engine.Confirm(prompt.ID, true)
	assert.ErrorIs(t, err, ErrNotAwaitingChoice)
	assert.Equal(t, 1, engine.Pending())
}

func TestSelectExpiredPrompt(t *testing.T) {
	engine, clock := newTestEngine()
	prompt := engine.ProposeChoice(1, ActionEdit, []uint{10}, Changes{})

	clock.Advance(4 * time.Minute)

	_, err := engine.Select(prompt.ID, 10)
	assert.ErrorIs(t, err, ErrStalePrompt)
}

func TestUnknownPromptIsStale(t *testing.T) {
	engine, _ := newTestEngine()
	_, err := engine.Confirm("no-such-prompt", true)
	assert.ErrorIs(t, err, ErrStalePrompt)
}

func TestSweep(t *testing.T) {
	engine, clock := newTestEngine()
	engine.Propose(1, ActionEdit, 1, Changes{})
	engine.Propose(1, ActionEdit, 2, Changes{})
	clock.Advance(2 * time.Minute)
	engine.Propose(1, ActionEdit, 3, Changes{})

	clock.Advance(2 * time.Minute)

	assert.Equal(t, 2, engine.Sweep())
	assert.Equal(t, 1, engine.Pending())
}
