package vote

import (
	"context"
	"sync"

	"github.com/abhisek/readychina/internal/store"
	"github.com/rs/zerolog"
)

// BaseCount is the number of people shown before this user votes.
const BaseCount = 1248

// Action names a recorded vote change.
type Action string

const (
	ActionCountMeIn  Action = "count-me-in"
	ActionCancel     Action = "cancel"
	ActionQuizClosed Action = "quiz-closed"
)

// Counter drives the headline number. It reads the flag once on creation
// and writes through on every change.
type Counter struct {
	mu      sync.Mutex
	flag    Flag
	events  store.EventRepo
	log     zerolog.Logger
	voted   bool
	pending bool // counted in, quiz not yet closed
}

// NewCounter builds a counter over flag. events may be nil.
func NewCounter(flag Flag, events store.EventRepo, log zerolog.Logger) *Counter {
	return &Counter{
		flag:   flag,
		events: events,
		log:    log.With().Str("component", "vote").Logger(),
		voted:  flag.Get(),
	}
}

// Count returns the number to display.
func (c *Counter) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count()
}

func (c *Counter) count() int {
	if c.voted || c.pending {
		return BaseCount + 1
	}
	return BaseCount
}

// HasVoted reports whether the vote has been persisted.
func (c *Counter) HasVoted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.voted
}

// Pending reports whether CountMeIn ran and the quiz has not closed yet.
func (c *Counter) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending
}

// CountMeIn bumps the count and reports whether the caller should open the
// quiz. It does nothing once voted or while a quiz is already pending. The
// flag is not written until the quiz closes.
func (c *Counter) CountMeIn(ctx context.Context) bool {
	c.mu.Lock()
	if c.voted || c.pending {
		c.mu.Unlock()
		return false
	}
	c.pending = true
	ev := c.snapshot(ActionCountMeIn)
	c.mu.Unlock()

	c.record(ctx, ev)
	return true
}

// CloseQuiz marks the vote as cast when the quiz closes for any reason.
func (c *Counter) CloseQuiz(ctx context.Context) {
	c.mu.Lock()
	c.pending = false
	if !c.voted {
		c.voted = true
		c.flag.Set(true)
	}
	ev := c.snapshot(ActionQuizClosed)
	c.mu.Unlock()

	c.record(ctx, ev)
}

// Cancel withdraws the vote and persists false.
func (c *Counter) Cancel(ctx context.Context) {
	c.mu.Lock()
	c.voted = false
	c.pending = false
	c.flag.Set(false)
	ev := c.snapshot(ActionCancel)
	c.mu.Unlock()

	c.record(ctx, ev)
}

func (c *Counter) snapshot(a Action) store.VoteEventData {
	return store.VoteEventData{Action: string(a), Count: c.count(), Voted: c.voted}
}

func (c *Counter) record(ctx context.Context, ev store.VoteEventData) {
	c.log.Debug().Str("action", ev.Action).Int("count", ev.Count).Bool("voted", ev.Voted).Msg("vote changed")
	if c.events == nil {
		return
	}
	if err := c.events.AppendVoteEvent(ctx, ev); err != nil {
		c.log.Warn().Err(err).Str("action", ev.Action).Msg("record vote event")
	}
}
