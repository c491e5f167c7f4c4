package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// VoteEventData captures one change to the "count me in" vote.
type VoteEventData struct {
	Action string // count-me-in, cancel, quiz-closed
	Count  int    // displayed count after the action
	Voted  bool   // persisted flag after the action
}

// VoteEvent is a stored VoteEventData.
type VoteEvent struct {
	Sequence  int64
	Timestamp time.Time
	VoteEventData
}

// QuizResultData captures one finished quiz.
type QuizResultData struct {
	SessionID string
	Answers   string // tags in question order, e.g. "ACE"
	Outcome   string
	City      string
	Score     int
}

// QuizResult is a stored QuizResultData.
type QuizResult struct {
	Sequence  int64
	Timestamp time.Time
	QuizResultData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendVoteEvent records a vote action.
	AppendVoteEvent(ctx context.Context, data VoteEventData) error

	// AppendQuizResult records a finished quiz.
	AppendQuizResult(ctx context.Context, data QuizResultData) error

	// QueryVoteEvents returns vote events, newest first.
	QueryVoteEvents(ctx context.Context, opts QueryOpts) ([]VoteEvent, error)

	// QueryQuizResults returns quiz results, newest first.
	QueryQuizResults(ctx context.Context, opts QueryOpts) ([]QuizResult, error)

	// OutcomeCounts returns how many finished quizzes landed on each outcome.
	OutcomeCounts(ctx context.Context) (map[string]int, error)
}

// SettingsRepo is a small string key/value store.
type SettingsRepo interface {
	// Get returns the value for key and whether it was set.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set upserts the value for key.
	Set(ctx context.Context, key, value string) error
}
