package matchmaker

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// AnswerSet maps a question ordinal to the chosen tag.
type AnswerSet map[int]Tag

// Clone returns an independent copy.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Combo joins the tags in question order, e.g. "ACE".
func (a AnswerSet) Combo() string {
	keys := make([]int, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(string(a[k]))
	}
	return b.String()
}

func (a AnswerSet) tags() tagSet {
	set := make(tagSet, len(a))
	for _, t := range a {
		set[t] = true
	}
	return set
}

// Session is one attempt at the quiz. Sessions are values: every transition
// returns a new Session and leaves the receiver untouched. The zero value is
// a fresh session at step 1 without an ID.
type Session struct {
	// ID identifies the attempt in the event log.
	ID string

	idx     int // zero-based step; NumQuestions means finished
	answers AnswerSet
}

// Start opens a new session at step 1 with no answers.
func Start() Session {
	return Session{ID: uuid.New().String()}
}

// Step returns the 1-based current step. NumQuestions+1 means finished.
func (s Session) Step() int {
	return s.idx + 1
}

// Finished reports whether every question has been answered in order.
func (s Session) Finished() bool {
	return s.idx >= NumQuestions
}

// Current returns the question being asked, or false once finished.
func (s Session) Current() (Question, bool) {
	return QuestionAt(s.Step())
}

// Selected returns the answer recorded for step, if any. After Back, this is
// how a previous choice is shown as still selected.
func (s Session) Selected(step int) (Tag, bool) {
	t, ok := s.answers[step]
	return t, ok
}

// Answers returns a copy of the recorded answers.
func (s Session) Answers() AnswerSet {
	return s.answers.Clone()
}

// Progress returns step/NumQuestions, capped at 1.
func (s Session) Progress() float64 {
	p := float64(s.Step()) / float64(NumQuestions)
	if p > 1 {
		return 1
	}
	return p
}

// Select records tag for step and advances. step must equal the current step
// and tag must be one of that question's options; otherwise s is returned
// unchanged with an error.
func Select(s Session, step int, tag Tag) (Session, error) {
	if s.Finished() || step != s.Step() {
		return s, fmt.Errorf("select step %d while at step %d: %w", step, s.Step(), ErrOutOfOrderAnswer)
	}
	q, _ := QuestionAt(step)
	if !q.HasTag(tag) {
		return s, fmt.Errorf("select %q for question %d: %w", tag, step, ErrInvalidTag)
	}

	next := Session{
		ID:      s.ID,
		idx:     s.idx + 1,
		answers: s.answers.Clone(),
	}
	next.answers[step] = tag
	return next, nil
}

// Back moves to the previous step without clearing any answer.
func Back(s Session) (Session, error) {
	if s.idx == 0 {
		return s, ErrAtFirstStep
	}
	return Session{
		ID:      s.ID,
		idx:     s.idx - 1,
		answers: s.answers.Clone(),
	}, nil
}

// Reset discards s and returns a fresh session.
func Reset(Session) Session {
	return Start()
}

// Resolve maps the session's answers, complete or not, to an outcome.
func Resolve(s Session) Outcome {
	return ResolveAnswers(s.answers)
}

// Score returns the readiness score for the session's answers.
func Score(s Session) int {
	return ScoreAnswers(s.answers)
}

// Result bundles what the finished view needs.
type Result struct {
	SessionID string
	Answers   string
	Outcome   Outcome
	Score     int
}

// BuildResult snapshots the session's outcome and score.
func BuildResult(s Session) Result {
	return Result{
		SessionID: s.ID,
		Answers:   s.answers.Combo(),
		Outcome:   Resolve(s),
		Score:     Score(s),
	}
}
