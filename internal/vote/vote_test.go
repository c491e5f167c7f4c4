package vote

import (
	"context"
	"errors"
	"testing"

	"github.com/abhisek/readychina/internal/store"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSettings struct {
	values map[string]string
	getErr error
	setErr error
}

func newMockSettings() *mockSettings {
	return &mockSettings{values: make(map[string]string)}
}

func (m *mockSettings) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockSettings) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

type mockEvents struct {
	store.EventRepo
	votes []store.VoteEventData
	err   error
}

func (m *mockEvents) AppendVoteEvent(_ context.Context, data store.VoteEventData) error {
	if m.err != nil {
		return m.err
	}
	m.votes = append(m.votes, data)
	return nil
}

func TestCounter_FreshUser(t *testing.T) {
	ctx := context.Background()
	flag := NewMemoryFlag(false)
	events := &mockEvents{}
	c := NewCounter(flag, events, zerolog.Nop())

	assert.Equal(t, BaseCount, c.Count())
	assert.False(t, c.HasVoted())

	require.True(t, c.CountMeIn(ctx), "first CountMeIn should open the quiz")
	assert.Equal(t, BaseCount+1, c.Count())
	assert.True(t, c.Pending())
	assert.False(t, flag.Get(), "flag is only written when the quiz closes")

	assert.False(t, c.CountMeIn(ctx), "second press while pending is ignored")

	c.CloseQuiz(ctx)
	assert.True(t, c.HasVoted())
	assert.False(t, c.Pending())
	assert.True(t, flag.Get())
	assert.Equal(t, BaseCount+1, c.Count())

	assert.False(t, c.CountMeIn(ctx), "already voted")

	want := []store.VoteEventData{
		{Action: "count-me-in", Count: BaseCount + 1, Voted: false},
		{Action: "quiz-closed", Count: BaseCount + 1, Voted: true},
	}
	assert.Equal(t, want, events.votes)
}

func TestCounter_ReturningVoter(t *testing.T) {
	ctx := context.Background()
	flag := NewMemoryFlag(true)
	c := NewCounter(flag, nil, zerolog.Nop())

	assert.True(t, c.HasVoted())
	assert.Equal(t, BaseCount+1, c.Count())
	assert.False(t, c.CountMeIn(ctx))

	c.Cancel(ctx)
	assert.False(t, c.HasVoted())
	assert.Equal(t, BaseCount, c.Count())
	assert.False(t, flag.Get())

	assert.True(t, c.CountMeIn(ctx), "can vote again after cancelling")
}

func TestCounter_CloseWithoutCountMeIn(t *testing.T) {
	flag := NewMemoryFlag(false)
	c := NewCounter(flag, nil, zerolog.Nop())

	c.CloseQuiz(context.Background())
	assert.True(t, c.HasVoted())
	assert.True(t, flag.Get())
}

func TestCounter_EventErrorsAreSwallowed(t *testing.T) {
	events := &mockEvents{err: errors.New("disk full")}
	c := NewCounter(NewMemoryFlag(false), events, zerolog.Nop())

	assert.True(t, c.CountMeIn(context.Background()))
	assert.Equal(t, BaseCount+1, c.Count())
}

func TestStoredFlag(t *testing.T) {
	repo := newMockSettings()
	f := NewStoredFlag(repo, zerolog.Nop())

	assert.False(t, f.Get(), "unset flag reads false")

	f.Set(true)
	assert.Equal(t, "true", repo.values[FlagKey])
	assert.True(t, f.Get())

	f.Set(false)
	assert.Equal(t, "false", repo.values[FlagKey])
	assert.False(t, f.Get())
}

func TestStoredFlag_Failures(t *testing.T) {
	t.Run("read error reads false", func(t *testing.T) {
		repo := newMockSettings()
		repo.values[FlagKey] = "true"
		repo.getErr = errors.New("locked")
		assert.False(t, NewStoredFlag(repo, zerolog.Nop()).Get())
	})

	t.Run("garbage reads false", func(t *testing.T) {
		repo := newMockSettings()
		repo.values[FlagKey] = "yes please"
		assert.False(t, NewStoredFlag(repo, zerolog.Nop()).Get())
	})

	t.Run("write error does not panic", func(t *testing.T) {
		repo := newMockSettings()
		repo.setErr = errors.New("read-only")
		f := NewStoredFlag(repo, zerolog.Nop())
		f.Set(true)
		assert.False(t, f.Get())
	})
}

func TestStoredFlag_SQLite(t *testing.T) {
	st, err := store.Open("file:vote_flag?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	flag := NewStoredFlag(st.SettingsRepo(), zerolog.Nop())
	c := NewCounter(flag, st.EventRepo(), zerolog.Nop())

	ctx := context.Background()
	require.True(t, c.CountMeIn(ctx))
	c.CloseQuiz(ctx)

	// A second counter over the same store sees the persisted vote.
	again := NewCounter(NewStoredFlag(st.SettingsRepo(), zerolog.Nop()), nil, zerolog.Nop())
	assert.True(t, again.HasVoted())
	assert.Equal(t, BaseCount+1, again.Count())

	evs, err := st.EventRepo().QueryVoteEvents(ctx, store.QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, evs, 2)
}
