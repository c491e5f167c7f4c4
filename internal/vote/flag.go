// Package vote tracks the "people want to move to China" counter and the
// persisted flag recording whether this user has already counted themselves in.
package vote

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/abhisek/readychina/internal/store"
	"github.com/rs/zerolog"
)

// FlagKey is the settings key holding the voted flag.
const FlagKey = "china_voted"

// Flag is a persisted boolean. Implementations never fail: storage problems
// are logged and a failed read reports false.
type Flag interface {
	Get() bool
	Set(bool)
}

// MemoryFlag is a Flag that lives only as long as the process.
type MemoryFlag struct {
	mu sync.Mutex
	v  bool
}

// NewMemoryFlag returns a MemoryFlag holding v.
func NewMemoryFlag(v bool) *MemoryFlag {
	return &MemoryFlag{v: v}
}

func (f *MemoryFlag) Get() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.v
}

func (f *MemoryFlag) Set(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.v = v
}

// storeTimeout bounds a single settings read or write.
const storeTimeout = 2 * time.Second

// StoredFlag keeps the flag in the settings table as "true"/"false".
type StoredFlag struct {
	repo store.SettingsRepo
	log  zerolog.Logger
}

// NewStoredFlag returns a Flag backed by repo.
func NewStoredFlag(repo store.SettingsRepo, log zerolog.Logger) *StoredFlag {
	return &StoredFlag{repo: repo, log: log.With().Str("component", "vote-flag").Logger()}
}

func (f *StoredFlag) Get() bool {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	raw, ok, err := f.repo.Get(ctx, FlagKey)
	if err != nil {
		f.log.Warn().Err(err).Msg("read voted flag")
		return false
	}
	if !ok {
		return false
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		f.log.Warn().Str("value", raw).Msg("voted flag is not a bool")
		return false
	}
	return v
}

func (f *StoredFlag) Set(v bool) {
	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()

	if err := f.repo.Set(ctx, FlagKey, strconv.FormatBool(v)); err != nil {
		f.log.Warn().Err(err).Bool("voted", v).Msg("storage not available")
	}
}
