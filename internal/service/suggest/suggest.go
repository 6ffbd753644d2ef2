package service_suggest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cinematch/core/internal/model"
	"github.com/google/uuid"
)

var (
	ErrSuperseded = errors.New("superseded by a newer query")
	ErrInternal   = errors.New("internal error")
)

//go:generate mockery --name=Searcher --output=./mocks/suggest/searcher --filename=searcher.go
type Searcher interface {
	SearchByPrefix(ctx context.Context, prefix string, excludeID uuid.UUID, limit int) ([]model.User, error)
}

type pendingQuery struct {
	seq    uint64
	cancel context.CancelFunc
}

// Service debounces username suggestions per requester: each call arms an
// idle delay and cancels the previous pending call for the same key, so
// only the last query within the window ever reaches the store.
// Cancellation is real; a superseded call's lookup is aborted through its
// context, it never returns stale data.
type Service struct {
	searcher Searcher
	idle     time.Duration
	limit    int

	mu      sync.Mutex
	seq     uint64
	pending map[string]pendingQuery
}

func New(searcher Searcher, idle time.Duration, limit int) *Service {
	if idle <= 0 {
		idle = 300 * time.Millisecond
	}
	if limit <= 0 {
		limit = 5
	}

	return &Service{
		searcher: searcher,
		idle:     idle,
		limit:    limit,
		pending:  make(map[string]pendingQuery),
	}
}

// Suggest waits out the idle window and then looks up usernames starting
// with prefix, excluding the caller. key identifies the requester (the
// session token); a newer Suggest with the same key supersedes this one.
func (s *Service) Suggest(ctx context.Context, key string, callerID uuid.UUID, prefix string) ([]model.User, error) {
	if prefix == "" {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.mu.Lock()
	if prev, ok := s.pending[key]; ok {
		prev.cancel()
	}
	s.seq++
	mine := s.seq
	s.pending[key] = pendingQuery{seq: mine, cancel: cancel}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		if current, ok := s.pending[key]; ok && current.seq == mine {
			delete(s.pending, key)
		}
		s.mu.Unlock()
	}()

	timer := time.NewTimer(s.idle)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return nil, ErrSuperseded
	case <-timer.C:
	}

	users, err := s.searcher.SearchByPrefix(ctx, prefix, callerID, s.limit)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrSuperseded
		}
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return users, nil
}
