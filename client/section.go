package client

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Section tracks loading and error state for one independently fetched
// piece of a page. Retry re-runs this section's fetch and nothing else.
type Section[T any] struct {
	Name string

	mu      sync.Mutex
	fetch   func(context.Context) (T, error)
	data    T
	err     error
	loading bool
	loaded  bool
}

func NewSection[T any](name string, fetch func(context.Context) (T, error)) *Section[T] {
	return &Section[T]{Name: name, fetch: fetch}
}

// Load runs the fetch once and records its outcome. A failed load keeps the
// data from the last successful one.
func (s *Section[T]) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	data, err := s.fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.err = err
	if err == nil {
		s.data = data
		s.loaded = true
	}
	return err
}

func (s *Section[T]) Retry(ctx context.Context) error {
	return s.Load(ctx)
}

func (s *Section[T]) Data() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data, s.loaded
}

func (s *Section[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Section[T]) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// UserMessage turns a client error into the text shown next to a section.
// hint is appended to timeouts, e.g. "Is the backend server running?".
func UserMessage(err error, hint string) string {
	var se *StatusError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		if hint != "" {
			return "Request timed out. " + hint
		}
		return "Request timed out"
	case errors.Is(err, ErrUnreachable):
		return "Failed to fetch"
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
		return se.Error()
	default:
		return err.Error()
	}
}
