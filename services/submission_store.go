package services

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/storage"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// SubmissionStore keeps the onboarding list in a single storage slot and
// rewrites the whole list on every change. The mutex only orders writers in
// this process; two processes sharing a slot are last-write-wins.
type SubmissionStore struct {
	mu     sync.Mutex
	store  storage.Storage
	key    string
	logger *zap.Logger
}

func NewSubmissionStore(store storage.Storage, key string, logger *zap.Logger) *SubmissionStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionStore{store: store, key: key, logger: logger}
}

// List returns the stored submissions in submission order. A slot that does
// not parse is treated as empty.
func (s *SubmissionStore) List(ctx context.Context) ([]models.OnboardingSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(ctx)
}

// Append adds sub to the end of the list.
func (s *SubmissionStore) Append(ctx context.Context, sub models.OnboardingSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.read(ctx)
	if err != nil {
		return err
	}
	return s.write(ctx, append(list, sub))
}

// Remove drops every submission with the given id and reports whether any
// were found.
func (s *SubmissionStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.read(ctx)
	if err != nil {
		return false, err
	}
	kept := list[:0]
	for _, sub := range list {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	if len(kept) == len(list) {
		return false, nil
	}
	return true, s.write(ctx, kept)
}

func (s *SubmissionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		return errors.Wrap(err, "failed to clear submissions")
	}
	return nil
}

func (s *SubmissionStore) read(ctx context.Context) ([]models.OnboardingSubmission, error) {
	raw, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read submissions")
	}
	if !ok {
		return []models.OnboardingSubmission{}, nil
	}

	list, err := DecodeSubmissions(raw)
	if err != nil {
		s.logger.Warn("discarding unreadable onboarding data", zap.String("key", s.key), zap.Error(err))
		return []models.OnboardingSubmission{}, nil
	}
	return list, nil
}

func (s *SubmissionStore) write(ctx context.Context, list []models.OnboardingSubmission) error {
	data, err := json.Marshal(list)
	if err != nil {
		return errors.Wrap(err, "failed to encode submissions")
	}
	if err := s.store.Set(ctx, s.key, data); err != nil {
		return errors.Wrap(err, "failed to write submissions")
	}
	return nil
}

// DecodeSubmissions accepts a JSON array of submissions or, from older
// writers, a single submission object.
func DecodeSubmissions(raw []byte) ([]models.OnboardingSubmission, error) {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0 || bytes.Equal(raw, []byte("null")):
		return []models.OnboardingSubmission{}, nil
	case raw[0] == '{':
		var one models.OnboardingSubmission
		if err := json.Unmarshal(raw, &one); err != nil {
			return nil, errors.Wrap(err, "error parsing existing data")
		}
		return []models.OnboardingSubmission{one}, nil
	default:
		var list []models.OnboardingSubmission
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, errors.Wrap(err, "error parsing existing data")
		}
		if list == nil {
			list = []models.OnboardingSubmission{}
		}
		return list, nil
	}
}
