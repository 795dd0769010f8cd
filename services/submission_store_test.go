package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const slot = "onboardingData"

func submission(id int64, name string) models.OnboardingSubmission {
	return models.OnboardingSubmission{
		UserProfile: models.UserProfile{Name: name, DateOfBirth: "1990-01-01", Sex: "other"},
		ID:          id,
		SubmittedAt: "2024-11-14T10:00:00Z",
	}
}

func TestSubmissionRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(storage.NewMemory(), slot, nil)

	const n = 5
	for i := 1; i <= n; i++ {
		require.NoError(t, s.Append(ctx, submission(int64(i), fmt.Sprintf("user-%d", i))))
	}

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, n)
	for i, sub := range list {
		assert.Equal(t, int64(i+1), sub.ID)
		assert.Equal(t, fmt.Sprintf("user-%d", i+1), sub.Name)
	}
}

func TestSubmissionEmptySlot(t *testing.T) {
	s := NewSubmissionStore(storage.NewMemory(), slot, nil)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSubmissionLegacySingleObject(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, slot, []byte(`{"name":"Legacy","id":42,"sex":"male"}`)))
	s := NewSubmissionStore(mem, slot, nil)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Legacy", list[0].Name)
	assert.Equal(t, int64(42), list[0].ID)

	require.NoError(t, s.Append(ctx, submission(43, "New")))
	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(42), list[0].ID)
	assert.Equal(t, int64(43), list[1].ID)
}

func TestSubmissionMalformedResets(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Set(ctx, slot, []byte(`[{"name":`)))
	core, logs := observer.New(zap.WarnLevel)
	s := NewSubmissionStore(mem, slot, zap.New(core))

	list, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, 1, logs.Len())

	require.NoError(t, s.Append(ctx, submission(1, "Fresh")))
	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Fresh", list[0].Name)
}

func TestSubmissionRemoveAndClear(t *testing.T) {
	ctx := context.Background()
	s := NewSubmissionStore(storage.NewMemory(), slot, nil)
	for i := int64(1); i <= 3; i++ {
		require.NoError(t, s.Append(ctx, submission(i, "u")))
	}

	removed, err := s.Remove(ctx, 2)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = s.Remove(ctx, 2)
	require.NoError(t, err)
	assert.False(t, removed)

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, int64(3), list[1].ID)

	require.NoError(t, s.Clear(ctx))
	list, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDecodeSubmissions(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{"empty", "", 0, false},
		{"null", "null", 0, false},
		{"array", `[{"id":1},{"id":2}]`, 2, false},
		{"single", ` {"id":1} `, 1, false},
		{"garbage", `onboarding`, 0, true},
		{"wrong shape", `"text"`, 0, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := DecodeSubmissions([]byte(tc.raw))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, list, tc.want)
		})
	}
}
