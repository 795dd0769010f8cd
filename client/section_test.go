package client

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSectionRetryRunsOnlyItsFetch(t *testing.T) {
	var aCalls, bCalls int
	fail := true
	a := NewSection("recommendations", func(context.Context) ([]int, error) {
		aCalls++
		if fail {
			return nil, errors.Wrap(ErrTimeout, "GET /api/recommendations")
		}
		return []int{1, 2}, nil
	})
	b := NewSection("health", func(context.Context) (string, error) {
		bCalls++
		return "ok", nil
	})

	ctx := context.Background()
	require.Error(t, a.Load(ctx))
	require.NoError(t, b.Load(ctx))

	_, ok := a.Data()
	assert.False(t, ok)
	assert.True(t, errors.Is(a.Err(), ErrTimeout))
	assert.False(t, a.Loading())

	fail = false
	require.NoError(t, a.Retry(ctx))
	data, ok := a.Data()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, data)
	assert.NoError(t, a.Err())

	assert.Equal(t, 2, aCalls)
	assert.Equal(t, 1, bCalls)
}

func TestSectionKeepsLastGoodData(t *testing.T) {
	n := 0
	s := NewSection("dashboard", func(context.Context) (int, error) {
		n++
		if n > 1 {
			return 0, ErrUnreachable
		}
		return 7, nil
	})

	require.NoError(t, s.Load(context.Background()))
	require.Error(t, s.Retry(context.Background()))

	v, ok := s.Data()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	assert.Equal(t, "Failed to fetch", UserMessage(s.Err(), ""))
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		hint string
		want string
	}{
		{"nil", nil, "", ""},
		{"timeout", errors.Wrap(ErrTimeout, "GET /x"), "", "Request timed out"},
		{"timeout with hint", ErrTimeout, "Check the server.", "Request timed out. Check the server."},
		{"unreachable", errors.Wrap(ErrUnreachable, "GET /x"), "ignored", "Failed to fetch"},
		{"status with message", &StatusError{Code: 404, Message: "User data not found"}, "", "User data not found"},
		{"status bare", &StatusError{Code: 500}, "", "request failed with status 500"},
		{"other", errors.New("decode /x: bad"), "", "decode /x: bad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err, tt.hint))
		})
	}
}
