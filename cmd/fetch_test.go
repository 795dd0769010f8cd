package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/client"
	"github.com/Aram-az/ESSDev-Lifeyears/config"
	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testGateway(t *testing.T, mutate func(*config.Config)) (*httptest.Server, config.Config) {
	t.Helper()
	c := config.Default()
	c.Server.GinMode = gin.TestMode
	c.Dashboard.Today = "2024-11-14"
	if mutate != nil {
		mutate(&c)
	}
	r, err := newGateway(c, zap.NewNop())
	require.NoError(t, err)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	c.Client.BaseURL = srv.URL
	return srv, c
}

func TestFetchResources(t *testing.T) {
	_, c := testGateway(t, nil)
	cl := newClient(c, zap.NewNop())
	ctx := context.Background()

	for _, res := range fetchResources {
		v, err := fetchResource(ctx, cl, []string{res}, "")
		require.NoError(t, err, res)

		var buf bytes.Buffer
		require.NoError(t, printJSON(&buf, v))
		assert.True(t, json.Valid(buf.Bytes()), res)
	}

	v, err := fetchResource(ctx, cl, []string{"recommendations", "1"}, "")
	require.NoError(t, err)
	assert.Equal(t, 1, v.(models.Recommendation).ID)

	v, err = fetchResource(ctx, cl, []string{"appointments"}, "completed")
	require.NoError(t, err)
	assert.Len(t, v.([]models.Appointment), 1)
}

func TestFetchErrors(t *testing.T) {
	_, c := testGateway(t, nil)
	cl := newClient(c, zap.NewNop())
	ctx := context.Background()

	_, err := fetchResource(ctx, cl, []string{"recommendations", "999"}, "")
	assert.True(t, client.IsNotFound(err))

	_, err = fetchResource(ctx, cl, []string{"recommendations", "one"}, "")
	assert.ErrorContains(t, err, "not an integer")

	_, err = fetchResource(ctx, cl, []string{"health", "1"}, "")
	assert.ErrorContains(t, err, "does not take an id")

	_, err = fetchResource(ctx, cl, []string{"weather"}, "")
	assert.ErrorContains(t, err, "unknown resource")
}

func TestNewClientUsesConfig(t *testing.T) {
	c := config.Default()
	c.Client.BaseURL = "http://example.test:9999/"
	assert.Equal(t, "http://example.test:9999", newClient(c, zap.NewNop()).BaseURL())
}

func TestGatewayFixtureDirOverride(t *testing.T) {
	_, c := testGateway(t, func(c *config.Config) { c.Fixtures.Dir = t.TempDir() })
	cl := newClient(c, zap.NewNop())

	recs, err := cl.Recommendations(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = cl.MockUser(context.Background())
	assert.True(t, client.IsNotFound(err))
}

func TestDashboardRender(t *testing.T) {
	_, c := testGateway(t, nil)
	var buf bytes.Buffer
	renderDashboard(context.Background(), &buf, newClient(c, zap.NewNop()), "upcoming", 0)

	out := buf.String()
	assert.Contains(t, out, "Your Health Dashboard")
	assert.Contains(t, out, "Days until next")
	assert.Contains(t, out, "Annual Physical Exam")
	assert.NotContains(t, out, "Dermatology Screening")
}

func TestDashboardRenderUnreachable(t *testing.T) {
	c := config.Default()
	c.Client.BaseURL = "http://127.0.0.1:1"
	c.Client.RequestTimeout = 2 * time.Second

	var buf bytes.Buffer
	renderDashboard(context.Background(), &buf, newClient(c, zap.NewNop()), "all", 1)

	out := buf.String()
	assert.Contains(t, out, "Your Health Dashboard")
	assert.Contains(t, out, "Failed to fetch")
}
