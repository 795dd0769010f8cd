package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL       = "http://localhost:3001"
	DefaultTimeout       = 10 * time.Second
	DefaultHealthTimeout = 5 * time.Second

	maxErrorBody = 64 << 10
)

var (
	// ErrTimeout means the per-call deadline fired before a response arrived.
	ErrTimeout = errors.New("request timed out")
	// ErrUnreachable means no HTTP exchange happened at all.
	ErrUnreachable = errors.New("failed to fetch")
)

// StatusError is a non-2xx answer from the gateway. Message holds the
// envelope's error field when the body had one.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Code)
	}
	return fmt.Sprintf("request failed with status %d: %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the gateway.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}

// Client calls the mock gateway. It never caches and never retries.
type Client struct {
	baseURL       string
	http          *http.Client
	timeout       time.Duration
	healthTimeout time.Duration
	logger        *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the deadline applied to each data call.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithHealthTimeout sets the deadline applied to Health.
func WithHealthTimeout(d time.Duration) Option {
	return func(c *Client) { c.healthTimeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:       strings.TrimRight(baseURL, "/"),
		http:          &http.Client{},
		timeout:       DefaultTimeout,
		healthTimeout: DefaultHealthTimeout,
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string { return c.baseURL }

func (c *Client) Health(ctx context.Context) (models.HealthResponse, error) {
	var out models.HealthResponse
	err := c.get(ctx, "/api/health", c.healthTimeout, &out)
	return out, err
}

func (c *Client) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	return getList[models.Recommendation](ctx, c, "/api/recommendations")
}

func (c *Client) Recommendation(ctx context.Context, id int) (models.Recommendation, error) {
	return getItem[models.Recommendation](ctx, c, "/api/recommendations/"+strconv.Itoa(id))
}

func (c *Client) Prevention(ctx context.Context) (models.PreventionData, error) {
	return getItem[models.PreventionData](ctx, c, "/api/prevention")
}

func (c *Client) PrimaryPrevention(ctx context.Context) ([]models.PrimaryPrevention, error) {
	return getList[models.PrimaryPrevention](ctx, c, "/api/prevention/primary")
}

func (c *Client) SecondaryPrevention(ctx context.Context) ([]models.SecondaryPrevention, error) {
	return getList[models.SecondaryPrevention](ctx, c, "/api/prevention/secondary")
}

// Longevity returns nil data when the server has no longevity fixture.
func (c *Client) Longevity(ctx context.Context) (*models.LongevityProfile, error) {
	return getItem[*models.LongevityProfile](ctx, c, "/api/longevity")
}

func (c *Client) MockUser(ctx context.Context) (models.UserProfile, error) {
	return getItem[models.UserProfile](ctx, c, "/mock-user")
}

func (c *Client) MockRecommendations(ctx context.Context) ([]models.Recommendation, error) {
	return getList[models.Recommendation](ctx, c, "/mock-recommendations")
}

// Appointments lists appointments matching filter; "" asks for all.
func (c *Client) Appointments(ctx context.Context, filter string) ([]models.Appointment, error) {
	path := "/api/appointments"
	if filter != "" {
		path += "?" + url.Values{"status": {filter}}.Encode()
	}
	return getList[models.Appointment](ctx, c, path)
}

func (c *Client) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	return getItem[models.DashboardStats](ctx, c, "/api/dashboard")
}

// Raw fetches path and returns the undecoded body of a 2xx answer.
func (c *Client) Raw(ctx context.Context, path string) ([]byte, error) {
	var out json.RawMessage
	if err := c.get(ctx, path, c.timeout, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func getList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var env models.ListResponse[T]
	if err := c.get(ctx, path, c.timeout, &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func getItem[T any](ctx context.Context, c *Client, path string) (T, error) {
	var env models.ItemResponse[T]
	if err := c.get(ctx, path, c.timeout, &env); err != nil {
		var zero T
		return zero, err
	}
	return env.Data, nil
}

// get issues one GET under its own deadline and decodes a 2xx body into out.
func (c *Client) get(ctx context.Context, path string, timeout time.Duration, out any) error {
	callCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(callCtx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrapf(err, "build request for %s", path)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		err = classify(ctx, callCtx, path, err)
		c.logger.Debug("gateway call failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	c.logger.Debug("gateway call",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Message: gjson.GetBytes(body, "error").String()}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if callCtx.Err() != nil {
			return classify(ctx, callCtx, path, err)
		}
		return errors.Wrapf(err, "decode %s", path)
	}
	return nil
}

// classify maps a transport failure onto the client's error taxonomy. A
// cancelled parent context is returned as is.
func classify(parent, call context.Context, path string, err error) error {
	if perr := parent.Err(); perr != nil {
		return errors.Wrapf(perr, "GET %s", path)
	}
	if errors.Is(call.Err(), context.DeadlineExceeded) {
		return errors.Wrapf(ErrTimeout, "GET %s", path)
	}
	return errors.Wrapf(ErrUnreachable, "GET %s: %v", path, err)
}
