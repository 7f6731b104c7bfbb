// Package api is the typed client for the fitarena server, used by the
// CLI commands.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	go_json "github.com/goccy/go-json"

	"fitarena/internal/score"
	"fitarena/internal/tracker"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

type clientConfig struct {
	logger  *slog.Logger
	timeout time.Duration
}

type Option func(*clientConfig)

func WithLogger(logger *slog.Logger) Option {
	return func(cfg *clientConfig) { cfg.logger = logger }
}

func WithTimeout(d time.Duration) Option {
	return func(cfg *clientConfig) { cfg.timeout = d }
}

func New(baseURL string, opts ...Option) *Client {
	cfg := &clientConfig{
		logger:  slog.Default(),
		timeout: 10 * time.Second,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.timeout},
		logger:     cfg.logger,
	}
}

// APIError is a non-2xx response decoded from the server's error shape.
type APIError struct {
	StatusCode int
	Code       string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

func (c *Client) do(ctx context.Context, method, path string, body, result any) error {
	var reqBody io.Reader
	if body != nil {
		buf := &bytes.Buffer{}
		if err := go_json.NewEncoder(buf).Encode(body); err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = go_json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if result == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	var envelope struct {
		Success bool               `json:"success"`
		Data    go_json.RawMessage `json:"data"`
	}
	if err := go_json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	if err := go_json.Unmarshal(envelope.Data, result); err != nil {
		return fmt.Errorf("decoding response payload: %w", err)
	}
	return nil
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (c *Client) Weights(ctx context.Context) ([]tracker.WeightEntry, error) {
	var entries []tracker.WeightEntry
	err := c.do(ctx, http.MethodGet, "/api/weight", nil, &entries)
	return entries, err
}

func (c *Client) LogWeight(ctx context.Context, entry tracker.WeightEntry) (tracker.WeightEntry, error) {
	var stored tracker.WeightEntry
	err := c.do(ctx, http.MethodPost, "/api/weight", entry, &stored)
	return stored, err
}

func (c *Client) DeleteWeight(ctx context.Context, date tracker.Date) error {
	return c.do(ctx, http.MethodDelete, "/api/weight/"+date.String(), nil, nil)
}

func (c *Client) Calories(ctx context.Context) ([]tracker.CalorieEntry, error) {
	var entries []tracker.CalorieEntry
	err := c.do(ctx, http.MethodGet, "/api/calories", nil, &entries)
	return entries, err
}

func (c *Client) LogCalories(ctx context.Context, patch tracker.CaloriePatch) (tracker.CalorieEntry, error) {
	var stored tracker.CalorieEntry
	err := c.do(ctx, http.MethodPost, "/api/calories", patch, &stored)
	return stored, err
}

func (c *Client) DeleteCalories(ctx context.Context, date tracker.Date) error {
	return c.do(ctx, http.MethodDelete, "/api/calories/"+date.String(), nil, nil)
}

func (c *Client) Workouts(ctx context.Context) ([]tracker.WorkoutEntry, error) {
	var entries []tracker.WorkoutEntry
	err := c.do(ctx, http.MethodGet, "/api/workouts", nil, &entries)
	return entries, err
}

func (c *Client) LogWorkout(ctx context.Context, patch tracker.WorkoutPatch) (tracker.WorkoutEntry, error) {
	var stored tracker.WorkoutEntry
	err := c.do(ctx, http.MethodPost, "/api/workouts", patch, &stored)
	return stored, err
}

func (c *Client) DeleteWorkout(ctx context.Context, date tracker.Date) error {
	return c.do(ctx, http.MethodDelete, "/api/workouts/"+date.String(), nil, nil)
}

type Stats struct {
	TotalEntries     int      `json:"totalEntries"`
	StartWeight      *float64 `json:"startWeight"`
	CurrentWeight    *float64 `json:"currentWeight"`
	WeightLost       float64  `json:"weightLost"`
	AvgCaloriesEaten int      `json:"avgCaloriesEaten"`
	AvgCaloriesBurnt int      `json:"avgCaloriesBurnt"`
	TotalWorkouts    int      `json:"totalWorkouts"`
	CardioSessions   int      `json:"cardioSessions"`
	StrengthSessions int      `json:"strengthSessions"`
}

func (c *Client) Stats(ctx context.Context) (Stats, error) {
	var stats Stats
	err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats)
	return stats, err
}

func (c *Client) Score(ctx context.Context) (score.Breakdown, error) {
	var breakdown score.Breakdown
	err := c.do(ctx, http.MethodGet, "/api/score", nil, &breakdown)
	return breakdown, err
}

func (c *Client) Arena(ctx context.Context) (score.ArenaInfo, error) {
	var arena score.ArenaInfo
	err := c.do(ctx, http.MethodGet, "/api/arena", nil, &arena)
	return arena, err
}
