package travelapi

// Package travelapi is the HTTP client for the travel assistant's API:
// authentication, itinerary planning, and saved trips. Responses are
// decoded into domain types at this boundary.

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	apperrors "github.com/wanderlanka/planner-cli/internal/errors"
	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// Config captures the subset of API behaviour the client needs.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
	Logger  *slog.Logger
}

// Client talks to the assistant's REST API.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// Compile-time conformance to the ports this adapter serves.
var (
	_ ports.AuthAPI         = (*Client)(nil)
	_ ports.PlanningService = (*Client)(nil)
	_ ports.TripsAPI        = (*Client)(nil)
)

// NewClient builds an API client. Callers should pass a validated config.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("parse api base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	hc := cfg.Client
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL: baseURL,
		client:  hc,
		logger:  logger,
	}, nil
}

// Token exchanges an identifier/secret pair for access and refresh tokens.
func (c *Client) Token(ctx context.Context, req ports.TokenRequest) (ports.TokenResponse, error) {
	body := map[string]string{
		"username": req.Username,
		"password": req.Password,
	}

	status, data, err := c.do(ctx, http.MethodPost, "/api/v1/token/", "", body)
	if err != nil {
		return ports.TokenResponse{}, err
	}
	if status == http.StatusUnauthorized || status == http.StatusBadRequest {
		return ports.TokenResponse{}, domainauth.ErrInvalidCredentials
	}
	if status < 200 || status >= 300 {
		return ports.TokenResponse{}, fmt.Errorf("token endpoint: %w", apperrors.MapStatus(status, errorReason(data)))
	}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return ports.TokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}
	if resp.Access == "" {
		return ports.TokenResponse{}, errors.New("token response missing access token")
	}
	return ports.TokenResponse{Access: resp.Access, Refresh: resp.Refresh}, nil
}

// Register creates a new identity. The server-provided rejection reason
// is carried in the returned error so callers can surface it.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	status, data, err := c.do(ctx, http.MethodPost, "/api/v1/register/", "", body)
	if err != nil {
		return err
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("registration failed: %w", apperrors.MapStatus(status, errorReason(data)))
	}
	return nil
}

// Refresh exchanges a refresh token for a new access token.
func (c *Client) Refresh(ctx context.Context, refreshToken string) (string, error) {
	body := map[string]string{"refresh": refreshToken}

	status, data, err := c.do(ctx, http.MethodPost, "/api/v1/token/refresh/", "", body)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("token refresh: %w", apperrors.MapStatus(status, errorReason(data)))
	}

	var resp struct {
		Access string `json:"access"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if resp.Access == "" {
		return "", errors.New("refresh response missing access token")
	}
	return resp.Access, nil
}

// Plan submits preferences and decodes the response into the tagged
// result union. Non-2xx statuses are transport-level (hard) failures;
// a 2xx body matching neither shape decodes as plan.KindNone.
func (c *Client) Plan(ctx context.Context, bearer string, prefs plan.Preferences) (plan.Result, error) {
	body := map[string]any{"preferences": prefs.Payload()}

	status, data, err := c.do(ctx, http.MethodPost, "/api/v1/plan/", bearer, body)
	if err != nil {
		return plan.Result{}, err
	}
	if status < 200 || status >= 300 {
		return plan.Result{}, fmt.Errorf("plan endpoint: %w", apperrors.MapStatus(status, errorReason(data)))
	}

	return plan.DecodeResult(data), nil
}

// tripRecord is the wire form of a saved trip. The server uses numeric IDs.
type tripRecord struct {
	ID        int64          `json:"id"`
	Title     string         `json:"title"`
	Itinerary plan.Itinerary `json:"itinerary_json"`
	CreatedAt time.Time      `json:"created_at"`
}

func (r tripRecord) toPort() ports.SavedTrip {
	return ports.SavedTrip{
		ID:        strconv.FormatInt(r.ID, 10),
		Title:     r.Title,
		Itinerary: r.Itinerary,
		CreatedAt: r.CreatedAt,
	}
}

// ListTrips returns the trips saved under the authenticated account.
func (c *Client) ListTrips(ctx context.Context, bearer string) ([]ports.SavedTrip, error) {
	status, data, err := c.do(ctx, http.MethodGet, "/api/v1/trips/", bearer, nil)
	if err != nil {
		return nil, err
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("trips endpoint: %w", apperrors.MapStatus(status, errorReason(data)))
	}

	var records []tripRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode trips response: %w", err)
	}

	trips := make([]ports.SavedTrip, 0, len(records))
	for _, r := range records {
		trips = append(trips, r.toPort())
	}
	return trips, nil
}

// SaveTrip stores a trip server-side and returns the assigned ID.
func (c *Client) SaveTrip(ctx context.Context, bearer string, trip ports.SavedTrip) (string, error) {
	body := map[string]any{
		"title":          trip.Title,
		"itinerary_json": trip.Itinerary,
	}

	status, data, err := c.do(ctx, http.MethodPost, "/api/v1/trips/", bearer, body)
	if err != nil {
		return "", err
	}
	if status < 200 || status >= 300 {
		return "", fmt.Errorf("save trip: %w", apperrors.MapStatus(status, errorReason(data)))
	}

	var resp struct {
		ID int64 `json:"id"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decode save trip response: %w", err)
	}
	return strconv.FormatInt(resp.ID, 10), nil
}

// DeleteTrip removes a saved trip.
func (c *Client) DeleteTrip(ctx context.Context, bearer, id string) error {
	status, data, err := c.do(ctx, http.MethodDelete, "/api/v1/trips/"+url.PathEscape(id)+"/", bearer, nil)
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return ports.ErrTripNotFound
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("delete trip: %w", apperrors.MapStatus(status, errorReason(data)))
	}
	return nil
}

// do issues one request and returns the status plus the drained body.
func (c *Client) do(ctx context.Context, method, path, bearer string, payload any) (int, []byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("encode request payload: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, path, apperrors.MapTransportError(err))
	}

	data, readErr := io.ReadAll(resp.Body)
	closeErr := resp.Body.Close()
	if readErr != nil {
		return 0, nil, fmt.Errorf("read response body: %w", readErr)
	}
	if closeErr != nil {
		return 0, nil, fmt.Errorf("close response body: %w", closeErr)
	}

	return resp.StatusCode, data, nil
}

// errorReason extracts the server's error field, falling back to the
// raw body so diagnostics are never empty.
func errorReason(data []byte) string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &body); err == nil && body.Error != "" {
		return body.Error
	}
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return "no response body"
	}
	return trimmed
}
