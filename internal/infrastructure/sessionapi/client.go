package sessionapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/entity"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/internal/domain/repository"
	"github.com/peterpeppereater/ios-academy-homework-peterpeppereater/pkg/response"
)

const (
	UsersPath    = "/api/users"
	SessionsPath = "/api/users/sessions"

	// maxErrorBody bounds how much of a failed response is read for its message.
	maxErrorBody = 64 << 10
)

var (
	ErrTransport        = errors.New("session api unreachable")
	ErrUnexpectedStatus = errors.New("session api returned an error")
	ErrDecode           = errors.New("session api response could not be decoded")
	ErrMissingData      = errors.New("session api response has no data")
)

// Client talks JSON over HTTP to the session API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewClient creates a client for baseURL (scheme and host, no trailing path).
// The timeout applies to each request as a whole.
func NewClient(baseURL string, timeout time.Duration, logger *logrus.Logger) *Client {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 2,
		IdleConnTimeout:     90 * time.Second,
	}
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout, Transport: transport}, logger)
}

// NewClientWithHTTP uses the given http.Client as is.
func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// CreateUser POSTs to /api/users.
func (c *Client) CreateUser(ctx context.Context, email, password string) (*entity.User, error) {
	return post[entity.User](ctx, c, UsersPath, entity.Credentials{Email: email, Password: password})
}

// CreateSession POSTs to /api/users/sessions.
func (c *Client) CreateSession(ctx context.Context, email, password string) (*entity.Session, error) {
	return post[entity.Session](ctx, c, SessionsPath, entity.Credentials{Email: email, Password: password})
}

func post[T any](ctx context.Context, c *Client, path string, body entity.Credentials) (*T, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if c.logger != nil {
		c.logger.WithFields(logrus.Fields{
			"path":     path,
			"status":   resp.StatusCode,
			"duration": time.Since(start).String(),
		}).Debug("session api response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp, path)
	}

	var envelope response.APIResponse[*T]
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if envelope.Data == nil {
		return nil, ErrMissingData
	}
	return envelope.Data, nil
}

// statusError builds a readable error from a non-2xx response, preferring
// the message the API put in its envelope.
func statusError(resp *http.Response, path string) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := ""
	var envelope response.APIResponse[json.RawMessage]
	if len(raw) > 0 && json.Unmarshal(raw, &envelope) == nil {
		msg = envelope.Message
	}
	if msg == "" {
		msg = http.StatusText(resp.StatusCode)
	}
	return fmt.Errorf("%w: POST %s: %d %s", ErrUnexpectedStatus, path, resp.StatusCode, msg)
}

var _ repository.SessionAPI = (*Client)(nil)
