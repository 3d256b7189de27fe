package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/storeratings/authkit/core/session"
	"github.com/storeratings/authkit/pkg/logger"
)

// Backend endpoint paths, relative to the client base URL.
const (
	LoginPath   = "/auth/login"
	SignupPath  = "/auth/signup"
	ProfilePath = "/auth/profile"
)

// maxErrorBody caps how much of an error response body is read.
const maxErrorBody = 1 << 20

// Credentials is the success payload of the login and signup endpoints.
type Credentials struct {
	Token string        `json:"token"`
	User  *session.User `json:"user"`
}

// SignupParams is the registration request body.
type SignupParams struct {
	Name     string       `json:"name"`
	Email    string       `json:"email"`
	Password string       `json:"password"`
	Address  string       `json:"address,omitempty"`
	Role     session.Role `json:"role,omitempty"`
}

// Client calls the backend authentication endpoints. Token attachment and
// failure classification are not its concern: inject an *http.Client whose
// transport handles those (see core/authtransport).
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for all requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLogger sets the structured logger (default: discard).
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates a backend client for the given base URL, e.g.
// "http://localhost:3000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login exchanges credentials for a token and user record.
func (c *Client) Login(ctx context.Context, email, password string) (*Credentials, error) {
	body := map[string]string{"email": email, "password": password}

	var creds Credentials
	if err := c.do(ctx, http.MethodPost, LoginPath, body, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Signup registers a new account and returns its token and user record.
func (c *Client) Signup(ctx context.Context, params SignupParams) (*Credentials, error) {
	var creds Credentials
	if err := c.do(ctx, http.MethodPost, SignupPath, params, &creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// Profile fetches the current user for the bearer token the transport
// attaches. Used by session validation and refresh.
func (c *Client) Profile(ctx context.Context) (*session.User, error) {
	var user session.User
	if err := c.do(ctx, http.MethodGet, ProfilePath, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	start := time.Now()
	requestID := uuid.NewString()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Join(ErrRequestFailed, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Join(ErrRequestFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "backend request failed",
			logger.Component("authapi"),
			logger.Method(method),
			logger.Path(path),
			logger.RequestID(requestID),
			logger.Error(err),
		)
		return errors.Join(ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "backend request completed",
		logger.Component("authapi"),
		logger.Method(method),
		logger.Path(path),
		logger.StatusCode(resp.StatusCode),
		logger.RequestID(requestID),
		logger.Elapsed(start),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrInvalidResponse, err)
	}
	return nil
}

// decodeError turns a non-2xx response into an *APIError, extracting the
// backend's {message} body when present and falling back to the HTTP
// status text.
func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil && len(data) > 0 {
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(data, &envelope) == nil {
			apiErr.Message = envelope.Message
		}
	}

	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d (%s)",
			resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return apiErr
}
