// Package api is the network boundary of the SiteBloom client. It translates
// the two auth intents (login, register) into HTTP requests against the
// backend and normalizes their results. It never touches the session store.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sitebloom/sitebloom/internal/common"
	"github.com/sitebloom/sitebloom/internal/logging"
)

const (
	loginPath    = "/api/auth/login"
	registerPath = "/api/auth/register"

	// maxErrorBody bounds how much of an error response we are willing to read.
	maxErrorBody = 1 << 20
)

type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
}

// New returns a Client for the API rooted at baseURL. A trailing slash on
// baseURL is tolerated. The timeout applies per request.
func New(baseURL string, timeout time.Duration, log logging.Logger) *Client {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Data struct {
		Token string `json:"token"`
	} `json:"data"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Login authenticates the user and returns the issued token. A non-2xx
// response yields an *AuthError carrying the server's message when present;
// a transport failure yields an error wrapping common.ErrUnavailable.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp loginResponse
	if err := c.post(ctx, loginPath, loginRequest{Username: username, Password: password}, &resp); err != nil {
		return "", err
	}
	if resp.Data.Token == "" {
		return "", fmt.Errorf("login response is missing a token")
	}
	return resp.Data.Token, nil
}

// Register creates a new account. A 2xx response is success regardless of
// body; failures follow the same rules as Login. Registration does not
// establish a session.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	return c.post(ctx, registerPath, registerRequest{Username: username, Email: email, Password: password}, nil)
}

// post sends a JSON body to path and, when out is non-nil, decodes a
// successful response into it.
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn(ctx, "request failed", "path", path, "error", err)
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er errorResponse
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		_ = json.Unmarshal(data, &er)
		c.log.Info(ctx, "request rejected", "path", path, "status", resp.StatusCode)
		return &AuthError{Message: er.Message, StatusCode: resp.StatusCode}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}
