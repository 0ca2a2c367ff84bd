// Package webclient implements the browser-side behavior of the user
// directory: a typed client for the HTTP API and the list/form controller
// that drives it.
package webclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// User mirrors the API's user representation.
type User struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone"`
}

// FormData carries the three form fields of the UI. An empty Phone means the
// field is omitted from the request.
type FormData struct {
	Name  string
	Email string
	Phone string
}

// APIError is returned for any non-2xx API response. Messages holds the
// field errors of a 400 validation failure, or the single error message of
// the other failure envelopes.
type APIError struct {
	StatusCode int
	Messages   []string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api: http %d: %s", e.StatusCode, strings.Join(e.Messages, ", "))
}

// errorEnvelope matches both API error body shapes.
type errorEnvelope struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

// userPayload is the request body for create and update calls.
type userPayload struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Phone *string `json:"phone,omitempty"`
}

// Client is a typed HTTP client for the user directory API.
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a Client for the API at baseURL.
//
// The underlying http.Client carries an overall request timeout so a hung
// request surfaces as an error instead of blocking the UI forever. Never use
// http.DefaultClient here: it has no timeout at all.
func NewClient(baseURL string, timeout time.Duration) *Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout, Transport: t},
	}
}

// Liveness checks the GET / endpoint and returns the liveness text.
func (c *Client) Liveness(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer closeBody(res.Body)

	if res.StatusCode >= 400 {
		return "", apiError(res)
	}
	text, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(text), nil
}

// ListUsers fetches all users, or only the exact email match when email is
// non-empty.
func (c *Client) ListUsers(ctx context.Context, email string) ([]User, error) {
	u := c.baseURL + "/users"
	if email != "" {
		q := url.Values{}
		q.Set("email", email)
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(res.Body)

	if res.StatusCode >= 400 {
		return nil, apiError(res)
	}
	var users []User
	if err := json.NewDecoder(res.Body).Decode(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser registers a new user and returns the stored record.
func (c *Client) CreateUser(ctx context.Context, form FormData) (*User, error) {
	return c.sendUser(ctx, http.MethodPost, c.baseURL+"/users", form, http.StatusCreated)
}

// UpdateUser replaces the given user's fields with the form values and
// returns the updated record.
func (c *Client) UpdateUser(ctx context.Context, id string, form FormData) (*User, error) {
	return c.sendUser(ctx, http.MethodPut, c.baseURL+"/users/"+url.PathEscape(id), form, http.StatusOK)
}

// DeleteUser removes the user permanently.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/users/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer closeBody(res.Body)

	if res.StatusCode >= 400 {
		return apiError(res)
	}
	return nil
}

// sendUser posts or puts a user payload and decodes the returned record.
func (c *Client) sendUser(ctx context.Context, method, u string, form FormData, wantStatus int) (*User, error) {
	payload := userPayload{Name: form.Name, Email: form.Email}
	if form.Phone != "" {
		phone := form.Phone
		payload.Phone = &phone
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, u, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer closeBody(res.Body)

	if res.StatusCode != wantStatus {
		return nil, apiError(res)
	}
	var user User
	if err := json.NewDecoder(res.Body).Decode(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// apiError decodes an error response body into an APIError.
func apiError(res *http.Response) error {
	var env errorEnvelope
	msgs := []string{http.StatusText(res.StatusCode)}
	if err := json.NewDecoder(res.Body).Decode(&env); err == nil {
		switch {
		case len(env.Errors) > 0:
			msgs = env.Errors
		case env.Error != "":
			msgs = []string{env.Error}
		}
	}
	return &APIError{StatusCode: res.StatusCode, Messages: msgs}
}

func closeBody(body io.Closer) {
	if err := body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
