// Package client is a Go SDK for the Teka marketplace API.
//
// Every request reads the access token from the shared session at send time,
// so a sign-out in one goroutine is seen by the next request of any other.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"teka/internal/errors"
	"teka/pkg/session"

	"github.com/go-resty/resty/v2"
)

const (
	apiPrefix      = "/api/v1"
	defaultTimeout = 15 * time.Second
)

// APIError is an error envelope returned by the server.
type APIError struct {
	Status    int    `json:"-"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"-"`
}

func (e *APIError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%d %s): %s", e.Message, e.Status, e.Code, e.Details)
	}

	return fmt.Sprintf("%s (%d %s)", e.Message, e.Status, e.Code)
}

// HasCode reports whether err is an APIError with the given business code.
func HasCode(err error, code string) bool {
	var apiErr *APIError

	return errors.As(err, &apiErr) && apiErr.Code == code
}

type errorEnvelope struct {
	Error *APIError `json:"error"`
	Meta  struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

type dataEnvelope[T any] struct {
	Data T `json:"data"`
}

// Client talks to one Teka server on behalf of one session.
type Client struct {
	http    *resty.Client
	session *session.Session
}

// Option customizes a Client.
type Option func(*Client)

// WithTimeout overrides the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(timeout) }
}

// WithHTTPClient sends requests through hc.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		base := c.http.BaseURL
		c.http = resty.NewWithClient(hc).SetBaseURL(base)
	}
}

// New creates a client for the server at baseURL. A nil sess gets a fresh session.
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	if sess == nil {
		sess = session.New()
	}

	c := &Client{
		http:    resty.New().SetBaseURL(baseURL).SetTimeout(defaultTimeout),
		session: sess,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.http.
		SetHeader("Accept", "application/json").
		OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			if token := c.session.Token(); token != "" {
				req.SetAuthToken(token)
			}

			return nil
		}).
		OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			// the server no longer accepts our token
			if resp.StatusCode() == http.StatusUnauthorized && resp.Request.Token != "" {
				c.session.SignOut()
			}

			return nil
		})

	return c
}

// Session returns the session the client signs in to.
func (c *Client) Session() *session.Session {
	return c.session
}

func call[T any](ctx context.Context, c *Client, method, path string, prepare func(*resty.Request)) (T, error) {
	var zero T

	result := &dataEnvelope[T]{}
	req := c.http.R().
		SetContext(ctx).
		SetResult(result).
		SetError(&errorEnvelope{})
	if prepare != nil {
		prepare(req)
	}

	resp, err := req.Execute(method, apiPrefix+path)
	if err != nil {
		return zero, errors.Wrapf(err, "%s %s", method, path)
	}

	if resp.IsError() {
		return zero, apiError(resp)
	}

	return result.Data, nil
}

func apiError(resp *resty.Response) error {
	envelope, _ := resp.Error().(*errorEnvelope)
	if envelope == nil || envelope.Error == nil {
		return errors.WithStack(&APIError{
			Status:  resp.StatusCode(),
			Code:    "HTTP_ERROR",
			Message: http.StatusText(resp.StatusCode()),
		})
	}

	apiErr := envelope.Error
	apiErr.Status = resp.StatusCode()
	apiErr.RequestID = envelope.Meta.RequestID

	return errors.WithStack(apiErr)
}
