// Package api implements a client for the REST endpoints the CLI consumes.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/rehttp"

	"github.com/vercel/cli/internal/buildinfo"
	"github.com/vercel/cli/internal/logger"
)

// ErrNotFound is returned when the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Error is the error envelope the API returns for non-2xx responses.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed with status %d", e.StatusCode)
}

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logger.Logger
}

type NewClientOpts struct {
	BaseURL string
	Token   string
	Logger  *logger.Logger
}

// NewWithOptions returns a Client for the API at opts.BaseURL, authenticating
// with opts.Token. Transient failures (429, 5xx) are retried at the transport.
func NewWithOptions(opts NewClientOpts) *Client {
	transport := rehttp.NewTransport(
		http.DefaultTransport,
		rehttp.RetryAll(
			rehttp.RetryMaxRetries(3),
			rehttp.RetryAny(
				rehttp.RetryStatuses(http.StatusTooManyRequests,
					http.StatusBadGateway, http.StatusServiceUnavailable,
					http.StatusGatewayTimeout),
				rehttp.RetryTemporaryErr(),
			),
		),
		rehttp.ExpJitterDelay(100*time.Millisecond, time.Second),
	)

	return &Client{
		baseURL: opts.BaseURL,
		token:   opts.Token,
		logger:  opts.Logger,
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   30 * time.Second,
		},
	}
}

// Authenticated reports whether the client carries an access token.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// get issues a GET against path (with the given query, if any) and decodes a
// 200 response body into dst.
func (c *Client) get(ctx context.Context, path string, query url.Values, dst interface{}) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Authorization", "Bearer "+c.token)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("User-Agent", fmt.Sprintf("%s/%s", buildinfo.Name(), buildinfo.Version()))

	if c.logger != nil {
		c.logger.Debugf("GET %s", u)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	switch {
	case res.StatusCode == http.StatusOK:
		if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
			return fmt.Errorf("failed to decode response, please try again: %w", err)
		}
		return nil
	case res.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		return decodeError(res)
	}
}

func decodeError(res *http.Response) error {
	var envelope struct {
		Error Error `json:"error"`
	}

	apiErr := &Error{StatusCode: res.StatusCode}
	if err := json.NewDecoder(res.Body).Decode(&envelope); err == nil {
		apiErr.Code = envelope.Error.Code
		apiErr.Message = envelope.Error.Message
	}

	return apiErr
}
