package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/yonasBSD/solidtime/internal/contract"
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/metrics"
	"github.com/yonasBSD/solidtime/internal/solidtime"
	"golang.org/x/time/rate"
)

// Client calls the solidtime API through its endpoint registry. Every call
// is one stateless round trip; the client is safe for concurrent use.
type Client struct {
	baseURL  string
	registry *contract.Registry
	http     *http.Client
	token    string
	headers  http.Header
	logger   *logrus.Logger
	limiter  *rate.Limiter
	metrics  *metrics.ClientMetrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the timeout of the underlying http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		hc := *c.http
		hc.Timeout = d
		c.http = &hc
	}
}

// WithToken sends the token as a bearer Authorization header.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHeader adds a header to every request.
func WithHeader(key, value string) Option {
	return func(c *Client) { c.headers.Add(key, value) }
}

// WithLogger sets the logger. Calls are logged at debug level.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRateLimit spaces outgoing requests. Waiting honours the call context.
func WithRateLimit(perSecond float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(perSecond), burst) }
}

// WithMetrics registers call counters and latency histograms on reg.
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) { c.metrics = metrics.NewClientMetrics(reg) }
}

// WithRegistry swaps the endpoint registry, mainly for tests.
func WithRegistry(r *contract.Registry) Option {
	return func(c *Client) { c.registry = r }
}

// New binds the endpoint registry to baseURL. baseURL may carry a path
// prefix such as https://app.solidtime.io/api.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host are required", baseURL)
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		registry: solidtime.API(),
		http:     &http.Client{},
		headers:  make(http.Header),
		logger:   logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Args are the inputs of one call.
type Args struct {
	Path  map[string]string
	Query url.Values
	Body  any
}

// Response is a validated success response.
type Response struct {
	Alias  string
	Status int
	Header http.Header
	// Body is the decoded JSON payload; undeclared fields are kept.
	Body any
	Raw  []byte
}

// Decode unmarshals the raw payload into v.
func (r *Response) Decode(v any) error {
	raw := r.Raw
	if len(bytes.TrimSpace(raw)) == 0 {
		raw = []byte("null")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s response: %w", r.Alias, err)
	}
	return nil
}

// Endpoints returns the registry the client is bound to.
func (c *Client) Endpoints() *contract.Registry { return c.registry }

// Do performs the call registered under alias. Arguments are validated
// before any network I/O; the response is validated against its schema.
func (c *Client) Do(ctx context.Context, alias string, args Args) (*Response, error) {
	e, ok := c.registry.Lookup(alias)
	if !ok {
		return nil, fmt.Errorf("%w: %s", appErrors.ErrUnknownEndpoint, alias)
	}
	req, err := c.newRequest(ctx, e, args)
	if err != nil {
		return nil, err
	}
	return c.send(ctx, e, req)
}

func (c *Client) newRequest(ctx context.Context, e *contract.Endpoint, args Args) (*http.Request, error) {
	path, err := e.BuildPath(args.Path)
	if err != nil {
		return nil, err
	}
	query, err := e.ValidateQuery(args.Query)
	if err != nil {
		return nil, err
	}
	body, err := e.ValidateBody(args.Body)
	if err != nil {
		return nil, err
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, e.Method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", e.Alias, err)
	}
	for key, values := range c.headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) send(ctx context.Context, e *contract.Endpoint, req *http.Request) (*Response, error) {
	logEntry := c.logger.WithFields(logrus.Fields{
		"alias":  e.Alias,
		"method": req.Method,
		"path":   req.URL.Path,
	})

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &appErrors.TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
		}
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Observe(e.Alias, req.Method, 0, time.Since(started))
		logEntry.WithField("error", err.Error()).Debug("solidtime call failed")
		return nil, &appErrors.TransportError{Method: req.Method, URL: req.URL.String(), Err: unwrapURLError(err)}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(started)
	c.metrics.Observe(e.Alias, req.Method, resp.StatusCode, elapsed)
	if err != nil {
		return nil, &appErrors.TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}
	logEntry.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": elapsed.String(),
	}).Debug("solidtime call completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, declared := e.ParseError(resp.StatusCode, raw)
		return nil, &appErrors.HTTPError{
			Status:   resp.StatusCode,
			Alias:    e.Alias,
			Body:     body,
			Raw:      raw,
			Declared: declared,
		}
	}

	decoded, err := e.ValidateResponse(raw)
	if err != nil {
		return nil, err
	}
	return &Response{
		Alias:  e.Alias,
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   decoded,
		Raw:    raw,
	}, nil
}

// unwrapURLError strips the *url.Error wrapper so that TransportError
// reports the method and URL once.
func unwrapURLError(err error) error {
	if ue, ok := err.(*url.Error); ok {
		return ue.Err
	}
	return err
}
