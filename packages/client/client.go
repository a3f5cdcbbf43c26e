package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"
)

const (
	// DefaultTimeout is the default request timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRedirects is the maximum number of redirects to follow.
	DefaultMaxRedirects = 10
	// DefaultMaxIdleConns is the maximum number of idle connections in the pool.
	DefaultMaxIdleConns = 100
	// DefaultMaxIdleConnsPerHost is the maximum number of idle connections per host.
	DefaultMaxIdleConnsPerHost = 16
	// DefaultIdleConnTimeout is how long idle connections stay in the pool.
	DefaultIdleConnTimeout = 30 * time.Second
)

// Client executes requests against a single immutable configuration. It is
// safe for concurrent use.
type Client struct {
	httpClient *http.Client
	config     Config
	proxyURL   string
	transport  http.RoundTripper
	logger     Logger
	debug      *DebugConfig
	metrics    *MetricsCollector
}

// Option configures a Client during construction.
type Option func(*Client)

// WithProxy routes all requests through the given proxy URL instead of the
// proxy taken from the environment.
func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithTransport replaces the underlying round tripper. Intended for tests
// and instrumented transports; pool and proxy settings do not apply to it.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables per-request debug logging with default settings.
func WithDebug() Option {
	return func(c *Client) {
		c.debug = DefaultDebugConfig()
		c.debug.Enabled = true
		if c.logger == nil {
			c.logger = NewSimpleLogger()
		}
	}
}

// WithMetrics attaches a metrics collector.
func WithMetrics(m *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New builds a client from the configuration. It allocates the transport and
// performs no network I/O. The only construction-time failure mode is an
// engine that cannot be built, reported as KindGeneric.
func New(cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		config: cfg,
		debug:  DefaultDebugConfig(),
	}

	for _, opt := range opts {
		opt(c)
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        DefaultMaxIdleConns,
		MaxIdleConnsPerHost: DefaultMaxIdleConnsPerHost,
		IdleConnTimeout:     DefaultIdleConnTimeout,
	}

	if c.proxyURL != "" {
		proxyURL, err := neturl.Parse(c.proxyURL)
		if err != nil || proxyURL.Scheme == "" || proxyURL.Host == "" {
			return nil, newError(KindGeneric, fmt.Sprintf("failed to create client: invalid proxy URL %q", c.proxyURL), err)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	rt := http.RoundTripper(transport)
	if c.transport != nil {
		rt = c.transport
	}

	// Timeouts are enforced per call in DoContext so a request-level
	// override can replace the client default in either direction; the
	// http.Client deadline would otherwise stay in force as an outer bound.
	c.httpClient = &http.Client{
		Transport:     rt,
		CheckRedirect: redirectPolicy(cfg.FollowRedirects),
	}

	return c, nil
}

// Config returns a copy of the client configuration.
func (c *Client) Config() Config {
	return c.config
}

func redirectPolicy(follow bool) func(*http.Request, []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if !follow {
			return http.ErrUseLastResponse
		}
		if len(via) >= DefaultMaxRedirects {
			return http.ErrUseLastResponse
		}
		return nil
	}
}

// Do executes the request and blocks until the exchange completes or fails.
func (c *Client) Do(req *Request) (*Response, error) {
	return c.DoContext(context.Background(), req)
}

// DoContext executes the request under the given context. The per-request
// timeout, when set, replaces the client-level default for this call only;
// deadlines already on the context still apply.
func (c *Client) DoContext(ctx context.Context, req *Request) (*Response, error) {
	target, cerr := resolveURL(c.config.BaseURL, req.URL)
	if cerr != nil {
		return nil, cerr
	}

	if cerr := validateMethod(req.Method); cerr != nil {
		return nil, cerr
	}
	method := strings.ToUpper(req.Method)

	timeout := c.config.timeout()
	if req.Timeout > 0 {
		timeout = req.Timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(req.QueryParams) > 0 {
		query := target.Query()
		for k, v := range req.QueryParams {
			query.Add(k, v)
		}
		target.RawQuery = query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, newError(KindGeneric, "failed to build request", err)
	}

	httpReq.Header.Set("User-Agent", c.config.userAgent())
	for k, v := range c.config.DefaultHeaders {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	requestID := ""
	if c.debug.Enabled && c.logger != nil {
		requestID = generateRequestID()
		if c.debug.LogRequests {
			c.logger.Debugf("[%s] %s %s", requestID, method, target.String())
		}
	}
	if c.metrics != nil {
		c.metrics.requestStarted()
	}

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	duration := time.Since(start)

	if c.metrics != nil {
		c.metrics.requestFinished()
	}

	if err != nil {
		cerr := classify(err)
		if c.metrics != nil {
			c.metrics.recordError(method, cerr.Kind)
		}
		if c.debug.Enabled && c.debug.LogErrors && c.logger != nil {
			c.logger.Errorf("[%s] %s %s failed: %v", requestID, method, target.String(), cerr)
		}
		return nil, cerr
	}
	defer httpResp.Body.Close()

	resp, cerr := convertResponse(httpResp, duration)
	if cerr != nil {
		if c.metrics != nil {
			c.metrics.recordError(method, cerr.Kind)
		}
		return nil, cerr
	}

	if c.metrics != nil {
		c.metrics.recordRequest(method, resp.StatusCode, duration)
	}
	if c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debugf("[%s] %d %s (%s)", requestID, resp.StatusCode, resp.URL, duration)
	}

	return resp, nil
}

// Get issues a GET request with no body and empty header and query maps.
func (c *Client) Get(url string) (*Response, error) {
	return c.roundTrip("GET", url, nil)
}

// Post issues a POST request with the given body.
func (c *Client) Post(url string, body []byte) (*Response, error) {
	return c.roundTrip("POST", url, body)
}

// Put issues a PUT request with the given body.
func (c *Client) Put(url string, body []byte) (*Response, error) {
	return c.roundTrip("PUT", url, body)
}

// Patch issues a PATCH request with the given body.
func (c *Client) Patch(url string, body []byte) (*Response, error) {
	return c.roundTrip("PATCH", url, body)
}

// Delete issues a DELETE request with no body.
func (c *Client) Delete(url string) (*Response, error) {
	return c.roundTrip("DELETE", url, nil)
}

func (c *Client) roundTrip(method, url string, body []byte) (*Response, error) {
	return c.Do(&Request{
		Method:          method,
		URL:             url,
		Headers:         make(map[string]string),
		QueryParams:     make(map[string]string),
		Body:            body,
		FollowRedirects: c.config.FollowRedirects,
	})
}
