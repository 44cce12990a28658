package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"time"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Reference values used when Config leaves them unset
const (
	DefaultTimeout         = 300 * time.Second
	DefaultMaxResponseSize = 50 * 1024 * 1024
)

// Params is a JSON object of named endpoint parameters. Names must match
// exactly what remote service expects
type Params map[string]interface{}

// Caller exchanges one request with an RPC service and returns raw body of a
// successful (200 OK) response. *Client is the HTTPS implementation
type Caller interface {
	Exchange(ctx context.Context, endpoint string, params Params) ([]byte, error)
}

// Config holds everything needed to create a Client
type Config struct {
	Host    string
	Port    int
	SSLPath string
	TLS     TLSOptions

	// Timeout bounds whole exchange: connect, handshake, send and reading
	// response. Zero means DefaultTimeout
	Timeout time.Duration

	// MaxResponseSize is a limit on response body size in bytes. Zero means
	// DefaultMaxResponseSize
	MaxResponseSize int64

	// RateLimit is a maximum number of requests per second issued by client,
	// zero disables limiting. RateBurst defaults to 1
	RateLimit float64
	RateBurst int

	Logger  *zap.Logger
	Metrics *Metrics

	// HTTPClient replaces the client built from credentials in SSLPath.
	// Timeout is not applied to it
	HTTPClient *http.Client
}

// Client is an HTTPS client of a single RPC service (full node or wallet).
// It is immutable after creation and safe for concurrent use
type Client struct {
	httpClient      *http.Client
	host            string
	port            int
	maxResponseSize int64
	limiter         *rate.Limiter
	logger          *zap.Logger
	metrics         *Metrics
}

var _ Caller = (*Client)(nil)

// NewClient creates a Client. TLS credentials are loaded here, so missing or
// malformed certificate files make client creation fail.
func NewClient(cfg Config) (*Client, error) {
	httpClient := cfg.HTTPClient

	if httpClient == nil {
		tlsConfig, err := LoadCredentials(cfg.SSLPath, cfg.TLS)
		if err != nil {
			return nil, err
		}
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = tlsConfig
		httpClient = &http.Client{
			Transport: transport,
			Timeout:   timeout,
		}
	}

	maxResponseSize := cfg.MaxResponseSize
	if maxResponseSize <= 0 {
		maxResponseSize = DefaultMaxResponseSize
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient:      httpClient,
		host:            cfg.Host,
		port:            cfg.Port,
		maxResponseSize: maxResponseSize,
		limiter:         limiter,
		logger:          logger,
		metrics:         cfg.Metrics,
	}, nil
}

// URL returns URL of given endpoint of the service
func (c *Client) URL(endpoint string) string {
	return BuildURL(c.host, c.port, endpoint)
}

// Exchange POSTs params as JSON object to endpoint and returns raw response
// body. Only 200 OK responses are returned, other statuses produce
// BadStatusError. No retries are made.
func (c *Client) Exchange(ctx context.Context, endpoint string, params Params) ([]byte, error) {
	url := c.URL(endpoint)
	start := time.Now()
	requestID := newRequestID()
	logger := c.logger.With(
		zap.String("endpoint", endpoint),
		zap.String("url", url),
		zap.String("request_id", requestID),
	)

	body, status, outcome, err := c.exchange(ctx, endpoint, url, requestID, params)
	duration := time.Since(start)
	c.metrics.observe(endpoint, outcome, duration.Seconds())

	if err != nil {
		logger.Warn("RPC request failed",
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}
	logger.Debug("RPC request done",
		zap.Int("status", status),
		zap.Duration("duration", duration),
		zap.Int("bytes", len(body)),
	)
	return body, nil
}

func (c *Client) exchange(ctx context.Context, endpoint, url, requestID string, params Params) ([]byte, int, string, error) {
	var requestBody []byte

	if len(params) == 0 {
		requestBody = []byte("{}")
	} else {
		var err error
		requestBody, err = json.Marshal(params)
		if err != nil {
			return nil, 0, outcomeInvalidRequest, &InvalidArgumentError{
				Endpoint: endpoint,
				Reason:   "failed to encode params as JSON: " + err.Error(),
			}
		}
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, 0, outcomeNetworkError, &NetworkError{URL: url, Err: err}
		}
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(requestBody))
	if err != nil {
		return nil, 0, outcomeInvalidRequest, &NetworkError{URL: url, Err: err}
	}
	request.Header.Set("Content-Type", "application/json")
	if requestID != "" {
		request.Header.Set("X-Request-Id", requestID)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, 0, outcomeNetworkError, &NetworkError{URL: url, Err: err}
	}
	// not drained, closing aborts the connection
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, response.StatusCode, outcomeBadStatus, &BadStatusError{
			Status: response.StatusCode,
			URL:    url,
		}
	}

	if response.ContentLength > c.maxResponseSize {
		return nil, response.StatusCode, outcomeTooLarge, &ResponseTooLargeError{
			URL:   url,
			Limit: c.maxResponseSize,
		}
	}

	body, err := ioutil.ReadAll(io.LimitReader(response.Body, c.maxResponseSize+1))
	if err != nil {
		return nil, response.StatusCode, outcomeNetworkError, &NetworkError{URL: url, Err: err}
	}
	if int64(len(body)) > c.maxResponseSize {
		return nil, response.StatusCode, outcomeTooLarge, &ResponseTooLargeError{
			URL:   url,
			Limit: c.maxResponseSize,
		}
	}
	return body, response.StatusCode, outcomeOK, nil
}

func newRequestID() string {
	id, err := uuid.NewV4()
	if err != nil {
		return ""
	}
	return id.String()
}
