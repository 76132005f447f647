package client

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Attempts slower than this are flagged in the request log.
const slowRequestThreshold = 5 * time.Second

// Response bodies at or above this size are never logged verbatim.
const maxLoggedBodySize = 10000

// Client is a TaskDeck API client. It is safe for concurrent use: all
// configuration is resolved once in [New] and never mutated afterwards.
type Client struct {
	key     string
	token   string
	options *Options
	rc      *resty.Client
}

// New creates a client for the given credential pair. Both credentials
// are required; they are appended to every request as query parameters.
func New(key, token string, opts ...Option) (*Client, error) {
	if key == "" || token == "" {
		return nil, ErrMissingCredentials
	}

	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}
	if options.verbose {
		if _, ok := options.requestLogger.(*NoopLogger); ok {
			options.requestLogger = NewSlogLogger(nil)
		}
	}

	rc := resty.New()
	if options.httpClient != nil {
		rc = resty.NewWithClient(options.httpClient)
	}
	rc.SetBaseURL(options.baseURL)
	rc.SetHeader("Accept", "application/json")
	rc.SetLogger(options.requestLogger)

	return &Client{
		key:     key,
		token:   token,
		options: options,
		rc:      rc,
	}, nil
}

// Do executes one logical API call: a path and verb plus an optional
// payload serialized per the encoding. On success the response body is
// decoded into result (pass nil to discard it). Failed attempts are
// classified and retried according to the configured retry budget; the
// budget is fixed when the call starts.
//
// All typed methods on [Client] are one-line translations onto Do.
func (c *Client) Do(ctx context.Context, method, path string, payload any, encoding Encoding, result any) error {
	query := url.Values{}
	var body any

	switch encoding {
	case EncodeQuery:
		if payload != nil {
			args, ok := payload.(Args)
			if !ok {
				return fmt.Errorf("query-encoded payload must be Args, got %T", payload)
			}
			query = args.queryValues()
		}
	case EncodeBody:
		if method != http.MethodGet && !isNil(payload) {
			body = payload
		}
	}
	query.Set("key", c.key)
	query.Set("token", c.token)

	totalRetries := c.options.retryCount
	var lastErr error

	for attempt := 1; attempt <= totalRetries+1; attempt++ {
		err := c.attempt(ctx, method, path, query, body, result, attempt)
		if err == nil {
			return nil
		}
		if !retryable(err) {
			return err
		}
		lastErr = err
		if attempt == totalRetries+1 {
			break
		}
		if werr := c.waitBackoff(ctx, attempt-1); werr != nil {
			return werr
		}
	}

	return &RetryExhaustedError{Attempts: totalRetries + 1, Err: lastErr}
}

// attempt performs exactly one physical request bounded by the
// per-attempt timeout, and returns nil on a decoded 2xx, or the
// classified failure.
func (c *Client) attempt(ctx context.Context, method, path string, query url.Values, body any, result any, attempt int) error {
	fullURL := c.requestURL(path, query)
	c.logRequest(method, fullURL, body, attempt)

	attemptCtx, cancel := context.WithTimeout(ctx, c.options.timeout)
	defer cancel()

	req := c.rc.R().
		SetContext(attemptCtx).
		SetQueryParamsFromValues(query)
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	elapsed := time.Since(start)

	if err != nil {
		fault := classifyFault(err, elapsed)
		c.logFault(method, fullURL, fault, elapsed, attempt)
		return fault
	}

	c.logResponse(method, fullURL, resp.StatusCode(), resp.Body(), elapsed, attempt)

	if resp.IsSuccess() {
		return decodeResponse(resp, result)
	}
	return &APIError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
}

// waitBackoff sleeps out the capped exponential delay before retry k
// (0-based). The caller's context can cut the wait short.
func (c *Client) waitBackoff(ctx context.Context, k int) error {
	timer := time.NewTimer(backoffDelay(c.options.retryWaitTime, c.options.retryMaxWaitTime, k))
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// backoffDelay is min(wait << k, maxWait): doubling per retry, strictly
// increasing under the cap.
func backoffDelay(wait, maxWait time.Duration, k int) time.Duration {
	if k > 62 {
		return maxWait
	}
	delay := wait << uint(k)
	if delay <= 0 || delay > maxWait {
		return maxWait
	}
	return delay
}

// decodeResponse decodes a 2xx body by declared content type: JSON is
// unmarshaled into result, anything else is treated as opaque text. A
// body that cannot be decoded is a non-retryable [DecodeError].
func decodeResponse(resp *resty.Response, result any) error {
	if result == nil {
		return nil
	}
	contentType := resp.Header().Get("Content-Type")
	if isJSONContentType(contentType) {
		if err := json.Unmarshal(resp.Body(), result); err != nil {
			return &DecodeError{ContentType: contentType, Err: err}
		}
		return nil
	}
	switch v := result.(type) {
	case *string:
		*v = string(resp.Body())
	case *[]byte:
		*v = append([]byte(nil), resp.Body()...)
	default:
		return &DecodeError{
			ContentType: contentType,
			Err:         fmt.Errorf("text response cannot decode into %T", result),
		}
	}
	return nil
}

func isJSONContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

func (c *Client) requestURL(path string, query url.Values) string {
	base := strings.TrimSuffix(c.options.baseURL, "/")
	return base + "/" + strings.TrimPrefix(path, "/") + "?" + query.Encode()
}

func (c *Client) logRequest(method, fullURL string, body any, attempt int) {
	if !c.options.verbose {
		return
	}
	safeLog(func() {
		if body == nil {
			c.options.requestLogger.Debugf("%s %s attempt=%d", method, fullURL, attempt)
			return
		}
		payload, _ := json.Marshal(body)
		c.options.requestLogger.Debugf("%s %s attempt=%d payload=%s", method, fullURL, attempt, loggableBody(payload))
	})
}

func (c *Client) logResponse(method, fullURL string, status int, body []byte, elapsed time.Duration, attempt int) {
	if !c.options.verbose {
		return
	}
	safeLog(func() {
		if elapsed > slowRequestThreshold {
			c.options.requestLogger.Warnf("slow request: %s %s status=%d attempt=%d took %v", method, fullURL, status, attempt, elapsed)
		}
		c.options.requestLogger.Debugf("%s %s status=%d attempt=%d dur=%v body=%s", method, fullURL, status, attempt, elapsed, loggableBody(body))
	})
}

func (c *Client) logFault(method, fullURL string, fault error, elapsed time.Duration, attempt int) {
	if !c.options.verbose {
		return
	}
	safeLog(func() {
		c.options.requestLogger.Errorf("%s %s attempt=%d failed after %v: %v", method, fullURL, attempt, elapsed, fault)
	})
}

// safeLog shields the request from a misbehaving logger: logging must
// never change the call outcome.
func safeLog(fn func()) {
	defer func() { _ = recover() }()
	fn()
}

// loggableBody renders a body for log output, replacing oversized bodies
// with a placeholder naming the omitted size.
func loggableBody(body []byte) string {
	if len(body) >= maxLoggedBodySize {
		return fmt.Sprintf("(body omitted: %d bytes)", len(body))
	}
	return string(body)
}

func (c *Client) get(ctx context.Context, path string, args Args, result any) error {
	return c.Do(ctx, http.MethodGet, path, args, EncodeQuery, result)
}

func (c *Client) post(ctx context.Context, path string, args Args, result any) error {
	return c.Do(ctx, http.MethodPost, path, args, EncodeQuery, result)
}

func (c *Client) postJSON(ctx context.Context, path string, body any, result any) error {
	return c.Do(ctx, http.MethodPost, path, body, EncodeBody, result)
}

func (c *Client) put(ctx context.Context, path string, args Args, result any) error {
	return c.Do(ctx, http.MethodPut, path, args, EncodeQuery, result)
}

func (c *Client) putJSON(ctx context.Context, path string, body any, result any) error {
	return c.Do(ctx, http.MethodPut, path, body, EncodeBody, result)
}

func (c *Client) del(ctx context.Context, path string, args Args) error {
	return c.Do(ctx, http.MethodDelete, path, args, EncodeQuery, nil)
}
