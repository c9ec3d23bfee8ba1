// Package transport is the shared HTTP transport of the resume assistant client.
// It owns the session cookie store, the fixed timeouts and request logging; the
// repositories build on it and never touch net/http directly.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-assistant/internal/logging"
	"go.uber.org/zap"
)

// DefaultTimeout applies to connect, read and write alike.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for API requests.
const DefaultUserAgent = "ResumeAssistant/1.0 (+go)"

// RequestIDHeader carries a per-request id for correlating client and server logs.
const RequestIDHeader = "X-Request-ID"

// CSRFHeader echoes the CSRF cookie on unsafe requests.
const CSRFHeader = "X-CSRFToken"

// Options configures a Client.
type Options struct {
	BaseURL        string
	ConnectTimeout time.Duration
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	UserAgent      string
	Logger         logging.Logger
	// Session is shared with other clients when set, so one logout clears every host.
	Session        *SessionStore
}

// DefaultOptions returns options with the standard timeouts and no base URL.
func DefaultOptions() *Options {
	return &Options{
		ConnectTimeout: DefaultTimeout,
		ReadTimeout:    DefaultTimeout,
		WriteTimeout:   DefaultTimeout,
		UserAgent:      DefaultUserAgent,
	}
}

// Client performs API requests against one base URL, replaying session cookies.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	session    *SessionStore
	userAgent  string
	log        logging.Logger
}

// New creates a client. The base URL must be absolute.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	base, err := url.Parse(strings.TrimSpace(opts.BaseURL))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", opts.BaseURL)
	}

	connect := orDefault(opts.ConnectTimeout)
	read := orDefault(opts.ReadTimeout)
	write := orDefault(opts.WriteTimeout)

	dialer := &net.Dialer{Timeout: connect, KeepAlive: 30 * time.Second}
	rt := &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           dialer.DialContext,
		TLSHandshakeTimeout:   connect,
		ResponseHeaderTimeout: read,
		ExpectContinueTimeout: time.Second,
		MaxIdleConns:          10,
		IdleConnTimeout:       90 * time.Second,
	}

	session := opts.Session
	if session == nil {
		session = NewSessionStore()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Transport: rt,
			Jar:       session,
			Timeout:   connect + write + read, // whole exchange, uploads included
		},
		session:   session,
		userAgent: userAgent,
		log:       log.With(zap.String("component", "transport")),
	}, nil
}

// Session returns the cookie store shared by every request of this client.
func (c *Client) Session() *SessionStore {
	return c.session
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL
	return &u
}

// DoJSON sends in (when non-nil) as a JSON body and decodes a 2xx response into out
// (when non-nil). An empty 2xx body leaves out untouched.
func (c *Client) DoJSON(ctx context.Context, op, method, path string, query url.Values, in, out any) error {
	body, err := c.Raw(ctx, op, method, path, query, in)
	if err != nil {
		return err
	}
	return Decode(op, body, out)
}

// Raw sends in (when non-nil) as a JSON body and returns the 2xx response body.
func (c *Client) Raw(ctx context.Context, op, method, path string, query url.Values, in any) ([]byte, error) {
	var reader io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to encode request: %w", op, err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.do(op, req)
}

// PostMultipart uploads r as a single multipart part named field and returns the
// 2xx response body.
func (c *Client) PostMultipart(ctx context.Context, op, path, field, filename, contentType string, r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to create multipart part: %w", op, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("%s: failed to read upload: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("%s: failed to finish multipart body: %w", op, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, nil, &buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return c.do(op, req)
}

// Decode unmarshals a successful response body into out.
func Decode(op string, body []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Op: op, Cause: err}
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	ref, err := url.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", path, err)
	}
	target := c.baseURL.ResolveReference(ref)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set(RequestIDHeader, uuid.NewString())

	if !isSafeMethod(method) {
		if token, ok := c.session.Cookie(target, CSRFCookieName); ok {
			req.Header.Set(CSRFHeader, token)
			req.Header.Set("Referer", c.baseURL.String())
		}
	}
	return req, nil
}

func (c *Client) do(op string, req *http.Request) ([]byte, error) {
	start := time.Now()
	fields := []zap.Field{
		zap.String("op", op),
		zap.String("method", req.Method),
		zap.String("path", req.URL.Path),
		zap.String("request_id", req.Header.Get(RequestIDHeader)),
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("request failed", append(fields, zap.Duration("duration", time.Since(start)), zap.Error(err))...)
		return nil, &NetworkError{Op: op, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	fields = append(fields, zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		c.log.Debug("request rejected", append(fields, zap.Duration("duration", time.Since(start)))...)
		return nil, &StatusError{
			Op:   op,
			Code: resp.StatusCode,
			Body: ErrorText(resp.Header.Get("Content-Type"), data),
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Debug("response read failed", append(fields, zap.Error(err))...)
		return nil, &NetworkError{Op: op, Cause: err}
	}
	c.log.Debug("request completed", append(fields, zap.Duration("duration", time.Since(start)))...)
	return data, nil
}

// IsNetwork reports whether err is a NetworkError.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}
