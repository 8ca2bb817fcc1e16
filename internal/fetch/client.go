// Package fetch provides the HTTP collaborator for the report tool. It
// issues a single GET request and returns the body together with the
// declared response headers the analysis needs.
package fetch

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptrace"
	"strings"
	"time"
)

// Client performs HTTP requests with performance tracing
type Client struct {
	client        *http.Client
	userAgent     string
	customHeaders map[string]string
}

// Timing contains performance measurements for a request
type Timing struct {
	DNSLookup    time.Duration // DNS lookup time
	TCPConnect   time.Duration // TCP connection time
	TLSHandshake time.Duration // TLS handshake time
	TTFB         time.Duration // Time to First Byte
	DownloadTime time.Duration // Total download time
}

// Response contains the fetched page and its declared metadata
type Response struct {
	StatusCode    int
	Headers       http.Header
	Body          []byte
	ContentLength int64  // Declared Content-Length, -1 if absent
	FinalURL      string // After following redirects
	Timing        Timing
}

// NewClient creates a new HTTP client
func NewClient(userAgent string, timeout time.Duration) *Client {
	transport := &http.Transport{
		MaxIdleConns:       10,
		IdleConnTimeout:    90 * time.Second,
		DisableCompression: false, // Enable automatic decompression
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= 10 {
				return fmt.Errorf("too many redirects")
			}
			return nil
		},
	}

	return &Client{
		client:        client,
		userAgent:     userAgent,
		customHeaders: make(map[string]string),
	}
}

// SetCustomHeaders sets custom HTTP headers
func (c *Client) SetCustomHeaders(headers map[string]string) {
	if c.customHeaders == nil {
		c.customHeaders = make(map[string]string)
	}
	for k, v := range headers {
		c.customHeaders[k] = v
	}
}

// NormalizeURL prepends the http scheme when the input has none. The tool
// accepts bare host/path inputs like the reference prompt expects.
func NormalizeURL(input string) string {
	if strings.Contains(input, "://") {
		return input
	}
	return "http://" + input
}

// Get performs an HTTP GET request with performance tracing. DNS, connect,
// TLS, TTFB, and download times are measured and logged at debug level;
// they are not part of the report itself.
func (c *Client) Get(ctx context.Context, url string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	// Don't set Accept-Encoding manually - let Go handle compression automatically

	for name, value := range c.customHeaders {
		req.Header.Set(name, value)
	}

	// Setup performance tracing
	var timing Timing
	var dnsStart, connectStart, tlsStart time.Time
	var firstByteTime time.Time

	trace := &httptrace.ClientTrace{
		DNSStart: func(info httptrace.DNSStartInfo) {
			dnsStart = time.Now()
		},
		DNSDone: func(info httptrace.DNSDoneInfo) {
			timing.DNSLookup = time.Since(dnsStart)
		},
		ConnectStart: func(network, addr string) {
			connectStart = time.Now()
		},
		ConnectDone: func(network, addr string, err error) {
			timing.TCPConnect = time.Since(connectStart)
		},
		TLSHandshakeStart: func() {
			tlsStart = time.Now()
		},
		TLSHandshakeDone: func(state tls.ConnectionState, err error) {
			timing.TLSHandshake = time.Since(tlsStart)
		},
		GotFirstResponseByte: func() {
			firstByteTime = time.Now()
		},
	}

	req = req.WithContext(httptrace.WithClientTrace(req.Context(), trace))

	startTime := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			// Log error but don't fail the request
			_ = err
		}
	}()

	if !firstByteTime.IsZero() {
		timing.TTFB = firstByteTime.Sub(startTime)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	timing.DownloadTime = time.Since(startTime)

	slog.Debug("fetched page",
		"url", resp.Request.URL.String(),
		"status", resp.StatusCode,
		"dns", timing.DNSLookup,
		"connect", timing.TCPConnect,
		"tls", timing.TLSHandshake,
		"ttfb", timing.TTFB,
		"download", timing.DownloadTime,
		"bytes", len(body))

	return &Response{
		StatusCode:    resp.StatusCode,
		Headers:       resp.Header,
		Body:          body,
		ContentLength: resp.ContentLength,
		FinalURL:      resp.Request.URL.String(),
		Timing:        timing,
	}, nil
}

// Close closes the HTTP client
func (c *Client) Close() {
	c.client.CloseIdleConnections()
}
