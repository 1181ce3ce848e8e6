package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DefaultTimeout = 5 * time.Second

	// maxErrorBody acota lo que se guarda del body de una respuesta no-2xx.
	maxErrorBody = 4 << 10
)

// Client hace POSTs JSON salientes (webhooks). Sin reintentos: un intento por llamada.
type Client struct {
	http      *http.Client
	userAgent string
}

type Options struct {
	Timeout   time.Duration
	UserAgent string

	// Transport opcional (tests).
	Transport http.RoundTripper
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	tr := opts.Transport
	if tr == nil {
		tr = http.DefaultTransport
	}
	return &Client{
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: tr,
		},
		userAgent: strings.TrimSpace(opts.UserAgent),
	}
}

// HTTPError representa una respuesta no-2xx.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("http error: status=%d", e.StatusCode)
	}
	return fmt.Sprintf("http error: status=%d body=%s", e.StatusCode, e.Body)
}

// ValidateURL acepta sólo URLs absolutas http(s).
func ValidateURL(raw string) error {
	u, err := url.ParseRequestURI(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("httpclient: invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("httpclient: unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("httpclient: url without host")
	}
	return nil
}

// PostJSON serializa in y lo envía a target. El request id del ctx (chi) se propaga
// como X-Request-Id. Devuelve *HTTPError si el status no es 2xx.
func (c *Client) PostJSON(ctx context.Context, target string, in any) error {
	if c == nil || c.http == nil {
		return errors.New("httpclient: nil client")
	}
	if err := ValidateURL(target); err != nil {
		return err
	}

	b, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("httpclient: marshal json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSpace(target), bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("httpclient: new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := chimw.GetReqID(ctx); id != "" {
		req.Header.Set(chimw.RequestIDHeader, id)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("httpclient: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &HTTPError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}
	// Drenar para reutilizar la conexión.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBody))
	return nil
}
