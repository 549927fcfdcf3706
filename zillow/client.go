package zillow

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// ErrEmptyRecord is returned when the upstream answers 200 with an empty object.
var ErrEmptyRecord = errors.New("zillow: empty property record")

type Config struct {
	Host    string
	Key     string
	BaseURL string // defaults to https://<Host>
	Timeout time.Duration
}

type Client struct {
	key     string
	host    string
	baseURL string
	http    *retryablehttp.Client
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	rc := retryablehttp.NewClient()
	// one attempt per lookup; a failure is reported to the caller as not found
	rc.RetryMax = 0
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = leveledLogger{s: log.Named("zillow").Sugar()}
	if cfg.Timeout > 0 {
		rc.HTTPClient.Timeout = cfg.Timeout
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://" + cfg.Host // RapidAPI gateway
	}
	return &Client{
		key:     cfg.Key,
		host:    cfg.Host,
		baseURL: baseURL,
		http:    rc,
	}
}

// Property fetches the raw record for a free-form street address.
// Docs: GET /property?address=<address>
func (c *Client) Property(ctx context.Context, address string) (RawProperty, error) {
	q := url.Values{}
	q.Set("address", address)
	u := fmt.Sprintf("%s/property?%s", c.baseURL, q.Encode())

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("X-RapidAPI-Key", c.key)
	req.Header.Set("X-RapidAPI-Host", c.host)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := ioReadAllLimit(resp.Body, 4<<20) // 4MB guard
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zillow error %d: %s", resp.StatusCode, truncate(strings.TrimSpace(string(body)), 256))
	}
	return DecodeRecord(body)
}

func ioReadAllLimit(r io.Reader, limit int64) ([]byte, error) {
	lr := io.LimitReader(r, limit+1)
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if int64(len(b)) > limit {
		return nil, errors.New("payload too large")
	}
	return b, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
