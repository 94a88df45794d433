// Package listing fetches a job listing from a posting URL as readable text.
package listing

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"go.uber.org/zap"
)

const (
	defaultUserAgent = "career-coach"
	defaultTimeout   = 15 * time.Second

	// maxBodySize caps how much of a listing page is read.
	maxBodySize = 2 << 20
)

// Fetcher downloads job listings over HTTP and converts their HTML to
// markdown so the matcher sees readable text instead of markup.
type Fetcher struct {
	HTTPClient *http.Client
	UserAgent  string

	logger *zap.Logger
}

// New builds a Fetcher. Empty userAgent and non-positive timeout fall back
// to package defaults.
func New(logger *zap.Logger, userAgent string, timeout time.Duration) *Fetcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Fetcher{
		HTTPClient: &http.Client{Timeout: timeout},
		UserAgent:  userAgent,
		logger:     logger,
	}
}

// Fetch gets the listing page and returns its content as text.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", f.UserAgent)

	f.logger.Debug("fetching listing", zap.String("url", url))

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("bad status: %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", err
	}

	text, err := htmltomarkdown.ConvertString(string(body))
	if err != nil {
		return "", fmt.Errorf("converting listing html: %w", err)
	}

	f.logger.Debug("fetched listing", zap.String("url", url), zap.Int("chars", len(text)))

	return strings.TrimSpace(text), nil
}
