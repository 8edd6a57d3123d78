// Package fonts resolves the display font for a generation run: a local cache
// file when present, otherwise a fetch from the remote font catalog.
package fonts

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"sync"
	"time"

	"github.com/gabriele/previewgen/internal/config"
)

// DefaultTimeout bounds each font-related HTTP request.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for catalog and binary requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; previewgen/1.0)"

// srcURLPattern extracts the first embedded resource URL from the catalog's
// CSS response. The literal `src: url(...)` form is the catalog contract.
var srcURLPattern = regexp.MustCompile(`src: url\(([^)]+)\)`)

// Asset is the resolved font: identity plus the raw font program bytes,
// shared read-only across every render of the run.
type Asset struct {
	Family string
	Weight int
	Style  string
	Data   []byte
}

// ResolutionError means no usable font could be obtained. It is fatal for the
// run: no image is generated without the display font.
type ResolutionError struct {
	Message string
	Cause   error
}

func (e *ResolutionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("font resolution error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("font resolution error: %s", e.Message)
}

func (e *ResolutionError) Unwrap() error {
	return e.Cause
}

// Options configures the network behavior of the provider.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	// Retries is the number of additional attempts after a transient failure
	// (transport error or 5xx response).
	Retries int
}

// DefaultOptions returns sensible defaults: bounded timeout, one retry.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Retries:   1,
	}
}

// Provider resolves the display font at most once per run and caches the
// result for all subsequent calls.
type Provider struct {
	cachePath  string
	catalogURL string
	family     string
	weight     int
	style      string
	opts       *Options

	once  sync.Once
	asset *Asset
	err   error
}

// NewProvider creates a Provider from the run configuration. Pass nil opts
// for defaults.
func NewProvider(cfg config.Config, opts *Options) *Provider {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Provider{
		cachePath:  cfg.FontCachePath,
		catalogURL: cfg.FontCatalogURL,
		family:     cfg.FontFamily,
		weight:     cfg.FontWeight,
		style:      cfg.FontStyle,
		opts:       opts,
	}
}

// Resolve returns the display font. The first call does the work; later calls
// return the cached result, success or failure.
func (p *Provider) Resolve(ctx context.Context) (*Asset, error) {
	p.once.Do(func() {
		p.asset, p.err = p.resolve(ctx)
	})
	return p.asset, p.err
}

func (p *Provider) resolve(ctx context.Context) (*Asset, error) {
	// Local cache is authoritative when present.
	if data, err := os.ReadFile(p.cachePath); err == nil && len(data) > 0 {
		return p.newAsset(data), nil
	}

	css, err := p.get(ctx, p.catalogURL)
	if err != nil {
		return nil, &ResolutionError{Message: "failed to fetch font catalog", Cause: err}
	}

	match := srcURLPattern.FindSubmatch(css)
	if match == nil {
		return nil, &ResolutionError{Message: "could not locate font source"}
	}

	data, err := p.get(ctx, string(match[1]))
	if err != nil {
		return nil, &ResolutionError{Message: "failed to fetch font binary", Cause: err}
	}
	if len(data) == 0 {
		return nil, &ResolutionError{Message: "font binary response was empty"}
	}

	return p.newAsset(data), nil
}

func (p *Provider) newAsset(data []byte) *Asset {
	return &Asset{
		Family: p.family,
		Weight: p.weight,
		Style:  p.style,
		Data:   data,
	}
}

// get performs a GET with the configured timeout, retrying transient failures.
func (p *Provider) get(ctx context.Context, url string) ([]byte, error) {
	client := &http.Client{Timeout: p.opts.Timeout}

	var lastErr error
	for attempt := 0; attempt <= p.opts.Retries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to create request for %s: %w", url, err)
		}
		req.Header.Set("User-Agent", p.opts.UserAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, readErr := io.ReadAll(resp.Body)
		_ = resp.Body.Close()

		if resp.StatusCode >= http.StatusInternalServerError {
			lastErr = fmt.Errorf("HTTP status %d from %s", resp.StatusCode, url)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("HTTP status %d from %s", resp.StatusCode, url)
		}
		if readErr != nil {
			lastErr = fmt.Errorf("failed to read response from %s: %w", url, readErr)
			continue
		}
		return body, nil
	}
	return nil, lastErr
}
