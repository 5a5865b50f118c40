package embedding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"
)

const userAgent = "mood-recommender/1.0"

// Client is an HTTP embedding-service client with caching and retry.
// It expects a word-vector service exposing GET {base}/vector?word=...
// returning {"vector": [...]} with 404 for out-of-vocabulary words.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// In-memory cache: key = lowercase word. A nil entry records a known
	// out-of-vocabulary word so we don't re-query it.
	cache   map[string][]float32
	cacheMu sync.RWMutex
}

// NewClient creates a new embedding service client from the provided configuration.
func NewClient(cfg *Config) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: cfg.BaseURL,
		cache:   make(map[string][]float32),
	}
}

// Vector returns the embedding for a single word. Results (including
// out-of-vocabulary misses) are cached in memory.
func (c *Client) Vector(ctx context.Context, word string) ([]float32, error) {
	// Check cache
	c.cacheMu.RLock()
	cached, ok := c.cache[word]
	c.cacheMu.RUnlock()
	if ok {
		if cached == nil {
			return nil, fmt.Errorf("%q: %w", word, ErrNoVector)
		}
		return cached, nil
	}

	vec, err := c.fetchVector(ctx, word)
	if err != nil {
		if errors.Is(err, ErrNoVector) {
			// Negative result is cacheable; transport errors are not.
			c.cacheMu.Lock()
			c.cache[word] = nil
			c.cacheMu.Unlock()
		}
		return nil, err
	}

	c.cacheMu.Lock()
	c.cache[word] = vec
	c.cacheMu.Unlock()

	return vec, nil
}

// vectorResponse is the JSON response for a vector lookup.
type vectorResponse struct {
	Word   string    `json:"word"`
	Vector []float32 `json:"vector"`
}

// fetchVector performs the HTTP lookup with retry on transient failures.
// Retries up to 3 times with exponential backoff (250ms, 500ms, 1s).
func (c *Client) fetchVector(ctx context.Context, word string) ([]float32, error) {
	reqURL := c.baseURL + "/vector?" + url.Values{"word": {word}}.Encode()

	delays := []time.Duration{250 * time.Millisecond, 500 * time.Millisecond, time.Second}
	var lastErr error

	for attempt := 0; attempt <= len(delays); attempt++ {
		// Wait before retry (skip on first attempt)
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delays[attempt-1]):
			}
		}

		vec, retryable, err := c.doRequest(ctx, reqURL)
		if err == nil {
			return vec, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}

// doRequest performs a single HTTP request. The second return value
// reports whether the failure is worth retrying.
func (c *Client) doRequest(ctx context.Context, reqURL string) ([]float32, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, ErrNoVector
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("%w: reading response body: %v", ErrUnavailable, err)
	}

	var vr vectorResponse
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, false, fmt.Errorf("parsing vector response: %w", err)
	}

	if len(vr.Vector) == 0 {
		return nil, false, ErrNoVector
	}
	return vr.Vector, false, nil
}
