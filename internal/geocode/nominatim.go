// Package geocode resolves Peruvian district names to coordinates through a Nominatim search endpoint.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const DefaultURL = "https://nominatim.openstreetmap.org"

// Result of one lookup. Found is false when the search returned nothing.
type Result struct {
	Lat   float64
	Lon   float64
	Name  string
	Found bool
}

// Nominatim: throttled client; concurrent callers are spaced by the minimum interval.
type Nominatim struct {
	baseURL     string
	client      *http.Client
	userAgent   string
	country     string
	minInterval time.Duration

	mu   sync.Mutex
	last time.Time
}

type Option func(*Nominatim)

func WithBaseURL(u string) Option {
	return func(n *Nominatim) {
		if strings.TrimSpace(u) != "" {
			n.baseURL = u
		}
	}
}

func WithHTTPClient(c *http.Client) Option {
	return func(n *Nominatim) {
		if c != nil {
			n.client = c
		}
	}
}

func WithUserAgent(ua string) Option { return func(n *Nominatim) { n.userAgent = ua } }

func WithMinInterval(d time.Duration) Option { return func(n *Nominatim) { n.minInterval = d } }

// WithCountry restricts results to ISO 3166-1 alpha-2 codes (comma separated). Empty means worldwide.
func WithCountry(codes string) Option { return func(n *Nominatim) { n.country = codes } }

// New returns a client limited to Peru, one request per second.
func New(opts ...Option) *Nominatim {
	n := &Nominatim{
		baseURL:     DefaultURL,
		client:      &http.Client{Timeout: 10 * time.Second},
		userAgent:   "plazas-monitor-coords/1.0",
		country:     "pe",
		minInterval: time.Second,
	}
	for _, o := range opts {
		o(n)
	}
	return n
}

// DistrictQuery is the free-text query used for a district.
func DistrictQuery(province, district string) string {
	return district + ", " + province + ", Peru"
}

// Search runs a single-result free-text search.
func (n *Nominatim) Search(ctx context.Context, q string) (Result, error) {
	if strings.TrimSpace(q) == "" {
		return Result{}, nil
	}
	if err := n.wait(ctx); err != nil {
		return Result{}, err
	}
	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", q)
	if n.country != "" {
		params.Set("countrycodes", n.country)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, strings.TrimRight(n.baseURL, "/")+"/search", nil)
	if err != nil {
		return Result{}, err
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")
	if n.userAgent != "" {
		req.Header.Set("User-Agent", n.userAgent)
	}
	resp, err := n.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("geocode: status %d", resp.StatusCode)
	}
	var hits []struct {
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return Result{}, err
	}
	if len(hits) == 0 {
		return Result{}, nil
	}
	lat, err1 := strconv.ParseFloat(hits[0].Lat, 64)
	lon, err2 := strconv.ParseFloat(hits[0].Lon, 64)
	if err := errors.Join(err1, err2); err != nil {
		return Result{}, fmt.Errorf("geocode: bad coordinates: %w", err)
	}
	return Result{Lat: lat, Lon: lon, Name: hits[0].DisplayName, Found: true}, nil
}

// wait reserves the next request slot and sleeps until it, or until ctx is done.
func (n *Nominatim) wait(ctx context.Context) error {
	if n.minInterval <= 0 {
		return nil
	}
	n.mu.Lock()
	now := time.Now()
	next := n.last.Add(n.minInterval)
	if !next.After(now) {
		n.last = now
		n.mu.Unlock()
		return nil
	}
	n.last = next
	n.mu.Unlock()
	t := time.NewTimer(time.Until(next))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
