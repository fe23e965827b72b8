package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/chronos-mcp/chronos/internal/instrumentation"
	"github.com/chronos-mcp/chronos/internal/logging"
)

const (
	// DefaultBaseURL is the public Nominatim instance.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	// DefaultUserAgent identifies this server per the Nominatim usage policy.
	DefaultUserAgent = "chronos-mcp/1.0 (+https://github.com/chronos-mcp/chronos)"

	// DefaultTimeout bounds a single geocoding request.
	DefaultTimeout = 5 * time.Second
)

// ErrNotFound is returned when the query matched no place.
var ErrNotFound = errors.New("geocode: no match found")

// Client resolves free-text place names to coordinates via a
// Nominatim-compatible geocoding service.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *instrumentation.Metrics
}

// NewClient creates a geocoding client. Empty baseURL/userAgent and a
// non-positive timeout select the defaults; logger and metrics may be nil.
func NewClient(baseURL, userAgent string, timeout time.Duration, logger *slog.Logger, metrics *instrumentation.Metrics) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		metrics:    metrics,
	}
}

// Search resolves a free-text query to its best match. It returns
// ErrNotFound when the service has no match for the query; any other error
// indicates a transport or decoding failure.
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	endpoint, err := url.Parse(c.baseURL + "/search")
	if err != nil {
		return nil, fmt.Errorf("invalid geocoder base URL: %w", err)
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.recordResult(ctx, instrumentation.ResultError)
		return nil, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.recordResult(ctx, instrumentation.ResultError)
		return nil, fmt.Errorf("geocoding service returned status %d", resp.StatusCode)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		c.recordResult(ctx, instrumentation.ResultError)
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(places) == 0 {
		c.logger.Debug("geocoding found no match",
			logging.Operation("geocode_search"),
			logging.Query(query))
		c.recordResult(ctx, instrumentation.ResultNotFound)
		return nil, ErrNotFound
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		c.recordResult(ctx, instrumentation.ResultError)
		return nil, fmt.Errorf("malformed latitude %q in geocoding response: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		c.recordResult(ctx, instrumentation.ResultError)
		return nil, fmt.Errorf("malformed longitude %q in geocoding response: %w", places[0].Lon, err)
	}

	c.recordResult(ctx, instrumentation.ResultOK)
	return &Place{
		Lat:         lat,
		Lon:         lon,
		DisplayName: places[0].DisplayName,
	}, nil
}

func (c *Client) recordResult(ctx context.Context, result string) {
	c.metrics.RecordCollaboratorOp(ctx, instrumentation.CollaboratorGeocode, result)
}
