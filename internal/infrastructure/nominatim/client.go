package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/travelmap/internal/config"
	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	"go.uber.org/zap"
)

// client talks to a Nominatim-compatible geocoding provider. Nominatim's
// usage policy requires an identifying User-Agent on every request.
type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	Address domain.Address `json:"address"`
}

// NewClient creates the external geocoding client.
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.Geocoder {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

// Forward resolves free text to the provider's first hit.
func (c *client) Forward(ctx context.Context, query string) (*domain.ForwardResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		c.logger.Debug("Forward geocoding returned no results", zap.String("query", query))
		return nil, nil
	}

	coords, err := parseCoordinates(results[0].Lat, results[0].Lon)
	if err != nil {
		c.logger.Error("Provider returned unparsable coordinates",
			zap.String("query", query),
			zap.Error(err))
		return nil, err
	}

	return &domain.ForwardResult{
		Name:        results[0].DisplayName,
		Coordinates: coords,
	}, nil
}

// Reverse resolves a coordinate pair to a structured address.
func (c *client) Reverse(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("format", "json")

	var result reverseResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return nil, err
	}

	return &result.Address, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	reqURL := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Geocoding request failed",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("geocoding request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Geocoding provider returned error",
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode))
		return fmt.Errorf("geocoding provider: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode geocoding response",
			zap.String("path", path),
			zap.Error(err))
		return fmt.Errorf("decode geocoding response: %w", err)
	}

	return nil
}

func parseCoordinates(latStr, lonStr string) (domain.Coordinates, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lat %q: %w", latStr, err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("parse lon %q: %w", lonStr, err)
	}
	coords := domain.Coordinates{Lat: lat, Lon: lon}
	if !coords.Valid() {
		return domain.Coordinates{}, fmt.Errorf("coordinates out of range: %s, %s", latStr, lonStr)
	}
	return coords, nil
}
