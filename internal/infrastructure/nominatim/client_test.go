package nominatim

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travelmap/internal/config"
)

func newTestClient(serverURL string) *client {
	cfg := &config.GeocoderConfig{
		BaseURL:        serverURL,
		UserAgent:      "travelmap-test/1.0",
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func TestClient_Forward(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Kyoto", r.URL.Query().Get("q"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		assert.Equal(t, "travelmap-test/1.0", r.Header.Get("User-Agent"))

		// The provider encodes coordinates as strings.
		io.WriteString(w, `[{"lat": "35.0116", "lon": "135.7681", "display_name": "Kyoto, Japan"}]`)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Forward(context.Background(), "Kyoto")
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, "Kyoto, Japan", result.Name)
	assert.InDelta(t, 35.0116, result.Coordinates.Lat, 1e-9)
	assert.InDelta(t, 135.7681, result.Coordinates.Lon, 1e-9)
}

func TestClient_ForwardNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	}))
	defer server.Close()

	result, err := newTestClient(server.URL).Forward(context.Background(), "Atlantis")
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestClient_ForwardUnparsableCoordinates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[{"lat": "not-a-number", "lon": "0", "display_name": "Broken"}]`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Forward(context.Background(), "Broken")
	assert.Error(t, err)
}

func TestClient_ForwardProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Forward(context.Background(), "Kyoto")
	assert.Error(t, err)
}

func TestClient_Reverse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "-22.9068", r.URL.Query().Get("lat"))
		assert.Equal(t, "-43.1729", r.URL.Query().Get("lon"))

		io.WriteString(w, `{"address": {"city": "Rio de Janeiro", "state": "Rio de Janeiro", "country": "Brasil"}}`)
	}))
	defer server.Close()

	address, err := newTestClient(server.URL).Reverse(context.Background(), -22.9068, -43.1729)
	require.NoError(t, err)
	require.NotNil(t, address)
	assert.Equal(t, "Rio de Janeiro", address.Label())
}

func TestClient_ReverseEmptyAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"address": {}}`)
	}))
	defer server.Close()

	address, err := newTestClient(server.URL).Reverse(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Unknown location", address.Label())
}
