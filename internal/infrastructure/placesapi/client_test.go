package placesapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/travelmap/internal/config"
	"github.com/travelmap/internal/domain"
	apperrors "github.com/travelmap/internal/pkg/errors"
)

func newTestClient(serverURL string) *client {
	cfg := &config.BackendConfig{
		BaseURL:        serverURL,
		RequestTimeout: 5 * time.Second,
	}
	return NewClient(cfg, zap.NewNop()).(*client)
}

func TestClient_FetchAll(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/places", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"success": true,
			"data": [
				{
					"_id": "b1",
					"name": "Natal",
					"description": "Beaches",
					"coordinates": [-5.7945, -35.211],
					"status": "visited",
					"visitDate": "2023-12-15",
					"visitDescription": "Amazing dunes"
				},
				{
					"id": "local-1",
					"name": "Gramado",
					"coordinates": [-29.3788, -50.8744],
					"status": "planned",
					"plannedDate": "2024-07-20"
				}
			]
		}`)
	}))
	defer server.Close()

	places, err := newTestClient(server.URL).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, places, 2)

	assert.Equal(t, "b1", places[0].BackendID)
	assert.Equal(t, domain.StatusVisited, places[0].Status)
	require.NotNil(t, places[0].VisitDate)
	assert.Equal(t, "2023-12-15", places[0].VisitDate.String())
	assert.Equal(t, domain.Coordinates{Lat: -5.7945, Lon: -35.211}, places[0].Coordinates)

	assert.Equal(t, "local-1", places[1].LocalID)
	assert.Empty(t, places[1].BackendID)
}

func TestClient_EnvelopeFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// HTTP 200 with success:false is still a rejection.
		io.WriteString(w, `{"success": false, "message": "validation failed"}`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchAll(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrBackendRejected.Code, appErr.Code)
	assert.Equal(t, "validation failed", appErr.Details["message"])
}

func TestClient_UnreadableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `<html>gateway error</html>`)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchAll(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrBackendRejected.Code, appErr.Code)
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := newTestClient(server.URL).FetchAll(context.Background())
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrBackendUnavailable.Code, appErr.Code)
}

func TestClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var draft domain.Place
		require.NoError(t, json.NewDecoder(r.Body).Decode(&draft))
		assert.Equal(t, "Cusco", draft.Name)

		draft.BackendID = "b9"
		resp, _ := json.Marshal(draft)
		io.WriteString(w, `{"success": true, "data": `+string(resp)+`}`)
	}))
	defer server.Close()

	plannedDate, err := domain.ParseCalendarDate("2025-06-01")
	require.NoError(t, err)

	created, err := newTestClient(server.URL).Create(context.Background(), domain.Place{
		Name:        "Cusco",
		Coordinates: domain.Coordinates{Lat: -13.5319, Lon: -71.9675},
		Status:      domain.StatusPlanned,
		PlannedDate: &plannedDate,
	})
	require.NoError(t, err)
	assert.Equal(t, "b9", created.BackendID)
}

func TestClient_MarkVisitedBody(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/places/b1/visit", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		io.WriteString(w, `{"success": true, "data": {
			"_id": "b1",
			"name": "Natal",
			"coordinates": [-5.7945, -35.211],
			"status": "visited",
			"visitDate": "2024-08-02",
			"visitDescription": "Great trip"
		}}`)
	}))
	defer server.Close()

	visitDate, err := domain.ParseCalendarDate("2024-08-02")
	require.NoError(t, err)

	place, err := newTestClient(server.URL).MarkVisited(context.Background(), "b1", visitDate, "Great trip")
	require.NoError(t, err)

	assert.Equal(t, "2024-08-02", gotBody["visitDate"])
	assert.Equal(t, "Great trip", gotBody["visitDescription"])
	assert.Equal(t, domain.StatusVisited, place.Status)
	assert.Nil(t, place.PlannedDate)
}

func TestClient_MarkPlannedBody(t *testing.T) {
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/places/b1/plan", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		io.WriteString(w, `{"success": true, "data": {
			"_id": "b1",
			"name": "Natal",
			"coordinates": [-5.7945, -35.211],
			"status": "planned",
			"plannedDate": "2025-01-10"
		}}`)
	}))
	defer server.Close()

	plannedDate, err := domain.ParseCalendarDate("2025-01-10")
	require.NoError(t, err)

	place, err := newTestClient(server.URL).MarkPlanned(context.Background(), "b1", plannedDate)
	require.NoError(t, err)

	assert.Equal(t, "2025-01-10", gotBody["plannedDate"])
	assert.Equal(t, domain.StatusPlanned, place.Status)
	assert.Empty(t, place.VisitDescription)
}

func TestClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/places/b1", r.URL.Path)
		io.WriteString(w, `{"success": true, "data": null}`)
	}))
	defer server.Close()

	require.NoError(t, newTestClient(server.URL).Delete(context.Background(), "b1"))
}
