package placesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/travelmap/internal/config"
	"github.com/travelmap/internal/domain"
	"github.com/travelmap/internal/domain/repository"
	apperrors "github.com/travelmap/internal/pkg/errors"
	"go.uber.org/zap"
)

// envelope is the backend's response wrapper. A success:false body is a
// failure regardless of the HTTP status detail.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
}

type client struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

// NewClient creates the HTTP client for the remote places backend.
func NewClient(cfg *config.BackendConfig, logger *zap.Logger) repository.PlaceBackend {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL: cfg.BaseURL,
		logger:  logger,
	}
}

func (c *client) FetchAll(ctx context.Context) ([]domain.Place, error) {
	raw, err := c.do(ctx, http.MethodGet, "/places", nil)
	if err != nil {
		return nil, err
	}

	var places []domain.Place
	if err := json.Unmarshal(raw, &places); err != nil {
		c.logger.Error("Failed to decode places collection", zap.Error(err))
		return nil, fmt.Errorf("decode places: %w", err)
	}

	c.logger.Debug("Fetched places collection", zap.Int("count", len(places)))
	return places, nil
}

func (c *client) Create(ctx context.Context, draft domain.Place) (domain.Place, error) {
	raw, err := c.do(ctx, http.MethodPost, "/places", draft)
	if err != nil {
		return domain.Place{}, err
	}
	return c.decodePlace(raw)
}

func (c *client) Update(ctx context.Context, id string, update domain.PlaceUpdate) (domain.Place, error) {
	raw, err := c.do(ctx, http.MethodPut, "/places/"+url.PathEscape(id), update)
	if err != nil {
		return domain.Place{}, err
	}
	return c.decodePlace(raw)
}

func (c *client) MarkVisited(ctx context.Context, id string, visitDate domain.CalendarDate, narrative string) (domain.Place, error) {
	body := struct {
		VisitDate        domain.CalendarDate `json:"visitDate"`
		VisitDescription string              `json:"visitDescription"`
	}{VisitDate: visitDate, VisitDescription: narrative}

	raw, err := c.do(ctx, http.MethodPatch, "/places/"+url.PathEscape(id)+"/visit", body)
	if err != nil {
		return domain.Place{}, err
	}
	return c.decodePlace(raw)
}

func (c *client) MarkPlanned(ctx context.Context, id string, plannedDate domain.CalendarDate) (domain.Place, error) {
	body := struct {
		PlannedDate domain.CalendarDate `json:"plannedDate"`
	}{PlannedDate: plannedDate}

	raw, err := c.do(ctx, http.MethodPatch, "/places/"+url.PathEscape(id)+"/plan", body)
	if err != nil {
		return domain.Place{}, err
	}
	return c.decodePlace(raw)
}

func (c *client) Delete(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/places/"+url.PathEscape(id), nil)
	return err
}

// do executes one backend call and unwraps the response envelope.
func (c *client) do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, apperrors.ErrBackendUnavailable.WithDetails(map[string]interface{}{
			"cause": err.Error(),
		})
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		c.logger.Error("Backend returned unreadable body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.Error(err))
		return nil, apperrors.ErrBackendRejected.WithDetails(map[string]interface{}{
			"status_code": resp.StatusCode,
		})
	}

	if !env.Success {
		c.logger.Error("Backend reported failure",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status_code", resp.StatusCode),
			zap.String("message", env.Message))
		details := map[string]interface{}{"status_code": resp.StatusCode}
		if env.Message != "" {
			details["message"] = env.Message
		}
		return nil, apperrors.ErrBackendRejected.WithDetails(details)
	}

	c.logger.Debug("Backend call succeeded",
		zap.String("method", method),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(start)))

	return env.Data, nil
}

func (c *client) decodePlace(raw json.RawMessage) (domain.Place, error) {
	var place domain.Place
	if err := json.Unmarshal(raw, &place); err != nil {
		c.logger.Error("Failed to decode place record", zap.Error(err))
		return domain.Place{}, fmt.Errorf("decode place: %w", err)
	}
	return place, nil
}
