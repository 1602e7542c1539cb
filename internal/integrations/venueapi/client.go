package venueapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-VenueAvailability/internal/domain"
	"github.com/m04kA/SMC-VenueAvailability/pkg/metrics"
)

const (
	endpointVenues   = "venues"
	endpointBookings = "bookings"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент внешнего API площадок и бронирований
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента. token и m опциональны.
func NewClient(baseURL string, timeout time.Duration, token string, m *metrics.Metrics, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
		log:     log,
	}
}

// GetVenues получает площадки владельца
func (c *Client) GetVenues(ctx context.Context, ownerID string) ([]*domain.Venue, error) {
	var dtos []VenueDTO
	if err := c.get(ctx, endpointVenues, ownerID, &dtos); err != nil {
		return nil, err
	}

	venues, skipped := ToDomainVenues(dtos)
	for _, s := range skipped {
		c.log.Warn("Skipping venue id=%q for owner=%s: %v", s.ID, ownerID, s.Reason)
	}

	c.log.Info("Fetched %d venues for owner=%s (skipped=%d)", len(venues), ownerID, len(skipped))
	return venues, nil
}

// GetBookings получает бронирования владельца.
// Записи с нераспознаваемой датой или без статуса отбрасываются с предупреждением.
// Незнакомый статус не отбрасывает бронь: она продолжает занимать слот.
func (c *Client) GetBookings(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	var dtos []BookingDTO
	if err := c.get(ctx, endpointBookings, ownerID, &dtos); err != nil {
		return nil, err
	}

	bookings, skipped := ToDomainBookings(dtos, ownerID)
	for _, s := range skipped {
		c.log.Warn("Skipping booking id=%q for owner=%s: %v", s.ID, ownerID, s.Reason)
	}
	for _, b := range bookings {
		if !b.Status.IsKnown() {
			c.log.Warn("Booking id=%q for owner=%s has unknown status %q, counted as active", b.ID, ownerID, b.Status)
		}
	}

	c.log.Info("Fetched %d bookings for owner=%s (skipped=%d)", len(bookings), ownerID, len(skipped))
	return bookings, nil
}

func (c *Client) get(ctx context.Context, endpoint, ownerID string, out interface{}) (err error) {
	start := time.Now()
	defer func() {
		c.observe(endpoint, start, err)
	}()

	u := fmt.Sprintf("%s/%s?ownerId=%s", c.baseURL, endpoint, url.QueryEscape(ownerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode == http.StatusOK:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: invalid owner ID format", ErrInvalidResponse)
	case resp.StatusCode == http.StatusNotFound:
		return ErrOwnerNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: status code %d: %s", ErrUnavailable, resp.StatusCode, string(body))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

func (c *Client) observe(endpoint string, start time.Time, err error) {
	if c.metrics == nil {
		return
	}

	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, ErrOwnerNotFound):
		outcome = "not_found"
	case errors.Is(err, ErrUnavailable):
		outcome = "unavailable"
	default:
		outcome = "error"
	}

	c.metrics.UpstreamRequestDuration.WithLabelValues(endpoint, outcome).Observe(time.Since(start).Seconds())
}
