// Package client implements the synchronous HTTP calls each API makes to
// its peer, translating remote status codes into domain errors. There is no
// retry and no circuit breaker: a request blocks until the peer answers or
// the client timeout fires.
package client

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/metrics"
)

const defaultTimeout = 10 * time.Second

// UserClient asks the user API whether a user exists. Used by the order API
// before persisting any order.
type UserClient struct {
	http *resty.Client
}

// NewUserClient builds a client for the user API at baseURL.
func NewUserClient(baseURL string) *UserClient {
	return &UserClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout),
	}
}

// EnsureUserExists resolves GET /api/users/{id} on the peer:
// 2xx means the user exists; 404 and 422 mean the reference is invalid and
// the peer's own status is mirrored back; anything else is an upstream
// failure carrying the peer's status.
func (c *UserClient) EnsureUserExists(ctx context.Context, userID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/users/%d", userID))
	if err != nil {
		metrics.PeerRequestsTotal.WithLabelValues("users_api", "transport_error").Inc()
		return domain.NewUpstreamError(0,
			fmt.Sprintf("an error occurred with user ID %d", userID), err)
	}

	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		metrics.PeerRequestsTotal.WithLabelValues("users_api", "ok").Inc()
		return nil
	case status == http.StatusNotFound || status == http.StatusUnprocessableEntity:
		metrics.PeerRequestsTotal.WithLabelValues("users_api", "invalid_reference").Inc()
		return domain.NewInvalidReferenceError(status,
			fmt.Sprintf("invalid user ID %d", userID))
	default:
		metrics.PeerRequestsTotal.WithLabelValues("users_api", "upstream_error").Inc()
		return domain.NewUpstreamError(status,
			fmt.Sprintf("an error occurred with user ID %d", userID), nil)
	}
}
