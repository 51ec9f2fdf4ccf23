package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/lojaviva/commerce-system/internal/core/domain"
	"github.com/lojaviva/commerce-system/internal/metrics"
)

// OrderClient asks the order API to drop all orders owned by a user. Used
// by the user API as the second half of a user deletion.
type OrderClient struct {
	http *resty.Client
}

// NewOrderClient builds a client for the order API at baseURL.
func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout),
	}
}

// DeleteOrdersForUser resolves DELETE /api/orders/delete/by_user/{id} on the
// peer: 200 means orders were deleted; 404 means the user owned none (a
// not-found error the caller treats as success); anything else is an
// upstream failure.
func (c *OrderClient) DeleteOrdersForUser(ctx context.Context, userID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/orders/delete/by_user/%d", userID))
	if err != nil {
		metrics.PeerRequestsTotal.WithLabelValues("orders_api", "transport_error").Inc()
		return domain.NewUpstreamError(0, "error sending request to order API", err)
	}

	status := resp.StatusCode()
	switch {
	case status >= 200 && status < 300:
		metrics.PeerRequestsTotal.WithLabelValues("orders_api", "ok").Inc()
		return nil
	case status == http.StatusNotFound:
		metrics.PeerRequestsTotal.WithLabelValues("orders_api", "not_found").Inc()
		return domain.NewNotFoundError(fmt.Sprintf("no orders found with user ID %d", userID))
	default:
		metrics.PeerRequestsTotal.WithLabelValues("orders_api", "upstream_error").Inc()
		return domain.NewUpstreamError(status, "error sending request to order API", nil)
	}
}
