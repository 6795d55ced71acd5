package fleetapi

import (
	"context"
	"errors"
	"fleet-console/internal/domain"
	"fleet-console/internal/platform/obs"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client talks to the fleet REST API. All collections share one base URL.
//
// The client is safe for concurrent use.
type Client struct {
	session *http.Client
	baseURL string
}

// NewClient builds a client for baseURL (scheme and host, optionally a path
// prefix; "/api/..." is appended per call).
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("fleet api base url is empty")
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("fleet api base url %q is not absolute", baseURL)
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}, nil
}

func (c *Client) Trucks() *Collection[domain.Truck] {
	return &Collection[domain.Truck]{client: c, resource: "trucks"}
}

func (c *Client) Drivers() *Collection[domain.Driver] {
	return &Collection[domain.Driver]{client: c, resource: "drivers"}
}

func (c *Client) Deliveries() *Collection[domain.Delivery] {
	return &Collection[domain.Delivery]{client: c, resource: "deliveries"}
}

func (c *Client) Users() *Collection[domain.User] {
	return &Collection[domain.User]{client: c, resource: "users"}
}

func (c *Client) Destinations(ctx context.Context) (_ []domain.Destination, err error) {
	defer obs.Time(ctx, "fleetapi.Destinations")(&err)

	out := []domain.Destination{}
	if err := c.call(ctx, http.MethodGet, "addresses", "/api/addresses", nil, &out); err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return out, nil
}

func (c *Client) CargoTypes(ctx context.Context) (_ []domain.CargoType, err error) {
	defer obs.Time(ctx, "fleetapi.CargoTypes")(&err)

	out := []domain.CargoType{}
	if err := c.call(ctx, http.MethodGet, "cargas", "/api/cargas", nil, &out); err != nil {
		return nil, fmt.Errorf("list cargo types: %w", err)
	}
	return out, nil
}
