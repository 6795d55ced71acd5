package fleetapi

import (
	"context"
	"fleet-console/internal/platform/obs"
	"fmt"
	"net/http"
	"strconv"
)

// Collection is one CRUD resource of the API, /api/{resource}.
type Collection[T any] struct {
	client   *Client
	resource string
}

func (c *Collection[T]) path(id ...int) string {
	p := "/api/" + c.resource
	for _, v := range id {
		p += "/" + strconv.Itoa(v)
	}
	return p
}

func (c *Collection[T]) List(ctx context.Context) (_ []T, err error) {
	defer obs.Time(ctx, "fleetapi."+c.resource+".List")(&err)

	out := []T{}
	if err := c.client.call(ctx, http.MethodGet, c.resource, c.path(), nil, &out); err != nil {
		return nil, fmt.Errorf("list %s: %w", c.resource, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Create posts record and returns what the API stored. When the API answers
// without a body the posted record is returned.
func (c *Collection[T]) Create(ctx context.Context, record T) (_ T, err error) {
	defer obs.Time(ctx, "fleetapi."+c.resource+".Create")(&err)

	out := record
	if err := c.client.call(ctx, http.MethodPost, c.resource, c.path(), record, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("create %s: %w", c.resource, err)
	}
	return out, nil
}

// Update replaces the whole record stored under id.
func (c *Collection[T]) Update(ctx context.Context, id int, record T) (_ T, err error) {
	defer obs.Time(ctx, "fleetapi."+c.resource+".Update")(&err)

	out := record
	if err := c.client.call(ctx, http.MethodPut, c.resource, c.path(id), record, &out); err != nil {
		var zero T
		return zero, fmt.Errorf("update %s id=%d: %w", c.resource, id, err)
	}
	return out, nil
}

func (c *Collection[T]) Delete(ctx context.Context, id int) (err error) {
	defer obs.Time(ctx, "fleetapi."+c.resource+".Delete")(&err)

	if err := c.client.call(ctx, http.MethodDelete, c.resource, c.path(id), nil, nil); err != nil {
		return fmt.Errorf("delete %s id=%d: %w", c.resource, id, err)
	}
	return nil
}
