// Package department holds the Department record and the client contract for
// the remote department API.
package department

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"deptdash/internal/apiclient"
)

// TimeLayout is how creation timestamps are shown in the table.
const TimeLayout = "2006-01-02 15:04:05"

// Department is a record managed by the remote API.
type Department struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreatedLabel formats CreatedAt in local time for display.
func (d Department) CreatedLabel() string {
	return d.CreatedAt.Local().Format(TimeLayout)
}

// Client performs department CRUD against a backend.
type Client interface {
	List(ctx context.Context) ([]Department, error)
	Create(ctx context.Context, name string) (Department, error)
	Update(ctx context.Context, id, name string) (Department, error)
	Delete(ctx context.Context, id string) error
}

// HTTPClient implements Client over the JSON API.
type HTTPClient struct {
	api *apiclient.Client
}

// Ensure HTTPClient implements Client.
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient wraps an apiclient transport.
func NewHTTPClient(api *apiclient.Client) *HTTPClient {
	return &HTTPClient{api: api}
}

type nameBody struct {
	Name string `json:"name"`
}

// List fetches all departments.
func (c *HTTPClient) List(ctx context.Context) ([]Department, error) {
	var out []Department
	if err := c.api.Do(ctx, "department.list", http.MethodGet, "/api/departments", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a department with the given name.
func (c *HTTPClient) Create(ctx context.Context, name string) (Department, error) {
	var out Department
	err := c.api.Do(ctx, "department.create", http.MethodPost, "/api/departments", nameBody{Name: name}, &out)
	return out, err
}

// Update renames department id.
func (c *HTTPClient) Update(ctx context.Context, id, name string) (Department, error) {
	var out Department
	err := c.api.Do(ctx, "department.update", http.MethodPut, itemPath(id), nameBody{Name: name}, &out,
		attribute.String("department.id", id))
	return out, err
}

// Delete removes department id.
func (c *HTTPClient) Delete(ctx context.Context, id string) error {
	return c.api.Do(ctx, "department.delete", http.MethodDelete, itemPath(id), nil, nil,
		attribute.String("department.id", id))
}

func itemPath(id string) string {
	return "/api/departments/" + url.PathEscape(id)
}
