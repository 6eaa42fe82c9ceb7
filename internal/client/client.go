// Package client is the Go consumer of the delivery API. It carries the
// pieces a frontend needs beyond plain HTTP calls: a paginated fetch
// controller that survives impatient users and tab switches, and an
// optimistic mutation helper that keeps the local list honest when a
// request fails.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	api "tawsil/internal/adapters/in/http"
)

// APIError is a non-2xx response decoded from the server's error body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// APIClient calls the delivery API on behalf of one identity. The identity
// email travels in the header the authenticating proxy would otherwise set,
// which keeps the client usable in tests and internal tooling.
type APIClient struct {
	baseURL string
	email   string
	httpc   *http.Client
}

// NewAPIClient creates a client for the given base URL and identity email.
func NewAPIClient(baseURL, email string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		email:   email,
		httpc:   http.DefaultClient,
	}
}

// OwnOrders fetches the unpaged per-identity listing.
func (c *APIClient) OwnOrders(ctx context.Context) ([]api.Order, error) {
	var orders []api.Order
	err := c.do(ctx, http.MethodGet, "/api/v1/orders", nil, &orders)
	return orders, err
}

// OrderPage fetches one page of the tab-scoped listing.
func (c *APIClient) OrderPage(ctx context.Context, tab string, page, limit int) (api.OrderPage, error) {
	path := fmt.Sprintf("/api/v1/orders/all?tab=%s&page=%d&limit=%d", tab, page, limit)

	var resp api.OrderPage
	err := c.do(ctx, http.MethodGet, path, nil, &resp)
	return resp, err
}

// Order fetches a single order by id.
func (c *APIClient) Order(ctx context.Context, id string) (api.Order, error) {
	var resp api.Order
	err := c.do(ctx, http.MethodGet, "/api/v1/orders/"+id, nil, &resp)
	return resp, err
}

// CreateOrder creates an order and returns its id.
func (c *APIClient) CreateOrder(ctx context.Context, req api.OrderRequest) (string, error) {
	var resp struct {
		ID string `json:"id"`
	}
	err := c.do(ctx, http.MethodPost, "/api/v1/orders", req, &resp)
	return resp.ID, err
}

// UpdateOrder edits order details or applies a lifecycle transition,
// depending on which fields the request carries.
func (c *APIClient) UpdateOrder(ctx context.Context, id string, req api.UpdateOrderRequest) error {
	return c.do(ctx, http.MethodPut, "/api/v1/orders/"+id, req, nil)
}

// DeleteOrder deletes an order.
func (c *APIClient) DeleteOrder(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/orders/"+id, nil, nil)
}

// SetRole performs the one-shot role self-assignment for the client identity.
func (c *APIClient) SetRole(ctx context.Context, role string) error {
	return c.do(ctx, http.MethodPost, "/api/v1/set-role", api.SetRoleRequest{Role: role}, nil)
}

// Locations fetches the destination templates.
func (c *APIClient) Locations(ctx context.Context) ([]api.Location, error) {
	var locations []api.Location
	err := c.do(ctx, http.MethodGet, "/api/v1/locations", nil, &locations)
	return locations, err
}

func (c *APIClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set(api.HeaderUserEmail, c.email)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var apiErr api.Error
		if err = json.NewDecoder(resp.Body).Decode(&apiErr); err != nil {
			apiErr.Message = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: apiErr.Message}
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
