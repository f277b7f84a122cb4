// Package gateway is the typed request boundary to the remote catalog/order
// service. It holds no state and performs no retries: every fault is
// returned to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pizzahouse/menu-client/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type CreateProductRequest struct {
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Category  string          `json:"category"`
	Available bool            `json:"available"`
}

// UpdateProductRequest carries partial fields: only non-nil fields are
// changed server-side.
type UpdateProductRequest struct {
	Name      *string          `json:"name,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	ImageURL  *string          `json:"imageUrl,omitempty"`
	Category  *string          `json:"category,omitempty"`
	Available *bool            `json:"available,omitempty"`
}

func (c *Client) FetchCategories(ctx context.Context) ([]models.Category, error) {
	var out []models.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchOrders(ctx context.Context) ([]models.Order, error) {
	var out []models.Order
	if err := c.do(ctx, http.MethodGet, "/orders", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPost, "/products", req, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id string, req UpdateProductRequest) (models.Product, error) {
	var out models.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, req, &out); err != nil {
		return models.Product{}, err
	}
	return out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	err := c.do(ctx, http.MethodDelete, "/products/"+id, nil, nil)
	if errors.Is(err, ErrValidation) {
		// the service reports unknown ids as 4xx; callers treat a failed
		// delete the same as an unreachable remote
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return err
}

func (c *Client) ValidateAdmin(ctx context.Context, adminID, password string) (bool, error) {
	body := map[string]string{"adminId": adminID, "password": password}
	var out struct {
		IsValid bool `json:"isValid"`
	}
	if err := c.do(ctx, http.MethodPost, "/admin/validate", body, &out); err != nil {
		return false, err
	}
	return out.IsValid, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		rd = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return fmt.Errorf("%w: remote returned %d", ErrTransport, resp.StatusCode)
	case resp.StatusCode >= 400:
		return fmt.Errorf("%w: %s", ErrValidation, serverMessage(resp.Body, resp.StatusCode))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return nil
}

func serverMessage(body io.Reader, status int) string {
	var p struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&p); err == nil {
		if p.Message != "" {
			return p.Message
		}
		if p.Error != "" {
			return p.Error
		}
	}
	return fmt.Sprintf("remote returned %d", status)
}
