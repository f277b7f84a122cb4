package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzahouse/menu-client/internal/models"
)

func TestClient_FetchProducts_DecodesPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":"p1","name":"Pizza","price":"120","category":"c1","available":true}]`))
	}))
	t.Cleanup(srv.Close)

	got, err := NewClient(srv.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
	assert.True(t, got[0].Price.Equal(decimal.NewFromInt(120)))
	assert.True(t, got[0].Available)
}

func TestClient_FetchOrders_DecodesPayload(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		_ = json.NewEncoder(w).Encode([]models.Order{{
			ID:          "o1",
			Name:        "Asha",
			Mobile:      "9999999999",
			TotalAmount: decimal.NewFromInt(240),
			Products:    []models.OrderItem{{Name: "Pizza", Price: decimal.NewFromInt(120), Quantity: 2}},
			Date:        time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			TableNumber: "4",
			Status:      models.StatusPlaced,
		}})
	}))
	t.Cleanup(srv.Close)

	got, err := NewClient(srv.URL).FetchOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusPlaced, got[0].Status)
	assert.Equal(t, uint(2), got[0].Products[0].Quantity)
}

func TestClient_CreateProduct_PostsBodyAndDecodesResponse(t *testing.T) {
	t.Parallel()

	id := uuid.NewString()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/products", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateProductRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Margherita", req.Name)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Product{
			ID:        id,
			Name:      req.Name,
			Price:     req.Price,
			ImageURL:  req.ImageURL,
			Category:  req.Category,
			Available: req.Available,
		})
	}))
	t.Cleanup(srv.Close)

	created, err := NewClient(srv.URL).CreateProduct(context.Background(), CreateProductRequest{
		Name:      "Margherita",
		Price:     decimal.NewFromInt(120),
		ImageURL:  "/media/products/m.png",
		Category:  "pizza",
		Available: true,
	})
	require.NoError(t, err)
	assert.Equal(t, id, created.ID)
}

func TestClient_UpdateProduct_SendsOnlySuppliedFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/products/p1", r.URL.Path)

		var raw map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Contains(t, raw, "available")
		assert.NotContains(t, raw, "name")
		assert.NotContains(t, raw, "price")

		_ = json.NewEncoder(w).Encode(models.Product{ID: "p1", Available: false})
	}))
	t.Cleanup(srv.Close)

	available := false
	updated, err := NewClient(srv.URL).UpdateProduct(context.Background(), "p1", UpdateProductRequest{Available: &available})
	require.NoError(t, err)
	assert.False(t, updated.Available)
}

func TestClient_FaultTaxonomy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "5xx is transport",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: ErrTransport,
		},
		{
			name: "4xx is validation",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"message":"category required"}`))
			},
			wantErr: ErrValidation,
		},
		{
			name: "malformed body is decode",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			wantErr: ErrDecode,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			t.Cleanup(srv.Close)

			_, err := NewClient(srv.URL).FetchProducts(context.Background())
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_NetworkErrorIsTransport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).FetchProducts(context.Background())
	require.ErrorIs(t, err, ErrTransport)
}

func TestClient_DeleteProduct_UnknownIDIsTransport(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	err := NewClient(srv.URL).DeleteProduct(context.Background(), "missing")
	require.ErrorIs(t, err, ErrTransport)
}

func TestClient_DeleteProduct_NoContent(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/products/p1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	t.Cleanup(srv.Close)

	require.NoError(t, NewClient(srv.URL).DeleteProduct(context.Background(), "p1"))
}

func TestClient_ValidateAdmin(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/admin/validate", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		_ = json.NewEncoder(w).Encode(map[string]bool{
			"isValid": req["adminId"] == "admin" && req["password"] == "secret",
		})
	}))
	t.Cleanup(srv.Close)

	c := NewClient(srv.URL)

	ok, err := c.ValidateAdmin(context.Background(), "admin", "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = c.ValidateAdmin(context.Background(), "admin", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}
