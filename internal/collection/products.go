package collection

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/pizzahouse/menu-client/internal/gateway"
	"github.com/pizzahouse/menu-client/internal/models"
)

type ProductGateway interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, req gateway.CreateProductRequest) (models.Product, error)
	UpdateProduct(ctx context.Context, id string, req gateway.UpdateProductRequest) (models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type ProductCollection struct {
	mu       sync.Mutex
	gw       ProductGateway
	state    State
	products []models.Product
}

func NewProducts(gw ProductGateway) *ProductCollection {
	return &ProductCollection{gw: gw}
}

func (c *ProductCollection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *ProductCollection) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Uninitialized {
		c.mu.Unlock()
		return ErrAlreadyLoaded
	}
	c.state = Loading
	c.mu.Unlock()

	fetched, err := c.gw.FetchProducts(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Ready
	if err != nil {
		c.products = nil
		return err
	}
	c.products = slices.Clone(fetched)
	return nil
}

// Products returns a snapshot in fetch order; later additions follow.
func (c *ProductCollection) Products() []models.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Add creates the product remotely and appends the server-returned entity.
// The identifier comes only from the server response; the image URL must
// already point at an uploaded object.
func (c *ProductCollection) Add(ctx context.Context, req gateway.CreateProductRequest) (models.Product, error) {
	if req.Name == "" {
		return models.Product{}, fmt.Errorf("%w: name required", ErrValidation)
	}
	if req.Price.IsNegative() {
		return models.Product{}, fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if req.Category == "" {
		return models.Product{}, fmt.Errorf("%w: category required", ErrValidation)
	}
	if req.ImageURL == "" {
		return models.Product{}, fmt.Errorf("%w: image must be uploaded first", ErrValidation)
	}

	created, err := c.gw.CreateProduct(ctx, req)
	if err != nil {
		return models.Product{}, err
	}

	c.mu.Lock()
	c.products = append(c.products, created)
	c.mu.Unlock()
	return created, nil
}

// Edit updates the product remotely; the server response, not a local
// patch, replaces the in-memory entity.
func (c *ProductCollection) Edit(ctx context.Context, id string, req gateway.UpdateProductRequest) (models.Product, error) {
	updated, err := c.gw.UpdateProduct(ctx, id, req)
	if err != nil {
		return models.Product{}, err
	}
	c.replace(updated)
	return updated, nil
}

func (c *ProductCollection) Remove(ctx context.Context, id string) error {
	if err := c.gw.DeleteProduct(ctx, id); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = slices.DeleteFunc(c.products, func(p models.Product) bool { return p.ID == id })
	return nil
}

// ToggleAvailability sends the negated availability as a single-field
// update and replaces the entity with the server response.
func (c *ProductCollection) ToggleAvailability(ctx context.Context, id string) (models.Product, error) {
	c.mu.Lock()
	i := indexOfProduct(c.products, id)
	if i < 0 {
		c.mu.Unlock()
		return models.Product{}, fmt.Errorf("%w: product %s", ErrNotFound, id)
	}
	next := !c.products[i].Available
	c.mu.Unlock()

	updated, err := c.gw.UpdateProduct(ctx, id, gateway.UpdateProductRequest{Available: &next})
	if err != nil {
		return models.Product{}, err
	}
	c.replace(updated)
	return updated, nil
}

func (c *ProductCollection) replace(p models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.products {
		if c.products[i].ID == p.ID {
			c.products[i] = p
			return
		}
	}
}

func indexOfProduct(products []models.Product, id string) int {
	for i := range products {
		if products[i].ID == id {
			return i
		}
	}
	return -1
}
