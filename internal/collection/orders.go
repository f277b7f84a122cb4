package collection

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/pizzahouse/menu-client/internal/models"
	"github.com/pizzahouse/menu-client/internal/override"
)

type OrderGateway interface {
	FetchOrders(ctx context.Context) ([]models.Order, error)
}

type OrderCollection struct {
	mu        sync.Mutex
	gw        OrderGateway
	overrides override.Store
	state     State
	orders    []models.Order
}

func NewOrders(gw OrderGateway, st override.Store) *OrderCollection {
	return &OrderCollection{gw: gw, overrides: st}
}

func (c *OrderCollection) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Load fetches the remote collection once, merges persisted overrides and
// sorts. On a fetch fault the collection still becomes Ready, empty, and
// the fault is returned for display.
func (c *OrderCollection) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.state != Uninitialized {
		c.mu.Unlock()
		return ErrAlreadyLoaded
	}
	c.state = Loading
	c.mu.Unlock()

	fetched, err := c.gw.FetchOrders(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = Ready
	if err != nil {
		c.orders = nil
		return err
	}
	c.orders = mergeOverrides(fetched, c.overrides.ReadAll())
	sortDelivered(c.orders)
	return nil
}

// Orders returns a snapshot of the sorted collection.
func (c *OrderCollection) Orders() []models.Order {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// MarkDelivered is local-only: the status change is written through to the
// override store and never sent to the remote service. Calling it on an
// already delivered order is a no-op.
func (c *OrderCollection) MarkDelivered(id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := indexOfOrder(c.orders, id)
	if i < 0 {
		return fmt.Errorf("%w: order %s", ErrNotFound, id)
	}
	if c.orders[i].Status == models.StatusDelivered {
		return nil
	}

	status := models.StatusDelivered
	if err := c.overrides.WriteOne(id, models.OrderOverride{Status: &status}); err != nil {
		return err
	}
	c.orders[i].Status = status
	sortDelivered(c.orders)
	return nil
}

// mergeOverrides applies override fields over the remote values. Overrides
// whose id is absent from the fetched collection never match and stay
// persisted untouched.
func mergeOverrides(orders []models.Order, saved map[string]models.OrderOverride) []models.Order {
	merged := make([]models.Order, len(orders))
	copy(merged, orders)
	for i := range merged {
		o, ok := saved[merged[i].ID]
		if !ok {
			continue
		}
		if o.Status != nil {
			merged[i].Status = *o.Status
		}
	}
	return merged
}

// sortDelivered sinks delivered orders below the rest; the stable sort
// keeps fetch order among equals.
func sortDelivered(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Status != models.StatusDelivered && orders[j].Status == models.StatusDelivered
	})
}

func indexOfOrder(orders []models.Order, id string) int {
	for i := range orders {
		if orders[i].ID == id {
			return i
		}
	}
	return -1
}
