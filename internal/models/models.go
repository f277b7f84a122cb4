package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

func (c Category) DisplayName() string { return c.Name }

type Product struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"imageUrl"`
	Category  string          `json:"category"`
	Available bool            `json:"available"`
}

func (p Product) DisplayName() string { return p.Name }

type OrderStatus string

const (
	StatusPlaced    OrderStatus = "Placed"
	StatusDelivered OrderStatus = "Delivered"
)

type OrderItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity uint            `json:"quantity,omitempty"`
}

type Order struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Mobile      string          `json:"mobile"`
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Products    []OrderItem     `json:"products"`
	Date        time.Time       `json:"date"`
	TableNumber string          `json:"tableNumber"`
	Status      OrderStatus     `json:"status"`
}

func (o Order) DisplayName() string { return o.Name }

// OrderOverride is the locally persisted partial field set for one order.
// A nil field defers to the remote value.
type OrderOverride struct {
	Status *OrderStatus `json:"status,omitempty"`
}
