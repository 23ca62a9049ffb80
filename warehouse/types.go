// Package warehouse holds target-side records used as mapping fixtures.
// The mapper tag marks fields that must be set during construction.
package warehouse

import (
	"member-mapper/store"
)

// Order is the warehouse view of a store order.
type Order struct {
	ID                  int64  `mapper:"required"`
	CustomerEmail       string `mapper:"init"`
	CustomerAddressCity string
	Status              store.OrderStatus
	Items               []OrderItem
	Note                string `mapper:"readonly"`
	Audit               string `mapper:"-"`
}

// OrderItem is a line within a warehouse order.
type OrderItem struct {
	ProductID int64 `mapper:"init"`
	Quantity  int
}

// Category mirrors store.Category.
type Category struct {
	Name   string    `mapper:"init"`
	Parent *Category `mapper:"init"`
}
