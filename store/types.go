// Package store holds source-side models used as mapping fixtures.
package store

import (
	"time"
)

// Product represents an individual item available for sale.
type Product struct {
	ID          int64
	SKU         string
	Name        string
	Description *string
	PriceCents  int64
	CreatedAt   time.Time
}

// Customer represents the user placing orders.
type Customer struct {
	ID       int64
	Email    string
	FullName string
	Address  *Address
}

// Address is a postal address.
type Address struct {
	Street string
	City   string
}

// Order represents a transaction made by a customer.
type Order struct {
	ID       int64
	Customer Customer
	Status   OrderStatus
	Items    []OrderItem
	internal string
}

// OrderItem is a product line within an order.
type OrderItem struct {
	ProductID int64
	Quantity  int
}

// Category is a node in the product category tree.
type Category struct {
	Name   string
	Parent *Category
}

// OrderStatus is a custom type for type-safe status handling.
type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusPaid    OrderStatus = "PAID"
)
