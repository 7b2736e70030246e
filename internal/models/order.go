package models

import "time"

// Order status lifecycle. Orders are created pending by the storefront
// and only move through the remaining states via the admin panel.
const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known states.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusShipped,
		OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           int64     `json:"id"`
	OrderID      string    `json:"orderId"`
	CustomerName string    `json:"customerName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Address      string    `json:"address"`
	ProductID    int64     `json:"productId"`
	ProductName  string    `json:"productName"`
	Price        Localized `json:"price"`
	Notes        string    `json:"notes"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

type OrderInput struct {
	CustomerName string    `json:"customerName" binding:"required"`
	Email        string    `json:"email" binding:"required,email"`
	Phone        string    `json:"phone" binding:"required"`
	Address      string    `json:"address" binding:"required"`
	ProductID    int64     `json:"productId" binding:"required"`
	ProductName  string    `json:"productName" binding:"required"`
	Price        Localized `json:"price"`
	Notes        string    `json:"notes"`
}

// OrderPatch updates the admin-editable fields only.
type OrderPatch struct {
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}
