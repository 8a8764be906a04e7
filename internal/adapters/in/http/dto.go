package http

import (
	"github.com/google/uuid"
)

// Error is the standard error payload returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CartLine is a single menu item entry in a checkout request.
type CartLine struct {
	MenuItemID          uuid.UUID `json:"menu_item_id"`
	UnitPrice           int64     `json:"unit_price"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
}

// CheckoutRequest places a new order for a customer at a vendor.
type CheckoutRequest struct {
	CustomerID uuid.UUID  `json:"customer_id"`
	VendorID   uuid.UUID  `json:"vendor_id"`
	Lines      []CartLine `json:"lines"`
}

// CheckoutResponse returns the identifier assigned to the new order.
type CheckoutResponse struct {
	OrderID uuid.UUID `json:"order_id"`
}

// ChangeOrderStatusRequest moves an order to a new lifecycle status.
type ChangeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ClaimOrderRequest binds a rider to a confirmed order.
type ClaimOrderRequest struct {
	RiderID uuid.UUID `json:"rider_id"`
}

// RecordPaymentRequest carries a settlement outcome from the payment
// gateway webhook.
type RecordPaymentRequest struct {
	Outcome string `json:"outcome"`
}

// CreateRiderRequest registers a new rider.
type CreateRiderRequest struct {
	Name string `json:"name"`
}

// CreateRiderResponse returns the identifier assigned to the new rider.
type CreateRiderResponse struct {
	RiderID uuid.UUID `json:"rider_id"`
}

// ActiveOrder is the read model for an order still in flight.
type ActiveOrder struct {
	ID      uuid.UUID  `json:"id"`
	Status  string     `json:"status"`
	Total   int64      `json:"total"`
	RiderID *uuid.UUID `json:"rider_id,omitempty"`
}

// AvailableRider is the read model for a rider free to take an order.
type AvailableRider struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
