package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
// There is no defined path backwards.
type OrderStatus string

const (
	// OrderStatusPending is the state of a freshly created order, no courier yet.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusInProgress is set when a courier is assigned.
	OrderStatusInProgress OrderStatus = "in_progress"
	// OrderStatusCompleted is set when the courier finishes the delivery.
	OrderStatusCompleted OrderStatus = "completed"
)

// String returns the string value of the status.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a known value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusInProgress, OrderStatusCompleted:
		return true
	default:
		return false
	}
}

// OrderItem is the immutable line-item snapshot taken from the live product
// at order-creation time. Later catalog edits never touch it.
type OrderItem struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	ImageURL  string
}

// Order is a customer's purchase from a single merchant. Pricing is always
// recomputed server-side from live product records; the courier reference
// stays nil until a merchant assigns one.
type Order struct {
	ID         uuid.UUID
	CustomerID uuid.UUID
	MerchantID uuid.UUID
	CourierID  *uuid.UUID // Nil while the order is pending.

	// Address snapshot, copied from the customer's address at creation time.
	AddressID          uuid.UUID
	AddressLabel       string
	AddressDescription string

	Items    []OrderItem
	Subtotal decimal.Decimal
	TaxRate  decimal.Decimal // ITBIS percentage in force when the order was created.
	Tax      decimal.Decimal
	Total    decimal.Decimal

	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeTax returns the tax amount for a subtotal at the given percentage
// rate, rounded to cents.
func ComputeTax(subtotal, rate decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
}

// PriceItems sums item prices into a subtotal and derives tax and total
// from the given percentage rate. Invariant: total = subtotal + tax.
func PriceItems(items []OrderItem, rate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price)
	}
	subtotal = subtotal.Round(2)
	tax = ComputeTax(subtotal, rate)
	total = subtotal.Add(tax)

	return subtotal, tax, total
}
