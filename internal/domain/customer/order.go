package customer

import (
	"fmt"

	"github.com/shoppy/backend/internal/domain/shared"
)

// DeliveryStatus represents the delivery progress of an order
type DeliveryStatus string

const (
	DeliveryStatusSubmitted DeliveryStatus = "SUBMITTED"
	DeliveryStatusPacked    DeliveryStatus = "PACKED"
	DeliveryStatusShipped   DeliveryStatus = "SHIPPED"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
)

// IsValid checks if the status is a valid DeliveryStatus
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryStatusSubmitted, DeliveryStatusPacked, DeliveryStatusShipped, DeliveryStatusDelivered:
		return true
	}
	return false
}

// String returns the string representation of DeliveryStatus
func (s DeliveryStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can advance to the target status.
// The progression is strictly linear.
func (s DeliveryStatus) CanTransitionTo(target DeliveryStatus) bool {
	switch s {
	case DeliveryStatusSubmitted:
		return target == DeliveryStatusPacked
	case DeliveryStatusPacked:
		return target == DeliveryStatusShipped
	case DeliveryStatusShipped:
		return target == DeliveryStatusDelivered
	case DeliveryStatusDelivered:
		return false
	}
	return false
}

// Order is the immutable record produced by finalizing a checkout.
// Only the delivery status changes after creation.
type Order struct {
	shared.BaseEntity
	Summary        string
	DeliveryStatus DeliveryStatus
}

// NewOrder creates a new order in the submitted state
func NewOrder(summary string) (*Order, error) {
	if summary == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order summary cannot be empty")
	}

	return &Order{
		BaseEntity:     shared.NewBaseEntity(),
		Summary:        summary,
		DeliveryStatus: DeliveryStatusSubmitted,
	}, nil
}

// AdvanceDeliveryStatus moves the order to the target delivery status
func (o *Order) AdvanceDeliveryStatus(target DeliveryStatus) error {
	if !target.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", fmt.Sprintf("Unknown delivery status %s", target))
	}
	if !o.DeliveryStatus.CanTransitionTo(target) {
		return shared.NewDomainError("INVALID_STATE", fmt.Sprintf("Cannot move order from %s to %s", o.DeliveryStatus, target))
	}

	o.DeliveryStatus = target
	o.Touch()

	return nil
}
