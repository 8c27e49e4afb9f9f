package domain

import "fmt"

// ErrInvalidTransition is returned when a requested status change is not
// allowed from the order's current (status, payment_status) pair.
type ErrInvalidTransition struct {
	From   string
	To     string
	Reason string
}

func (e *ErrInvalidTransition) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("invalid transition %s -> %s: %s", e.From, e.To, e.Reason)
	}
	return fmt.Sprintf("invalid transition %s -> %s", e.From, e.To)
}

// statusTransitions is the single source of truth for fulfillment
// transitions. Status changes are validated here and nowhere else, so
// "hidden action" in a client and "prevented action" on the server
// cannot drift apart.
var statusTransitions = map[string][]string{
	OrderStatusPending:        {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed:      {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing:      {OrderStatusReady, OrderStatusCancelled},
	OrderStatusReady:          {OrderStatusOutForDelivery, OrderStatusCancelled},
	OrderStatusOutForDelivery: {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered:      {},
	// restore: an accidentally rejected order goes back to the start of the chain
	OrderStatusCancelled: {OrderStatusPending},
}

// ValidateStatusTransition checks a fulfillment status change against the
// transition table. Moving to delivered additionally requires the order to
// be paid.
func ValidateStatusTransition(order *Order, newStatus string) error {
	if !IsValidOrderStatus(newStatus) {
		return &ErrInvalidTransition{From: order.Status, To: newStatus, Reason: "unknown status"}
	}
	if order.Status == newStatus {
		return nil
	}

	allowed := false
	for _, next := range statusTransitions[order.Status] {
		if next == newStatus {
			allowed = true
			break
		}
	}
	if !allowed {
		return &ErrInvalidTransition{From: order.Status, To: newStatus}
	}

	if newStatus == OrderStatusDelivered && order.PaymentStatus != PaymentStatusPaid {
		return &ErrInvalidTransition{
			From:   order.Status,
			To:     newStatus,
			Reason: "order must be paid before it can be delivered",
		}
	}

	return nil
}

// ValidatePaymentTransition checks a payment status change. Refunds are
// only possible for paid orders that have been cancelled; refunded is
// terminal.
func ValidatePaymentTransition(order *Order, newPaymentStatus string) error {
	if !IsValidPaymentStatus(newPaymentStatus) {
		return &ErrInvalidTransition{From: order.PaymentStatus, To: newPaymentStatus, Reason: "unknown payment status"}
	}
	if order.PaymentStatus == newPaymentStatus {
		return nil
	}

	switch {
	case order.PaymentStatus == PaymentStatusUnpaid && newPaymentStatus == PaymentStatusPaid:
		return nil
	case order.PaymentStatus == PaymentStatusPaid && newPaymentStatus == PaymentStatusRefunded:
		if order.Status != OrderStatusCancelled {
			return &ErrInvalidTransition{
				From:   order.PaymentStatus,
				To:     newPaymentStatus,
				Reason: "only cancelled orders can be refunded",
			}
		}
		return nil
	}

	return &ErrInvalidTransition{From: order.PaymentStatus, To: newPaymentStatus}
}
