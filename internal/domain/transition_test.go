package domain_test

import (
	"errors"
	"testing"

	"sunnyside-backend/internal/domain"
)

func TestValidateStatusTransition(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		paymentStatus string
		newStatus     string
		wantErr       bool
	}{
		{"pending to confirmed", domain.OrderStatusPending, domain.PaymentStatusUnpaid, domain.OrderStatusConfirmed, false},
		{"confirmed to preparing", domain.OrderStatusConfirmed, domain.PaymentStatusUnpaid, domain.OrderStatusPreparing, false},
		{"preparing to ready", domain.OrderStatusPreparing, domain.PaymentStatusUnpaid, domain.OrderStatusReady, false},
		{"ready to out for delivery", domain.OrderStatusReady, domain.PaymentStatusUnpaid, domain.OrderStatusOutForDelivery, false},
		{"out for delivery to delivered when paid", domain.OrderStatusOutForDelivery, domain.PaymentStatusPaid, domain.OrderStatusDelivered, false},
		{"out for delivery to delivered when unpaid", domain.OrderStatusOutForDelivery, domain.PaymentStatusUnpaid, domain.OrderStatusDelivered, true},
		{"skipping a stage", domain.OrderStatusPending, domain.PaymentStatusUnpaid, domain.OrderStatusPreparing, true},
		{"cancel from pending", domain.OrderStatusPending, domain.PaymentStatusUnpaid, domain.OrderStatusCancelled, false},
		{"cancel from out for delivery", domain.OrderStatusOutForDelivery, domain.PaymentStatusPaid, domain.OrderStatusCancelled, false},
		{"delivered is terminal", domain.OrderStatusDelivered, domain.PaymentStatusPaid, domain.OrderStatusCancelled, true},
		{"restore a cancelled order", domain.OrderStatusCancelled, domain.PaymentStatusUnpaid, domain.OrderStatusPending, false},
		{"cancelled cannot jump forward", domain.OrderStatusCancelled, domain.PaymentStatusUnpaid, domain.OrderStatusConfirmed, true},
		{"same status is a no-op", domain.OrderStatusPreparing, domain.PaymentStatusUnpaid, domain.OrderStatusPreparing, false},
		{"unknown status", domain.OrderStatusPending, domain.PaymentStatusUnpaid, "shipped", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &domain.Order{Status: tt.status, PaymentStatus: tt.paymentStatus}
			err := domain.ValidateStatusTransition(order, tt.newStatus)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %s -> %s, got nil", tt.status, tt.newStatus)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %s -> %s: %v", tt.status, tt.newStatus, err)
			}
			if tt.wantErr {
				var invalid *domain.ErrInvalidTransition
				if !errors.As(err, &invalid) {
					t.Fatalf("expected ErrInvalidTransition, got %T", err)
				}
			}
		})
	}
}

func TestValidatePaymentTransition(t *testing.T) {
	tests := []struct {
		name          string
		status        string
		paymentStatus string
		newPayment    string
		wantErr       bool
	}{
		{"unpaid to paid", domain.OrderStatusPending, domain.PaymentStatusUnpaid, domain.PaymentStatusPaid, false},
		{"refund a cancelled paid order", domain.OrderStatusCancelled, domain.PaymentStatusPaid, domain.PaymentStatusRefunded, false},
		{"refund a delivered order", domain.OrderStatusDelivered, domain.PaymentStatusPaid, domain.PaymentStatusRefunded, true},
		{"refund an unpaid order", domain.OrderStatusCancelled, domain.PaymentStatusUnpaid, domain.PaymentStatusRefunded, true},
		{"paid back to unpaid", domain.OrderStatusPending, domain.PaymentStatusPaid, domain.PaymentStatusUnpaid, true},
		{"refunded is terminal", domain.OrderStatusCancelled, domain.PaymentStatusRefunded, domain.PaymentStatusPaid, true},
		{"same payment status is a no-op", domain.OrderStatusPending, domain.PaymentStatusPaid, domain.PaymentStatusPaid, false},
		{"unknown payment status", domain.OrderStatusPending, domain.PaymentStatusUnpaid, "voided", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := &domain.Order{Status: tt.status, PaymentStatus: tt.paymentStatus}
			err := domain.ValidatePaymentTransition(order, tt.newPayment)
			if tt.wantErr && err == nil {
				t.Fatalf("expected error for %s -> %s, got nil", tt.paymentStatus, tt.newPayment)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error for %s -> %s: %v", tt.paymentStatus, tt.newPayment, err)
			}
		})
	}
}
