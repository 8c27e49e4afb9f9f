package domain

// Order Statuses (fulfillment stage, independent of payment)
const (
	OrderStatusPending        = "pending"
	OrderStatusConfirmed      = "confirmed"
	OrderStatusPreparing      = "preparing"
	OrderStatusReady          = "ready"
	OrderStatusOutForDelivery = "out_for_delivery"
	OrderStatusDelivered      = "delivered"
	OrderStatusCancelled      = "cancelled"
)

// Payment Statuses
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// Payment Methods
const (
	PaymentMethodCard = "card"
	PaymentMethodCash = "cash"
)

// Roles
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// List Exports for API
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusPreparing,
	OrderStatusReady,
	OrderStatusOutForDelivery,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

var PaymentStatuses = []string{
	PaymentStatusUnpaid,
	PaymentStatusPaid,
	PaymentStatusRefunded,
}

var PaymentMethods = []string{
	PaymentMethodCard,
	PaymentMethodCash,
}

// MenuCategories is the fixed category set for catalog items.
var MenuCategories = []string{
	"Toast",
	"Eggs",
	"Bagels",
	"Pancakes",
	"Omelettes",
	"Specialties",
	"Bowls",
	"Mexican",
	"Goodies",
}

func IsValidOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatuses {
		if v == s {
			return true
		}
	}
	return false
}

func IsValidCategory(c string) bool {
	for _, v := range MenuCategories {
		if v == c {
			return true
		}
	}
	return false
}
