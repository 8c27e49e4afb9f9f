package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/pkg/utils"
)

// ErrOrderNotSaved marks the inconsistent state where the processor captured
// the payment but the order rows could not be written. There is no automatic
// refund; the caller gets the explicit message.
var ErrOrderNotSaved = errors.New("payment succeeded but order creation failed")

// PaymentError carries the processor's own message so the client can show
// it verbatim.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string { return e.Message }

type OrderUsecase struct {
	orderRepo  domain.OrderRepository
	menuRepo   domain.MenuRepository
	userRepo   domain.UserRepository
	payments   domain.PaymentProvider
	notifier   domain.OrderNotifier
	txManager  domain.TransactionManager
	currency   string
	maxCartQty int
}

func NewOrderUsecase(
	orderRepo domain.OrderRepository,
	menuRepo domain.MenuRepository,
	userRepo domain.UserRepository,
	payments domain.PaymentProvider,
	notifier domain.OrderNotifier,
	txManager domain.TransactionManager,
	currency string,
	maxCartQty int,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:  orderRepo,
		menuRepo:   menuRepo,
		userRepo:   userRepo,
		payments:   payments,
		notifier:   notifier,
		txManager:  txManager,
		currency:   currency,
		maxCartQty: maxCartQty,
	}
}

// --- Cart Logic ---

func (u *OrderUsecase) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	return u.orderRepo.GetCart(ctx, userID)
}

// AddToCart increments the existing line for the item, or creates one.
func (u *OrderUsecase) AddToCart(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return nil, fmt.Errorf("quantity must be positive")
	}

	item, err := u.menuRepo.GetItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !item.Available {
		return nil, fmt.Errorf("%s is currently unavailable", item.Name)
	}

	cart, err := u.orderRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	newTotal := quantity
	for _, line := range cart.Items {
		if line.ItemID == itemID {
			newTotal += line.Quantity
			break
		}
	}
	if newTotal > u.maxCartQty {
		return nil, fmt.Errorf("quantity limit is %d per item", u.maxCartQty)
	}

	if err := u.orderRepo.UpsertCartItem(ctx, userID, itemID, newTotal); err != nil {
		return nil, err
	}
	return u.orderRepo.GetCart(ctx, userID)
}

// SetCartItemQuantity sets the line to an absolute quantity. Zero or less
// removes the line.
func (u *OrderUsecase) SetCartItemQuantity(ctx context.Context, userID, itemID string, quantity int) (*domain.Cart, error) {
	if quantity <= 0 {
		return u.RemoveFromCart(ctx, userID, itemID)
	}
	if quantity > u.maxCartQty {
		return nil, fmt.Errorf("quantity limit is %d per item", u.maxCartQty)
	}

	if _, err := u.menuRepo.GetItemByID(ctx, itemID); err != nil {
		return nil, err
	}

	if err := u.orderRepo.UpsertCartItem(ctx, userID, itemID, quantity); err != nil {
		return nil, err
	}
	return u.orderRepo.GetCart(ctx, userID)
}

func (u *OrderUsecase) RemoveFromCart(ctx context.Context, userID, itemID string) (*domain.Cart, error) {
	if err := u.orderRepo.RemoveCartItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	return u.orderRepo.GetCart(ctx, userID)
}

// --- Payment Intent ---

type PaymentLine struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}

// priceLines resolves the given lines against the catalog and returns the
// order item snapshots plus the total. Client prices are never consulted.
func (u *OrderUsecase) priceLines(ctx context.Context, lines []PaymentLine) ([]domain.OrderItem, float64, error) {
	if len(lines) == 0 {
		return nil, 0, domain.ErrEmptyCart
	}

	var total float64
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 {
			return nil, 0, fmt.Errorf("quantity must be positive")
		}
		item, err := u.menuRepo.GetItemByID(ctx, line.ItemID)
		if err != nil {
			return nil, 0, fmt.Errorf("item %s not found", line.ItemID)
		}
		if !item.Available {
			return nil, 0, fmt.Errorf("%s is currently unavailable", item.Name)
		}

		total += item.Price * float64(line.Quantity)
		items = append(items, domain.OrderItem{
			ItemID:   item.ID,
			Name:     item.Name,
			Quantity: line.Quantity,
			Price:    item.Price,
		})
	}
	return items, total, nil
}

// CreatePaymentIntent recomputes the total server-side from catalog prices
// and opens a processor payment intent for it.
func (u *OrderUsecase) CreatePaymentIntent(ctx context.Context, lines []PaymentLine) (*domain.PaymentIntent, error) {
	_, total, err := u.priceLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	intent, err := u.payments.CreateIntent(ctx, utils.ToCents(total), u.currency)
	if err != nil {
		msg := err.Error()
		if intent != nil && intent.ErrorMessage != "" {
			msg = intent.ErrorMessage
		}
		return nil, &PaymentError{Message: msg}
	}
	return intent, nil
}

// --- Checkout ---

type CheckoutReq struct {
	PaymentMethod   string `json:"paymentMethod"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
	DeliveryAddress string `json:"address"`
	Phone           string `json:"phone"`
	Notes           string `json:"notes,omitempty"`
}

// Checkout turns the user's server-side cart into an order. Card orders are
// only created after the payment intent has succeeded; the order rows and the
// cart clear commit in one transaction.
func (u *OrderUsecase) Checkout(ctx context.Context, userID string, req CheckoutReq) (*domain.Order, error) {
	if req.PaymentMethod != domain.PaymentMethodCard && req.PaymentMethod != domain.PaymentMethodCash {
		return nil, fmt.Errorf("unsupported payment method: %s", req.PaymentMethod)
	}
	if req.DeliveryAddress == "" {
		return nil, fmt.Errorf("delivery address required")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	cart, err := u.orderRepo.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	lines := make([]PaymentLine, len(cart.Items))
	for i, line := range cart.Items {
		lines[i] = PaymentLine{ItemID: line.ItemID, Quantity: line.Quantity}
	}
	orderItems, total, err := u.priceLines(ctx, lines)
	if err != nil {
		return nil, err
	}

	paymentStatus := domain.PaymentStatusUnpaid
	if req.PaymentMethod == domain.PaymentMethodCard {
		if req.PaymentIntentID == "" {
			return nil, &PaymentError{Message: "payment intent id required for card payment"}
		}
		intent, err := u.payments.GetIntent(ctx, req.PaymentIntentID)
		if err != nil {
			return nil, &PaymentError{Message: err.Error()}
		}
		if intent.Status != "succeeded" {
			return nil, &PaymentError{Message: fmt.Sprintf("payment not completed (status: %s)", intent.Status)}
		}
		if intent.Amount != utils.ToCents(total) {
			return nil, &PaymentError{Message: "payment amount does not match order total"}
		}
		paymentStatus = domain.PaymentStatusPaid
	}

	// Keep the profile current with the contact details used at checkout.
	if req.Phone != "" || req.DeliveryAddress != "" {
		user.Phone = req.Phone
		user.Address = req.DeliveryAddress
		if err := u.userRepo.UpsertProfile(ctx, user); err != nil {
			slog.Error("Usecase: Checkout - profile update failed", "user_id", userID, "error", err)
			// Non-critical, continue checkout
		}
	}

	order := &domain.Order{
		UserID:          userID,
		User:            *user,
		Status:          domain.OrderStatusPending,
		PaymentStatus:   paymentStatus,
		PaymentMethod:   req.PaymentMethod,
		PaymentIntentID: req.PaymentIntentID,
		TotalAmount:     total,
		DeliveryAddress: req.DeliveryAddress,
		Notes:           req.Notes,
		Items:           orderItems,
	}

	err = u.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.CreateOrder(txCtx, order); err != nil {
			return err
		}

		reason := "Order placed"
		history := &domain.OrderHistory{
			OrderID:   order.ID,
			NewStatus: order.Status,
			Reason:    &reason,
			CreatedBy: &order.UserID,
		}
		if err := u.orderRepo.CreateOrderHistory(txCtx, history); err != nil {
			return err
		}

		return u.orderRepo.ClearCart(txCtx, userID)
	})
	if err != nil {
		slog.Error("Usecase: Checkout - transaction failed", "user_id", userID, "error", err)
		if paymentStatus == domain.PaymentStatusPaid {
			return nil, fmt.Errorf("%w: %v", ErrOrderNotSaved, err)
		}
		return nil, err
	}

	if u.notifier != nil {
		u.notifier.NotifyOrderPlaced(order, user)
	}
	return order, nil
}

// --- Order Queries ---

func (u *OrderUsecase) GetMyOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return u.orderRepo.GetByUserID(ctx, userID)
}

func (u *OrderUsecase) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	return u.orderRepo.GetByID(ctx, id)
}

func (u *OrderUsecase) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	return u.orderRepo.GetOrderHistory(ctx, orderID)
}

// --- Admin ---

// matchesSearch reports whether the order matches the free-text term over
// order id, customer name and email, case-insensitively.
func matchesSearch(order *domain.Order, term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(order.ID), term) ||
		strings.Contains(strings.ToLower(order.User.FullName), term) ||
		strings.Contains(strings.ToLower(order.User.Email), term)
}

func (u *OrderUsecase) GetAllOrders(ctx context.Context, filter domain.OrderFilter) ([]domain.Order, int64, error) {
	if filter.Status != "" && !domain.IsValidOrderStatus(filter.Status) {
		return nil, 0, fmt.Errorf("unknown status: %s", filter.Status)
	}
	if filter.PaymentStatus != "" && !domain.IsValidPaymentStatus(filter.PaymentStatus) {
		return nil, 0, fmt.Errorf("unknown payment status: %s", filter.PaymentStatus)
	}

	orders, err := u.orderRepo.GetAll(ctx, filter.Status, filter.PaymentStatus)
	if err != nil {
		return nil, 0, err
	}

	if filter.Search != "" {
		matched := orders[:0:0]
		for i := range orders {
			if matchesSearch(&orders[i], filter.Search) {
				matched = append(matched, orders[i])
			}
		}
		orders = matched
	}

	total := int64(len(orders))

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	start := (page - 1) * limit
	if start >= len(orders) {
		return []domain.Order{}, total, nil
	}
	end := start + limit
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end], total, nil
}

// UpdateOrderStatus applies an admin fulfillment transition after checking
// it against the transition table, and records it in the order history.
func (u *OrderUsecase) UpdateOrderStatus(ctx context.Context, orderID, newStatus, note, actorID string) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := domain.ValidateStatusTransition(order, newStatus); err != nil {
		return err
	}
	if order.Status == newStatus {
		return nil
	}
	oldStatus := order.Status

	return u.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.UpdateStatus(txCtx, orderID, newStatus); err != nil {
			return err
		}

		reason := note
		if reason == "" {
			reason = fmt.Sprintf("Status changed from %s to %s", oldStatus, newStatus)
		}
		history := &domain.OrderHistory{
			OrderID:        orderID,
			PreviousStatus: &oldStatus,
			NewStatus:      newStatus,
			Reason:         &reason,
			CreatedBy:      &actorID,
		}
		if err := u.orderRepo.CreateOrderHistory(txCtx, history); err != nil {
			return fmt.Errorf("failed to record history: %w", err)
		}
		return nil
	})
}

// UpdatePaymentStatus applies an admin payment transition, validated by the
// same table as fulfillment changes.
func (u *OrderUsecase) UpdatePaymentStatus(ctx context.Context, orderID, newStatus, actorID string) error {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if err := domain.ValidatePaymentTransition(order, newStatus); err != nil {
		return err
	}
	if order.PaymentStatus == newStatus {
		return nil
	}

	return u.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := u.orderRepo.UpdatePaymentStatus(txCtx, orderID, newStatus); err != nil {
			return err
		}

		reason := fmt.Sprintf("Payment status changed: %s -> %s", order.PaymentStatus, newStatus)
		history := &domain.OrderHistory{
			OrderID:        orderID,
			PreviousStatus: &order.Status,
			NewStatus:      order.Status,
			Reason:         &reason,
			CreatedBy:      &actorID,
		}
		return u.orderRepo.CreateOrderHistory(txCtx, history)
	})
}
