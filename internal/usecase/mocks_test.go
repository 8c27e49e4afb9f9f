package usecase_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"sunnyside-backend/internal/domain"
)

// --- Menu repository ---

type mockMenuRepo struct {
	items         map[string]domain.MenuItem
	getItemsCalls int
}

func seedMenu() *mockMenuRepo {
	return &mockMenuRepo{items: map[string]domain.MenuItem{
		"item-toast": {ID: "item-toast", Name: "Avocado Toast", Price: 4.50, Category: "Toast", Available: true},
		"item-bowl":  {ID: "item-bowl", Name: "Acai Bowl", Price: 12.00, Category: "Bowls", Available: true},
		"item-off":   {ID: "item-off", Name: "Seasonal Omelette", Price: 9.25, Category: "Omelettes", Available: false},
	}}
}

func (m *mockMenuRepo) GetItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	m.getItemsCalls++
	var out []domain.MenuItem
	for _, item := range m.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.AvailableOnly && !item.Available {
			continue
		}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *mockMenuRepo) GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &item, nil
}

func (m *mockMenuRepo) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if item.ID == "" {
		item.ID = fmt.Sprintf("item-%d", len(m.items)+1)
	}
	m.items[item.ID] = *item
	return nil
}

func (m *mockMenuRepo) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if _, ok := m.items[item.ID]; !ok {
		return domain.ErrNotFound
	}
	m.items[item.ID] = *item
	return nil
}

func (m *mockMenuRepo) DeleteItem(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// --- Order repository ---

type mockOrderRepo struct {
	menu *mockMenuRepo

	carts   map[string]map[string]int // userID -> itemID -> quantity
	orders  []domain.Order
	history []domain.OrderHistory

	createOrderErr error
	getAllFn       func(ctx context.Context, status, paymentStatus string) ([]domain.Order, error)
}

func newMockOrderRepo(menu *mockMenuRepo) *mockOrderRepo {
	return &mockOrderRepo{menu: menu, carts: map[string]map[string]int{}}
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	if m.createOrderErr != nil {
		return m.createOrderErr
	}
	order.ID = fmt.Sprintf("order-%d", len(m.orders)+1)
	for i := range order.Items {
		order.Items[i].OrderID = order.ID
		order.Items[i].ID = fmt.Sprintf("%s-line-%d", order.ID, i+1)
	}
	m.orders = append(m.orders, *order)
	return nil
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	for i := range m.orders {
		if m.orders[i].ID == id {
			order := m.orders[i]
			return &order, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockOrderRepo) GetByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	for _, order := range m.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (m *mockOrderRepo) GetAll(ctx context.Context, status, paymentStatus string) ([]domain.Order, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx, status, paymentStatus)
	}
	var out []domain.Order
	for _, order := range m.orders {
		if status != "" && order.Status != status {
			continue
		}
		if paymentStatus != "" && order.PaymentStatus != paymentStatus {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id, status string) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockOrderRepo) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].PaymentStatus = status
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *mockOrderRepo) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	cart := &domain.Cart{ID: "cart-" + userID, UserID: userID, Items: []domain.CartItem{}}
	lines := m.carts[userID]

	itemIDs := make([]string, 0, len(lines))
	for itemID := range lines {
		itemIDs = append(itemIDs, itemID)
	}
	sort.Strings(itemIDs)

	for _, itemID := range itemIDs {
		cart.Items = append(cart.Items, domain.CartItem{
			CartID:   cart.ID,
			ItemID:   itemID,
			Item:     m.menu.items[itemID],
			Quantity: lines[itemID],
		})
	}
	return cart, nil
}

func (m *mockOrderRepo) UpsertCartItem(ctx context.Context, userID, itemID string, quantity int) error {
	if m.carts[userID] == nil {
		m.carts[userID] = map[string]int{}
	}
	m.carts[userID][itemID] = quantity
	return nil
}

func (m *mockOrderRepo) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	delete(m.carts[userID], itemID)
	return nil
}

func (m *mockOrderRepo) ClearCart(ctx context.Context, userID string) error {
	delete(m.carts, userID)
	return nil
}

func (m *mockOrderRepo) CreateOrderHistory(ctx context.Context, history *domain.OrderHistory) error {
	history.ID = fmt.Sprintf("hist-%d", len(m.history)+1)
	m.history = append(m.history, *history)
	return nil
}

func (m *mockOrderRepo) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	var out []domain.OrderHistory
	for _, h := range m.history {
		if h.OrderID == orderID {
			out = append(out, h)
		}
	}
	return out, nil
}

// --- User repository ---

type mockUserRepo struct {
	users          map[string]*domain.User
	upsertErr      error
	profileUpserts int
}

func newMockUserRepo(users ...*domain.User) *mockUserRepo {
	m := &mockUserRepo{users: map[string]*domain.User{}}
	for _, u := range users {
		m.users[u.ID] = u
	}
	return m
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (m *mockUserRepo) GetAll(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	var out []*domain.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *mockUserRepo) UpsertProfile(ctx context.Context, user *domain.User) error {
	m.profileUpserts++
	if m.upsertErr != nil {
		return m.upsertErr
	}
	stored, ok := m.users[user.ID]
	if !ok {
		return domain.ErrNotFound
	}
	stored.FullName = user.FullName
	stored.Phone = user.Phone
	stored.Address = user.Address
	return nil
}

// --- Payment provider ---

type mockPayments struct {
	createFn func(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error)
	getFn    func(ctx context.Context, id string) (*domain.PaymentIntent, error)

	createdAmounts []int64
}

func (m *mockPayments) CreateIntent(ctx context.Context, amount int64, currency string) (*domain.PaymentIntent, error) {
	m.createdAmounts = append(m.createdAmounts, amount)
	if m.createFn != nil {
		return m.createFn(ctx, amount, currency)
	}
	return &domain.PaymentIntent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Status:       "requires_payment_method",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

func (m *mockPayments) GetIntent(ctx context.Context, id string) (*domain.PaymentIntent, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return nil, fmt.Errorf("no such payment intent: %s", id)
}

// --- Order notifier ---

type mockNotifier struct {
	mu     sync.Mutex
	placed []string // order IDs
}

func (m *mockNotifier) Forward(ctx context.Context, payload []byte) error { return nil }

func (m *mockNotifier) NotifyOrderPlaced(order *domain.Order, user *domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.placed = append(m.placed, order.ID)
}

// --- Transaction manager ---

type mockTxManager struct {
	calls int
}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

// --- Cache ---

type fakeCache struct {
	data map[string]interface{}
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]interface{}{}}
}

func (c *fakeCache) Get(key string) (interface{}, bool) {
	val, ok := c.data[key]
	return val, ok
}

func (c *fakeCache) Set(key string, value interface{}, duration time.Duration) {
	c.data[key] = value
}

func (c *fakeCache) Delete(key string) { delete(c.data, key) }

func (c *fakeCache) Flush() { c.data = map[string]interface{}{} }
