package postgres

import (
	"context"
	"errors"
	"sunnyside-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) domain.OrderRepository {
	return &orderRepository{db: db}
}

// --- Order Methods ---

func (r *orderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	q := querier(ctx, r.db)

	query := `INSERT INTO orders (user_id, status, payment_status, payment_method, payment_intent_id, total_amount, delivery_address, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := q.QueryRow(ctx, query,
		order.UserID, order.Status, order.PaymentStatus, order.PaymentMethod,
		order.PaymentIntentID, order.TotalAmount, order.DeliveryAddress, order.Notes,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		err := q.QueryRow(ctx,
			`INSERT INTO order_items (order_id, item_id, name, quantity, price)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`,
			order.ID, item.ItemID, item.Name, item.Quantity, item.Price,
		).Scan(&item.ID)
		if err != nil {
			return err
		}
		item.OrderID = order.ID
	}

	return nil
}

func (r *orderRepository) getOrderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	rows, err := querier(ctx, r.db).Query(ctx,
		`SELECT id, order_id, item_id, name, quantity, price FROM order_items WHERE order_id = $1 ORDER BY name`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.OrderItem{}
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

const orderSelect = `SELECT o.id, o.user_id, o.status, o.payment_status, o.payment_method, o.payment_intent_id,
		o.total_amount, o.delivery_address, o.notes, o.created_at, o.updated_at,
		u.email, u.full_name, u.phone
	FROM orders o
	JOIN users u ON u.id = o.user_id`

func scanOrder(row pgx.Row, o *domain.Order) error {
	return row.Scan(
		&o.ID, &o.UserID, &o.Status, &o.PaymentStatus, &o.PaymentMethod, &o.PaymentIntentID,
		&o.TotalAmount, &o.DeliveryAddress, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
		&o.User.Email, &o.User.FullName, &o.User.Phone,
	)
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	err := scanOrder(querier(ctx, r.db).QueryRow(ctx, orderSelect+` WHERE o.id = $1`, id), &order)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	order.User.ID = order.UserID

	items, err := r.getOrderItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return &order, nil
}

func (r *orderRepository) GetByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	rows, err := querier(ctx, r.db).Query(ctx,
		orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, err
		}
		order.User.ID = order.UserID
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.getOrderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *orderRepository) GetAll(ctx context.Context, status, paymentStatus string) ([]domain.Order, error) {
	rows, err := querier(ctx, r.db).Query(ctx,
		orderSelect+`
		WHERE ($1 = '' OR o.status = $1)
		  AND ($2 = '' OR o.payment_status = $2)
		ORDER BY o.created_at DESC`,
		status, paymentStatus)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []domain.Order{}
	for rows.Next() {
		var order domain.Order
		if err := scanOrder(rows, &order); err != nil {
			return nil, err
		}
		order.User.ID = order.UserID
		orders = append(orders, order)
	}
	return orders, rows.Err()
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := querier(ctx, r.db).Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *orderRepository) UpdatePaymentStatus(ctx context.Context, id, status string) error {
	tag, err := querier(ctx, r.db).Exec(ctx,
		`UPDATE orders SET payment_status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --- Cart Methods ---

func (r *orderRepository) GetCart(ctx context.Context, userID string) (*domain.Cart, error) {
	q := querier(ctx, r.db)

	cart := &domain.Cart{UserID: userID, Items: []domain.CartItem{}}
	err := q.QueryRow(ctx,
		`SELECT id, created_at, updated_at FROM carts WHERE user_id = $1`, userID,
	).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No cart yet reads as an empty one.
			return cart, nil
		}
		return nil, err
	}

	rows, err := q.Query(ctx,
		`SELECT ci.id, ci.cart_id, ci.item_id, ci.quantity,
			m.id, m.name, m.price, m.category, m.description, m.image_url, m.available
		FROM cart_items ci
		JOIN menu_items m ON m.id = ci.item_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at`,
		cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID, &item.CartID, &item.ItemID, &item.Quantity,
			&item.Item.ID, &item.Item.Name, &item.Item.Price, &item.Item.Category,
			&item.Item.Description, &item.Item.ImageURL, &item.Item.Available,
		)
		if err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, item)
	}
	return cart, rows.Err()
}

func (r *orderRepository) UpsertCartItem(ctx context.Context, userID, itemID string, quantity int) error {
	// Single round trip: create the cart row if missing, then set the line
	// quantity to the given absolute value.
	query := `WITH c AS (
			INSERT INTO carts (user_id) VALUES ($1)
			ON CONFLICT (user_id) DO UPDATE SET updated_at = now()
			RETURNING id
		)
		INSERT INTO cart_items (cart_id, item_id, quantity)
		SELECT c.id, $2, $3 FROM c
		ON CONFLICT (cart_id, item_id) DO UPDATE SET quantity = EXCLUDED.quantity`

	_, err := querier(ctx, r.db).Exec(ctx, query, userID, itemID, quantity)
	return err
}

func (r *orderRepository) RemoveCartItem(ctx context.Context, userID, itemID string) error {
	_, err := querier(ctx, r.db).Exec(ctx,
		`DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1 AND ci.item_id = $2`,
		userID, itemID)
	return err
}

func (r *orderRepository) ClearCart(ctx context.Context, userID string) error {
	_, err := querier(ctx, r.db).Exec(ctx,
		`DELETE FROM cart_items ci
		USING carts c
		WHERE ci.cart_id = c.id AND c.user_id = $1`,
		userID)
	return err
}

// --- History Methods ---

func (r *orderRepository) CreateOrderHistory(ctx context.Context, history *domain.OrderHistory) error {
	return querier(ctx, r.db).QueryRow(ctx,
		`INSERT INTO order_history (order_id, previous_status, new_status, reason, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		history.OrderID, history.PreviousStatus, history.NewStatus, history.Reason, history.CreatedBy,
	).Scan(&history.ID, &history.CreatedAt)
}

func (r *orderRepository) GetOrderHistory(ctx context.Context, orderID string) ([]domain.OrderHistory, error) {
	rows, err := querier(ctx, r.db).Query(ctx,
		`SELECT h.id, h.order_id, h.previous_status, h.new_status, h.reason, h.created_by, h.created_at
		FROM order_history h
		WHERE h.order_id = $1
		ORDER BY h.created_at`,
		orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []domain.OrderHistory{}
	for rows.Next() {
		var h domain.OrderHistory
		if err := rows.Scan(&h.ID, &h.OrderID, &h.PreviousStatus, &h.NewStatus, &h.Reason, &h.CreatedBy, &h.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, h)
	}
	return history, rows.Err()
}
