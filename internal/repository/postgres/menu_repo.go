package postgres

import (
	"context"
	"errors"
	"sunnyside-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type menuRepository struct {
	db *pgxpool.Pool
}

func NewMenuRepository(db *pgxpool.Pool) domain.MenuRepository {
	return &menuRepository{db: db}
}

const menuItemColumns = `id, name, price, category, description, image_url, available, created_at, updated_at`

func scanMenuItem(row pgx.Row, item *domain.MenuItem) error {
	return row.Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.Category,
		&item.Description,
		&item.ImageURL,
		&item.Available,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
}

func (r *menuRepository) GetItems(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE ($1 = '' OR category = $1)
		  AND (NOT $2 OR available)
		ORDER BY category, name`

	rows, err := querier(ctx, r.db).Query(ctx, query, filter.Category, filter.AvailableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []domain.MenuItem{}
	for rows.Next() {
		var item domain.MenuItem
		if err := scanMenuItem(rows, &item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *menuRepository) GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuItemColumns + ` FROM menu_items WHERE id = $1`

	var item domain.MenuItem
	if err := scanMenuItem(querier(ctx, r.db).QueryRow(ctx, query, id), &item); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuRepository) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	query := `INSERT INTO menu_items (name, price, category, description, image_url, available)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return querier(ctx, r.db).QueryRow(ctx, query,
		item.Name, item.Price, item.Category, item.Description, item.ImageURL, item.Available,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *menuRepository) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	query := `UPDATE menu_items
		SET name = $2, price = $3, category = $4, description = $5, image_url = $6, available = $7, updated_at = now()
		WHERE id = $1
		RETURNING updated_at`

	err := querier(ctx, r.db).QueryRow(ctx, query,
		item.ID, item.Name, item.Price, item.Category, item.Description, item.ImageURL, item.Available,
	).Scan(&item.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	return err
}

func (r *menuRepository) DeleteItem(ctx context.Context, id string) error {
	tag, err := querier(ctx, r.db).Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
