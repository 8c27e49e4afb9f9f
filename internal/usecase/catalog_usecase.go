package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/pkg/cache"
)

// ImageStore is the slice of object storage the catalog needs: removing an
// item's stored image by its public URL.
type ImageStore interface {
	DeleteFile(ctx context.Context, fileURL string) error
}

type CatalogUsecase struct {
	menuRepo domain.MenuRepository
	cache    cache.CacheService
	storage  ImageStore
	menuTTL  time.Duration
}

func NewCatalogUsecase(menuRepo domain.MenuRepository, cacheService cache.CacheService, storage ImageStore, menuTTL time.Duration) *CatalogUsecase {
	return &CatalogUsecase{
		menuRepo: menuRepo,
		cache:    cacheService,
		storage:  storage,
		menuTTL:  menuTTL,
	}
}

func menuCacheKey(filter domain.MenuFilter) string {
	return fmt.Sprintf("menu:%s:%t", filter.Category, filter.AvailableOnly)
}

func (u *CatalogUsecase) GetMenu(ctx context.Context, filter domain.MenuFilter) ([]domain.MenuItem, error) {
	if filter.Category != "" && !domain.IsValidCategory(filter.Category) {
		return nil, fmt.Errorf("unknown category: %s", filter.Category)
	}

	key := menuCacheKey(filter)
	if val, found := u.cache.Get(key); found {
		return val.([]domain.MenuItem), nil
	}

	items, err := u.menuRepo.GetItems(ctx, filter)
	if err != nil {
		return nil, err
	}

	u.cache.Set(key, items, u.menuTTL)
	return items, nil
}

func (u *CatalogUsecase) GetItem(ctx context.Context, id string) (*domain.MenuItem, error) {
	return u.menuRepo.GetItemByID(ctx, id)
}

func (u *CatalogUsecase) Categories() []string {
	return domain.MenuCategories
}

func validateItem(item *domain.MenuItem) error {
	if item.Name == "" {
		return fmt.Errorf("item name required")
	}
	if item.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if !domain.IsValidCategory(item.Category) {
		return fmt.Errorf("unknown category: %s", item.Category)
	}
	return nil
}

func (u *CatalogUsecase) CreateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := u.menuRepo.CreateItem(ctx, item); err != nil {
		return err
	}
	u.cache.Flush()
	return nil
}

func (u *CatalogUsecase) UpdateItem(ctx context.Context, item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	if err := u.menuRepo.UpdateItem(ctx, item); err != nil {
		return err
	}
	u.cache.Flush()
	return nil
}

// DeleteItem removes the stored image first, then the record. A failed image
// delete is logged and does not block the record delete.
func (u *CatalogUsecase) DeleteItem(ctx context.Context, id string) error {
	item, err := u.menuRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}

	if item.ImageURL != "" && u.storage != nil {
		if err := u.storage.DeleteFile(ctx, item.ImageURL); err != nil {
			slog.Error("Usecase: DeleteItem - image delete failed", "item_id", id, "image_url", item.ImageURL, "error", err)
		}
	}

	if err := u.menuRepo.DeleteItem(ctx, id); err != nil {
		return err
	}
	u.cache.Flush()
	return nil
}
