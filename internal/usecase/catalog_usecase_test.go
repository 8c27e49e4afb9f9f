package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"
)

type mockImageStore struct {
	deleted   []string
	deleteErr error
}

func (m *mockImageStore) DeleteFile(ctx context.Context, fileURL string) error {
	m.deleted = append(m.deleted, fileURL)
	return m.deleteErr
}

func TestGetMenuCachesResult(t *testing.T) {
	menu := seedMenu()
	uc := usecase.NewCatalogUsecase(menu, newFakeCache(), nil, time.Minute)
	ctx := context.Background()
	filter := domain.MenuFilter{AvailableOnly: true}

	first, err := uc.GetMenu(ctx, filter)
	if err != nil {
		t.Fatalf("first GetMenu: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 available items, got %d", len(first))
	}

	second, err := uc.GetMenu(ctx, filter)
	if err != nil {
		t.Fatalf("second GetMenu: %v", err)
	}
	if len(second) != 2 {
		t.Fatalf("expected 2 items from cache, got %d", len(second))
	}
	if menu.getItemsCalls != 1 {
		t.Fatalf("repo hit %d times, want 1 (second read served from cache)", menu.getItemsCalls)
	}
}

func TestGetMenuRejectsUnknownCategory(t *testing.T) {
	uc := usecase.NewCatalogUsecase(seedMenu(), newFakeCache(), nil, time.Minute)
	if _, err := uc.GetMenu(context.Background(), domain.MenuFilter{Category: "Sushi"}); err == nil {
		t.Fatal("expected error for unknown category")
	}
}

func TestCreateItemValidatesAndFlushesCache(t *testing.T) {
	menu := seedMenu()
	cache := newFakeCache()
	uc := usecase.NewCatalogUsecase(menu, cache, nil, time.Minute)
	ctx := context.Background()

	// Warm the cache, then invalidate it with a write.
	if _, err := uc.GetMenu(ctx, domain.MenuFilter{AvailableOnly: true}); err != nil {
		t.Fatalf("warm cache: %v", err)
	}

	if err := uc.CreateItem(ctx, &domain.MenuItem{Name: "Huevos Rancheros", Price: 11.50, Category: "Mexican", Available: true}); err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if len(cache.data) != 0 {
		t.Fatal("menu cache must be flushed after a catalog write")
	}

	items, err := uc.GetMenu(ctx, domain.MenuFilter{AvailableOnly: true})
	if err != nil {
		t.Fatalf("GetMenu after create: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 available items after create, got %d", len(items))
	}
}

func TestCreateItemValidation(t *testing.T) {
	uc := usecase.NewCatalogUsecase(seedMenu(), newFakeCache(), nil, time.Minute)
	ctx := context.Background()

	tests := []struct {
		name string
		item domain.MenuItem
	}{
		{"missing name", domain.MenuItem{Price: 5, Category: "Toast"}},
		{"negative price", domain.MenuItem{Name: "X", Price: -1, Category: "Toast"}},
		{"unknown category", domain.MenuItem{Name: "X", Price: 5, Category: "Sushi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := tt.item
			if err := uc.CreateItem(ctx, &item); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestDeleteItemRemovesStoredImage(t *testing.T) {
	menu := seedMenu()
	item := menu.items["item-toast"]
	item.ImageURL = "https://img.example.com/toast.webp"
	menu.items["item-toast"] = item

	storage := &mockImageStore{}
	uc := usecase.NewCatalogUsecase(menu, newFakeCache(), storage, time.Minute)

	if err := uc.DeleteItem(context.Background(), "item-toast"); err != nil {
		t.Fatalf("DeleteItem: %v", err)
	}
	if len(storage.deleted) != 1 || storage.deleted[0] != "https://img.example.com/toast.webp" {
		t.Fatalf("image not deleted from storage: %v", storage.deleted)
	}
	if _, ok := menu.items["item-toast"]; ok {
		t.Fatal("item record not deleted")
	}
}

func TestDeleteItemProceedsWhenImageDeleteFails(t *testing.T) {
	menu := seedMenu()
	item := menu.items["item-toast"]
	item.ImageURL = "https://img.example.com/toast.webp"
	menu.items["item-toast"] = item

	storage := &mockImageStore{deleteErr: fmt.Errorf("bucket unreachable")}
	uc := usecase.NewCatalogUsecase(menu, newFakeCache(), storage, time.Minute)

	if err := uc.DeleteItem(context.Background(), "item-toast"); err != nil {
		t.Fatalf("DeleteItem must not fail on a storage error: %v", err)
	}
	if _, ok := menu.items["item-toast"]; ok {
		t.Fatal("item record not deleted")
	}
}

func TestDeleteItemNotFound(t *testing.T) {
	uc := usecase.NewCatalogUsecase(seedMenu(), newFakeCache(), nil, time.Minute)
	err := uc.DeleteItem(context.Background(), "item-missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
