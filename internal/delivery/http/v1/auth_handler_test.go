package v1

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/internal/usecase"

	"github.com/goccy/go-json"
)

type stubUserRepo struct {
	users []*domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	s.users = append(s.users, user)
	return nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubUserRepo) GetAll(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	total := int64(len(s.users))
	if offset >= len(s.users) {
		return nil, total, nil
	}
	end := offset + limit
	if end > len(s.users) {
		end = len(s.users)
	}
	return s.users[offset:end], total, nil
}

func (s *stubUserRepo) UpsertProfile(ctx context.Context, user *domain.User) error { return nil }

func TestListUsers(t *testing.T) {
	repo := &stubUserRepo{}
	for i := 1; i <= 3; i++ {
		repo.users = append(repo.users, &domain.User{
			ID:    fmt.Sprintf("user-%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
			Role:  domain.RoleCustomer,
		})
	}
	handler := NewAuthHandler(usecase.NewAuthUsecase(repo, time.Hour), "test", time.Hour)

	rec := httptest.NewRecorder()
	handler.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/users?page=2&limit=2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Success bool              `json:"success"`
		Data    []domain.User     `json:"data"`
		Meta    domain.Pagination `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success envelope")
	}
	if len(resp.Data) != 1 || resp.Data[0].ID != "user-3" {
		t.Errorf("page 2 of limit 2 = %+v, want just user-3", resp.Data)
	}
	if resp.Meta.TotalItems != 3 || resp.Meta.TotalPages != 2 || resp.Meta.Page != 2 {
		t.Errorf("meta = %+v, want 3 items over 2 pages", resp.Meta)
	}
}

func TestListUsersDefaultsPaging(t *testing.T) {
	repo := &stubUserRepo{users: []*domain.User{{ID: "user-1", Email: "a@example.com"}}}
	handler := NewAuthHandler(usecase.NewAuthUsecase(repo, time.Hour), "test", time.Hour)

	rec := httptest.NewRecorder()
	handler.ListUsers(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/users", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Data []domain.User     `json:"data"`
		Meta domain.Pagination `json:"meta"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Meta.Page != 1 || resp.Meta.Limit != 10 {
		t.Errorf("meta = %+v, want default page 1 limit 10", resp.Meta)
	}
	if len(resp.Data) != 1 {
		t.Errorf("got %d users, want 1", len(resp.Data))
	}
}
