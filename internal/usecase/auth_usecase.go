package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"sunnyside-backend/internal/domain"
	"sunnyside-backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthUsecase struct {
	userRepo          domain.UserRepository
	accessTokenExpiry time.Duration
}

func NewAuthUsecase(userRepo domain.UserRepository, atExpiry time.Duration) *AuthUsecase {
	return &AuthUsecase{
		userRepo:          userRepo,
		accessTokenExpiry: atExpiry,
	}
}

func (u *AuthUsecase) Register(ctx context.Context, email, password, fullName, phone string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return "", nil, fmt.Errorf("valid email required")
	}
	if len(password) < 8 {
		return "", nil, fmt.Errorf("password must be at least 8 characters")
	}

	if existing, err := u.userRepo.GetByEmail(ctx, email); err == nil && existing != nil {
		return "", nil, fmt.Errorf("email already registered")
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		FullName:     fullName,
		Phone:        phone,
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		slog.Error("Usecase: Register - Create failed", "error", err)
		return "", nil, err
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, u.accessTokenExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *AuthUsecase) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Email, user.Role, u.accessTokenExpiry)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (u *AuthUsecase) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// UpdateProfile writes name/phone/address for the user. Email, password and
// role are never touched from this path.
func (u *AuthUsecase) UpdateProfile(ctx context.Context, userID, fullName, phone, address string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.FullName = fullName
	user.Phone = phone
	user.Address = address
	if err := u.userRepo.UpsertProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *AuthUsecase) GetAllUsers(ctx context.Context, limit, offset int) ([]*domain.User, int64, error) {
	return u.userRepo.GetAll(ctx, limit, offset)
}
