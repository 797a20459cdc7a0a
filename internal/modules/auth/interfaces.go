package auth

import (
	"context"

	"kivulounge/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type TokenIssuer interface {
	GenerateToken(userID int64, role string) (string, error)
}
