package repository

//go:generate mockgen -source=user_repository.go -destination=mocks/user_repository_mock.go -package=mocks

import (
	"context"

	"github.com/paymojammn/taxmoja-app/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para operadores (DIP).
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
