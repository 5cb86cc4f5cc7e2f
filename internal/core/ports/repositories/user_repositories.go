package repositories

import (
	"context"

	"github.com/smartdom/shift_management_app/internal/core/domain"
)

// UserRepository defines persistence operations for application users.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error

	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
