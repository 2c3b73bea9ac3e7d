package users

import (
	"context"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
)

// Repository describes storage operations for User accounts.
type Repository interface {
	// Create inserts a new user.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user with the exact email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByCredentials returns the user matching both email and password
	// exactly, or common.ErrorNotFound.
	GetByCredentials(ctx context.Context, email, password string) (*models.User, error)

	// Update replaces the stored record with the given value. It reports
	// whether a row was actually replaced.
	Update(ctx context.Context, user *models.User) (bool, error)
}
