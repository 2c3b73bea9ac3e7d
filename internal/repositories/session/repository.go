package session

import (
	"context"

	"github.com/dmitrijs2005/darazkeeper/internal/models"
)

// Repository stores at most one session: a full copy of the authenticated
// user. The copy must be refreshed whenever the underlying user changes.
type Repository interface {
	// Set replaces the session with a copy of the given user.
	Set(ctx context.Context, user *models.User) error

	// Get returns the session user copy, or common.ErrorNotFound when absent.
	Get(ctx context.Context) (*models.User, error)

	// Clear removes the session. Clearing an empty session is a no-op.
	Clear(ctx context.Context) error
}
