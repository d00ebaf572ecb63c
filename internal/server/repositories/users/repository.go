// Package users persists user accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/newsgate/internal/server/models"
)

type Repository interface {
	// Create inserts the user and fills in the generated id.
	// Returns common.ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByEmail returns the user with the given email, or common.ErrorNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// ExistsByEmail reports whether a user with the given email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
