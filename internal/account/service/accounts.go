package service

import (
	"context"

	"contractease/internal/account/models"
	id "contractease/pkg/domain"
)

// UserStore persists user accounts. The store enforces email uniqueness and
// reports violations as sentinel.ErrConflict.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, userID id.UserID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Exists(ctx context.Context, userID id.UserID) (bool, error)
}

// ClientStore persists client accounts with the same uniqueness rule.
type ClientStore interface {
	Create(ctx context.Context, client *models.Client) error
	FindByID(ctx context.Context, clientID id.ClientID) (*models.Client, error)
	FindByEmail(ctx context.Context, email string) (*models.Client, error)
	Exists(ctx context.Context, clientID id.ClientID) (bool, error)
}
