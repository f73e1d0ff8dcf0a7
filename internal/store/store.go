// Package store holds the repositories behind the API: profile rows
// (users with their addresses and cards) and orders.
package store

import (
	"context"
	"errors"

	"github.com/01moynul/aguadelivery-golang/internal/models"
)

var (
	ErrNotFound       = errors.New("store: record not found")
	ErrDuplicateEmail = errors.New("store: email already registered")
	ErrDuplicateID    = errors.New("store: id already exists")
)

// UserRepository stores profile rows. Implementations return copies, so a
// caller mutating a returned user must call UpdateUser to persist it.
type UserRepository interface {
	FindUser(ctx context.Context, id string) (*models.User, error)
	FindUserByEmail(ctx context.Context, email string) (*models.User, error)
	InsertUser(ctx context.Context, u *models.User) error
	UpdateUser(ctx context.Context, u *models.User) error
}

// OrderRepository stores orders. Orders are never deleted.
type OrderRepository interface {
	FindOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]*models.Order, error)
	InsertOrder(ctx context.Context, o *models.Order) error
	UpdateOrder(ctx context.Context, o *models.Order) error
}

// Store bundles both repositories over one backend.
type Store interface {
	UserRepository
	OrderRepository
	Close() error
}
