package model

import (
	"context"

	"github.com/userhub/user-service/internal/criteria"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	FindAll(ctx context.Context) ([]User, error)
	FindByID(ctx context.Context, id uint64) (User, error)
	// FindByFilter returns users matching the filter. A nil filter
	// is an unrestricted scan, equivalent to FindAll.
	FindByFilter(ctx context.Context, filter *criteria.Filter) ([]User, error)
	// Save inserts the user when ID is zero and updates it otherwise,
	// returning the canonical persisted form.
	Save(ctx context.Context, user User) (User, error)
	ExistsByID(ctx context.Context, id uint64) (bool, error)
	DeleteByID(ctx context.Context, id uint64) error
}

// User represents a stored user. A zero ID means the user has not
// been persisted yet; the storage engine assigns IDs on creation.
type User struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Nickname  string `json:"nickName"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	Country   string `json:"country"`
}
