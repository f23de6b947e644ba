package user

import (
	"context"
	"github.com/google/uuid"
	User "github.com/siddharthbaleja7/fb-messenger/internal/user/model"
)

type UserRepository interface {
	// CreateUser assigns the id (when unset) and the next dense index, then
	// writes the record. Write-once: no update or delete surface exists.
	CreateUser(ctx context.Context, user *User.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*User.User, error)
	GetUserByIndex(ctx context.Context, index int) (*User.User, error)
}
