package storage

import (
	"context"

	"github.com/jtarrant/wanttogo/internal/model"
)

// Storage defines the interface for data persistence.
//
// The username is the canonical document key: registration, authentication
// and both want-to-go operations address users through the same accessor, so
// there is a single place where the key and the list field are named.
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, username string) (*model.User, error)
	DeleteUser(ctx context.Context, username string) error

	// Want-to-go list operations
	//
	// AddWantToGo appends code to the user's list only if it is absent,
	// atomically with respect to concurrent adds for the same user.
	// Returns model.ErrUserNotFound for unknown users and
	// model.ErrAlreadyWanted when the code is already present.
	AddWantToGo(ctx context.Context, username string, code model.DestinationCode) error

	// GetWantToGoList returns the user's stored codes in insertion order.
	// A user with no list yields an empty slice, not an error.
	GetWantToGoList(ctx context.Context, username string) ([]model.DestinationCode, error)
}
