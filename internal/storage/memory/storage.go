package memory

import (
	"context"
	"sync"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	users map[string]*model.User
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users: make(map[string]*model.User),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.Username] = cloneUser(user)
	return nil
}

func (s *Storage) GetUser(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (s *Storage) DeleteUser(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, username)
	return nil
}

// Want-to-go list operations

// AddWantToGo appends under the store lock, so concurrent adds for the same
// user cannot race a membership check against an append.
func (s *Storage) AddWantToGo(ctx context.Context, username string, code model.DestinationCode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return model.ErrUserNotFound
	}
	if user.Wants(code) {
		return model.ErrAlreadyWanted
	}
	user.WantToGoList = append(user.WantToGoList, code)
	return nil
}

func (s *Storage) GetWantToGoList(ctx context.Context, username string) ([]model.DestinationCode, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	out := make([]model.DestinationCode, len(user.WantToGoList))
	copy(out, user.WantToGoList)
	return out, nil
}

// cloneUser copies a user so callers cannot mutate stored state directly
func cloneUser(u *model.User) *model.User {
	c := *u
	c.WantToGoList = make([]model.DestinationCode, len(u.WantToGoList))
	copy(c.WantToGoList, u.WantToGoList)
	return &c
}
