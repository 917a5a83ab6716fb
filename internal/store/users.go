// Package store holds the in-memory stores backing the API. Each store
// owns its data behind a mutex and is constructed once at startup, then
// handed to the handlers. Nothing survives a process restart.
package store

import (
	"errors"
	"sync"

	"github.com/Shamanthak-23-A/ecommerce-api/internal/domain"
)

var (
	ErrUsernameTaken = errors.New("username already exists")
	ErrUserNotFound  = errors.New("user not found")
)

// UserStore holds registered users. User IDs are monotonic and never reused.
type UserStore struct {
	mu     sync.RWMutex
	users  []domain.User
	nextID int
}

func NewUserStore() *UserStore {
	return &UserStore{nextID: 1}
}

// Create registers a new user from an already-hashed password.
// Fails with ErrUsernameTaken if the username exists.
func (s *UserStore) Create(username, passwordHash, role string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].Username == username {
			return nil, ErrUsernameTaken
		}
	}
	u := domain.User{
		ID:       s.nextID,
		Username: username,
		Password: passwordHash,
		Role:     role,
	}
	s.nextID++
	s.users = append(s.users, u)
	return &u, nil
}

// GetByUsername returns the user with the given username.
func (s *UserStore) GetByUsername(username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].Username == username {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID returns the user with the given ID.
func (s *UserStore) GetByID(id int) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.users {
		if s.users[i].ID == id {
			u := s.users[i]
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}
