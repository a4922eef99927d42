package user

import (
	"context"
	"sync"
)

// InMemoryUserRepository implements UserRepository using in-memory storage
type InMemoryUserRepository struct {
	mu     sync.RWMutex
	users  map[int64]User
	nextID int64
}

// NewInMemoryUserRepository creates a new in-memory user repository
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:  make(map[int64]User),
		nextID: 1,
	}
}

// GetUser retrieves a user by ID
func (r *InMemoryUserRepository) GetUser(ctx context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return User{}, ErrUserNotFound
	}
	return u, nil
}

// CreateUser creates a new user with the next available ID
func (r *InMemoryUserRepository) CreateUser(ctx context.Context, params CreateUserParams) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u := User{
		ID:       r.nextID,
		Login:    params.Login,
		Password: params.Password,
		Role:     params.Role,
	}
	r.users[u.ID] = u
	r.nextID++
	return u, nil
}
