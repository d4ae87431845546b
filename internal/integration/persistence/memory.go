// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/cakebook/backend/internal/application/adapter"
	"github.com/cakebook/backend/internal/domain/entity"
)

// memoryUserRepository keeps accounts in process memory. It backs the
// auth flow when no database is configured, so the app is still usable
// with zero sales and zero expenses.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]*entity.User
	byEmail map[string]*entity.User
}

// NewMemoryUserRepository creates an in-memory user repository.
func NewMemoryUserRepository() adapter.UserRepository {
	return &memoryUserRepository{
		byID:    make(map[uuid.UUID]*entity.User),
		byEmail: make(map[string]*entity.User),
	}
}

func (r *memoryUserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *user
	r.byID[user.ID] = &copied
	r.byEmail[user.Email] = &copied
	return nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

// memoryTokenEntry tracks one refresh token's validity window.
type memoryTokenEntry struct {
	userID    uuid.UUID
	expiresAt time.Time
	valid     bool
}

// memoryTokenRepository keeps refresh tokens in process memory.
type memoryTokenRepository struct {
	mu     sync.Mutex
	tokens map[string]*memoryTokenEntry
}

// NewMemoryTokenRepository creates an in-memory token repository.
func NewMemoryTokenRepository() TokenRepository {
	return &memoryTokenRepository{
		tokens: make(map[string]*memoryTokenEntry),
	}
}

func (r *memoryTokenRepository) SaveRefreshToken(ctx context.Context, token string, userID uuid.UUID, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tokens[token] = &memoryTokenEntry{
		userID:    userID,
		expiresAt: expiresAt,
		valid:     true,
	}
	return nil
}

func (r *memoryTokenRepository) InvalidateRefreshToken(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry, ok := r.tokens[token]; ok {
		entry.valid = false
	}
	return nil
}

func (r *memoryTokenRepository) IsRefreshTokenValid(ctx context.Context, token string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.tokens[token]
	if !ok {
		return false, nil
	}
	return entry.valid && time.Now().UTC().Before(entry.expiresAt), nil
}
