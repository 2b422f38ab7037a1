package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/replenishment-api/internal/domain"
	"github.com/jhoicas/replenishment-api/internal/domain/entity"
	"github.com/jhoicas/replenishment-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

// UserRepository usuarios en memoria indexados por ID.
type UserRepository struct {
	mu   sync.RWMutex
	byID map[string]entity.User
}

// NewUserRepository crea el repositorio vacío.
func NewUserRepository() *UserRepository {
	return &UserRepository{byID: make(map[string]entity.User)}
}

// Create guarda el usuario; email repetido → ErrEmailAlreadyExists.
func (r *UserRepository) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.byID[u.ID] = *u
	return nil
}

// GetByID devuelve (nil, nil) si no existe.
func (r *UserRepository) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail devuelve (nil, nil) si no existe.
func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, nil
}

// UpdateRole cambia el rol; usuario inexistente → ErrNotFound.
func (r *UserRepository) UpdateRole(_ context.Context, id, role string, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Role = role
	u.UpdatedAt = updatedAt
	r.byID[id] = u
	return nil
}
