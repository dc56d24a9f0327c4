package memory

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"storefront-app/internal/domain/access"
	"storefront-app/internal/domain/users"
	"storefront-app/internal/repository"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID uint
	byID   map[uint]users.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{nextID: 1, byID: make(map[uint]users.User)}
}

func cloneUser(u users.User) users.User {
	u.Permissions = append([]string(nil), u.Permissions...)
	return u
}

func (r *UserRepository) List(ctx context.Context) ([]users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]users.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, &repository.ErrNotFound{Resource: "user", ID: strconv.FormatUint(uint64(id), 10)}
	}
	cp := cloneUser(u)
	return &cp, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*users.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.byID {
		if u.Username == username {
			cp := cloneUser(u)
			return &cp, nil
		}
	}
	return nil, &repository.ErrNotFound{Resource: "user", ID: username}
}

func (r *UserRepository) Create(ctx context.Context, u *users.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.create(u)
}

func (r *UserRepository) create(u *users.User) error {
	for _, existing := range r.byID {
		if existing.Username == u.Username {
			return &repository.ErrConflict{Resource: "user", Message: "username already exists"}
		}
	}
	now := time.Now().UTC()
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt, u.UpdatedAt = now, now
	r.byID[u.ID] = cloneUser(*u)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return &repository.ErrNotFound{Resource: "user", ID: strconv.FormatUint(uint64(id), 10)}
	}
	if u.IsDefault {
		return repository.ErrProtected
	}
	delete(r.byID, id)
	return nil
}

func (r *UserRepository) EnsureDefaultAdmin(ctx context.Context, username, passwordHash string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.IsDefault {
			cp := cloneUser(u)
			return &cp, nil
		}
	}
	admin := users.User{
		Username:    username,
		Password:    passwordHash,
		Role:        users.RoleAdmin,
		Permissions: access.AllNames(),
		IsDefault:   true,
	}
	if err := r.create(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
