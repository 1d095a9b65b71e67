package accounts

import (
	"context"
	"sync"
	"time"

	"github.com/sgurov/authgate/internal/common"
)

// InMemoryRepository keeps accounts in volatile process memory. It is the
// default store; contents do not survive a restart.
type InMemoryRepository struct {
	mu      sync.Mutex
	byEmail map[string]*Account
	byID    map[int64]*Account
	nextID  int64
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		byEmail: make(map[string]*Account),
		byID:    make(map[int64]*Account),
		nextID:  1,
	}
}

// Create checks email uniqueness and inserts under one lock, so two
// concurrent registrations for the same email cannot both pass the check.
// Ids are handed out monotonically and never reused.
func (r *InMemoryRepository) Create(ctx context.Context, account *Account) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[account.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *account
	stored.ID = r.nextID
	r.nextID++
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	r.byEmail[stored.Email] = &stored
	r.byID[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *InMemoryRepository) GetByEmail(ctx context.Context, email string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *account
	return &result, nil
}

func (r *InMemoryRepository) GetByID(ctx context.Context, id int64) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	result := *account
	return &result, nil
}

func (r *InMemoryRepository) Count(ctx context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.byID)), nil
}
