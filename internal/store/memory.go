package store

import (
	"context"
	"strings"
	"sync"

	"github.com/01moynul/aguadelivery-golang/internal/models"
)

var _ Store = (*Memory)(nil)

// Memory is a Store kept in process memory. Everything is lost on restart.
type Memory struct {
	mu      sync.RWMutex
	users   map[string]*models.User
	byEmail map[string]string // lower-cased email -> user id
	orders  map[string]*models.Order
	seq     []string // order ids in insertion order
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		users:   make(map[string]*models.User),
		byEmail: make(map[string]string),
		orders:  make(map[string]*models.Order),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (m *Memory) FindUser(_ context.Context, id string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return u.Clone(), nil
}

func (m *Memory) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return m.users[id].Clone(), nil
}

func (m *Memory) InsertUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.users[u.ID]; exists {
		return ErrDuplicateID
	}
	email := normalizeEmail(u.Email)
	if _, taken := m.byEmail[email]; taken {
		return ErrDuplicateEmail
	}

	m.users[u.ID] = u.Clone()
	m.byEmail[email] = u.ID
	return nil
}

func (m *Memory) UpdateUser(_ context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.users[u.ID]
	if !ok {
		return ErrNotFound
	}

	oldEmail, newEmail := normalizeEmail(current.Email), normalizeEmail(u.Email)
	if oldEmail != newEmail {
		if owner, taken := m.byEmail[newEmail]; taken && owner != u.ID {
			return ErrDuplicateEmail
		}
		delete(m.byEmail, oldEmail)
		m.byEmail[newEmail] = u.ID
	}

	m.users[u.ID] = u.Clone()
	return nil
}

func (m *Memory) FindOrder(_ context.Context, id string) (*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	o, ok := m.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	return o.Clone(), nil
}

// ListOrdersByUser returns the user's orders, newest first.
func (m *Memory) ListOrdersByUser(_ context.Context, userID string) ([]*models.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	orders := []*models.Order{}
	for i := len(m.seq) - 1; i >= 0; i-- {
		if o := m.orders[m.seq[i]]; o.UserID == userID {
			orders = append(orders, o.Clone())
		}
	}
	return orders, nil
}

func (m *Memory) InsertOrder(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.orders[o.ID]; exists {
		return ErrDuplicateID
	}
	m.orders[o.ID] = o.Clone()
	m.seq = append(m.seq, o.ID)
	return nil
}

func (m *Memory) UpdateOrder(_ context.Context, o *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.orders[o.ID]; !ok {
		return ErrNotFound
	}
	m.orders[o.ID] = o.Clone()
	return nil
}

func (m *Memory) Close() error { return nil }
