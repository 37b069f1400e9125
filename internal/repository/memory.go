package repository

import (
	"context"
	"sync"

	"catalog/internal/domain"
)

// MemoryStore — in-memory хранилище товаров; используется в тестах и при
// запуске без базы данных
type MemoryStore struct {
	mu           sync.RWMutex
	productsByID map[string]domain.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		productsByID: make(map[string]domain.Product),
	}
}

// Ensure interface
var _ ProductRepository = (*MemoryStore)(nil)

func (m *MemoryStore) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.productsByID[productID]
	if !ok {
		return nil, ErrNotFound
	}
	// return copy
	cp := p
	return &cp, nil
}

func (m *MemoryStore) GetView(ctx context.Context, productID string) (*domain.ProductView, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.productsByID[productID]
	if !ok {
		return nil, ErrNotFound
	}
	v := viewOf(p)
	return &v, nil
}

func (m *MemoryStore) Insert(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.productsByID[p.ProductID] = *p
	return nil
}

func (m *MemoryStore) Replace(ctx context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.productsByID[p.ProductID]; !ok {
		return ErrNotFound
	}
	m.productsByID[p.ProductID] = *p
	return nil
}
