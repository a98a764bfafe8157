package shops

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/linkbay/cms/shops"
)

// MemoryShopRepository is an in-memory tenant store for scaffolding/tests.
type MemoryShopRepository struct {
	mu        sync.RWMutex
	byName    map[string]*shops.Shop
	domainIdx map[string]string
}

// NewMemoryShopRepository constructs the repository.
func NewMemoryShopRepository() *MemoryShopRepository {
	return &MemoryShopRepository{
		byName:    make(map[string]*shops.Shop),
		domainIdx: make(map[string]string),
	}
}

// Create inserts the supplied shop.
func (m *MemoryShopRepository) Create(_ context.Context, record *shops.Shop) (*shops.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := nameKey(record.ShopName)
	if _, exists := m.byName[key]; exists {
		return nil, shops.ErrShopExists
	}

	copied := cloneShop(record)
	m.byName[key] = copied
	if copied.Domain != nil && strings.TrimSpace(*copied.Domain) != "" {
		m.domainIdx[nameKey(*copied.Domain)] = key
	}
	return cloneShop(copied), nil
}

// GetByName retrieves a shop by its subdomain label.
func (m *MemoryShopRepository) GetByName(_ context.Context, shopName string) (*shops.Shop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byName[nameKey(shopName)]
	if !ok {
		return nil, &shops.ShopNotFoundError{Key: shopName}
	}
	return cloneShop(record), nil
}

// GetByDomain retrieves a shop by its custom domain.
func (m *MemoryShopRepository) GetByDomain(_ context.Context, domain string) (*shops.Shop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	key, ok := m.domainIdx[nameKey(domain)]
	if !ok {
		return nil, &shops.ShopNotFoundError{Key: domain}
	}
	return cloneShop(m.byName[key]), nil
}

// Update persists domain changes for a shop.
func (m *MemoryShopRepository) Update(_ context.Context, record *shops.Shop) (*shops.Shop, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := nameKey(record.ShopName)
	current, ok := m.byName[key]
	if !ok {
		return nil, &shops.ShopNotFoundError{Key: record.ShopName}
	}

	if current.Domain != nil {
		delete(m.domainIdx, nameKey(*current.Domain))
	}

	updated := cloneShop(current)
	updated.Domain = cloneStringPointer(record.Domain)
	updated.UpdatedAt = record.UpdatedAt
	m.byName[key] = updated
	if updated.Domain != nil && strings.TrimSpace(*updated.Domain) != "" {
		m.domainIdx[nameKey(*updated.Domain)] = key
	}
	return cloneShop(updated), nil
}

// List returns every shop ordered by name.
func (m *MemoryShopRepository) List(_ context.Context) ([]*shops.Shop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*shops.Shop, 0, len(m.byName))
	for _, record := range m.byName {
		out = append(out, cloneShop(record))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ShopName < out[j].ShopName })
	return out, nil
}

func nameKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func cloneShop(record *shops.Shop) *shops.Shop {
	if record == nil {
		return nil
	}
	copied := *record
	copied.Domain = cloneStringPointer(record.Domain)
	return &copied
}

func cloneStringPointer(value *string) *string {
	if value == nil {
		return nil
	}
	copied := *value
	return &copied
}
