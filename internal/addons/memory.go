package addons

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/identity"
)

// MemoryAddonRepository is an in-memory catalog/state store for
// scaffolding/tests. All state transitions happen under one lock, matching
// the transactional guarantees of the bun implementation.
type MemoryAddonRepository struct {
	mu      sync.RWMutex
	nextID  int64
	catalog map[int64]*addons.Addon
	states  map[string]*addons.ShopAddon
}

// NewMemoryAddonRepository constructs the repository.
func NewMemoryAddonRepository() *MemoryAddonRepository {
	return &MemoryAddonRepository{
		nextID:  1,
		catalog: make(map[int64]*addons.Addon),
		states:  make(map[string]*addons.ShopAddon),
	}
}

// RegisterAddon inserts a catalog entry, assigning the next identifier when
// the record carries none.
func (m *MemoryAddonRepository) RegisterAddon(_ context.Context, record *addons.Addon) (*addons.Addon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := *record
	if copied.ID == 0 {
		copied.ID = m.nextID
	}
	if copied.ID >= m.nextID {
		m.nextID = copied.ID + 1
	}
	m.catalog[copied.ID] = &copied
	out := copied
	return &out, nil
}

// GetAddon retrieves a catalog entry.
func (m *MemoryAddonRepository) GetAddon(_ context.Context, id int64) (*addons.Addon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.catalog[id]
	if !ok {
		return nil, &addons.AddonNotFoundError{AddonID: id}
	}
	copied := *record
	return &copied, nil
}

// ListAddons returns the catalog ordered by id.
func (m *MemoryAddonRepository) ListAddons(_ context.Context) ([]*addons.Addon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*addons.Addon, 0, len(m.catalog))
	for _, record := range m.catalog {
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetState returns the shop's state row for an addon, or nil when none exists.
func (m *MemoryAddonRepository) GetState(_ context.Context, shopName string, addonID int64) (*addons.ShopAddon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.states[stateKey(shopName, addonID)]
	if !ok {
		return nil, nil
	}
	copied := *record
	return &copied, nil
}

// ListStates returns every state row for the shop.
func (m *MemoryAddonRepository) ListStates(_ context.Context, shopName string) ([]*addons.ShopAddon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*addons.ShopAddon, 0)
	for _, record := range m.states {
		if !strings.EqualFold(record.ShopName, shopName) {
			continue
		}
		copied := *record
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddonID < out[j].AddonID })
	return out, nil
}

// SelectedInGroup returns the selected row for the type group, or nil.
func (m *MemoryAddonRepository) SelectedInGroup(_ context.Context, shopName string, addonType addons.Type) (*addons.ShopAddon, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, record := range m.states {
		if strings.EqualFold(record.ShopName, shopName) && record.AddonType == addonType && record.Status == addons.StatusSelected {
			copied := *record
			return &copied, nil
		}
	}
	return nil, nil
}

// SelectExclusive performs the selection transition atomically under the lock.
func (m *MemoryAddonRepository) SelectExclusive(_ context.Context, shopName string, addonID int64, addonType addons.Type, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := stateKey(shopName, addonID)
	if current, ok := m.states[key]; ok && current.Status == addons.StatusPurchased {
		return &addons.StateConflictError{ShopName: shopName, AddonID: addonID, Status: current.Status}
	}

	for k, record := range m.states {
		if k == key {
			continue
		}
		if strings.EqualFold(record.ShopName, shopName) && record.AddonType == addonType && record.Status == addons.StatusSelected {
			record.Status = addons.StatusDeselected
			record.UpdatedAt = now
		}
	}

	m.states[key] = &addons.ShopAddon{
		ID:        identity.ShopAddonUUID(shopName, addonID),
		ShopName:  shopName,
		AddonID:   addonID,
		AddonType: addonType,
		Status:    addons.StatusSelected,
		UpdatedAt: now,
	}
	return nil
}

// Purchase upserts the row to purchased, leaving siblings untouched.
func (m *MemoryAddonRepository) Purchase(_ context.Context, shopName string, addonID int64, addonType addons.Type, now time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.states[stateKey(shopName, addonID)] = &addons.ShopAddon{
		ID:        identity.ShopAddonUUID(shopName, addonID),
		ShopName:  shopName,
		AddonID:   addonID,
		AddonType: addonType,
		Status:    addons.StatusPurchased,
		UpdatedAt: now,
	}
	return nil
}

func stateKey(shopName string, addonID int64) string {
	return strings.ToLower(strings.TrimSpace(shopName)) + "\x00" + strconv.FormatInt(addonID, 10)
}
