package pages

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/linkbay/cms/pages"
)

// MemoryPageRepository is an in-memory page store for scaffolding/tests.
type MemoryPageRepository struct {
	mu        sync.RWMutex
	pages     map[uuid.UUID]*pages.Page
	slugIndex map[string]uuid.UUID
	settings  map[string]*pages.WebSettings
}

// NewMemoryPageRepository constructs the repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		pages:     make(map[uuid.UUID]*pages.Page),
		slugIndex: make(map[string]uuid.UUID),
		settings:  make(map[string]*pages.WebSettings),
	}
}

// Create inserts the supplied page.
func (m *MemoryPageRepository) Create(_ context.Context, record *pages.Page) (*pages.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := pageKey(record.ShopName, record.Slug, record.Language)
	if _, exists := m.slugIndex[key]; exists {
		return nil, pages.ErrPageExists
	}

	copied := clonePage(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.pages[copied.ID] = copied
	m.slugIndex[key] = copied.ID
	return clonePage(copied), nil
}

// GetByID retrieves a page by identifier.
func (m *MemoryPageRepository) GetByID(_ context.Context, id uuid.UUID) (*pages.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.pages[id]
	if !ok {
		return nil, &pages.PageNotFoundError{Key: id.String()}
	}
	return clonePage(record), nil
}

// GetBySlug retrieves a page by its composite shop/slug/language key.
func (m *MemoryPageRepository) GetBySlug(_ context.Context, shopName, slug, language string) (*pages.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	id, ok := m.slugIndex[pageKey(shopName, slug, language)]
	if !ok {
		return nil, &pages.PageNotFoundError{ShopName: shopName, Key: slug}
	}
	return clonePage(m.pages[id]), nil
}

// Update persists changes to an existing page.
func (m *MemoryPageRepository) Update(_ context.Context, record *pages.Page) (*pages.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.pages[record.ID]
	if !ok {
		return nil, &pages.PageNotFoundError{ShopName: record.ShopName, Key: record.ID.String()}
	}

	if current.Slug != record.Slug {
		delete(m.slugIndex, pageKey(current.ShopName, current.Slug, current.Language))
		m.slugIndex[pageKey(current.ShopName, record.Slug, current.Language)] = current.ID
	}

	updated := clonePage(current)
	updated.Slug = record.Slug
	updated.Title = record.Title
	updated.Description = record.Description
	updated.Keywords = record.Keywords
	updated.Content = record.Content
	updated.Styles = record.Styles
	updated.ThemeName = record.ThemeName
	updated.Paid = record.Paid
	updated.Published = record.Published
	updated.UpdatedAt = record.UpdatedAt
	m.pages[updated.ID] = updated
	return clonePage(updated), nil
}

// Delete removes a page scoped to the owning shop.
func (m *MemoryPageRepository) Delete(_ context.Context, id uuid.UUID, shopName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.pages[id]
	if !ok || !strings.EqualFold(record.ShopName, shopName) {
		return &pages.PageNotFoundError{ShopName: shopName, Key: id.String()}
	}
	delete(m.pages, id)
	delete(m.slugIndex, pageKey(record.ShopName, record.Slug, record.Language))
	return nil
}

// ListPublished returns the shop's published pages minus excluded slugs.
func (m *MemoryPageRepository) ListPublished(_ context.Context, shopName string, excludeSlugs []string) ([]*pages.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	excluded := make(map[string]struct{}, len(excludeSlugs))
	for _, slug := range excludeSlugs {
		excluded[strings.ToLower(slug)] = struct{}{}
	}

	out := make([]*pages.Page, 0)
	for _, record := range m.pages {
		if !strings.EqualFold(record.ShopName, shopName) || !record.Published {
			continue
		}
		if _, skip := excluded[strings.ToLower(record.Slug)]; skip {
			continue
		}
		out = append(out, clonePage(record))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Slug < out[j].Slug })
	return out, nil
}

// ApplyThemePages upserts the theme page set and settings atomically under
// the repository lock.
func (m *MemoryPageRepository) ApplyThemePages(_ context.Context, shopName string, records []*pages.Page, settings *pages.WebSettings) (int, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var created, updated int
	for _, record := range records {
		if record == nil {
			continue
		}
		key := pageKey(shopName, record.Slug, record.Language)
		if id, exists := m.slugIndex[key]; exists {
			current := m.pages[id]
			merged := clonePage(current)
			merged.Content = record.Content
			merged.Styles = record.Styles
			merged.ThemeName = record.ThemeName
			merged.Paid = record.Paid
			merged.Published = record.Published
			merged.UpdatedAt = record.UpdatedAt
			m.pages[id] = merged
			updated++
			continue
		}

		copied := clonePage(record)
		if copied.ID == uuid.Nil {
			copied.ID = uuid.New()
		}
		m.pages[copied.ID] = copied
		m.slugIndex[key] = copied.ID
		created++
	}

	if settings != nil {
		m.settings[nameKey(shopName)] = cloneSettings(settings)
	}
	return created, updated, nil
}

// GetWebSettings retrieves the shop's render fragments.
func (m *MemoryPageRepository) GetWebSettings(_ context.Context, shopName string) (*pages.WebSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.settings[nameKey(shopName)]
	if !ok {
		return nil, &pages.PageNotFoundError{ShopName: shopName, Key: "web_settings"}
	}
	return cloneSettings(record), nil
}

// SaveWebSettings upserts the shop's render fragments.
func (m *MemoryPageRepository) SaveWebSettings(_ context.Context, record *pages.WebSettings) (*pages.WebSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneSettings(record)
	if copied.ID == uuid.Nil {
		copied.ID = uuid.New()
	}
	m.settings[nameKey(record.ShopName)] = copied
	return cloneSettings(copied), nil
}

func pageKey(shopName, slug, language string) string {
	return nameKey(shopName) + "\x00" + strings.ToLower(strings.TrimSpace(slug)) + "\x00" + strings.ToLower(strings.TrimSpace(language))
}

func nameKey(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func clonePage(record *pages.Page) *pages.Page {
	if record == nil {
		return nil
	}
	copied := *record
	return &copied
}

func cloneSettings(record *pages.WebSettings) *pages.WebSettings {
	if record == nil {
		return nil
	}
	copied := *record
	return &copied
}
