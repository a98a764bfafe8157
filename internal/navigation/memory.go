package navigation

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/linkbay/cms/navigation"
)

// MemoryLinkRepository is an in-memory link store for scaffolding/tests.
type MemoryLinkRepository struct {
	mu    sync.RWMutex
	links map[string][]*navigation.Link
}

// NewMemoryLinkRepository constructs the repository.
func NewMemoryLinkRepository() *MemoryLinkRepository {
	return &MemoryLinkRepository{
		links: make(map[string][]*navigation.Link),
	}
}

// ListLinks returns the shop's links ordered by position ascending.
func (m *MemoryLinkRepository) ListLinks(_ context.Context, shopName string) ([]*navigation.Link, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored := m.links[shopKey(shopName)]
	out := make([]*navigation.Link, 0, len(stored))
	for _, link := range stored {
		out = append(out, cloneLink(link))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

// ReplaceLinks swaps the shop's entire link set atomically.
func (m *MemoryLinkRepository) ReplaceLinks(_ context.Context, shopName string, records []*navigation.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	replacement := make([]*navigation.Link, 0, len(records))
	for _, link := range records {
		replacement = append(replacement, cloneLink(link))
	}
	m.links[shopKey(shopName)] = replacement
	return nil
}

func shopKey(shopName string) string {
	return strings.ToLower(strings.TrimSpace(shopName))
}

func cloneLink(link *navigation.Link) *navigation.Link {
	copied := *link
	if link.ParentID != nil {
		parent := *link.ParentID
		copied.ParentID = &parent
	}
	return &copied
}
