package navigation

import "context"

// Service manages a shop's navbar links and renders the navbar fragment.
type Service interface {
	// ListLinks returns the shop's links ordered by position ascending.
	ListLinks(ctx context.Context, shopName string) ([]*Link, error)

	// ReplaceLinks swaps the shop's entire link set in one transaction so
	// concurrent readers never observe an empty navbar between delete and
	// insert.
	ReplaceLinks(ctx context.Context, shopName string, links []LinkInput) ([]*Link, error)
}

// Renderer expands a navbar template with the shop's links. The template
// carries a single {{links}} placeholder; the expansion includes dynamic
// submenus (live collections) resolved at render time.
type Renderer interface {
	Render(ctx context.Context, templateHTML, shopName string) (string, error)
}
