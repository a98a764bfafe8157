package themes

import "context"

// Service applies theme bundles to shops.
type Service interface {
	// Apply materializes the named bundle into the shop's page store as one
	// atomic batch: existing pages keep their SEO fields and receive the
	// bundle content, missing pages are created carrying the theme name, and
	// the shop's web settings pick up the bundle's head/foot/script. Applying
	// the same bundle twice converges to the same page set.
	Apply(ctx context.Context, req ApplyRequest) (*ApplyResult, error)

	// Load parses and validates a bundle without writing anything.
	Load(ctx context.Context, themeName string) (*Bundle, error)

	// ListAvailable names the bundles present under the configured base path.
	ListAvailable(ctx context.Context) ([]string, error)
}

// Loader resolves bundle definitions from storage.
type Loader interface {
	Load(ctx context.Context, themeName string) (*Bundle, error)
	List(ctx context.Context) ([]string, error)
}

// ApplyRequest identifies the bundle and the target shop.
type ApplyRequest struct {
	ThemeName string
	ShopName  string
}

// ApplyResult summarizes what a theme application wrote.
type ApplyResult struct {
	ThemeName    string
	ShopName     string
	PagesCreated int
	PagesUpdated int
}
