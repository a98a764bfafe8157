package pages

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/pages"
)

// Repository is the persistence contract for pages and web settings. Every
// read is scoped by shop name; there is deliberately no unscoped lookup.
type Repository interface {
	Create(ctx context.Context, record *pages.Page) (*pages.Page, error)
	GetByID(ctx context.Context, id uuid.UUID) (*pages.Page, error)
	GetBySlug(ctx context.Context, shopName, slug, language string) (*pages.Page, error)
	Update(ctx context.Context, record *pages.Page) (*pages.Page, error)
	Delete(ctx context.Context, id uuid.UUID, shopName string) error
	ListPublished(ctx context.Context, shopName string, excludeSlugs []string) ([]*pages.Page, error)

	// ApplyThemePages upserts the supplied page set and settings for a shop
	// in a single transaction. Existing pages (matched by shop/slug/language)
	// keep their SEO fields and receive new content; missing pages are
	// inserted as-is. A nil settings record leaves web settings untouched.
	ApplyThemePages(ctx context.Context, shopName string, records []*pages.Page, settings *pages.WebSettings) (created int, updated int, err error)

	GetWebSettings(ctx context.Context, shopName string) (*pages.WebSettings, error)
	SaveWebSettings(ctx context.Context, record *pages.WebSettings) (*pages.WebSettings, error)
}

func NewPageRepository(db *bun.DB) repository.Repository[*pages.Page] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*pages.Page]{
		NewRecord: func() *pages.Page { return &pages.Page{} },
		GetID: func(p *pages.Page) uuid.UUID {
			return p.ID
		},
		SetID: func(p *pages.Page, id uuid.UUID) {
			p.ID = id
		},
		GetIdentifier: func() string {
			return "slug"
		},
		GetIdentifierValue: func(p *pages.Page) string {
			return p.Slug
		},
	})
}

func NewWebSettingsRepository(db *bun.DB) repository.Repository[*pages.WebSettings] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*pages.WebSettings]{
		NewRecord: func() *pages.WebSettings { return &pages.WebSettings{} },
		GetID: func(ws *pages.WebSettings) uuid.UUID {
			return ws.ID
		},
		SetID: func(ws *pages.WebSettings, id uuid.UUID) {
			ws.ID = id
		},
		GetIdentifier: func() string {
			return "shop_name"
		},
		GetIdentifierValue: func(ws *pages.WebSettings) string {
			return ws.ShopName
		},
	})
}
