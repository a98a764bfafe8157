package pages

import (
	"context"

	"github.com/google/uuid"
)

// Service describes the page store. Every operation takes the tenant
// partition key explicitly; cross-tenant reads are structurally impossible
// because no lookup exists without a shop name.
type Service interface {
	GetBySlug(ctx context.Context, shopName, slug string, language ...string) (*Page, error)
	Create(ctx context.Context, req CreatePageRequest) (*Page, error)
	UpdateContent(ctx context.Context, req UpdateContentRequest) (*Page, error)
	UpdateSEO(ctx context.Context, req UpdateSEORequest) (*Page, error)
	Delete(ctx context.Context, req DeletePageRequest) error

	// ListPublished returns the shop's public pages, excluding the reserved
	// navbar and footer fragments.
	ListPublished(ctx context.Context, shopName string) ([]*Page, error)

	GetWebSettings(ctx context.Context, shopName string) (*WebSettings, error)
	SaveWebSettings(ctx context.Context, req SaveWebSettingsRequest) (*WebSettings, error)
}

// CreatePageRequest captures the payload required to create a page.
type CreatePageRequest struct {
	ShopName    string
	Slug        string
	Language    string
	Title       string
	Description string
	Keywords    string
	Content     string
	Styles      string
	ThemeName   string
	Paid        string
	Published   bool
}

// UpdateContentRequest mutates the rendered body of an existing page. Styles
// is optional; nil leaves the stored stylesheet untouched.
type UpdateContentRequest struct {
	PageID  uuid.UUID
	Content string
	Styles  *string
}

// UpdateSEORequest mutates page metadata. A slug change is normalized before
// persisting; empty fields overwrite (the admin editor always sends the full
// form).
type UpdateSEORequest struct {
	PageID      uuid.UUID
	Title       string
	Description string
	Keywords    string
	Slug        string
}

// DeletePageRequest removes a page by id, scoped to the owning shop.
type DeletePageRequest struct {
	PageID   uuid.UUID
	ShopName string
}

// SaveWebSettingsRequest upserts the shop's global render fragments.
type SaveWebSettingsRequest struct {
	ShopName  string
	Head      string
	Script    string
	Foot      string
	ThemeName string
	Analytics string
}
