package pages

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// DefaultLanguage is assumed whenever a page lookup omits the language.
const DefaultLanguage = "en"

// Reserved slugs render as fragments of other pages and never appear in the
// public listing.
const (
	SlugNavbar = "navbar"
	SlugFooter = "footer"
	SlugHome   = "home"
)

// PaidYes marks pages materialized by a theme application.
const PaidYes = "Yes"

// Page is a CMS content unit scoped to a shop. The effective identity is the
// composite (shop_name, slug, language); slugs are deliberately not unique
// across tenants.
type Page struct {
	bun.BaseModel `bun:"table:pages,alias:p"`

	ID          uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ShopName    string    `bun:"shop_name,notnull" json:"shop_name"`
	Slug        string    `bun:"slug,notnull" json:"slug"`
	Language    string    `bun:"language,notnull,default:'en'" json:"language"`
	Title       string    `bun:"title,notnull" json:"title"`
	Description string    `bun:"description" json:"description,omitempty"`
	Keywords    string    `bun:"keywords" json:"keywords,omitempty"`
	Content     string    `bun:"content" json:"content,omitempty"`
	Styles      string    `bun:"styles" json:"styles,omitempty"`
	ThemeName   string    `bun:"theme_name" json:"theme_name,omitempty"`
	Paid        string    `bun:"paid" json:"paid,omitempty"`
	Published   bool      `bun:"published,notnull,default:false" json:"published"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt   time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// WebSettings holds the per-shop global render fragments injected into every
// composed page. One row per shop, created lazily.
type WebSettings struct {
	bun.BaseModel `bun:"table:web_settings,alias:ws"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ShopName  string    `bun:"shop_name,notnull,unique" json:"shop_name"`
	Head      string    `bun:"head" json:"head,omitempty"`
	Script    string    `bun:"script" json:"script,omitempty"`
	Foot      string    `bun:"foot" json:"foot,omitempty"`
	ThemeName string    `bun:"theme_name" json:"theme_name,omitempty"`
	Analytics string    `bun:"analytics" json:"analytics,omitempty"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
