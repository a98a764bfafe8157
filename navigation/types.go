package navigation

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Sentinel link URLs with special rendering behaviour.
const (
	URLShowCollections = "show_collections"
	URLCart            = "cart"
	URLAccount         = "account"
	URLSearch          = "search"
)

// Link is a per-shop navbar entry. ParentID supports one observed level of
// nesting; ordering is by Position ascending. Saves replace the shop's whole
// link set in a single transaction.
type Link struct {
	bun.BaseModel `bun:"table:navbar_links,alias:nl"`

	ID        uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	ShopName  string     `bun:"shop_name,notnull" json:"shop_name"`
	LinkText  string     `bun:"link_text,notnull" json:"link_text"`
	LinkURL   string     `bun:"link_url,notnull" json:"link_url"`
	LinkType  string     `bun:"link_type" json:"link_type,omitempty"`
	ParentID  *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Position  int        `bun:"position,notnull,default:0" json:"position"`
	CreatedAt time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// LinkInput is a single entry in a bulk navbar save. Parent references use
// the zero-based index of the parent within the same payload, mirroring how
// the admin editor submits nested menus.
type LinkInput struct {
	LinkText    string `json:"link_text"`
	LinkURL     string `json:"link_url"`
	LinkType    string `json:"link_type,omitempty"`
	ParentIndex *int   `json:"parent_index,omitempty"`
}
