package addons

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Type classifies catalog addons. The catalog is global; shops instantiate
// entries through ShopAddon rows.
type Type string

const (
	TypeTheme   Type = "theme"
	TypeThemeUI Type = "theme_ui"
	TypePlugin  Type = "plugin"
	TypeService Type = "service"
)

// Valid reports whether the type is one of the closed set.
func (t Type) Valid() bool {
	switch t {
	case TypeTheme, TypeThemeUI, TypePlugin, TypeService:
		return true
	}
	return false
}

func (t Type) String() string { return string(t) }

// Status is the per-shop selection state of an addon. The zero value means no
// row exists yet (unselected). Purchased is terminal: select/deselect
// operations never move a row out of it.
type Status string

const (
	StatusSelected   Status = "selected"
	StatusDeselected Status = "deselected"
	StatusPurchased  Status = "purchased"
)

// Valid reports whether the status is one of the closed set.
func (s Status) Valid() bool {
	switch s {
	case StatusSelected, StatusDeselected, StatusPurchased:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// Addon is a catalog entry: a purchasable or selectable capability shared by
// every shop. Immutable after seeding except by platform admin.
type Addon struct {
	bun.BaseModel `bun:"table:cms_addons,alias:a"`

	ID          int64     `bun:",pk,autoincrement" json:"id"`
	Name        string    `bun:"name,notnull" json:"name"`
	Description string    `bun:"description" json:"description,omitempty"`
	Price       float64   `bun:"price,notnull,default:0" json:"price"`
	AddonType   Type      `bun:"addon_type,notnull" json:"addon_type"`
	CreatedAt   time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
}

// ShopAddon is the per-shop state row for a catalog addon. At most one row
// per (shop_name, addon_type) group may hold StatusSelected; purchased rows
// are never deleted or overwritten by selection operations.
type ShopAddon struct {
	bun.BaseModel `bun:"table:shop_addons,alias:sa"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ShopName  string    `bun:"shop_name,notnull,unique:shop_addon_key" json:"shop_name"`
	AddonID   int64     `bun:"addon_id,notnull,unique:shop_addon_key" json:"addon_id"`
	AddonType Type      `bun:"addon_type,notnull" json:"addon_type"`
	Status    Status    `bun:"status,notnull" json:"status"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// AddonWithStatus joins a catalog entry with the shop's state for listing
// endpoints. Status is empty when the shop has no row for the addon.
type AddonWithStatus struct {
	Addon  *Addon `json:"addon"`
	Status Status `json:"status,omitempty"`
}
