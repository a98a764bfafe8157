package addons

import "context"

// Service is the addon registry: the per-shop selection state machine.
//
// State space per (shop_name, addon_type) group, one row per addon_id:
// unselected (no row) → selected → deselected, with purchased as a terminal
// state reachable from any of the others. Select enforces mutual exclusion:
// after it returns, at most one row in the group is selected.
type Service interface {
	// Select marks the addon as the shop's selected addon of its type and
	// deselects every sibling currently selected, skipping purchased rows.
	// Selecting a purchased addon fails with *StateConflictError and mutates
	// nothing. The whole operation is atomic.
	Select(ctx context.Context, req SelectRequest) error

	// Purchase upserts the row to purchased unconditionally. Sibling
	// selections of the same type are left untouched: "selected" (active for
	// rendering) and "purchased" (owned) are independent axes.
	Purchase(ctx context.Context, req PurchaseRequest) error

	// Status returns the stored status for (shop, addon), or "" when no row
	// exists yet.
	Status(ctx context.Context, shopName string, addonID int64) (Status, error)

	// Selected returns the addon id currently selected for the type, or the
	// zero value when the group has no selection.
	Selected(ctx context.Context, shopName string, addonType Type) (int64, bool, error)

	// ListForShop joins the global catalog with the shop's state rows.
	ListForShop(ctx context.Context, shopName string) ([]*AddonWithStatus, error)

	// RegisterAddon adds a catalog entry (platform admin / seeding path).
	RegisterAddon(ctx context.Context, req RegisterAddonRequest) (*Addon, error)
}

// SelectRequest identifies the addon a shop is selecting.
type SelectRequest struct {
	ShopName  string
	AddonID   int64
	AddonType Type
}

// PurchaseRequest identifies the addon a shop is purchasing.
type PurchaseRequest struct {
	ShopName  string
	AddonID   int64
	AddonType Type
}

// RegisterAddonRequest captures a catalog entry.
type RegisterAddonRequest struct {
	Name        string
	Description string
	Price       float64
	AddonType   Type
}
