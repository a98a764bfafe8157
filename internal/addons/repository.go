package addons

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/addons"
)

// Repository is the persistence contract for the addon catalog and the
// per-shop state rows.
type Repository interface {
	RegisterAddon(ctx context.Context, record *addons.Addon) (*addons.Addon, error)
	GetAddon(ctx context.Context, id int64) (*addons.Addon, error)
	ListAddons(ctx context.Context) ([]*addons.Addon, error)

	GetState(ctx context.Context, shopName string, addonID int64) (*addons.ShopAddon, error)
	ListStates(ctx context.Context, shopName string) ([]*addons.ShopAddon, error)
	SelectedInGroup(ctx context.Context, shopName string, addonType addons.Type) (*addons.ShopAddon, error)

	// SelectExclusive performs the whole selection transition atomically:
	// reject when the target row is purchased, deselect every other selected
	// row in the (shop_name, addon_type) group (purchased rows are skipped),
	// then upsert the target as selected. A crash mid-operation must never
	// leave two selected rows in the group.
	SelectExclusive(ctx context.Context, shopName string, addonID int64, addonType addons.Type, now time.Time) error

	// Purchase upserts the row's status to purchased unconditionally,
	// leaving sibling selections untouched.
	Purchase(ctx context.Context, shopName string, addonID int64, addonType addons.Type, now time.Time) error
}

// The catalog table keeps the original integer identifiers, so it is queried
// through bun directly; only the uuid-keyed state rows go through the generic
// repository.
func NewShopAddonRepository(db *bun.DB) repository.Repository[*addons.ShopAddon] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*addons.ShopAddon]{
		NewRecord: func() *addons.ShopAddon { return &addons.ShopAddon{} },
		GetID: func(sa *addons.ShopAddon) uuid.UUID {
			return sa.ID
		},
		SetID: func(sa *addons.ShopAddon, id uuid.UUID) {
			sa.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(sa *addons.ShopAddon) string {
			return sa.ID.String()
		},
	})
}
