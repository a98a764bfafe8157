package addons

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/identity"
)

// BunAddonRepository persists the catalog and the per-shop state through bun.
type BunAddonRepository struct {
	db     *bun.DB
	states repository.Repository[*addons.ShopAddon]
}

func NewBunAddonRepository(db *bun.DB) *BunAddonRepository {
	return &BunAddonRepository{
		db:     db,
		states: NewShopAddonRepository(db),
	}
}

func (r *BunAddonRepository) RegisterAddon(ctx context.Context, record *addons.Addon) (*addons.Addon, error) {
	if _, err := r.db.NewInsert().Model(record).Exec(ctx); err != nil {
		return nil, fmt.Errorf("register addon: %w", err)
	}
	return record, nil
}

func (r *BunAddonRepository) GetAddon(ctx context.Context, id int64) (*addons.Addon, error) {
	record := new(addons.Addon)
	err := r.db.NewSelect().
		Model(record).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &addons.AddonNotFoundError{AddonID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get addon: %w", err)
	}
	return record, nil
}

func (r *BunAddonRepository) ListAddons(ctx context.Context) ([]*addons.Addon, error) {
	var records []*addons.Addon
	if err := r.db.NewSelect().
		Model(&records).
		OrderExpr("?TableAlias.id ASC").
		Scan(ctx); err != nil {
		return nil, fmt.Errorf("list addons: %w", err)
	}
	return records, nil
}

func (r *BunAddonRepository) GetState(ctx context.Context, shopName string, addonID int64) (*addons.ShopAddon, error) {
	records, _, err := r.states.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.addon_id = ?", addonID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapStateError(err, shopName, addonID)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (r *BunAddonRepository) ListStates(ctx context.Context, shopName string) ([]*addons.ShopAddon, error) {
	records, _, err := r.states.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
	)
	if err != nil {
		return nil, mapStateError(err, shopName, 0)
	}
	return records, nil
}

func (r *BunAddonRepository) SelectedInGroup(ctx context.Context, shopName string, addonType addons.Type) (*addons.ShopAddon, error) {
	records, _, err := r.states.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.addon_type = ?", addonType)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.status = ?", addons.StatusSelected)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapStateError(err, shopName, 0)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return records[0], nil
}

func (r *BunAddonRepository) SelectExclusive(ctx context.Context, shopName string, addonID int64, addonType addons.Type, now time.Time) error {
	if r.db == nil {
		return fmt.Errorf("addon repository: database not configured")
	}

	// Serializable so two concurrent selections in the same group cannot
	// both read before either writes and commit two selected rows.
	txOpts := &sql.TxOptions{Isolation: sql.LevelSerializable}
	return r.db.RunInTx(ctx, txOpts, func(ctx context.Context, tx bun.Tx) error {
		current := new(addons.ShopAddon)
		err := tx.NewSelect().
			Model(current).
			Where("?TableAlias.shop_name = ?", shopName).
			Where("?TableAlias.addon_id = ?", addonID).
			Limit(1).
			Scan(ctx)
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("load addon state: %w", err)
		}
		if err == nil && current.Status == addons.StatusPurchased {
			return &addons.StateConflictError{ShopName: shopName, AddonID: addonID, Status: current.Status}
		}

		// Purchased siblings keep their status; only live selections move.
		if _, err := tx.NewUpdate().
			Model((*addons.ShopAddon)(nil)).
			Set("status = ?", addons.StatusDeselected).
			Set("updated_at = ?", now).
			Where("?TableAlias.shop_name = ?", shopName).
			Where("?TableAlias.addon_type = ?", addonType).
			Where("?TableAlias.addon_id != ?", addonID).
			Where("?TableAlias.status = ?", addons.StatusSelected).
			Exec(ctx); err != nil {
			return fmt.Errorf("deselect sibling addons: %w", err)
		}

		target := &addons.ShopAddon{
			ID:        identity.ShopAddonUUID(shopName, addonID),
			ShopName:  shopName,
			AddonID:   addonID,
			AddonType: addonType,
			Status:    addons.StatusSelected,
			UpdatedAt: now,
		}
		if _, err := tx.NewInsert().
			Model(target).
			On("CONFLICT (shop_name, addon_id) DO UPDATE").
			Set("status = EXCLUDED.status").
			Set("addon_type = EXCLUDED.addon_type").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx); err != nil {
			return fmt.Errorf("upsert selected addon: %w", err)
		}
		return nil
	})
}

func (r *BunAddonRepository) Purchase(ctx context.Context, shopName string, addonID int64, addonType addons.Type, now time.Time) error {
	if r.db == nil {
		return fmt.Errorf("addon repository: database not configured")
	}

	record := &addons.ShopAddon{
		ID:        identity.ShopAddonUUID(shopName, addonID),
		ShopName:  shopName,
		AddonID:   addonID,
		AddonType: addonType,
		Status:    addons.StatusPurchased,
		UpdatedAt: now,
	}
	if _, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (shop_name, addon_id) DO UPDATE").
		Set("status = EXCLUDED.status").
		Set("addon_type = EXCLUDED.addon_type").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("upsert purchased addon: %w", err)
	}
	return nil
}

func mapStateError(err error, shopName string, addonID int64) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &addons.AddonNotFoundError{AddonID: addonID}
	}

	return fmt.Errorf("addon state repository error (shop=%s): %w", shopName, err)
}
