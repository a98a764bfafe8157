package shops

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/shops"
)

// BunShopRepository persists tenants through bun.
type BunShopRepository struct {
	db   *bun.DB
	repo repository.Repository[*shops.Shop]
}

func NewBunShopRepository(db *bun.DB) *BunShopRepository {
	return &BunShopRepository{
		db:   db,
		repo: NewShopRepository(db),
	}
}

func (r *BunShopRepository) Create(ctx context.Context, record *shops.Shop) (*shops.Shop, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.ShopName)
	}
	return created, nil
}

func (r *BunShopRepository) GetByName(ctx context.Context, shopName string) (*shops.Shop, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, shopName)
	}
	if len(records) == 0 {
		return nil, &shops.ShopNotFoundError{Key: shopName}
	}
	return records[0], nil
}

func (r *BunShopRepository) GetByDomain(ctx context.Context, domain string) (*shops.Shop, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.domain = ?", domain)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, domain)
	}
	if len(records) == 0 {
		return nil, &shops.ShopNotFoundError{Key: domain}
	}
	return records[0], nil
}

func (r *BunShopRepository) Update(ctx context.Context, record *shops.Shop) (*shops.Shop, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"domain",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, record.ShopName)
	}
	return updated, nil
}

func (r *BunShopRepository) List(ctx context.Context) ([]*shops.Shop, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.shop_name ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return records, nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &shops.ShopNotFoundError{Key: key}
	}

	return fmt.Errorf("shop repository error: %w", err)
}
