package navigation

import (
	"context"
	"database/sql"
	"fmt"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/navigation"
)

// BunLinkRepository persists navbar links through bun.
type BunLinkRepository struct {
	db   *bun.DB
	repo repository.Repository[*navigation.Link]
}

func NewBunLinkRepository(db *bun.DB) *BunLinkRepository {
	return &BunLinkRepository{
		db:   db,
		repo: NewLinkRepository(db),
	}
}

func (r *BunLinkRepository) ListLinks(ctx context.Context, shopName string) ([]*navigation.Link, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				Where("?TableAlias.shop_name = ?", shopName).
				Order("position ASC")
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("list navbar links: %w", err)
	}
	return records, nil
}

func (r *BunLinkRepository) ReplaceLinks(ctx context.Context, shopName string, records []*navigation.Link) error {
	return r.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		if _, err := tx.NewDelete().
			Model((*navigation.Link)(nil)).
			Where("shop_name = ?", shopName).
			Exec(ctx); err != nil {
			return fmt.Errorf("clear navbar links: %w", err)
		}
		if len(records) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().
			Model(&records).
			Exec(ctx); err != nil {
			return fmt.Errorf("insert navbar links: %w", err)
		}
		return nil
	})
}
