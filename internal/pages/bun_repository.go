package pages

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/pages"
)

// BunPageRepository persists pages and web settings through bun.
type BunPageRepository struct {
	db       *bun.DB
	repo     repository.Repository[*pages.Page]
	settings repository.Repository[*pages.WebSettings]
}

func NewBunPageRepository(db *bun.DB) *BunPageRepository {
	return &BunPageRepository{
		db:       db,
		repo:     NewPageRepository(db),
		settings: NewWebSettingsRepository(db),
	}
}

func (r *BunPageRepository) Create(ctx context.Context, record *pages.Page) (*pages.Page, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.ShopName, record.Slug)
	}
	return created, nil
}

func (r *BunPageRepository) GetByID(ctx context.Context, id uuid.UUID) (*pages.Page, error) {
	result, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, "", id.String())
	}
	return result, nil
}

func (r *BunPageRepository) GetBySlug(ctx context.Context, shopName, slug, language string) (*pages.Page, error) {
	records, _, err := r.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug = ?", slug)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.language = ?", language)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, shopName, slug)
	}
	if len(records) == 0 {
		return nil, &pages.PageNotFoundError{ShopName: shopName, Key: slug}
	}
	return records[0], nil
}

func (r *BunPageRepository) Update(ctx context.Context, record *pages.Page) (*pages.Page, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns(
			"slug",
			"title",
			"description",
			"keywords",
			"content",
			"styles",
			"theme_name",
			"paid",
			"published",
			"updated_at",
		),
	)
	if err != nil {
		return nil, mapRepositoryError(err, record.ShopName, record.Slug)
	}
	return updated, nil
}

func (r *BunPageRepository) Delete(ctx context.Context, id uuid.UUID, shopName string) error {
	if r.db == nil {
		return fmt.Errorf("page repository: database not configured")
	}

	result, err := r.db.NewDelete().
		Model((*pages.Page)(nil)).
		Where("?TableAlias.id = ?", id).
		Where("?TableAlias.shop_name = ?", shopName).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("page delete rows affected: %w", err)
	}
	if affected == 0 {
		return &pages.PageNotFoundError{ShopName: shopName, Key: id.String()}
	}
	return nil
}

func (r *BunPageRepository) ListPublished(ctx context.Context, shopName string, excludeSlugs []string) ([]*pages.Page, error) {
	processors := []repository.SelectCriteria{
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.published = ?", true)
		}),
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("?TableAlias.slug ASC")
		}),
	}
	if len(excludeSlugs) > 0 {
		processors = append(processors, repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.slug NOT IN (?)", bun.In(excludeSlugs))
		}))
	}

	records, _, err := r.repo.List(ctx, processors...)
	if err != nil {
		return nil, mapRepositoryError(err, shopName, "")
	}
	return records, nil
}

func (r *BunPageRepository) ApplyThemePages(ctx context.Context, shopName string, records []*pages.Page, settings *pages.WebSettings) (int, int, error) {
	if r.db == nil {
		return 0, 0, fmt.Errorf("page repository: database not configured")
	}

	var created, updated int
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, record := range records {
			if record == nil {
				continue
			}

			existing := new(pages.Page)
			err := tx.NewSelect().
				Model(existing).
				Where("?TableAlias.shop_name = ?", shopName).
				Where("?TableAlias.slug = ?", record.Slug).
				Where("?TableAlias.language = ?", record.Language).
				Limit(1).
				Scan(ctx)
			switch {
			case err != nil && !errors.Is(err, sql.ErrNoRows):
				return fmt.Errorf("lookup theme page %q: %w", record.Slug, err)
			case err == nil:
				res, uerr := tx.NewUpdate().
					Model((*pages.Page)(nil)).
					Set("content = ?", record.Content).
					Set("styles = ?", record.Styles).
					Set("theme_name = ?", record.ThemeName).
					Set("paid = ?", record.Paid).
					Set("published = ?", record.Published).
					Set("updated_at = ?", record.UpdatedAt).
					Where("?TableAlias.id = ?", existing.ID).
					Exec(ctx)
				if uerr != nil {
					return fmt.Errorf("update theme page %q: %w", record.Slug, uerr)
				}
				if n, _ := res.RowsAffected(); n > 0 {
					updated++
				}
			default:
				cloned := *record
				if cloned.ID == uuid.Nil {
					cloned.ID = uuid.New()
				}
				if _, ierr := tx.NewInsert().Model(&cloned).Exec(ctx); ierr != nil {
					return fmt.Errorf("insert theme page %q: %w", record.Slug, ierr)
				}
				created++
			}
		}

		if settings == nil {
			return nil
		}

		if _, err := tx.NewInsert().
			Model(settings).
			On("CONFLICT (shop_name) DO UPDATE").
			Set("head = EXCLUDED.head").
			Set("script = EXCLUDED.script").
			Set("foot = EXCLUDED.foot").
			Set("theme_name = EXCLUDED.theme_name").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx); err != nil {
			return fmt.Errorf("upsert web settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}

func (r *BunPageRepository) GetWebSettings(ctx context.Context, shopName string) (*pages.WebSettings, error) {
	records, _, err := r.settings.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.shop_name = ?", shopName)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, shopName, "web_settings")
	}
	if len(records) == 0 {
		return nil, &pages.PageNotFoundError{ShopName: shopName, Key: "web_settings"}
	}
	return records[0], nil
}

func (r *BunPageRepository) SaveWebSettings(ctx context.Context, record *pages.WebSettings) (*pages.WebSettings, error) {
	if r.db == nil {
		return nil, fmt.Errorf("page repository: database not configured")
	}

	if _, err := r.db.NewInsert().
		Model(record).
		On("CONFLICT (shop_name) DO UPDATE").
		Set("head = EXCLUDED.head").
		Set("script = EXCLUDED.script").
		Set("foot = EXCLUDED.foot").
		Set("theme_name = EXCLUDED.theme_name").
		Set("analytics = EXCLUDED.analytics").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return nil, fmt.Errorf("save web settings: %w", err)
	}
	return record, nil
}

func mapRepositoryError(err error, shopName, key string) error {
	if err == nil {
		return nil
	}

	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &pages.PageNotFoundError{ShopName: shopName, Key: key}
	}

	return fmt.Errorf("page repository error: %w", err)
}
