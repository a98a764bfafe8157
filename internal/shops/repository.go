package shops

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/shops"
)

// Repository is the persistence contract for tenants.
type Repository interface {
	Create(ctx context.Context, record *shops.Shop) (*shops.Shop, error)
	GetByName(ctx context.Context, shopName string) (*shops.Shop, error)
	GetByDomain(ctx context.Context, domain string) (*shops.Shop, error)
	Update(ctx context.Context, record *shops.Shop) (*shops.Shop, error)
	List(ctx context.Context) ([]*shops.Shop, error)
}

func NewShopRepository(db *bun.DB) repository.Repository[*shops.Shop] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*shops.Shop]{
		NewRecord: func() *shops.Shop { return &shops.Shop{} },
		GetID: func(s *shops.Shop) uuid.UUID {
			return s.ID
		},
		SetID: func(s *shops.Shop, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "shop_name"
		},
		GetIdentifierValue: func(s *shops.Shop) string {
			return s.ShopName
		},
	})
}
