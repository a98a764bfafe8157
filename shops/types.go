package shops

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Shop represents a tenant: an independent storefront identified by a unique
// subdomain label (ShopName) or a white-labeled custom domain. ShopName is the
// partition key for every other entity and is immutable once assigned.
type Shop struct {
	bun.BaseModel `bun:"table:shops,alias:s"`

	ID        uuid.UUID `bun:",pk,type:uuid" json:"id"`
	ShopName  string    `bun:"shop_name,notnull,unique" json:"shop_name"`
	ShopType  string    `bun:"shop_type,notnull" json:"shop_type"`
	Domain    *string   `bun:"domain" json:"domain,omitempty"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	CreatedAt time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}
