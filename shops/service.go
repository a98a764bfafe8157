package shops

import (
	"context"

	"github.com/google/uuid"
)

// Service describes tenant lookup and lifecycle capabilities. Resolve is the
// hot path: every storefront request maps its Host header to a shop before
// any other work happens.
type Service interface {
	// Resolve maps a raw Host header value (possibly carrying a port) to the
	// owning shop. Misses return a *TenantNotFoundError carrying the raw host.
	Resolve(ctx context.Context, host string) (*Shop, error)

	Create(ctx context.Context, req CreateShopRequest) (*Shop, error)
	GetByName(ctx context.Context, shopName string) (*Shop, error)
	UpdateDomain(ctx context.Context, req UpdateDomainRequest) (*Shop, error)
	List(ctx context.Context) ([]*Shop, error)
}

// CreateShopRequest captures the payload required to register a tenant.
type CreateShopRequest struct {
	ShopName string
	ShopType string
	Domain   *string
	UserID   uuid.UUID
}

// UpdateDomainRequest attaches or clears a custom domain for a shop. The
// shop_name itself is immutable; the domain is the only mutable identity field.
type UpdateDomainRequest struct {
	ShopName string
	Domain   *string
}
