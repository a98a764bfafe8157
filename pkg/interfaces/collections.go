package interfaces

import "context"

// Collection is the minimal projection of a storefront collection the
// navigation renderer needs when expanding dynamic submenus.
type Collection struct {
	Name string
	Slug string
}

// CollectionSource supplies the live list of active collections for a shop.
// The storefront catalog lives outside this module; hosts adapt their
// product layer to this port. Lookups happen at render time so collection
// changes are visible on the next request without invalidation.
type CollectionSource interface {
	ActiveCollections(ctx context.Context, shopName string) ([]Collection, error)
}
