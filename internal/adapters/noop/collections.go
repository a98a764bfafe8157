package noop

import (
	"context"

	"github.com/linkbay/cms/pkg/interfaces"
)

// CollectionSource satisfies interfaces.CollectionSource with an empty
// catalog. Hosts without a product layer get navbars whose show_collections
// entries render as plain links.
type CollectionSource struct{}

// NewCollectionSource constructs the adapter.
func NewCollectionSource() *CollectionSource {
	return &CollectionSource{}
}

func (CollectionSource) ActiveCollections(context.Context, string) ([]interfaces.Collection, error) {
	return nil, nil
}
