package navigation

import (
	"context"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/linkbay/cms/navigation"
)

// Repository is the persistence contract for navbar links.
type Repository interface {
	// ListLinks returns the shop's links ordered by position ascending.
	ListLinks(ctx context.Context, shopName string) ([]*navigation.Link, error)

	// ReplaceLinks deletes the shop's existing links and inserts the new set
	// in a single transaction.
	ReplaceLinks(ctx context.Context, shopName string, records []*navigation.Link) error
}

func NewLinkRepository(db *bun.DB) repository.Repository[*navigation.Link] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*navigation.Link]{
		NewRecord: func() *navigation.Link { return &navigation.Link{} },
		GetID: func(l *navigation.Link) uuid.UUID {
			return l.ID
		},
		SetID: func(l *navigation.Link, id uuid.UUID) {
			l.ID = id
		},
		GetIdentifier: func() string {
			return "link_text"
		},
		GetIdentifierValue: func(l *navigation.Link) string {
			return l.LinkText
		},
	})
}
