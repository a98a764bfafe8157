package navigation

import (
	"context"
	"strings"
	"time"

	"github.com/linkbay/cms/internal/identity"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pkg/interfaces"
)

// ServiceOption configures service behaviour.
type ServiceOption func(*service)

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNow overrides the time source (primarily for tests).
func WithNow(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

type service struct {
	repo   Repository
	logger interfaces.Logger
	now    func() time.Time
}

// NewService constructs the navbar link manager.
func NewService(repo Repository, opts ...ServiceOption) navigation.Service {
	if repo == nil {
		panic("navigation: repository is required")
	}
	s := &service{
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) ListLinks(ctx context.Context, shopName string) ([]*navigation.Link, error) {
	shopName = normalizeShopName(shopName)
	if shopName == "" {
		return nil, navigation.ErrShopNameRequired
	}
	return s.repo.ListLinks(ctx, shopName)
}

func (s *service) ReplaceLinks(ctx context.Context, shopName string, inputs []navigation.LinkInput) ([]*navigation.Link, error) {
	shopName = normalizeShopName(shopName)
	if shopName == "" {
		return nil, navigation.ErrShopNameRequired
	}

	records, err := buildLinks(shopName, inputs, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceLinks(ctx, shopName, records); err != nil {
		return nil, err
	}
	s.logger.Info("navbar links replaced", "shop_name", shopName, "count", len(records))
	return records, nil
}

// buildLinks validates the payload and resolves parent references. Parents
// are addressed by index within the same payload and must themselves be
// top-level entries.
func buildLinks(shopName string, inputs []navigation.LinkInput, now time.Time) ([]*navigation.Link, error) {
	records := make([]*navigation.Link, 0, len(inputs))
	for position, input := range inputs {
		text := strings.TrimSpace(input.LinkText)
		if text == "" {
			return nil, navigation.ErrLinkTextRequired
		}
		url := strings.TrimSpace(input.LinkURL)
		if url == "" {
			return nil, navigation.ErrLinkURLRequired
		}

		records = append(records, &navigation.Link{
			ID:        identity.NavbarLinkUUID(shopName, position),
			ShopName:  shopName,
			LinkText:  text,
			LinkURL:   url,
			LinkType:  strings.TrimSpace(input.LinkType),
			Position:  position,
			CreatedAt: now,
		})
	}

	for position, input := range inputs {
		if input.ParentIndex == nil {
			continue
		}
		parent := *input.ParentIndex
		if parent < 0 || parent >= len(records) || parent == position {
			return nil, navigation.ErrParentIndex
		}
		if inputs[parent].ParentIndex != nil {
			return nil, navigation.ErrParentNested
		}
		parentID := records[parent].ID
		records[position].ParentID = &parentID
	}

	return records, nil
}

func normalizeShopName(shopName string) string {
	return strings.ToLower(strings.TrimSpace(shopName))
}
