package themes

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/linkbay/cms/internal/identity"
	"github.com/linkbay/cms/internal/logging"
	internalpages "github.com/linkbay/cms/internal/pages"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/pkg/interfaces"
	"github.com/linkbay/cms/themes"
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
	loader themes.Loader
	repo   internalpages.Repository
	logger interfaces.Logger
	now    func() time.Time
}

// NewService constructs the theme applier.
func NewService(loader themes.Loader, repo internalpages.Repository, opts ...ServiceOption) themes.Service {
	if loader == nil {
		panic("themes: loader is required")
	}
	if repo == nil {
		panic("themes: page repository is required")
	}
	s := &service{
		loader: loader,
		repo:   repo,
		logger: logging.NoOp(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) Apply(ctx context.Context, req themes.ApplyRequest) (*themes.ApplyResult, error) {
	themeName := strings.TrimSpace(req.ThemeName)
	if themeName == "" {
		return nil, themes.ErrThemeNameRequired
	}
	shopName := strings.ToLower(strings.TrimSpace(req.ShopName))
	if shopName == "" {
		return nil, themes.ErrShopNameRequired
	}

	bundle, err := s.loader.Load(ctx, themeName)
	if err != nil {
		return nil, err
	}
	if bundle.Page(pages.SlugHome) == nil {
		return nil, &themes.BundleError{
			ThemeName: themeName,
			Reason:    "no home page",
			Cause:     themes.ErrBundleNoHomePage,
		}
	}

	now := s.now().UTC()
	records := make([]*pages.Page, 0, len(bundle.Pages))
	for _, bp := range bundle.Pages {
		records = append(records, &pages.Page{
			ID:          identity.PageUUID(shopName, bp.Slug, bp.Language),
			ShopName:    shopName,
			Slug:        bp.Slug,
			Language:    bp.Language,
			Title:       bp.Title,
			Description: bp.Description,
			Keywords:    bp.Keywords,
			Content:     bp.Content,
			Styles:      bp.Styles,
			ThemeName:   bundle.Name,
			Paid:        pages.PaidYes,
			Published:   bp.Published,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	settings := &pages.WebSettings{
		ID:        identity.WebSettingsUUID(shopName),
		ShopName:  shopName,
		Head:      bundle.Head,
		Script:    bundle.Script,
		Foot:      bundle.Foot,
		ThemeName: bundle.Name,
		UpdatedAt: now,
	}

	created, updated, err := s.repo.ApplyThemePages(ctx, shopName, records, settings)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", themes.ErrApplyFailed, err)
	}

	s.logger.Info("theme applied",
		"theme_name", bundle.Name,
		"shop_name", shopName,
		"pages_created", created,
		"pages_updated", updated,
	)

	return &themes.ApplyResult{
		ThemeName:    bundle.Name,
		ShopName:     shopName,
		PagesCreated: created,
		PagesUpdated: updated,
	}, nil
}

func (s *service) Load(ctx context.Context, themeName string) (*themes.Bundle, error) {
	themeName = strings.TrimSpace(themeName)
	if themeName == "" {
		return nil, themes.ErrThemeNameRequired
	}
	return s.loader.Load(ctx, themeName)
}

func (s *service) ListAvailable(ctx context.Context) ([]string, error) {
	return s.loader.List(ctx)
}
