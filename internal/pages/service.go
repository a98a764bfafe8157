package pages

import (
	"context"
	"errors"
	"strings"
	"time"

	slug "github.com/goliatone/go-slug"
	"github.com/google/uuid"

	"github.com/linkbay/cms/internal/identity"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/pages"
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

// NewService constructs the page store service.
func NewService(repo Repository, opts ...ServiceOption) pages.Service {
	if repo == nil {
		panic("pages: repository is required")
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

// GetBySlug loads a page by its composite key. A miss on a non-default
// language falls back to the default language so partially translated shops
// keep rendering.
func (s *service) GetBySlug(ctx context.Context, shopName, slugValue string, language ...string) (*pages.Page, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return nil, pages.ErrShopNameRequired
	}
	slugValue = strings.TrimSpace(slugValue)
	if slugValue == "" {
		return nil, pages.ErrSlugRequired
	}

	lang := resolveLanguage(language...)
	page, err := s.repo.GetBySlug(ctx, shopName, slugValue, lang)
	if err == nil {
		return page, nil
	}
	if lang != pages.DefaultLanguage && errors.Is(err, pages.ErrPageNotFound) {
		return s.repo.GetBySlug(ctx, shopName, slugValue, pages.DefaultLanguage)
	}
	return nil, err
}

func (s *service) Create(ctx context.Context, req pages.CreatePageRequest) (*pages.Page, error) {
	shopName := strings.TrimSpace(req.ShopName)
	if shopName == "" {
		return nil, pages.ErrShopNameRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, pages.ErrTitleRequired
	}
	normalized, err := normalizeSlug(req.Slug)
	if err != nil {
		return nil, err
	}

	lang := resolveLanguage(req.Language)
	now := s.now().UTC()
	record := &pages.Page{
		ID:          identity.PageUUID(shopName, normalized, lang),
		ShopName:    shopName,
		Slug:        normalized,
		Language:    lang,
		Title:       req.Title,
		Description: req.Description,
		Keywords:    req.Keywords,
		Content:     req.Content,
		Styles:      req.Styles,
		ThemeName:   req.ThemeName,
		Paid:        req.Paid,
		Published:   req.Published,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("page created", "shop_name", shopName, "slug", normalized, "language", lang)
	return created, nil
}

func (s *service) UpdateContent(ctx context.Context, req pages.UpdateContentRequest) (*pages.Page, error) {
	if req.PageID == uuid.Nil {
		return nil, pages.ErrPageIDRequired
	}
	current, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	current.Content = req.Content
	if req.Styles != nil {
		current.Styles = *req.Styles
	}
	current.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, current)
}

func (s *service) UpdateSEO(ctx context.Context, req pages.UpdateSEORequest) (*pages.Page, error) {
	if req.PageID == uuid.Nil {
		return nil, pages.ErrPageIDRequired
	}
	current, err := s.repo.GetByID(ctx, req.PageID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Slug) != "" {
		normalized, err := normalizeSlug(req.Slug)
		if err != nil {
			return nil, err
		}
		current.Slug = normalized
	}
	current.Title = req.Title
	current.Description = req.Description
	current.Keywords = req.Keywords
	current.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, current)
}

func (s *service) Delete(ctx context.Context, req pages.DeletePageRequest) error {
	if req.PageID == uuid.Nil {
		return pages.ErrPageIDRequired
	}
	if strings.TrimSpace(req.ShopName) == "" {
		return pages.ErrShopNameRequired
	}
	return s.repo.Delete(ctx, req.PageID, strings.TrimSpace(req.ShopName))
}

func (s *service) ListPublished(ctx context.Context, shopName string) ([]*pages.Page, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return nil, pages.ErrShopNameRequired
	}
	return s.repo.ListPublished(ctx, shopName, []string{pages.SlugNavbar, pages.SlugFooter})
}

// GetWebSettings returns the shop's render fragments, or an all-empty record
// when none have been saved yet: absent settings are not an error.
func (s *service) GetWebSettings(ctx context.Context, shopName string) (*pages.WebSettings, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return nil, pages.ErrShopNameRequired
	}

	settings, err := s.repo.GetWebSettings(ctx, shopName)
	if err == nil {
		return settings, nil
	}
	if errors.Is(err, pages.ErrPageNotFound) {
		return &pages.WebSettings{
			ID:       identity.WebSettingsUUID(shopName),
			ShopName: shopName,
		}, nil
	}
	return nil, err
}

func (s *service) SaveWebSettings(ctx context.Context, req pages.SaveWebSettingsRequest) (*pages.WebSettings, error) {
	shopName := strings.TrimSpace(req.ShopName)
	if shopName == "" {
		return nil, pages.ErrShopNameRequired
	}

	record := &pages.WebSettings{
		ID:        identity.WebSettingsUUID(shopName),
		ShopName:  shopName,
		Head:      req.Head,
		Script:    req.Script,
		Foot:      req.Foot,
		ThemeName: req.ThemeName,
		Analytics: req.Analytics,
		UpdatedAt: s.now().UTC(),
	}
	return s.repo.SaveWebSettings(ctx, record)
}

func normalizeSlug(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", pages.ErrSlugRequired
	}
	if slug.IsValid(trimmed) {
		return trimmed, nil
	}
	normalized, err := slug.Normalize(trimmed)
	if err != nil || normalized == "" {
		return "", pages.ErrSlugInvalid
	}
	return normalized, nil
}

func resolveLanguage(language ...string) string {
	if len(language) == 0 {
		return pages.DefaultLanguage
	}
	lang := strings.ToLower(strings.TrimSpace(language[0]))
	if lang == "" {
		return pages.DefaultLanguage
	}
	return lang
}
