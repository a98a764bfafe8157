package shops

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/linkbay/cms/internal/identity"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/pkg/interfaces"
	"github.com/linkbay/cms/shops"
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

// WithLocalSuffix overrides the host suffix stripped before subdomain
// extraction. Defaults to ".local".
func WithLocalSuffix(suffix string) ServiceOption {
	return func(s *service) {
		suffix = strings.TrimSpace(suffix)
		if strings.HasPrefix(suffix, ".") {
			s.localSuffix = suffix
		}
	}
}

type service struct {
	repo        Repository
	logger      interfaces.Logger
	now         func() time.Time
	localSuffix string
}

// NewService constructs the tenant service.
func NewService(repo Repository, opts ...ServiceOption) shops.Service {
	if repo == nil {
		panic("shops: repository is required")
	}
	s := &service{
		repo:        repo,
		logger:      logging.NoOp(),
		now:         time.Now,
		localSuffix: ".local",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Resolve maps a Host header to a shop. The candidate subdomain label is the
// first dot-separated label after stripping any port and a trailing ".local"
// used by local development hosts. When no shop owns the label, the full host
// is matched against custom domains before giving up.
func (s *service) Resolve(ctx context.Context, host string) (*shops.Shop, error) {
	cleaned := stripPort(strings.TrimSpace(host))
	if cleaned == "" {
		return nil, shops.ErrHostRequired
	}

	candidate := s.subdomainLabel(cleaned)
	if candidate != "" {
		shop, err := s.repo.GetByName(ctx, candidate)
		if err == nil {
			return shop, nil
		}
		if !errors.Is(err, shops.ErrShopNotFound) {
			return nil, err
		}
	}

	shop, err := s.repo.GetByDomain(ctx, cleaned)
	if err == nil {
		return shop, nil
	}
	if !errors.Is(err, shops.ErrShopNotFound) {
		return nil, err
	}

	s.logger.Warn("tenant not found", "host", host, "candidate", candidate)
	return nil, &shops.TenantNotFoundError{Host: host, Candidate: candidate}
}

func (s *service) Create(ctx context.Context, req shops.CreateShopRequest) (*shops.Shop, error) {
	name := strings.ToLower(strings.TrimSpace(req.ShopName))
	if name == "" {
		return nil, shops.ErrShopNameRequired
	}
	if !validShopName(name) {
		return nil, shops.ErrShopNameInvalid
	}

	if existing, err := s.repo.GetByName(ctx, name); err == nil && existing != nil {
		return nil, shops.ErrShopExists
	} else if err != nil && !errors.Is(err, shops.ErrShopNotFound) {
		return nil, err
	}

	now := s.now().UTC()
	record := &shops.Shop{
		ID:        identity.ShopUUID(name),
		ShopName:  name,
		ShopType:  strings.TrimSpace(req.ShopType),
		Domain:    trimDomain(req.Domain),
		UserID:    req.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return nil, err
	}
	s.logger.Info("shop created", "shop_name", created.ShopName, "shop_type", created.ShopType)
	return created, nil
}

func (s *service) GetByName(ctx context.Context, shopName string) (*shops.Shop, error) {
	name := strings.ToLower(strings.TrimSpace(shopName))
	if name == "" {
		return nil, shops.ErrShopNameRequired
	}
	return s.repo.GetByName(ctx, name)
}

func (s *service) UpdateDomain(ctx context.Context, req shops.UpdateDomainRequest) (*shops.Shop, error) {
	current, err := s.GetByName(ctx, req.ShopName)
	if err != nil {
		return nil, err
	}
	current.Domain = trimDomain(req.Domain)
	current.UpdatedAt = s.now().UTC()
	return s.repo.Update(ctx, current)
}

func (s *service) List(ctx context.Context) ([]*shops.Shop, error) {
	return s.repo.List(ctx)
}

func stripPort(host string) string {
	if host == "" {
		return ""
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}

func (s *service) subdomainLabel(host string) string {
	trimmed := strings.TrimSuffix(host, s.localSuffix)
	label, _, _ := strings.Cut(trimmed, ".")
	return strings.ToLower(strings.TrimSpace(label))
}

func validShopName(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return false
		}
	}
	return !strings.HasPrefix(name, "-") && !strings.HasSuffix(name, "-")
}

func trimDomain(domain *string) *string {
	if domain == nil {
		return nil
	}
	trimmed := strings.ToLower(strings.TrimSpace(*domain))
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
