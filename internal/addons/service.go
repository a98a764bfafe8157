package addons

import (
	"context"
	"strings"
	"time"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/logging"
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

// NewService constructs the addon registry.
func NewService(repo Repository, opts ...ServiceOption) addons.Service {
	if repo == nil {
		panic("addons: repository is required")
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

func (s *service) Select(ctx context.Context, req addons.SelectRequest) error {
	shopName, err := validateStateRequest(req.ShopName, req.AddonID, req.AddonType)
	if err != nil {
		return err
	}

	if err := s.repo.SelectExclusive(ctx, shopName, req.AddonID, req.AddonType, s.now().UTC()); err != nil {
		return err
	}
	s.logger.Info("addon selected",
		"shop_name", shopName,
		"addon_id", req.AddonID,
		"addon_type", req.AddonType.String(),
	)
	return nil
}

func (s *service) Purchase(ctx context.Context, req addons.PurchaseRequest) error {
	shopName, err := validateStateRequest(req.ShopName, req.AddonID, req.AddonType)
	if err != nil {
		return err
	}

	if err := s.repo.Purchase(ctx, shopName, req.AddonID, req.AddonType, s.now().UTC()); err != nil {
		return err
	}
	s.logger.Info("addon purchased",
		"shop_name", shopName,
		"addon_id", req.AddonID,
		"addon_type", req.AddonType.String(),
	)
	return nil
}

func (s *service) Status(ctx context.Context, shopName string, addonID int64) (addons.Status, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return "", addons.ErrShopNameRequired
	}
	state, err := s.repo.GetState(ctx, shopName, addonID)
	if err != nil {
		return "", err
	}
	if state == nil {
		return "", nil
	}
	return state.Status, nil
}

func (s *service) Selected(ctx context.Context, shopName string, addonType addons.Type) (int64, bool, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return 0, false, addons.ErrShopNameRequired
	}
	if !addonType.Valid() {
		return 0, false, addons.ErrAddonTypeInvalid
	}
	state, err := s.repo.SelectedInGroup(ctx, shopName, addonType)
	if err != nil {
		return 0, false, err
	}
	if state == nil {
		return 0, false, nil
	}
	return state.AddonID, true, nil
}

func (s *service) ListForShop(ctx context.Context, shopName string) ([]*addons.AddonWithStatus, error) {
	shopName = strings.TrimSpace(shopName)
	if shopName == "" {
		return nil, addons.ErrShopNameRequired
	}

	catalog, err := s.repo.ListAddons(ctx)
	if err != nil {
		return nil, err
	}
	states, err := s.repo.ListStates(ctx, shopName)
	if err != nil {
		return nil, err
	}

	statusByID := make(map[int64]addons.Status, len(states))
	for _, state := range states {
		statusByID[state.AddonID] = state.Status
	}

	out := make([]*addons.AddonWithStatus, 0, len(catalog))
	for _, entry := range catalog {
		out = append(out, &addons.AddonWithStatus{
			Addon:  entry,
			Status: statusByID[entry.ID],
		})
	}
	return out, nil
}

func (s *service) RegisterAddon(ctx context.Context, req addons.RegisterAddonRequest) (*addons.Addon, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, addons.ErrAddonNameRequired
	}
	if !req.AddonType.Valid() {
		return nil, addons.ErrAddonTypeInvalid
	}

	return s.repo.RegisterAddon(ctx, &addons.Addon{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		AddonType:   req.AddonType,
		CreatedAt:   s.now().UTC(),
	})
}

func validateStateRequest(shopName string, addonID int64, addonType addons.Type) (string, error) {
	trimmed := strings.TrimSpace(shopName)
	if trimmed == "" {
		return "", addons.ErrShopNameRequired
	}
	if addonID <= 0 {
		return "", addons.ErrAddonIDRequired
	}
	if !addonType.Valid() {
		return "", addons.ErrAddonTypeInvalid
	}
	return trimmed, nil
}
