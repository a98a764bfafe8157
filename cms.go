package cms

import (
	"context"
	"errors"
	"net/http"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/di"
	cmshttp "github.com/linkbay/cms/internal/http"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/render"
	"github.com/linkbay/cms/shops"
	"github.com/linkbay/cms/themes"
)

// ShopService exports the tenant service contract for consumers of the cms package.
type ShopService = shops.Service

// PageService exports the page store contract.
type PageService = pages.Service

// AddonService exports the addon registry contract.
type AddonService = addons.Service

// ThemeService exports the theme applier contract.
type ThemeService = themes.Service

// NavigationService exports the navbar link manager contract.
type NavigationService = navigation.Service

// NavbarRenderer exports the navbar renderer contract.
type NavbarRenderer = navigation.Renderer

// Composer exports the page composer contract.
type Composer = render.Service

// Module represents the top level LinkBay CMS runtime facade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional DI
// overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Shops returns the configured tenant service.
func (m *Module) Shops() ShopService {
	return m.container.ShopService()
}

// Pages returns the configured page store.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Addons returns the configured addon registry.
func (m *Module) Addons() AddonService {
	return m.container.AddonService()
}

// Themes returns the configured theme applier, or nil when the themes
// feature is disabled.
func (m *Module) Themes() ThemeService {
	return m.container.ThemeService()
}

// Navigation returns the configured navbar link manager.
func (m *Module) Navigation() NavigationService {
	return m.container.NavigationService()
}

// Navbar returns the configured navbar renderer.
func (m *Module) Navbar() NavbarRenderer {
	return m.container.NavbarRenderer()
}

// Composer returns the configured page composer.
func (m *Module) Composer() Composer {
	return m.container.Composer()
}

// RegisterHTTP attaches the storefront and shop admin endpoints to the
// provided mux. Host applications own the server lifecycle and any
// middleware.
func (m *Module) RegisterHTTP(mux *http.ServeMux) error {
	api := cmshttp.NewAPI(
		cmshttp.WithShopService(m.container.ShopService()),
		cmshttp.WithPageService(m.container.PageService()),
		cmshttp.WithAddonService(m.container.AddonService()),
		cmshttp.WithThemeService(m.container.ThemeService()),
		cmshttp.WithNavigationService(m.container.NavigationService()),
		cmshttp.WithComposer(m.container.Composer()),
		cmshttp.WithLogger(logging.HTTPLogger(m.container.LoggerProvider())),
	)
	return api.Register(mux)
}

// SeedAddonCatalog registers the supplied catalog entries, skipping names
// that already exist so repeated bootstraps converge.
func (m *Module) SeedAddonCatalog(ctx context.Context, entries []addons.RegisterAddonRequest) error {
	repo := m.container.AddonRepository()
	existing, err := repo.ListAddons(ctx)
	if err != nil {
		return err
	}
	known := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		known[entry.Name] = struct{}{}
	}

	svc := m.Addons()
	var errs []error
	for _, entry := range entries {
		if _, ok := known[entry.Name]; ok {
			continue
		}
		if _, err := svc.RegisterAddon(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
