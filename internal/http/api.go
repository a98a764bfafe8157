package http

import (
	"fmt"
	"net/http"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/pkg/interfaces"
	"github.com/linkbay/cms/render"
	"github.com/linkbay/cms/shops"
	"github.com/linkbay/cms/themes"
)

// API registers the storefront and shop admin endpoints.
type API struct {
	shops      shops.Service
	pages      pages.Service
	addons     addons.Service
	themes     themes.Service
	navigation navigation.Service
	composer   render.Service
	logger     interfaces.Logger
}

// Option mutates the API configuration.
type Option func(*API)

// NewAPI constructs an API instance.
func NewAPI(opts ...Option) *API {
	api := &API{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithShopService wires the tenant resolver.
func WithShopService(service shops.Service) Option {
	return func(api *API) {
		if api != nil {
			api.shops = service
		}
	}
}

// WithPageService wires the page store.
func WithPageService(service pages.Service) Option {
	return func(api *API) {
		if api != nil {
			api.pages = service
		}
	}
}

// WithAddonService wires the addon registry.
func WithAddonService(service addons.Service) Option {
	return func(api *API) {
		if api != nil {
			api.addons = service
		}
	}
}

// WithThemeService wires the theme applier.
func WithThemeService(service themes.Service) Option {
	return func(api *API) {
		if api != nil {
			api.themes = service
		}
	}
}

// WithNavigationService wires the navbar link store.
func WithNavigationService(service navigation.Service) Option {
	return func(api *API) {
		if api != nil {
			api.navigation = service
		}
	}
}

// WithComposer wires the dynamic page composer used by the storefront routes.
func WithComposer(service render.Service) Option {
	return func(api *API) {
		if api != nil {
			api.composer = service
		}
	}
}

// WithLogger overrides the adapter logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *API) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the endpoints to the provided mux.
func (api *API) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: api is nil")
	}

	api.registerAddonRoutes(mux)
	api.registerThemeRoutes(mux)
	api.registerNavbarRoutes(mux)
	api.registerSettingsRoutes(mux)
	api.registerStorefrontRoutes(mux)

	return nil
}

// resolveTenant maps the request host to its shop. The raw Host header is
// passed through untouched; the shop service strips ports and local suffixes.
func (api *API) resolveTenant(r *http.Request) (*shops.Shop, error) {
	if api == nil || api.shops == nil {
		return nil, fmt.Errorf("http: shop service is not configured")
	}
	return api.shops.Resolve(r.Context(), r.Host)
}
