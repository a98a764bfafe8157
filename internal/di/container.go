package di

import (
	"io/fs"
	"os"

	"github.com/uptrace/bun"

	"github.com/linkbay/cms/addons"
	internaladdons "github.com/linkbay/cms/internal/addons"
	"github.com/linkbay/cms/internal/adapters/noop"
	"github.com/linkbay/cms/internal/commands"
	addonscmd "github.com/linkbay/cms/internal/commands/addons"
	themescmd "github.com/linkbay/cms/internal/commands/themes"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/internal/logging/gologger"
	internalnavigation "github.com/linkbay/cms/internal/navigation"
	internalpages "github.com/linkbay/cms/internal/pages"
	internalrender "github.com/linkbay/cms/internal/render"
	"github.com/linkbay/cms/internal/runtimeconfig"
	internalshops "github.com/linkbay/cms/internal/shops"
	internalthemes "github.com/linkbay/cms/internal/themes"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/pkg/interfaces"
	"github.com/linkbay/cms/render"
	"github.com/linkbay/cms/shops"
	"github.com/linkbay/cms/themes"
)

// Container wires module dependencies. Without a bun.DB it runs entirely on
// in-memory repositories, which is the scaffolding and test configuration.
type Container struct {
	Config runtimeconfig.Config

	bunDB          *bun.DB
	loggerProvider interfaces.LoggerProvider
	collections    interfaces.CollectionSource
	themeFS        fs.FS

	shopRepo  internalshops.Repository
	pageRepo  internalpages.Repository
	addonRepo internaladdons.Repository
	linkRepo  internalnavigation.Repository

	shopSvc     shops.Service
	pageSvc     pages.Service
	addonSvc    addons.Service
	themeSvc    themes.Service
	themeLoader themes.Loader
	navSvc      navigation.Service
	navRenderer navigation.Renderer
	composerSvc render.Service

	applyThemeCmd    *themescmd.ApplyThemeHandler
	selectAddonCmd   *addonscmd.SelectAddonHandler
	purchaseAddonCmd *addonscmd.PurchaseAddonHandler
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithBunDB binds every repository to the provided database.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithLoggerProvider overrides the logger provider built from configuration.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithCollectionSource binds the host's product catalog for navbar expansion.
func WithCollectionSource(source interfaces.CollectionSource) Option {
	return func(c *Container) {
		c.collections = source
	}
}

// WithThemeFS overrides the filesystem theme bundles are loaded from.
// Defaults to the configured base path on the OS filesystem.
func WithThemeFS(fsys fs.FS) Option {
	return func(c *Container) {
		c.themeFS = fsys
	}
}

// WithThemeLoader overrides the bundle loader entirely.
func WithThemeLoader(loader themes.Loader) Option {
	return func(c *Container) {
		c.themeLoader = loader
	}
}

// WithShopService overrides the default shop service binding.
func WithShopService(svc shops.Service) Option {
	return func(c *Container) {
		c.shopSvc = svc
	}
}

// WithPageService overrides the default page service binding.
func WithPageService(svc pages.Service) Option {
	return func(c *Container) {
		c.pageSvc = svc
	}
}

// WithAddonService overrides the default addon service binding.
func WithAddonService(svc addons.Service) Option {
	return func(c *Container) {
		c.addonSvc = svc
	}
}

// WithThemeService overrides the default theme service binding.
func WithThemeService(svc themes.Service) Option {
	return func(c *Container) {
		c.themeSvc = svc
	}
}

// WithNavigationService overrides the default navigation service binding.
func WithNavigationService(svc navigation.Service) Option {
	return func(c *Container) {
		c.navSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		shopRepo:    internalshops.NewMemoryShopRepository(),
		pageRepo:    internalpages.NewMemoryPageRepository(),
		addonRepo:   internaladdons.NewMemoryAddonRepository(),
		linkRepo:    internalnavigation.NewMemoryLinkRepository(),
		collections: noop.NewCollectionSource(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureRepositories()
	if err := c.configureThemes(); err != nil {
		return nil, err
	}
	c.configureServices()
	c.configureCommands()

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}
	if !c.Config.Features.Logger {
		return nil
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.Config.Logging.Level,
		Format:    c.Config.Logging.Format,
		AddSource: c.Config.Logging.AddSource,
		Focus:     c.Config.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

func (c *Container) configureRepositories() {
	if c.bunDB == nil {
		return
	}
	c.shopRepo = internalshops.NewBunShopRepository(c.bunDB)
	c.pageRepo = internalpages.NewBunPageRepository(c.bunDB)
	c.addonRepo = internaladdons.NewBunAddonRepository(c.bunDB)
	c.linkRepo = internalnavigation.NewBunLinkRepository(c.bunDB)
}

func (c *Container) configureThemes() error {
	if !c.Config.Features.Themes || c.themeLoader != nil {
		return nil
	}

	fsys := c.themeFS
	if fsys == nil {
		fsys = os.DirFS(c.Config.Themes.BasePath)
	}
	loader, err := internalthemes.NewFSLoader(fsys)
	if err != nil {
		return err
	}
	c.themeLoader = loader
	return nil
}

func (c *Container) configureServices() {
	if c.shopSvc == nil {
		shopOpts := []internalshops.ServiceOption{
			internalshops.WithLogger(logging.ShopsLogger(c.loggerProvider)),
		}
		if suffix := c.Config.Tenancy.LocalSuffix; suffix != "" {
			shopOpts = append(shopOpts, internalshops.WithLocalSuffix(suffix))
		}
		c.shopSvc = internalshops.NewService(c.shopRepo, shopOpts...)
	}

	if c.pageSvc == nil {
		c.pageSvc = internalpages.NewService(c.pageRepo,
			internalpages.WithLogger(logging.PagesLogger(c.loggerProvider)),
		)
	}

	if c.addonSvc == nil {
		c.addonSvc = internaladdons.NewService(c.addonRepo,
			internaladdons.WithLogger(logging.AddonsLogger(c.loggerProvider)),
		)
	}

	if c.themeSvc == nil && c.Config.Features.Themes {
		c.themeSvc = internalthemes.NewService(c.themeLoader, c.pageRepo,
			internalthemes.WithLogger(logging.ThemesLogger(c.loggerProvider)),
		)
	}

	if c.navSvc == nil {
		c.navSvc = internalnavigation.NewService(c.linkRepo,
			internalnavigation.WithLogger(logging.NavigationLogger(c.loggerProvider)),
		)
	}

	if c.navRenderer == nil {
		c.navRenderer = internalnavigation.NewRenderer(c.linkRepo, c.collections,
			internalnavigation.WithRendererLogger(logging.NavigationLogger(c.loggerProvider)),
		)
	}

	if c.composerSvc == nil {
		c.composerSvc = internalrender.NewComposer(c.shopSvc, c.pageSvc, c.navRenderer,
			internalrender.WithLogger(logging.RenderLogger(c.loggerProvider)),
		)
	}
}

func (c *Container) configureCommands() {
	if !c.Config.Features.Commands && !c.Config.Commands.Enabled {
		return
	}

	if c.themeSvc != nil {
		c.applyThemeCmd = themescmd.NewApplyThemeHandler(c.themeSvc,
			commands.CommandLogger(c.loggerProvider, "themes"))
	}
	c.selectAddonCmd = addonscmd.NewSelectAddonHandler(c.addonSvc,
		commands.CommandLogger(c.loggerProvider, "addons"))
	c.purchaseAddonCmd = addonscmd.NewPurchaseAddonHandler(c.addonSvc,
		commands.CommandLogger(c.loggerProvider, "addons"))
}

// LoggerProvider exposes the configured logger provider. May be nil when the
// logger feature is disabled and no provider was injected.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// BunDB exposes the bound database, or nil in memory mode.
func (c *Container) BunDB() *bun.DB {
	return c.bunDB
}

// ShopService returns the configured tenant service.
func (c *Container) ShopService() shops.Service {
	return c.shopSvc
}

// PageService returns the configured page service.
func (c *Container) PageService() pages.Service {
	return c.pageSvc
}

// AddonService returns the configured addon registry.
func (c *Container) AddonService() addons.Service {
	return c.addonSvc
}

// ThemeService returns the configured theme applier, or nil when themes are
// disabled.
func (c *Container) ThemeService() themes.Service {
	return c.themeSvc
}

// NavigationService returns the configured navbar link manager.
func (c *Container) NavigationService() navigation.Service {
	return c.navSvc
}

// NavbarRenderer returns the configured navbar renderer.
func (c *Container) NavbarRenderer() navigation.Renderer {
	return c.navRenderer
}

// Composer returns the configured page composer.
func (c *Container) Composer() render.Service {
	return c.composerSvc
}

// ApplyThemeCommand returns the apply-theme command handler, or nil when the
// commands feature is disabled.
func (c *Container) ApplyThemeCommand() *themescmd.ApplyThemeHandler {
	return c.applyThemeCmd
}

// SelectAddonCommand returns the select-addon command handler, or nil when
// the commands feature is disabled.
func (c *Container) SelectAddonCommand() *addonscmd.SelectAddonHandler {
	return c.selectAddonCmd
}

// PurchaseAddonCommand returns the purchase-addon command handler, or nil
// when the commands feature is disabled.
func (c *Container) PurchaseAddonCommand() *addonscmd.PurchaseAddonHandler {
	return c.purchaseAddonCmd
}

// PageRepository exposes the page repository for theme application and tests.
func (c *Container) PageRepository() internalpages.Repository {
	return c.pageRepo
}

// AddonRepository exposes the addon repository for seeding helpers.
func (c *Container) AddonRepository() internaladdons.Repository {
	return c.addonRepo
}
