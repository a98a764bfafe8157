package render

import (
	"context"
	"errors"
	"strings"

	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/pkg/interfaces"
	"github.com/linkbay/cms/render"
	"github.com/linkbay/cms/shops"
)

// ComposerOption configures composer behaviour.
type ComposerOption func(*composer)

// WithLogger injects the module logger. Defaults to a no-op logger.
func WithLogger(logger interfaces.Logger) ComposerOption {
	return func(c *composer) {
		if logger != nil {
			c.logger = logger
		}
	}
}

type composer struct {
	shops    shops.Service
	pages    pages.Service
	renderer navigation.Renderer
	logger   interfaces.Logger
}

// NewComposer constructs the page composer. Navbar and footer fragments are
// optional per shop; a missing fragment composes as the empty string.
func NewComposer(shopSvc shops.Service, pageSvc pages.Service, renderer navigation.Renderer, opts ...ComposerOption) render.Service {
	if shopSvc == nil {
		panic("render: shop service is required")
	}
	if pageSvc == nil {
		panic("render: page service is required")
	}
	if renderer == nil {
		panic("render: navbar renderer is required")
	}
	c := &composer{
		shops:    shopSvc,
		pages:    pageSvc,
		renderer: renderer,
		logger:   logging.NoOp(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *composer) RenderDynamicPage(ctx context.Context, host, slug string) (*render.Context, error) {
	shop, err := c.shops.Resolve(ctx, host)
	if err != nil {
		return nil, err
	}

	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		slug = pages.SlugHome
	}

	page, err := c.pages.GetBySlug(ctx, shop.ShopName, slug)
	if err != nil {
		return nil, err
	}

	out := &render.Context{
		ShopName:    shop.ShopName,
		Slug:        page.Slug,
		Language:    page.Language,
		Title:       page.Title,
		Description: page.Description,
		Keywords:    page.Keywords,
		Content:     page.Content,
		Styles:      page.Styles,
	}

	c.composeNavbar(ctx, shop.ShopName, out)
	c.composeFooter(ctx, shop.ShopName, out)

	settings, err := c.pages.GetWebSettings(ctx, shop.ShopName)
	if err != nil {
		return nil, err
	}
	out.Head = settings.Head
	out.Script = settings.Script
	out.Foot = settings.Foot
	out.ThemeName = settings.ThemeName

	return out, nil
}

// composeNavbar fills the navbar fragment. A shop without a navbar page is
// normal; any other failure degrades to an empty navbar rather than a 500.
func (c *composer) composeNavbar(ctx context.Context, shopName string, out *render.Context) {
	page, err := c.pages.GetBySlug(ctx, shopName, pages.SlugNavbar)
	if err != nil {
		if !errors.Is(err, pages.ErrPageNotFound) {
			c.logger.Warn("navbar page load failed", "shop_name", shopName, "error", err)
		}
		return
	}
	out.NavbarStyles = page.Styles

	rendered, err := c.renderer.Render(ctx, page.Content, shopName)
	if err != nil {
		c.logger.Warn("navbar render failed, serving raw navbar content",
			"shop_name", shopName,
			"error", err,
		)
		out.Navbar = page.Content
		return
	}
	out.Navbar = rendered
}

func (c *composer) composeFooter(ctx context.Context, shopName string, out *render.Context) {
	page, err := c.pages.GetBySlug(ctx, shopName, pages.SlugFooter)
	if err != nil {
		if !errors.Is(err, pages.ErrPageNotFound) {
			c.logger.Warn("footer page load failed", "shop_name", shopName, "error", err)
		}
		return
	}
	out.Footer = page.Content
	out.FooterStyles = page.Styles
}
