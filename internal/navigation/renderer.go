package navigation

import (
	"context"
	"html"
	"strings"

	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pkg/interfaces"
)

// linksPlaceholder is the single substitution point in a navbar template.
const linksPlaceholder = "{{links}}"

// iconClasses maps sentinel link URLs to navbar icon classes. Unknown URLs
// render as plain links.
var iconClasses = map[string]string{
	navigation.URLCart:    "navbar-icon-cart",
	navigation.URLAccount: "navbar-icon-account",
	navigation.URLSearch:  "navbar-icon-search",
}

// RendererOption configures renderer behaviour.
type RendererOption func(*renderer)

// WithRendererLogger injects the module logger. Defaults to a no-op logger.
func WithRendererLogger(logger interfaces.Logger) RendererOption {
	return func(r *renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type renderer struct {
	repo        Repository
	collections interfaces.CollectionSource
	logger      interfaces.Logger
}

// NewRenderer constructs the navbar renderer. The collection source may be
// nil, in which case show_collections links render without a submenu.
func NewRenderer(repo Repository, collections interfaces.CollectionSource, opts ...RendererOption) navigation.Renderer {
	if repo == nil {
		panic("navigation: repository is required")
	}
	r := &renderer{
		repo:        repo,
		collections: collections,
		logger:      logging.NoOp(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render expands the template's {{links}} placeholder with the shop's link
// markup. A template without the placeholder is returned unmodified so a
// malformed navbar page never takes the whole render down.
func (r *renderer) Render(ctx context.Context, templateHTML, shopName string) (string, error) {
	shopName = normalizeShopName(shopName)
	if shopName == "" {
		return "", navigation.ErrShopNameRequired
	}

	if !strings.Contains(templateHTML, linksPlaceholder) {
		r.logger.Warn("navbar template has no links placeholder, serving raw template",
			"shop_name", shopName,
		)
		return templateHTML, nil
	}

	links, err := r.repo.ListLinks(ctx, shopName)
	if err != nil {
		return "", err
	}

	markup := r.renderLinks(ctx, shopName, links)
	return strings.Replace(templateHTML, linksPlaceholder, markup, 1), nil
}

func (r *renderer) renderLinks(ctx context.Context, shopName string, links []*navigation.Link) string {
	children := make(map[string][]*navigation.Link)
	top := make([]*navigation.Link, 0, len(links))
	for _, link := range links {
		if link.ParentID != nil {
			key := link.ParentID.String()
			children[key] = append(children[key], link)
			continue
		}
		top = append(top, link)
	}

	var b strings.Builder
	b.WriteString(`<ul class="navbar-links">`)
	for _, link := range top {
		switch {
		case link.LinkURL == navigation.URLShowCollections:
			r.writeCollectionsDropdown(ctx, &b, shopName, link)
		case len(children[link.ID.String()]) > 0:
			writeDropdown(&b, link, children[link.ID.String()])
		default:
			writeLink(&b, link)
		}
	}
	b.WriteString(`</ul>`)
	return b.String()
}

func (r *renderer) writeCollectionsDropdown(ctx context.Context, b *strings.Builder, shopName string, link *navigation.Link) {
	var collections []interfaces.Collection
	if r.collections != nil {
		var err error
		collections, err = r.collections.ActiveCollections(ctx, shopName)
		if err != nil {
			r.logger.Warn("collection lookup failed, rendering navbar entry without submenu",
				"shop_name", shopName,
				"error", err,
			)
			collections = nil
		}
	}

	if len(collections) == 0 {
		b.WriteString(`<li><a href="/collections">`)
		b.WriteString(html.EscapeString(link.LinkText))
		b.WriteString(`</a></li>`)
		return
	}

	b.WriteString(`<li class="has-dropdown"><a href="/collections">`)
	b.WriteString(html.EscapeString(link.LinkText))
	b.WriteString(`</a><ul class="dropdown">`)
	for _, collection := range collections {
		b.WriteString(`<li><a href="/collections/`)
		b.WriteString(html.EscapeString(collection.Slug))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(collection.Name))
		b.WriteString(`</a></li>`)
	}
	b.WriteString(`</ul></li>`)
}

func writeDropdown(b *strings.Builder, parent *navigation.Link, children []*navigation.Link) {
	b.WriteString(`<li class="has-dropdown"><a href="`)
	b.WriteString(html.EscapeString(linkHref(parent.LinkURL)))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(parent.LinkText))
	b.WriteString(`</a><ul class="dropdown">`)
	for _, child := range children {
		writeLink(b, child)
	}
	b.WriteString(`</ul></li>`)
}

func writeLink(b *strings.Builder, link *navigation.Link) {
	href := linkHref(link.LinkURL)
	if icon, ok := iconClasses[link.LinkURL]; ok {
		b.WriteString(`<li><a class="`)
		b.WriteString(icon)
		b.WriteString(`" href="`)
		b.WriteString(html.EscapeString(href))
		b.WriteString(`">`)
		b.WriteString(html.EscapeString(link.LinkText))
		b.WriteString(`</a></li>`)
		return
	}
	b.WriteString(`<li><a href="`)
	b.WriteString(html.EscapeString(href))
	b.WriteString(`">`)
	b.WriteString(html.EscapeString(link.LinkText))
	b.WriteString(`</a></li>`)
}

// linkHref turns a stored link URL into an href. Absolute URLs pass through,
// everything else is treated as a site-relative slug.
func linkHref(linkURL string) string {
	if strings.Contains(linkURL, "://") || strings.HasPrefix(linkURL, "/") {
		return linkURL
	}
	return "/" + linkURL
}
