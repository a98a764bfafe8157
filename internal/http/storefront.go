package http

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/render"
	"github.com/linkbay/cms/shops"
)

// storefrontTemplate assembles the final document around the composed
// fragments. Content, navbar, and footer arrive as trusted HTML produced by
// the theme pipeline, so they bypass contextual escaping.
var storefrontTemplate = template.Must(template.New("storefront").Parse(`<!DOCTYPE html>
<html lang="{{.Language}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta name="description" content="{{.Description}}">
<meta name="keywords" content="{{.Keywords}}">
{{.Head}}
<style>{{.NavbarStyles}}{{.Styles}}{{.FooterStyles}}</style>
</head>
<body>
{{.Navbar}}
<main>
{{.Content}}
</main>
{{.Footer}}
{{.Script}}
{{.Foot}}
</body>
</html>
`))

type storefrontView struct {
	Language     string
	Title        string
	Description  string
	Keywords     string
	Head         template.HTML
	Styles       template.CSS
	NavbarStyles template.CSS
	FooterStyles template.CSS
	Navbar       template.HTML
	Content      template.HTML
	Footer       template.HTML
	Script       template.HTML
	Foot         template.HTML
}

func newStorefrontView(pageCtx *render.Context) storefrontView {
	return storefrontView{
		Language:     pageCtx.Language,
		Title:        pageCtx.Title,
		Description:  pageCtx.Description,
		Keywords:     pageCtx.Keywords,
		Head:         template.HTML(pageCtx.Head),
		Styles:       template.CSS(pageCtx.Styles),
		NavbarStyles: template.CSS(pageCtx.NavbarStyles),
		FooterStyles: template.CSS(pageCtx.FooterStyles),
		Navbar:       template.HTML(pageCtx.Navbar),
		Content:      template.HTML(pageCtx.Content),
		Footer:       template.HTML(pageCtx.Footer),
		Script:       template.HTML(pageCtx.Script),
		Foot:         template.HTML(pageCtx.Foot),
	}
}

func (api *API) registerStorefrontRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET /{$}", api.handleStorefront)
	mux.HandleFunc("GET /{slug}", api.handleStorefront)
}

func (api *API) handleStorefront(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.composer == nil {
		http.Error(w, "storefront unavailable", http.StatusServiceUnavailable)
		return
	}

	slug := r.PathValue("slug")
	pageCtx, err := api.composer.RenderDynamicPage(r.Context(), r.Host, slug)
	if err != nil {
		// Unknown tenant and unknown page both 404, with distinct bodies so
		// operators can tell a DNS misconfiguration from a missing page.
		switch {
		case errors.Is(err, shops.ErrTenantNotFound):
			api.logger.Warn("storefront: unknown tenant", "host", r.Host)
			http.Error(w, "shop not found", http.StatusNotFound)
		case errors.Is(err, pages.ErrPageNotFound):
			api.logger.Warn("storefront: unknown page", "host", r.Host, "slug", slug)
			http.Error(w, "page not found", http.StatusNotFound)
		default:
			api.logger.Error("storefront: render failed", "host", r.Host, "slug", slug, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := storefrontTemplate.Execute(w, newStorefrontView(pageCtx)); err != nil {
		api.logger.Error("storefront: template execution failed", "host", r.Host, "slug", slug, "error", err)
	}
}
