// Package http provides the embeddable HTTP adapter for the storefront and
// the shop admin JSON endpoints.
//
// Routes mount on a caller-supplied mux:
//   - Storefront: GET /, GET /{slug}
//   - Addons: POST /api/select-addon, POST /api/purchase-addon, GET /api/list-addons
//   - Themes: POST /api/apply-theme
//   - Navbar: GET /api/get-navbar-links, POST /api/save-navbar
//   - Settings: POST /api/save-web-settings
//
// Every handler resolves the tenant from the request Host header. The layer
// carries no auth middleware; host applications mount their own.
package http
