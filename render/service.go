package render

import "context"

// Service composes dynamic pages. The two miss conditions stay distinct:
// an unknown tenant unwraps to shops.ErrTenantNotFound, an unknown slug on a
// valid tenant unwraps to pages.ErrPageNotFound.
type Service interface {
	RenderDynamicPage(ctx context.Context, host, slug string) (*Context, error)
}
