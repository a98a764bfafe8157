package pages

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShopNameRequired = errors.New("pages: shop name is required")
	ErrSlugRequired     = errors.New("pages: slug is required")
	ErrSlugInvalid      = errors.New("pages: slug contains invalid characters")
	ErrTitleRequired    = errors.New("pages: title is required")
	ErrPageExists       = errors.New("pages: page already exists for shop and slug")
	ErrPageNotFound     = errors.New("pages: page not found")
	ErrPageIDRequired   = errors.New("pages: page id required")
)

// PageNotFoundError reports a miss for a (shop, slug) or id lookup. The shop
// always travels with the error so a page miss on a valid tenant stays
// distinguishable from a tenant miss.
type PageNotFoundError struct {
	ShopName string
	Key      string
}

func (e *PageNotFoundError) Error() string {
	if e == nil {
		return ErrPageNotFound.Error()
	}
	key := strings.TrimSpace(e.Key)
	shop := strings.TrimSpace(e.ShopName)
	switch {
	case key != "" && shop != "":
		return fmt.Sprintf("%s: shop=%s key=%s", ErrPageNotFound.Error(), shop, key)
	case key != "":
		return fmt.Sprintf("%s: key=%s", ErrPageNotFound.Error(), key)
	default:
		return ErrPageNotFound.Error()
	}
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}
