package navigation

import "errors"

var (
	ErrShopNameRequired = errors.New("navigation: shop name is required")
	ErrLinkTextRequired = errors.New("navigation: link text is required")
	ErrLinkURLRequired  = errors.New("navigation: link url is required")
	ErrParentIndex      = errors.New("navigation: parent index out of range")
	ErrParentNested     = errors.New("navigation: parent link cannot itself have a parent")
)
