package themes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrThemeNameRequired = errors.New("themes: theme name is required")
	ErrShopNameRequired  = errors.New("themes: shop name is required")
	ErrBundleNotFound    = errors.New("themes: theme bundle not found")
	ErrBundleInvalid     = errors.New("themes: theme bundle is invalid")
	ErrBundleNoHomePage  = errors.New("themes: theme bundle must contain a home page")
	ErrApplyFailed       = errors.New("themes: theme application failed")
)

// BundleError reports a missing or malformed bundle, carrying the theme name
// for logs.
type BundleError struct {
	ThemeName string
	Reason    string
	Cause     error
}

func (e *BundleError) Error() string {
	if e == nil {
		return ErrBundleInvalid.Error()
	}
	name := strings.TrimSpace(e.ThemeName)
	reason := strings.TrimSpace(e.Reason)
	switch {
	case name != "" && reason != "":
		return fmt.Sprintf("%s: theme=%s %s", ErrBundleInvalid.Error(), name, reason)
	case name != "":
		return fmt.Sprintf("%s: theme=%s", ErrBundleInvalid.Error(), name)
	default:
		return ErrBundleInvalid.Error()
	}
}

func (e *BundleError) Unwrap() error {
	if e != nil && e.Cause != nil {
		return e.Cause
	}
	return ErrBundleInvalid
}
