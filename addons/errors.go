package addons

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShopNameRequired  = errors.New("addons: shop name is required")
	ErrAddonIDRequired   = errors.New("addons: addon id is required")
	ErrAddonTypeInvalid  = errors.New("addons: addon type is invalid")
	ErrAddonNameRequired = errors.New("addons: addon name is required")
	ErrAddonNotFound     = errors.New("addons: addon not found")
	ErrStateConflict     = errors.New("addons: addon is purchased and cannot change selection state")
)

// StateConflictError reports an attempted select/deselect against a purchased
// row. It is an expected, recoverable condition surfaced as a soft failure,
// never a server error.
type StateConflictError struct {
	ShopName string
	AddonID  int64
	Status   Status
}

func (e *StateConflictError) Error() string {
	if e == nil {
		return ErrStateConflict.Error()
	}
	shop := strings.TrimSpace(e.ShopName)
	if shop == "" {
		return ErrStateConflict.Error()
	}
	return fmt.Sprintf("%s: shop=%s addon=%d", ErrStateConflict.Error(), shop, e.AddonID)
}

func (e *StateConflictError) Unwrap() error {
	return ErrStateConflict
}

// AddonNotFoundError reports a catalog miss.
type AddonNotFoundError struct {
	AddonID int64
}

func (e *AddonNotFoundError) Error() string {
	if e == nil {
		return ErrAddonNotFound.Error()
	}
	return fmt.Sprintf("%s: id=%d", ErrAddonNotFound.Error(), e.AddonID)
}

func (e *AddonNotFoundError) Unwrap() error {
	return ErrAddonNotFound
}
