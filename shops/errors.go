package shops

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrShopNameRequired = errors.New("shops: shop name is required")
	ErrShopNameInvalid  = errors.New("shops: shop name contains invalid characters")
	ErrShopExists       = errors.New("shops: shop already exists")
	ErrShopNotFound     = errors.New("shops: shop not found")
	ErrTenantNotFound   = errors.New("shops: no tenant matches host")
	ErrHostRequired     = errors.New("shops: host is required")
)

// ShopNotFoundError captures direct lookups that missed.
type ShopNotFoundError struct {
	Key string
}

func (e *ShopNotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.Key) == "" {
		return ErrShopNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrShopNotFound.Error(), e.Key)
}

func (e *ShopNotFoundError) Unwrap() error {
	return ErrShopNotFound
}

// TenantNotFoundError is the distinct miss surfaced when a Host header maps to
// no shop. It is not a generic 404: the raw host travels with the error so
// misconfigured DNS or subdomains can be diagnosed from logs.
type TenantNotFoundError struct {
	Host      string
	Candidate string
}

func (e *TenantNotFoundError) Error() string {
	if e == nil {
		return ErrTenantNotFound.Error()
	}
	host := strings.TrimSpace(e.Host)
	if host == "" {
		return ErrTenantNotFound.Error()
	}
	return fmt.Sprintf("%s: host=%s", ErrTenantNotFound.Error(), host)
}

func (e *TenantNotFoundError) Unwrap() error {
	return ErrTenantNotFound
}
