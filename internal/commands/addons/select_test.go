package addonscmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/linkbay/cms/addons"
	internaladdons "github.com/linkbay/cms/internal/addons"
)

func newAddonFixture(t *testing.T) (addons.Service, *addons.Addon) {
	t.Helper()
	svc := internaladdons.NewService(internaladdons.NewMemoryAddonRepository())
	entry, err := svc.RegisterAddon(context.Background(), addons.RegisterAddonRequest{
		Name:      "Aurora",
		AddonType: addons.TypeTheme,
	})
	if err != nil {
		t.Fatalf("register addon: %v", err)
	}
	return svc, entry
}

func TestSelectAddonCommandExecutes(t *testing.T) {
	svc, entry := newAddonFixture(t)
	handler := NewSelectAddonHandler(svc, nil)

	err := handler.Execute(context.Background(), SelectAddonCommand{
		ShopName:  "acme",
		AddonID:   entry.ID,
		AddonType: addons.TypeTheme,
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}

	status, err := svc.Status(context.Background(), "acme", entry.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status != addons.StatusSelected {
		t.Fatalf("status = %q, want selected", status)
	}
}

func TestSelectAddonCommandValidation(t *testing.T) {
	svc, _ := newAddonFixture(t)
	handler := NewSelectAddonHandler(svc, nil)

	err := handler.Execute(context.Background(), SelectAddonCommand{AddonType: addons.TypeTheme})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
}

func TestSelectAddonCommandSurfacesStateConflict(t *testing.T) {
	svc, entry := newAddonFixture(t)
	selectHandler := NewSelectAddonHandler(svc, nil)
	purchaseHandler := NewPurchaseAddonHandler(svc, nil)

	if err := purchaseHandler.Execute(context.Background(), PurchaseAddonCommand{
		ShopName:  "acme",
		AddonID:   entry.ID,
		AddonType: addons.TypeTheme,
	}); err != nil {
		t.Fatalf("purchase: %v", err)
	}

	err := selectHandler.Execute(context.Background(), SelectAddonCommand{
		ShopName:  "acme",
		AddonID:   entry.ID,
		AddonType: addons.TypeTheme,
	})
	if !errors.Is(err, addons.ErrStateConflict) {
		t.Fatalf("err = %v, want ErrStateConflict in chain", err)
	}
}
