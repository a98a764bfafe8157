package addonscmd

import (
	"context"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/commands"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/pkg/interfaces"
)

const purchaseAddonMessageType = "linkbay.addons.purchase"

// PurchaseAddonCommand transitions an addon to the terminal purchased state.
type PurchaseAddonCommand struct {
	ShopName  string      `json:"shop_name"`
	AddonID   int64       `json:"addon_id"`
	AddonType addons.Type `json:"addon_type"`
}

// Type implements command.Message.
func (PurchaseAddonCommand) Type() string { return purchaseAddonMessageType }

// Validate ensures the command identifies the shop, the addon, and a known type.
func (m PurchaseAddonCommand) Validate() error {
	return validateStateCommand("linkbay.addons.purchase", m.ShopName, m.AddonID, m.AddonType)
}

// PurchaseAddonHandler records purchases via the addon service.
type PurchaseAddonHandler struct {
	inner *commands.Handler[PurchaseAddonCommand]
}

// NewPurchaseAddonHandler constructs a handler wired to the provided addon service.
func NewPurchaseAddonHandler(service addons.Service, logger interfaces.Logger, opts ...commands.HandlerOption[PurchaseAddonCommand]) *PurchaseAddonHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PurchaseAddonCommand) error {
		return service.Purchase(ctx, addons.PurchaseRequest{
			ShopName:  msg.ShopName,
			AddonID:   msg.AddonID,
			AddonType: msg.AddonType,
		})
	}

	handlerOpts := []commands.HandlerOption[PurchaseAddonCommand]{
		commands.WithLogger[PurchaseAddonCommand](baseLogger),
		commands.WithOperation[PurchaseAddonCommand]("addons.purchase"),
		commands.WithMessageFields(func(msg PurchaseAddonCommand) map[string]any {
			return stateCommandFields(msg.ShopName, msg.AddonID, msg.AddonType)
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PurchaseAddonCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PurchaseAddonHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PurchaseAddonCommand].Execute.
func (h *PurchaseAddonHandler) Execute(ctx context.Context, msg PurchaseAddonCommand) error {
	return h.inner.Execute(ctx, msg)
}
