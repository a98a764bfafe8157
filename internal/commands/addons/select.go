package addonscmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/commands"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/pkg/interfaces"
)

const selectAddonMessageType = "linkbay.addons.select"

// SelectAddonCommand marks an addon as the shop's selection for its type.
type SelectAddonCommand struct {
	ShopName  string      `json:"shop_name"`
	AddonID   int64       `json:"addon_id"`
	AddonType addons.Type `json:"addon_type"`
}

// Type implements command.Message.
func (SelectAddonCommand) Type() string { return selectAddonMessageType }

// Validate ensures the command identifies the shop, the addon, and a known type.
func (m SelectAddonCommand) Validate() error {
	return validateStateCommand("linkbay.addons.select", m.ShopName, m.AddonID, m.AddonType)
}

// SelectAddonHandler drives the selection state machine via the addon service.
type SelectAddonHandler struct {
	inner *commands.Handler[SelectAddonCommand]
}

// NewSelectAddonHandler constructs a handler wired to the provided addon service.
func NewSelectAddonHandler(service addons.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SelectAddonCommand]) *SelectAddonHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SelectAddonCommand) error {
		return service.Select(ctx, addons.SelectRequest{
			ShopName:  msg.ShopName,
			AddonID:   msg.AddonID,
			AddonType: msg.AddonType,
		})
	}

	handlerOpts := []commands.HandlerOption[SelectAddonCommand]{
		commands.WithLogger[SelectAddonCommand](baseLogger),
		commands.WithOperation[SelectAddonCommand]("addons.select"),
		commands.WithMessageFields(func(msg SelectAddonCommand) map[string]any {
			return stateCommandFields(msg.ShopName, msg.AddonID, msg.AddonType)
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SelectAddonCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SelectAddonHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SelectAddonCommand].Execute.
func (h *SelectAddonHandler) Execute(ctx context.Context, msg SelectAddonCommand) error {
	return h.inner.Execute(ctx, msg)
}

func validateStateCommand(prefix, shopName string, addonID int64, addonType addons.Type) error {
	errs := validation.Errors{}
	if strings.TrimSpace(shopName) == "" {
		errs["shop_name"] = validation.NewError(prefix+".shop_name_required", "shop_name is required")
	}
	if addonID <= 0 {
		errs["addon_id"] = validation.NewError(prefix+".addon_id_invalid", "addon_id must be greater than zero")
	}
	if !addonType.Valid() {
		errs["addon_type"] = validation.NewError(prefix+".addon_type_invalid", "addon_type is not recognised")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func stateCommandFields(shopName string, addonID int64, addonType addons.Type) map[string]any {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(shopName); trimmed != "" {
		fields["shop_name"] = trimmed
	}
	if addonID > 0 {
		fields["addon_id"] = addonID
	}
	if addonType.Valid() {
		fields["addon_type"] = addonType.String()
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
