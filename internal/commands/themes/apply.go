package themescmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/linkbay/cms/internal/commands"
	"github.com/linkbay/cms/internal/logging"
	"github.com/linkbay/cms/pkg/interfaces"
	"github.com/linkbay/cms/themes"
)

const applyThemeMessageType = "linkbay.themes.apply"

// ApplyThemeCommand requests that a theme bundle be materialized into a
// shop's page store.
type ApplyThemeCommand struct {
	ThemeName string `json:"theme_name"`
	ShopName  string `json:"shop_name"`
}

// Type implements command.Message.
func (ApplyThemeCommand) Type() string { return applyThemeMessageType }

// Validate ensures the command carries both identifiers before reaching handlers.
func (m ApplyThemeCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.ThemeName) == "" {
		errs["theme_name"] = validation.NewError("linkbay.themes.apply.theme_name_required", "theme_name is required")
	}
	if strings.TrimSpace(m.ShopName) == "" {
		errs["shop_name"] = validation.NewError("linkbay.themes.apply.shop_name_required", "shop_name is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyThemeHandler applies bundles via the theme service using the shared
// command handler foundation.
type ApplyThemeHandler struct {
	inner *commands.Handler[ApplyThemeCommand]
}

// NewApplyThemeHandler constructs a handler wired to the provided theme service.
func NewApplyThemeHandler(service themes.Service, logger interfaces.Logger, opts ...commands.HandlerOption[ApplyThemeCommand]) *ApplyThemeHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ApplyThemeCommand) error {
		_, err := service.Apply(ctx, themes.ApplyRequest{
			ThemeName: msg.ThemeName,
			ShopName:  msg.ShopName,
		})
		return err
	}

	handlerOpts := []commands.HandlerOption[ApplyThemeCommand]{
		commands.WithLogger[ApplyThemeCommand](baseLogger),
		commands.WithOperation[ApplyThemeCommand]("themes.apply"),
		commands.WithMessageFields(func(msg ApplyThemeCommand) map[string]any {
			fields := map[string]any{}
			if trimmed := strings.TrimSpace(msg.ThemeName); trimmed != "" {
				fields["theme_name"] = trimmed
			}
			if trimmed := strings.TrimSpace(msg.ShopName); trimmed != "" {
				fields["shop_name"] = trimmed
			}
			if len(fields) == 0 {
				return nil
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ApplyThemeCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ApplyThemeHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ApplyThemeCommand].Execute.
func (h *ApplyThemeHandler) Execute(ctx context.Context, msg ApplyThemeCommand) error {
	return h.inner.Execute(ctx, msg)
}
