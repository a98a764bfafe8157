package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/linkbay/cms/themes"
)

type applyThemePayload struct {
	ThemeName string `json:"theme_name"`
}

func (api *API) registerThemeRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc("POST /api/apply-theme", api.handleThemeApply)
	mux.HandleFunc("GET /api/list-themes", api.handleThemeList)
}

func (api *API) handleThemeApply(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.themes == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "theme service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var payload applyThemePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, err.Error())
		return
	}
	result, err := api.themes.Apply(r.Context(), themes.ApplyRequest{
		ThemeName: payload.ThemeName,
		ShopName:  shop.ShopName,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	api.logger.Info("theme applied",
		"shop_name", result.ShopName,
		"theme_name", result.ThemeName,
		"pages_created", result.PagesCreated,
		"pages_updated", result.PagesUpdated,
	)
	writeSuccess(w, "theme applied")
}

func (api *API) handleThemeList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.themes == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "theme service unavailable"})
		return
	}
	names, err := api.themes.ListAvailable(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, names)
}
