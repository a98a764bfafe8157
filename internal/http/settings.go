package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/linkbay/cms/pages"
)

type saveWebSettingsPayload struct {
	Head      string `json:"head"`
	Script    string `json:"script"`
	Foot      string `json:"foot"`
	ThemeName string `json:"theme_name"`
	Analytics string `json:"analytics"`
}

func (api *API) registerSettingsRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc("POST /api/save-web-settings", api.handleWebSettingsSave)
}

func (api *API) handleWebSettingsSave(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.pages == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "page service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var payload saveWebSettingsPayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, err.Error())
		return
	}
	req := pages.SaveWebSettingsRequest{
		ShopName:  shop.ShopName,
		Head:      payload.Head,
		Script:    payload.Script,
		Foot:      payload.Foot,
		ThemeName: payload.ThemeName,
		Analytics: payload.Analytics,
	}
	if _, err := api.pages.SaveWebSettings(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "web settings saved")
}
