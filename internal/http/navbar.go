package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/linkbay/cms/navigation"
)

type saveNavbarPayload struct {
	Links []navigation.LinkInput `json:"links"`
}

func (api *API) registerNavbarRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc("GET /api/get-navbar-links", api.handleNavbarList)
	mux.HandleFunc("POST /api/save-navbar", api.handleNavbarSave)
}

func (api *API) handleNavbarList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.navigation == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "navigation service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	links, err := api.navigation.ListLinks(r.Context(), shop.ShopName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, links)
}

func (api *API) handleNavbarSave(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.navigation == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "navigation service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var payload saveNavbarPayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, err.Error())
		return
	}
	if _, err := api.navigation.ReplaceLinks(r.Context(), shop.ShopName, payload.Links); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "navbar saved")
}
