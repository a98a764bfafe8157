package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/linkbay/cms/addons"
)

type addonStatePayload struct {
	AddonID   int64  `json:"addon_id"`
	AddonType string `json:"addon_type"`
}

func (api *API) registerAddonRoutes(mux *http.ServeMux) {
	if mux == nil {
		return
	}
	mux.HandleFunc("POST /api/select-addon", api.handleAddonSelect)
	mux.HandleFunc("POST /api/purchase-addon", api.handleAddonPurchase)
	mux.HandleFunc("GET /api/list-addons", api.handleAddonList)
}

func (api *API) handleAddonSelect(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.addons == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "addon service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var payload addonStatePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, err.Error())
		return
	}
	req := addons.SelectRequest{
		ShopName:  shop.ShopName,
		AddonID:   payload.AddonID,
		AddonType: addons.Type(payload.AddonType),
	}
	if err := api.addons.Select(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "addon selected")
}

func (api *API) handleAddonPurchase(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.addons == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "addon service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var payload addonStatePayload
	if err := decodeJSON(r, &payload); err != nil && !errors.Is(err, io.EOF) {
		writeBadRequest(w, err.Error())
		return
	}
	req := addons.PurchaseRequest{
		ShopName:  shop.ShopName,
		AddonID:   payload.AddonID,
		AddonType: addons.Type(payload.AddonType),
	}
	if err := api.addons.Purchase(r.Context(), req); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, "addon purchased")
}

func (api *API) handleAddonList(w http.ResponseWriter, r *http.Request) {
	if api == nil || api.addons == nil {
		writeJSON(w, http.StatusServiceUnavailable, statusResponse{Status: statusError, Message: "addon service unavailable"})
		return
	}
	shop, err := api.resolveTenant(r)
	if err != nil {
		writeError(w, err)
		return
	}
	list, err := api.addons.ListForShop(r.Context(), shop.ShopName)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}
