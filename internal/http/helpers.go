package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/shops"
	"github.com/linkbay/cms/themes"
)

const (
	statusSuccess = "success"
	statusError   = "error"
)

// statusResponse is the envelope every JSON endpoint answers with. The
// storefront admin scripts only branch on Status, so successes carry a short
// human message and failures carry the error text.
type statusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func decodeJSON(r *http.Request, target any) error {
	if r == nil || r.Body == nil {
		return io.EOF
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, statusResponse{Status: statusSuccess, Message: message})
}

func writeError(w http.ResponseWriter, err error) {
	status, payload := mapError(err)
	writeJSON(w, status, payload)
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, statusResponse{Status: statusError, Message: message})
}

func mapError(err error) (int, statusResponse) {
	if err == nil {
		return http.StatusInternalServerError, statusResponse{Status: statusError, Message: "unknown error"}
	}

	// Purchased addons rejecting selection changes is an expected outcome the
	// storefront surfaces inline, so it answers 200 with a soft error body.
	if errors.Is(err, addons.ErrStateConflict) {
		return http.StatusOK, statusResponse{Status: statusError, Message: err.Error()}
	}

	if errors.Is(err, shops.ErrTenantNotFound) ||
		errors.Is(err, shops.ErrShopNotFound) ||
		errors.Is(err, pages.ErrPageNotFound) ||
		errors.Is(err, themes.ErrBundleNotFound) ||
		errors.Is(err, addons.ErrAddonNotFound) {
		return http.StatusNotFound, statusResponse{Status: statusError, Message: err.Error()}
	}

	if errors.Is(err, themes.ErrBundleInvalid) || errors.Is(err, themes.ErrBundleNoHomePage) {
		return http.StatusUnprocessableEntity, statusResponse{Status: statusError, Message: err.Error()}
	}

	if errors.Is(err, addons.ErrShopNameRequired) ||
		errors.Is(err, addons.ErrAddonIDRequired) ||
		errors.Is(err, addons.ErrAddonTypeInvalid) ||
		errors.Is(err, themes.ErrThemeNameRequired) ||
		errors.Is(err, themes.ErrShopNameRequired) ||
		errors.Is(err, navigation.ErrLinkTextRequired) ||
		errors.Is(err, navigation.ErrLinkURLRequired) ||
		errors.Is(err, navigation.ErrParentIndex) ||
		errors.Is(err, navigation.ErrParentNested) ||
		errors.Is(err, pages.ErrShopNameRequired) {
		return http.StatusBadRequest, statusResponse{Status: statusError, Message: err.Error()}
	}

	return http.StatusInternalServerError, statusResponse{Status: statusError, Message: err.Error()}
}
