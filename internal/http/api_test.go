package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"

	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/di"
	"github.com/linkbay/cms/internal/runtimeconfig"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/shops"
)

const testHost = "acme.local"

func storefrontThemeFS() fstest.MapFS {
	return fstest.MapFS{
		"aurora/theme.json": &fstest.MapFile{Data: []byte(`{
			"name": "aurora",
			"head": "<meta name=\"generator\" content=\"aurora\">",
			"pages": [
				{"slug": "home", "title": "Home", "content": "<h1>aurora home</h1>"},
				{"slug": "about", "title": "About", "content": "<p>about us</p>"},
				{"slug": "navbar", "title": "Navbar", "content": "<nav>{{links}}</nav>", "published": false}
			]
		}`)},
	}
}

func setupAPI(t *testing.T) (*http.ServeMux, *di.Container) {
	t.Helper()

	container, err := di.NewContainer(runtimeconfig.DefaultConfig(), di.WithThemeFS(storefrontThemeFS()))
	if err != nil {
		t.Fatalf("new container: %v", err)
	}

	ctx := context.Background()
	if _, err := container.ShopService().Create(ctx, shops.CreateShopRequest{
		ShopName: "acme",
		ShopType: "store",
		UserID:   uuid.New(),
	}); err != nil {
		t.Fatalf("create shop: %v", err)
	}

	api := NewAPI(
		WithShopService(container.ShopService()),
		WithPageService(container.PageService()),
		WithAddonService(container.AddonService()),
		WithThemeService(container.ThemeService()),
		WithNavigationService(container.NavigationService()),
		WithComposer(container.Composer()),
	)
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		t.Fatalf("register api: %v", err)
	}
	return mux, container
}

func doJSONRequest(t *testing.T, mux *http.ServeMux, method, host, path string, body any, wantStatus int) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, "http://"+host+path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != wantStatus {
		t.Fatalf("expected status %d got %d (%s)", wantStatus, rec.Code, rec.Body.String())
	}
	return rec
}

func decodeJSONBody(t *testing.T, rec *httptest.ResponseRecorder, target any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), target); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func decodeStatus(t *testing.T, rec *httptest.ResponseRecorder) statusResponse {
	t.Helper()
	var payload statusResponse
	decodeJSONBody(t, rec, &payload)
	return payload
}

func TestAPI_StorefrontRendersComposedPage(t *testing.T) {
	mux, _ := setupAPI(t)

	applyResp := doJSONRequest(t, mux, http.MethodPost, testHost, "/api/apply-theme",
		map[string]any{"theme_name": "aurora"}, http.StatusOK)
	if payload := decodeStatus(t, applyResp); payload.Status != statusSuccess {
		t.Fatalf("expected success applying theme, got %+v", payload)
	}

	saveResp := doJSONRequest(t, mux, http.MethodPost, testHost, "/api/save-navbar", map[string]any{
		"links": []map[string]any{
			{"link_text": "Home", "link_url": "home"},
			{"link_text": "About", "link_url": "about"},
		},
	}, http.StatusOK)
	if payload := decodeStatus(t, saveResp); payload.Status != statusSuccess {
		t.Fatalf("expected success saving navbar, got %+v", payload)
	}

	rec := doJSONRequest(t, mux, http.MethodGet, testHost, "/", nil, http.StatusOK)
	body := rec.Body.String()
	if !strings.Contains(body, "<h1>aurora home</h1>") {
		t.Fatalf("expected home content in body:\n%s", body)
	}
	if !strings.Contains(body, `<a href="/about">About</a>`) {
		t.Fatalf("expected expanded navbar link in body:\n%s", body)
	}
	if strings.Contains(body, "{{links}}") {
		t.Fatalf("placeholder should be expanded:\n%s", body)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("expected html content type, got %q", ct)
	}

	about := doJSONRequest(t, mux, http.MethodGet, testHost, "/about", nil, http.StatusOK)
	if !strings.Contains(about.Body.String(), "<p>about us</p>") {
		t.Fatalf("expected about content:\n%s", about.Body.String())
	}
}

func TestAPI_StorefrontNotFoundBodiesStayDistinct(t *testing.T) {
	mux, _ := setupAPI(t)
	doJSONRequest(t, mux, http.MethodPost, testHost, "/api/apply-theme",
		map[string]any{"theme_name": "aurora"}, http.StatusOK)

	unknownTenant := doJSONRequest(t, mux, http.MethodGet, "ghost.local", "/", nil, http.StatusNotFound)
	if !strings.Contains(unknownTenant.Body.String(), "shop not found") {
		t.Fatalf("expected shop not found body, got %q", unknownTenant.Body.String())
	}

	unknownPage := doJSONRequest(t, mux, http.MethodGet, testHost, "/missing", nil, http.StatusNotFound)
	if !strings.Contains(unknownPage.Body.String(), "page not found") {
		t.Fatalf("expected page not found body, got %q", unknownPage.Body.String())
	}
}

func TestAPI_AddonLifecycle(t *testing.T) {
	mux, container := setupAPI(t)

	ctx := context.Background()
	first, err := container.AddonService().RegisterAddon(ctx, addons.RegisterAddonRequest{
		Name:      "aurora-theme",
		AddonType: addons.TypeTheme,
	})
	if err != nil {
		t.Fatalf("register addon: %v", err)
	}
	second, err := container.AddonService().RegisterAddon(ctx, addons.RegisterAddonRequest{
		Name:      "boreal-theme",
		AddonType: addons.TypeTheme,
	})
	if err != nil {
		t.Fatalf("register addon: %v", err)
	}

	selectBody := map[string]any{"addon_id": first.ID, "addon_type": "theme"}
	if payload := decodeStatus(t, doJSONRequest(t, mux, http.MethodPost, testHost, "/api/select-addon", selectBody, http.StatusOK)); payload.Status != statusSuccess {
		t.Fatalf("expected success selecting, got %+v", payload)
	}

	purchase := map[string]any{"addon_id": first.ID, "addon_type": "theme"}
	if payload := decodeStatus(t, doJSONRequest(t, mux, http.MethodPost, testHost, "/api/purchase-addon", purchase, http.StatusOK)); payload.Status != statusSuccess {
		t.Fatalf("expected success purchasing, got %+v", payload)
	}

	// Purchased rows reject selection changes with a soft error payload.
	conflict := decodeStatus(t, doJSONRequest(t, mux, http.MethodPost, testHost, "/api/select-addon", selectBody, http.StatusOK))
	if conflict.Status != statusError || conflict.Message == "" {
		t.Fatalf("expected soft conflict payload, got %+v", conflict)
	}

	if payload := decodeStatus(t, doJSONRequest(t, mux, http.MethodPost, testHost, "/api/select-addon",
		map[string]any{"addon_id": second.ID, "addon_type": "theme"}, http.StatusOK)); payload.Status != statusSuccess {
		t.Fatalf("expected success selecting sibling, got %+v", payload)
	}

	listResp := doJSONRequest(t, mux, http.MethodGet, testHost, "/api/list-addons", nil, http.StatusOK)
	var list []*addons.AddonWithStatus
	decodeJSONBody(t, listResp, &list)
	if len(list) != 2 {
		t.Fatalf("expected 2 catalog entries got %d", len(list))
	}
	statuses := map[int64]addons.Status{}
	for _, entry := range list {
		statuses[entry.Addon.ID] = entry.Status
	}
	if statuses[first.ID] != addons.StatusPurchased {
		t.Fatalf("expected first addon purchased, got %q", statuses[first.ID])
	}
	if statuses[second.ID] != addons.StatusSelected {
		t.Fatalf("expected second addon selected, got %q", statuses[second.ID])
	}
}

func TestAPI_AddonSelectValidation(t *testing.T) {
	mux, _ := setupAPI(t)
	resp := doJSONRequest(t, mux, http.MethodPost, testHost, "/api/select-addon",
		map[string]any{"addon_id": 0, "addon_type": "theme"}, http.StatusBadRequest)
	if payload := decodeStatus(t, resp); payload.Status != statusError {
		t.Fatalf("expected error payload, got %+v", payload)
	}
}

func TestAPI_ApplyThemeUnknownBundle(t *testing.T) {
	mux, _ := setupAPI(t)
	doJSONRequest(t, mux, http.MethodPost, testHost, "/api/apply-theme",
		map[string]any{"theme_name": "nope"}, http.StatusNotFound)
}

func TestAPI_NavbarSaveAndList(t *testing.T) {
	mux, _ := setupAPI(t)

	doJSONRequest(t, mux, http.MethodPost, testHost, "/api/save-navbar", map[string]any{
		"links": []map[string]any{
			{"link_text": "Catalog", "link_url": "show_collections"},
			{"link_text": "Sale", "link_url": "sale"},
			{"link_text": "Shoes", "link_url": "shoes", "parent_index": 1},
		},
	}, http.StatusOK)

	listResp := doJSONRequest(t, mux, http.MethodGet, testHost, "/api/get-navbar-links", nil, http.StatusOK)
	var links []*navigation.Link
	decodeJSONBody(t, listResp, &links)
	if len(links) != 3 {
		t.Fatalf("expected 3 links got %d", len(links))
	}
	if links[0].LinkText != "Catalog" || links[1].LinkText != "Sale" || links[2].LinkText != "Shoes" {
		t.Fatalf("unexpected order: %q %q %q", links[0].LinkText, links[1].LinkText, links[2].LinkText)
	}
	if links[2].ParentID == nil || *links[2].ParentID != links[1].ID {
		t.Fatalf("expected Shoes to reference Sale as parent")
	}

	badParent := doJSONRequest(t, mux, http.MethodPost, testHost, "/api/save-navbar", map[string]any{
		"links": []map[string]any{
			{"link_text": "Orphan", "link_url": "orphan", "parent_index": 9},
		},
	}, http.StatusBadRequest)
	if payload := decodeStatus(t, badParent); payload.Status != statusError {
		t.Fatalf("expected error payload, got %+v", payload)
	}
}

func TestAPI_SaveWebSettings(t *testing.T) {
	mux, container := setupAPI(t)

	resp := doJSONRequest(t, mux, http.MethodPost, testHost, "/api/save-web-settings", map[string]any{
		"head":      "<meta name=\"robots\" content=\"index\">",
		"analytics": "UA-1",
	}, http.StatusOK)
	if payload := decodeStatus(t, resp); payload.Status != statusSuccess {
		t.Fatalf("expected success, got %+v", payload)
	}

	settings, err := container.PageService().GetWebSettings(context.Background(), "acme")
	if err != nil {
		t.Fatalf("get web settings: %v", err)
	}
	if settings.Head != "<meta name=\"robots\" content=\"index\">" || settings.Analytics != "UA-1" {
		t.Fatalf("unexpected settings: %+v", settings)
	}
}

func TestAPI_UnknownTenantOnAdminRoutes(t *testing.T) {
	mux, _ := setupAPI(t)
	resp := doJSONRequest(t, mux, http.MethodGet, "ghost.local", "/api/get-navbar-links", nil, http.StatusNotFound)
	if payload := decodeStatus(t, resp); payload.Status != statusError {
		t.Fatalf("expected error payload, got %+v", payload)
	}
}
