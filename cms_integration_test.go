package cms_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	"github.com/linkbay/cms"
	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/di"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/pkg/testsupport"
	"github.com/linkbay/cms/render"
	"github.com/linkbay/cms/shops"
	"github.com/linkbay/cms/themes"
)

func newBunDB(t *testing.T) *bun.DB {
	t.Helper()
	sqlDB, err := testsupport.NewSQLiteMemoryDB()
	if err != nil {
		t.Fatalf("new sqlite db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	bunDB := bun.NewDB(sqlDB, sqlitedialect.New())
	bunDB.SetMaxOpenConns(1)
	registerModels(t, bunDB)
	return bunDB
}

func registerModels(t *testing.T, db *bun.DB) {
	t.Helper()
	ctx := context.Background()
	models := []any{
		(*shops.Shop)(nil),
		(*pages.Page)(nil),
		(*pages.WebSettings)(nil),
		(*addons.Addon)(nil),
		(*addons.ShopAddon)(nil),
		(*navigation.Link)(nil),
	}
	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			t.Fatalf("create table %T: %v", model, err)
		}
	}
}

func integrationThemeFS() fstest.MapFS {
	return fstest.MapFS{
		"aurora/theme.json": &fstest.MapFile{Data: []byte(`{
			"name": "aurora",
			"head": "<meta name=\"generator\" content=\"aurora\">",
			"foot": "<div id=\"foot\"></div>",
			"pages": [
				{"slug": "home", "title": "Home", "content": "<h1>aurora home</h1>", "description": "landing"},
				{"slug": "about", "title": "About", "content": "<p>about</p>"},
				{"slug": "navbar", "title": "Navbar", "content": "<nav>{{links}}</nav>", "published": false},
				{"slug": "footer", "title": "Footer", "content": "<footer>bye</footer>", "published": false}
			]
		}`)},
	}
}

func newModuleWithBun(t *testing.T) (*cms.Module, *bun.DB) {
	t.Helper()
	bunDB := newBunDB(t)

	cfg := cms.DefaultConfig()
	module, err := cms.New(cfg, di.WithBunDB(bunDB), di.WithThemeFS(integrationThemeFS()))
	if err != nil {
		t.Fatalf("new cms module: %v", err)
	}
	return module, bunDB
}

func TestModule_ThemeApplyAndComposeWithBun(t *testing.T) {
	ctx := context.Background()
	module, _ := newModuleWithBun(t)

	if _, err := module.Shops().Create(ctx, shops.CreateShopRequest{
		ShopName: "acme",
		ShopType: "store",
		UserID:   uuid.New(),
	}); err != nil {
		t.Fatalf("create shop: %v", err)
	}

	result, err := module.Themes().Apply(ctx, themes.ApplyRequest{ThemeName: "aurora", ShopName: "acme"})
	if err != nil {
		t.Fatalf("apply theme: %v", err)
	}
	if result.PagesCreated != 4 || result.PagesUpdated != 0 {
		t.Fatalf("first apply created=%d updated=%d, want 4/0", result.PagesCreated, result.PagesUpdated)
	}

	// SEO edits survive a re-apply; content converges back to the bundle.
	home, err := module.Pages().GetBySlug(ctx, "acme", "home")
	if err != nil {
		t.Fatalf("get home: %v", err)
	}
	if _, err := module.Pages().UpdateSEO(ctx, pages.UpdateSEORequest{
		PageID:      home.ID,
		Title:       "Custom Home",
		Description: "hand tuned",
		Keywords:    home.Keywords,
	}); err != nil {
		t.Fatalf("update seo: %v", err)
	}

	again, err := module.Themes().Apply(ctx, themes.ApplyRequest{ThemeName: "aurora", ShopName: "acme"})
	if err != nil {
		t.Fatalf("re-apply theme: %v", err)
	}
	if again.PagesCreated != 0 || again.PagesUpdated != 4 {
		t.Fatalf("second apply created=%d updated=%d, want 0/4", again.PagesCreated, again.PagesUpdated)
	}

	home, err = module.Pages().GetBySlug(ctx, "acme", "home")
	if err != nil {
		t.Fatalf("get home after re-apply: %v", err)
	}
	if home.Title != "Custom Home" || home.Description != "hand tuned" {
		t.Fatalf("SEO fields should survive re-apply, got title=%q description=%q", home.Title, home.Description)
	}
	if home.Content != "<h1>aurora home</h1>" {
		t.Fatalf("content should come from the bundle, got %q", home.Content)
	}

	if _, err := module.Navigation().ReplaceLinks(ctx, "acme", []navigation.LinkInput{
		{LinkText: "Home", LinkURL: "home"},
		{LinkText: "About", LinkURL: "about"},
	}); err != nil {
		t.Fatalf("save navbar: %v", err)
	}

	out, err := module.Composer().RenderDynamicPage(ctx, "acme.local", "")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out.Content != "<h1>aurora home</h1>" {
		t.Fatalf("unexpected content %q", out.Content)
	}
	if !strings.Contains(out.Navbar, `<a href="/about">About</a>`) {
		t.Fatalf("navbar should expand links, got %q", out.Navbar)
	}
	if out.Footer != "<footer>bye</footer>" {
		t.Fatalf("unexpected footer %q", out.Footer)
	}
	if out.ThemeName != "aurora" || out.Head == "" || out.Foot == "" {
		t.Fatalf("web settings missing from context: %+v", out)
	}
}

func TestModule_AddonStateMachineWithBun(t *testing.T) {
	ctx := context.Background()
	module, _ := newModuleWithBun(t)

	if _, err := module.Shops().Create(ctx, shops.CreateShopRequest{
		ShopName: "blossom",
		ShopType: "store",
		UserID:   uuid.New(),
	}); err != nil {
		t.Fatalf("create shop: %v", err)
	}

	if err := module.SeedAddonCatalog(ctx, []addons.RegisterAddonRequest{
		{Name: "aurora", AddonType: addons.TypeTheme},
		{Name: "boreal", Price: 19, AddonType: addons.TypeTheme},
		{Name: "newsletter", Price: 9, AddonType: addons.TypePlugin},
	}); err != nil {
		t.Fatalf("seed catalog: %v", err)
	}
	// Seeding again must be a no-op.
	if err := module.SeedAddonCatalog(ctx, []addons.RegisterAddonRequest{
		{Name: "aurora", AddonType: addons.TypeTheme},
	}); err != nil {
		t.Fatalf("re-seed catalog: %v", err)
	}

	catalog, err := module.Addons().ListForShop(ctx, "blossom")
	if err != nil {
		t.Fatalf("list addons: %v", err)
	}
	if len(catalog) != 3 {
		t.Fatalf("expected 3 catalog entries got %d", len(catalog))
	}
	byName := map[string]int64{}
	for _, entry := range catalog {
		byName[entry.Addon.Name] = entry.Addon.ID
	}

	sel := func(id int64) error {
		return module.Addons().Select(ctx, addons.SelectRequest{
			ShopName: "blossom", AddonID: id, AddonType: addons.TypeTheme,
		})
	}

	if err := sel(byName["aurora"]); err != nil {
		t.Fatalf("select aurora: %v", err)
	}
	if err := sel(byName["boreal"]); err != nil {
		t.Fatalf("select boreal: %v", err)
	}

	status, err := module.Addons().Status(ctx, "blossom", byName["aurora"])
	if err != nil {
		t.Fatalf("status aurora: %v", err)
	}
	if status != addons.StatusDeselected {
		t.Fatalf("aurora should be deselected after sibling select, got %q", status)
	}

	if err := module.Addons().Purchase(ctx, addons.PurchaseRequest{
		ShopName: "blossom", AddonID: byName["boreal"], AddonType: addons.TypeTheme,
	}); err != nil {
		t.Fatalf("purchase boreal: %v", err)
	}

	err = sel(byName["boreal"])
	if !errors.Is(err, addons.ErrStateConflict) {
		t.Fatalf("selecting purchased addon: err = %v, want ErrStateConflict", err)
	}
	var conflict *addons.StateConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected *StateConflictError, got %T", err)
	}

	// The conflict must not disturb stored state.
	status, err = module.Addons().Status(ctx, "blossom", byName["boreal"])
	if err != nil {
		t.Fatalf("status boreal: %v", err)
	}
	if status != addons.StatusPurchased {
		t.Fatalf("boreal should stay purchased, got %q", status)
	}
}

func TestModule_HTTPSurfaceWithBun(t *testing.T) {
	ctx := context.Background()
	module, _ := newModuleWithBun(t)

	if _, err := module.Shops().Create(ctx, shops.CreateShopRequest{
		ShopName: "corsair",
		ShopType: "store",
		UserID:   uuid.New(),
	}); err != nil {
		t.Fatalf("create shop: %v", err)
	}
	if _, err := module.Themes().Apply(ctx, themes.ApplyRequest{ThemeName: "aurora", ShopName: "corsair"}); err != nil {
		t.Fatalf("apply theme: %v", err)
	}

	mux := http.NewServeMux()
	if err := module.RegisterHTTP(mux); err != nil {
		t.Fatalf("register http: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "http://corsair.local/", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("storefront status = %d (%s)", rec.Code, rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), "<h1>aurora home</h1>") {
		t.Fatalf("expected home content in body:\n%s", rec.Body.String())
	}

	miss := httptest.NewRequest(http.MethodGet, "http://ghost.local/", nil)
	missRec := httptest.NewRecorder()
	mux.ServeHTTP(missRec, miss)
	if missRec.Code != http.StatusNotFound {
		t.Fatalf("unknown tenant status = %d", missRec.Code)
	}
}

func TestModule_ComposerErrorTaxonomyWithBun(t *testing.T) {
	ctx := context.Background()
	module, _ := newModuleWithBun(t)

	if _, err := module.Shops().Create(ctx, shops.CreateShopRequest{
		ShopName: "delta",
		ShopType: "store",
		UserID:   uuid.New(),
	}); err != nil {
		t.Fatalf("create shop: %v", err)
	}
	if _, err := module.Themes().Apply(ctx, themes.ApplyRequest{ThemeName: "aurora", ShopName: "delta"}); err != nil {
		t.Fatalf("apply theme: %v", err)
	}

	var composer render.Service = module.Composer()

	if _, err := composer.RenderDynamicPage(ctx, "ghost.local", ""); !errors.Is(err, shops.ErrTenantNotFound) {
		t.Fatalf("unknown tenant: err = %v, want ErrTenantNotFound", err)
	}
	if _, err := composer.RenderDynamicPage(ctx, "delta.local", "missing"); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("unknown page: err = %v, want ErrPageNotFound", err)
	}
}
