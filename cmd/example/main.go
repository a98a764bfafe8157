package main

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"path"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"

	"github.com/google/uuid"
	"github.com/linkbay/cms"
	"github.com/linkbay/cms/addons"
	"github.com/linkbay/cms/internal/di"
	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/shops"
	"github.com/linkbay/cms/themes"
)

//go:embed themes
var themeAssets embed.FS

const demoShop = "acme"

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dsn := flag.String("dsn", "file:linkbay.db?cache=shared&mode=rwc", "sqlite dsn")
	flag.Parse()

	ctx := context.Background()

	cfg := cms.DefaultConfig()
	cfg.Features.Logger = true
	cfg.Themes.DefaultTheme = "aurora"

	sqldb, err := sql.Open("sqlite3", *dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	db := di.NewBunDB(sqldb, cfg.Storage)

	if err := runMigrations(ctx, db); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	bundles, err := fs.Sub(themeAssets, "themes")
	if err != nil {
		log.Fatalf("theme assets: %v", err)
	}

	module, err := cms.New(cfg, di.WithBunDB(db), di.WithThemeFS(bundles))
	if err != nil {
		log.Fatalf("initialise cms: %v", err)
	}

	if err := seedDemoShop(ctx, module, cfg.Themes.DefaultTheme); err != nil {
		log.Fatalf("seed demo shop: %v", err)
	}

	mux := http.NewServeMux()
	if err := module.RegisterHTTP(mux); err != nil {
		log.Fatalf("register http: %v", err)
	}

	log.Printf("storefront listening on %s (shop %q, try http://%s.local%s/)", *addr, demoShop, demoShop, *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatalf("serve: %v", err)
	}
}

func runMigrations(ctx context.Context, db *bun.DB) error {
	const dir = "data/sql/migrations"
	migrations := cms.GetMigrationsFS()
	entries, err := migrations.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		script, err := migrations.ReadFile(path.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// seedDemoShop bootstraps a tenant reachable as <shop>.local plus localhost,
// applies the starter theme, and fills the addon catalog and navbar. Every
// step is idempotent so restarts converge on the same state.
func seedDemoShop(ctx context.Context, module *cms.Module, themeName string) error {
	domain := "localhost"
	if _, err := module.Shops().Create(ctx, shops.CreateShopRequest{
		ShopName: demoShop,
		ShopType: "store",
		Domain:   &domain,
		UserID:   uuid.New(),
	}); err != nil && !errors.Is(err, shops.ErrShopExists) {
		return fmt.Errorf("create shop: %w", err)
	}

	if err := module.SeedAddonCatalog(ctx, stockAddons()); err != nil {
		return fmt.Errorf("seed addon catalog: %w", err)
	}

	if _, err := module.Themes().Apply(ctx, themes.ApplyRequest{
		ThemeName: themeName,
		ShopName:  demoShop,
	}); err != nil {
		return fmt.Errorf("apply theme: %w", err)
	}

	existing, err := module.Navigation().ListLinks(ctx, demoShop)
	if err != nil {
		return fmt.Errorf("list navbar links: %w", err)
	}
	if len(existing) == 0 {
		if _, err := module.Navigation().ReplaceLinks(ctx, demoShop, []navigation.LinkInput{
			{LinkText: "Home", LinkURL: "home"},
			{LinkText: "About", LinkURL: "about"},
			{LinkText: "Collections", LinkURL: navigation.URLShowCollections},
			{LinkText: "Cart", LinkURL: navigation.URLCart},
		}); err != nil {
			return fmt.Errorf("seed navbar: %w", err)
		}
	}

	return nil
}

func stockAddons() []addons.RegisterAddonRequest {
	return []addons.RegisterAddonRequest{
		{Name: "aurora", Description: "Starter storefront theme", AddonType: addons.TypeTheme},
		{Name: "boreal", Description: "Dark storefront theme", Price: 19, AddonType: addons.TypeTheme},
		{Name: "newsletter", Description: "Email capture widget", Price: 9, AddonType: addons.TypePlugin},
		{Name: "seo-toolkit", Description: "Sitemap and metadata helpers", Price: 12, AddonType: addons.TypePlugin},
		{Name: "priority-support", Description: "Same-day support channel", Price: 29, AddonType: addons.TypeService},
	}
}
