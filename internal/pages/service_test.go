package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/linkbay/cms/pages"
)

func TestServiceCreateAndGetBySlug(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository(), WithNow(fixedClock(t)))

	created, err := svc.Create(ctx, pages.CreatePageRequest{
		ShopName:  "acme",
		Slug:      "home",
		Title:     "Welcome",
		Content:   "<h1>Welcome to Acme</h1>",
		Published: true,
	})
	if err != nil {
		t.Fatalf("create page: %v", err)
	}
	if created.Language != pages.DefaultLanguage {
		t.Fatalf("expected default language, got %q", created.Language)
	}

	got, err := svc.GetBySlug(ctx, "acme", "home")
	if err != nil {
		t.Fatalf("get by slug: %v", err)
	}
	if got.ID != created.ID {
		t.Fatalf("expected page %s, got %s", created.ID, got.ID)
	}
}

func TestServiceTenantIsolation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	for _, shop := range []string{"acme", "globex"} {
		if _, err := svc.Create(ctx, pages.CreatePageRequest{
			ShopName:  shop,
			Slug:      "home",
			Title:     "Home for " + shop,
			Published: true,
		}); err != nil {
			t.Fatalf("create home for %s: %v", shop, err)
		}
	}

	acme, err := svc.GetBySlug(ctx, "acme", "home")
	if err != nil {
		t.Fatalf("get acme home: %v", err)
	}
	if acme.ShopName != "acme" {
		t.Fatalf("cross-tenant read: got shop %q", acme.ShopName)
	}

	globex, err := svc.GetBySlug(ctx, "globex", "home")
	if err != nil {
		t.Fatalf("get globex home: %v", err)
	}
	if globex.ShopName != "globex" {
		t.Fatalf("cross-tenant read: got shop %q", globex.ShopName)
	}
	if acme.ID == globex.ID {
		t.Fatal("both tenants share one page record")
	}
}

func TestServiceGetBySlugLanguageFallback(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	if _, err := svc.Create(ctx, pages.CreatePageRequest{
		ShopName: "acme",
		Slug:     "about",
		Title:    "About",
	}); err != nil {
		t.Fatalf("create page: %v", err)
	}

	got, err := svc.GetBySlug(ctx, "acme", "about", "it")
	if err != nil {
		t.Fatalf("expected fallback to default language: %v", err)
	}
	if got.Language != pages.DefaultLanguage {
		t.Fatalf("expected %q, got %q", pages.DefaultLanguage, got.Language)
	}
}

func TestServiceListPublishedExcludesFragments(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	slugs := []string{"home", "about", pages.SlugNavbar, pages.SlugFooter}
	for _, slug := range slugs {
		if _, err := svc.Create(ctx, pages.CreatePageRequest{
			ShopName:  "acme",
			Slug:      slug,
			Title:     slug,
			Published: true,
		}); err != nil {
			t.Fatalf("create %s: %v", slug, err)
		}
	}
	if _, err := svc.Create(ctx, pages.CreatePageRequest{
		ShopName: "acme",
		Slug:     "draft",
		Title:    "Draft",
	}); err != nil {
		t.Fatalf("create draft: %v", err)
	}

	listed, err := svc.ListPublished(ctx, "acme")
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 public pages, got %d", len(listed))
	}
	for _, page := range listed {
		if page.Slug == pages.SlugNavbar || page.Slug == pages.SlugFooter {
			t.Fatalf("internal slug %q leaked into public listing", page.Slug)
		}
		if page.Slug == "draft" {
			t.Fatal("unpublished page leaked into public listing")
		}
	}
}

func TestServiceUpdateContentPreservesSEO(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	created, err := svc.Create(ctx, pages.CreatePageRequest{
		ShopName:    "acme",
		Slug:        "home",
		Title:       "Welcome",
		Description: "Acme storefront",
		Keywords:    "acme,store",
		Content:     "old",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateContent(ctx, pages.UpdateContentRequest{
		PageID:  created.ID,
		Content: "new content",
	})
	if err != nil {
		t.Fatalf("update content: %v", err)
	}
	if updated.Content != "new content" {
		t.Fatalf("content not updated: %q", updated.Content)
	}
	if updated.Description != "Acme storefront" || updated.Keywords != "acme,store" {
		t.Fatal("SEO fields must survive a content update")
	}
	if updated.Styles != "" {
		t.Fatalf("styles should be untouched when nil, got %q", updated.Styles)
	}
}

func TestServiceUpdateSEONormalizesSlug(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	created, err := svc.Create(ctx, pages.CreatePageRequest{
		ShopName: "acme",
		Slug:     "home",
		Title:    "Welcome",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateSEO(ctx, pages.UpdateSEORequest{
		PageID: created.ID,
		Title:  "Landing",
		Slug:   "Landing Page!",
	})
	if err != nil {
		t.Fatalf("update seo: %v", err)
	}
	if updated.Slug != "landing-page" {
		t.Fatalf("slug not normalized: %q", updated.Slug)
	}

	if _, err := svc.GetBySlug(ctx, "acme", "landing-page"); err != nil {
		t.Fatalf("renamed slug not resolvable: %v", err)
	}
}

func TestServiceWebSettingsDefaults(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	settings, err := svc.GetWebSettings(ctx, "acme")
	if err != nil {
		t.Fatalf("absent settings must not error: %v", err)
	}
	if settings.Head != "" || settings.Foot != "" || settings.Script != "" || settings.ThemeName != "" {
		t.Fatalf("expected empty fragments, got %+v", settings)
	}

	if _, err := svc.SaveWebSettings(ctx, pages.SaveWebSettingsRequest{
		ShopName:  "acme",
		Head:      "<meta charset=\"utf-8\">",
		ThemeName: "aurora",
	}); err != nil {
		t.Fatalf("save settings: %v", err)
	}

	saved, err := svc.GetWebSettings(ctx, "acme")
	if err != nil {
		t.Fatalf("get settings: %v", err)
	}
	if saved.ThemeName != "aurora" {
		t.Fatalf("theme name not persisted: %q", saved.ThemeName)
	}
}

func TestServiceDeleteScopedByShop(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryPageRepository())

	created, err := svc.Create(ctx, pages.CreatePageRequest{
		ShopName: "acme",
		Slug:     "home",
		Title:    "Welcome",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	err = svc.Delete(ctx, pages.DeletePageRequest{PageID: created.ID, ShopName: "globex"})
	if !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("cross-tenant delete must miss, got %v", err)
	}

	if err := svc.Delete(ctx, pages.DeletePageRequest{PageID: created.ID, ShopName: "acme"}); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "acme", "home"); !errors.Is(err, pages.ErrPageNotFound) {
		t.Fatalf("expected page gone, got %v", err)
	}
}

func fixedClock(t *testing.T) func() time.Time {
	t.Helper()
	return func() time.Time {
		return time.Date(2025, 2, 10, 9, 30, 0, 0, time.UTC)
	}
}
