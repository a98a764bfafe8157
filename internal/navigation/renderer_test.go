package navigation

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/linkbay/cms/navigation"
	"github.com/linkbay/cms/pkg/interfaces"
)

type stubCollections struct {
	collections []interfaces.Collection
	err         error
}

func (s *stubCollections) ActiveCollections(context.Context, string) ([]interfaces.Collection, error) {
	return s.collections, s.err
}

func seedLinks(t *testing.T, repo Repository, inputs []navigation.LinkInput) {
	t.Helper()
	svc := NewService(repo)
	if _, err := svc.ReplaceLinks(context.Background(), "acme", inputs); err != nil {
		t.Fatalf("seed links: %v", err)
	}
}

func TestRenderSubstitutesPlaceholder(t *testing.T) {
	repo := NewMemoryLinkRepository()
	seedLinks(t, repo, []navigation.LinkInput{
		{LinkText: "Home", LinkURL: "home"},
		{LinkText: "Cart", LinkURL: "cart"},
	})
	r := NewRenderer(repo, nil)

	out, err := r.Render(context.Background(), `<nav>{{links}}</nav>`, "acme")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if strings.Contains(out, "{{links}}") {
		t.Fatal("placeholder should be substituted")
	}
	if !strings.Contains(out, `<a href="/home">Home</a>`) {
		t.Fatalf("missing plain link: %s", out)
	}
	if !strings.Contains(out, `class="navbar-icon-cart"`) {
		t.Fatalf("cart sentinel should map to its icon class: %s", out)
	}
	if !strings.HasPrefix(out, "<nav>") || !strings.HasSuffix(out, "</nav>") {
		t.Fatalf("surrounding template lost: %s", out)
	}
}

func TestRenderFallsBackWithoutPlaceholder(t *testing.T) {
	repo := NewMemoryLinkRepository()
	seedLinks(t, repo, []navigation.LinkInput{{LinkText: "Home", LinkURL: "home"}})
	r := NewRenderer(repo, nil)

	raw := `<nav><a href="/">hardcoded</a></nav>`
	out, err := r.Render(context.Background(), raw, "acme")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != raw {
		t.Fatalf("expected raw template back, got %s", out)
	}
}

func TestRenderStaticDropdown(t *testing.T) {
	repo := NewMemoryLinkRepository()
	seedLinks(t, repo, []navigation.LinkInput{
		{LinkText: "Pages", LinkURL: "pages"},
		{LinkText: "About", LinkURL: "about", ParentIndex: intPtr(0)},
		{LinkText: "Contact", LinkURL: "contact", ParentIndex: intPtr(0)},
	})
	r := NewRenderer(repo, nil)

	out, err := r.Render(context.Background(), "{{links}}", "acme")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(out, `class="has-dropdown"`) {
		t.Fatalf("expected dropdown wrapper: %s", out)
	}
	dropdown := out[strings.Index(out, `<ul class="dropdown">`):]
	if !strings.Contains(dropdown, ">About<") || !strings.Contains(dropdown, ">Contact<") {
		t.Fatalf("children missing from dropdown: %s", dropdown)
	}
	// Children render only inside their parent, never at the top level.
	if strings.Count(out, ">About<") != 1 {
		t.Fatalf("child rendered more than once: %s", out)
	}
}

func TestRenderExpandsCollections(t *testing.T) {
	repo := NewMemoryLinkRepository()
	seedLinks(t, repo, []navigation.LinkInput{
		{LinkText: "Shop", LinkURL: "show_collections"},
	})
	r := NewRenderer(repo, &stubCollections{collections: []interfaces.Collection{
		{Name: "Summer Drop", Slug: "summer-drop"},
		{Name: "Basics", Slug: "basics"},
	}})

	out, err := r.Render(context.Background(), "{{links}}", "acme")
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	if !strings.Contains(out, `<a href="/collections/summer-drop">Summer Drop</a>`) {
		t.Fatalf("collection entry missing: %s", out)
	}
	if !strings.Contains(out, `<a href="/collections/basics">Basics</a>`) {
		t.Fatalf("collection entry missing: %s", out)
	}
}

func TestRenderDegradesWhenCollectionsFail(t *testing.T) {
	repo := NewMemoryLinkRepository()
	seedLinks(t, repo, []navigation.LinkInput{
		{LinkText: "Shop", LinkURL: "show_collections"},
	})
	r := NewRenderer(repo, &stubCollections{err: errors.New("catalog down")})

	out, err := r.Render(context.Background(), "{{links}}", "acme")
	if err != nil {
		t.Fatalf("render should not fail on collection errors: %v", err)
	}
	if !strings.Contains(out, `<a href="/collections">Shop</a>`) {
		t.Fatalf("expected plain entry without submenu: %s", out)
	}
	if strings.Contains(out, "dropdown") {
		t.Fatalf("no dropdown expected on lookup failure: %s", out)
	}
}

func TestRenderEscapesLinkText(t *testing.T) {
	repo := NewMemoryLinkRepository()
	seedLinks(t, repo, []navigation.LinkInput{
		{LinkText: `<script>alert(1)</script>`, LinkURL: "home"},
	})
	r := NewRenderer(repo, nil)

	out, err := r.Render(context.Background(), "{{links}}", "acme")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(out, "<script>") {
		t.Fatalf("link text not escaped: %s", out)
	}
}
