package themes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/linkbay/cms/themes"
)

func auroraFS() fstest.MapFS {
	return fstest.MapFS{
		"aurora/theme.json": &fstest.MapFile{Data: []byte(`{
			"name": "aurora",
			"head": "<link rel=\"stylesheet\" href=\"/aurora.css\">",
			"foot": "<footer>aurora</footer>",
			"script": "<script src=\"/aurora.js\"></script>",
			"pages": [
				{"slug": "navbar", "title": "Navbar", "content": "<nav>{{links}}</nav>", "published": false}
			]
		}`)},
		"aurora/pages/home.md": &fstest.MapFile{Data: []byte(`---
title: Welcome
description: Landingpage
keywords: shop, aurora
styles: "body { margin: 0; }"
---
# Hello

Welcome to **aurora**.
`)},
		"aurora/pages/about.html": &fstest.MapFile{Data: []byte(`---
title: About
slug: about-us
published: false
---
<section>About us</section>
`)},
	}
}

func TestLoadBundleFromFS(t *testing.T) {
	loader, err := NewFSLoader(auroraFS())
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	bundle, err := loader.Load(context.Background(), "aurora")
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if bundle.Name != "aurora" {
		t.Fatalf("name = %q, want aurora", bundle.Name)
	}
	if bundle.Head == "" || bundle.Foot == "" || bundle.Script == "" {
		t.Fatalf("expected head/foot/script fragments, got %+v", bundle)
	}
	if len(bundle.Pages) != 3 {
		t.Fatalf("page count = %d, want 3", len(bundle.Pages))
	}

	home := bundle.Page("home")
	if home == nil {
		t.Fatal("expected home page")
	}
	if home.Title != "Welcome" {
		t.Fatalf("home title = %q", home.Title)
	}
	if !strings.Contains(home.Content, "<h1") || !strings.Contains(home.Content, "<strong>aurora</strong>") {
		t.Fatalf("markdown not rendered: %q", home.Content)
	}
	if !home.Published {
		t.Fatal("home should default to published")
	}
	if home.Language != "en" {
		t.Fatalf("home language = %q, want en", home.Language)
	}

	about := bundle.Page("about-us")
	if about == nil {
		t.Fatal("expected frontmatter slug override to win over filename")
	}
	if about.Published {
		t.Fatal("about should honour published: false")
	}
	if !strings.Contains(about.Content, "<section>About us</section>") {
		t.Fatalf("html body should pass through raw: %q", about.Content)
	}

	navbar := bundle.Page("navbar")
	if navbar == nil || navbar.Published {
		t.Fatalf("inline navbar page missing or published: %+v", navbar)
	}
}

func TestLoadMissingBundle(t *testing.T) {
	loader, err := NewFSLoader(auroraFS())
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	_, err = loader.Load(context.Background(), "basalt")
	if !errors.Is(err, themes.ErrBundleNotFound) {
		t.Fatalf("err = %v, want ErrBundleNotFound", err)
	}
	var bundleErr *themes.BundleError
	if !errors.As(err, &bundleErr) || bundleErr.ThemeName != "basalt" {
		t.Fatalf("expected BundleError carrying theme name, got %v", err)
	}
}

func TestLoadRejectsInvalidManifest(t *testing.T) {
	fsys := fstest.MapFS{
		"broken/theme.json": &fstest.MapFile{Data: []byte(`{"head": "<style></style>"}`)},
	}
	loader, err := NewFSLoader(fsys)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	_, err = loader.Load(context.Background(), "broken")
	if !errors.Is(err, themes.ErrBundleInvalid) {
		t.Fatalf("err = %v, want ErrBundleInvalid", err)
	}
}

func TestLoadRejectsDuplicateSlugs(t *testing.T) {
	fsys := fstest.MapFS{
		"dupe/theme.json": &fstest.MapFile{Data: []byte(`{
			"name": "dupe",
			"pages": [{"slug": "home", "content": "<p>one</p>"}]
		}`)},
		"dupe/pages/home.html": &fstest.MapFile{Data: []byte("<p>two</p>")},
	}
	loader, err := NewFSLoader(fsys)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	_, err = loader.Load(context.Background(), "dupe")
	if !errors.Is(err, themes.ErrBundleInvalid) {
		t.Fatalf("err = %v, want ErrBundleInvalid", err)
	}
	if !strings.Contains(err.Error(), "duplicate page") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestListBundles(t *testing.T) {
	fsys := auroraFS()
	fsys["basalt/theme.json"] = &fstest.MapFile{Data: []byte(`{"name": "basalt", "pages": [{"slug": "home", "content": "<p>hi</p>"}]}`)}
	fsys["notes.txt"] = &fstest.MapFile{Data: []byte("not a theme")}
	fsys["empty/readme.md"] = &fstest.MapFile{Data: []byte("no manifest here")}

	loader, err := NewFSLoader(fsys)
	if err != nil {
		t.Fatalf("new loader: %v", err)
	}

	names, err := loader.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(names) != 2 || names[0] != "aurora" || names[1] != "basalt" {
		t.Fatalf("names = %v, want [aurora basalt]", names)
	}
}
