package themes

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/yuin/goldmark"

	"github.com/linkbay/cms/pages"
	"github.com/linkbay/cms/themes"
)

const (
	manifestFile = "theme.json"
	pagesDir     = "pages"
)

// FSLoader reads theme bundles from a filesystem. Each bundle is a directory
// named after the theme, holding a theme.json manifest and an optional pages/
// directory of frontmatter-annotated .md or .html sources. Markdown bodies are
// rendered to HTML at load time.
type FSLoader struct {
	fsys   fs.FS
	schema *jsonschema.Schema
	engine goldmark.Markdown
}

// NewFSLoader constructs a loader over the given filesystem root.
func NewFSLoader(fsys fs.FS) (*FSLoader, error) {
	if fsys == nil {
		return nil, fmt.Errorf("themes: filesystem is required")
	}
	schema, err := compileManifestSchema()
	if err != nil {
		return nil, fmt.Errorf("themes: compile manifest schema: %w", err)
	}
	return &FSLoader{
		fsys:   fsys,
		schema: schema,
		engine: newMarkdownEngine(),
	}, nil
}

// Load parses and validates the named bundle.
func (l *FSLoader) Load(_ context.Context, themeName string) (*themes.Bundle, error) {
	themeName = strings.TrimSpace(themeName)
	if themeName == "" {
		return nil, themes.ErrThemeNameRequired
	}
	if !fs.ValidPath(themeName) || strings.Contains(themeName, "/") {
		return nil, &themes.BundleError{ThemeName: themeName, Reason: "invalid theme name", Cause: themes.ErrBundleNotFound}
	}

	raw, err := fs.ReadFile(l.fsys, path.Join(themeName, manifestFile))
	if err != nil {
		return nil, &themes.BundleError{ThemeName: themeName, Reason: "manifest missing", Cause: themes.ErrBundleNotFound}
	}

	m, err := parseManifest(l.schema, themeName, raw)
	if err != nil {
		return nil, err
	}

	bundle := &themes.Bundle{
		Name:   m.Name,
		Head:   m.Head,
		Foot:   m.Foot,
		Script: m.Script,
	}

	seen := map[string]string{}
	for _, p := range m.Pages {
		page := inlinePage(p)
		if err := appendPage(bundle, seen, page, "theme.json"); err != nil {
			return nil, &themes.BundleError{ThemeName: themeName, Reason: err.Error()}
		}
	}

	filePages, err := l.loadPageFiles(themeName)
	if err != nil {
		return nil, err
	}
	for _, fp := range filePages {
		if err := appendPage(bundle, seen, fp.page, fp.source); err != nil {
			return nil, &themes.BundleError{ThemeName: themeName, Reason: err.Error()}
		}
	}

	if len(bundle.Pages) == 0 {
		return nil, &themes.BundleError{ThemeName: themeName, Reason: "bundle defines no pages"}
	}
	return bundle, nil
}

// List names every directory under the root that carries a manifest.
func (l *FSLoader) List(_ context.Context) ([]string, error) {
	entries, err := fs.ReadDir(l.fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("themes: read base path: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := fs.Stat(l.fsys, path.Join(entry.Name(), manifestFile)); err != nil {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names, nil
}

type loadedPage struct {
	page   themes.BundlePage
	source string
}

func (l *FSLoader) loadPageFiles(themeName string) ([]loadedPage, error) {
	dir := path.Join(themeName, pagesDir)
	entries, err := fs.ReadDir(l.fsys, dir)
	if err != nil {
		// The pages directory is optional when the manifest carries inline pages.
		return nil, nil
	}

	out := make([]loadedPage, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		ext := strings.ToLower(path.Ext(name))
		if ext != ".md" && ext != ".html" {
			continue
		}

		raw, err := fs.ReadFile(l.fsys, path.Join(dir, name))
		if err != nil {
			return nil, &themes.BundleError{ThemeName: themeName, Reason: fmt.Sprintf("read %s: %v", name, err)}
		}
		page, err := l.parsePageFile(name, ext, raw)
		if err != nil {
			return nil, &themes.BundleError{ThemeName: themeName, Reason: fmt.Sprintf("parse %s: %v", name, err)}
		}
		out = append(out, loadedPage{page: page, source: name})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].source < out[j].source })
	return out, nil
}

type pageFrontMatter struct {
	Slug        string `yaml:"slug"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Keywords    string `yaml:"keywords"`
	Styles      string `yaml:"styles"`
	Language    string `yaml:"language"`
	Published   *bool  `yaml:"published"`
}

func (l *FSLoader) parsePageFile(name, ext string, raw []byte) (themes.BundlePage, error) {
	var meta pageFrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return themes.BundlePage{}, fmt.Errorf("frontmatter: %w", err)
	}

	content := string(body)
	if ext == ".md" {
		content, err = renderMarkdown(l.engine, body)
		if err != nil {
			return themes.BundlePage{}, err
		}
	}

	slug := strings.TrimSpace(meta.Slug)
	if slug == "" {
		slug = strings.TrimSuffix(name, path.Ext(name))
	}

	return themes.BundlePage{
		Slug:        strings.ToLower(slug),
		Title:       meta.Title,
		Description: meta.Description,
		Keywords:    meta.Keywords,
		Content:     content,
		Styles:      meta.Styles,
		Language:    normalizeLanguage(meta.Language),
		Published:   meta.Published == nil || *meta.Published,
	}, nil
}

func inlinePage(p manifestPage) themes.BundlePage {
	return themes.BundlePage{
		Slug:        strings.ToLower(strings.TrimSpace(p.Slug)),
		Title:       p.Title,
		Description: p.Description,
		Keywords:    p.Keywords,
		Content:     p.Content,
		Styles:      p.Styles,
		Language:    normalizeLanguage(p.Language),
		Published:   p.Published == nil || *p.Published,
	}
}

func appendPage(bundle *themes.Bundle, seen map[string]string, page themes.BundlePage, source string) error {
	key := page.Slug + "\x00" + page.Language
	if prev, ok := seen[key]; ok {
		return fmt.Errorf("duplicate page %q (defined in %s and %s)", page.Slug, prev, source)
	}
	seen[key] = source
	bundle.Pages = append(bundle.Pages, page)
	return nil
}

func normalizeLanguage(language string) string {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return pages.DefaultLanguage
	}
	return language
}
