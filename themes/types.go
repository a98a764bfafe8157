package themes

// Bundle is a static theme definition: shared render fragments plus the page
// set the theme materializes into a shop. Bundles live on disk, one directory
// per theme, loaded through a Loader.
type Bundle struct {
	Name   string       `json:"name"`
	Head   string       `json:"head"`
	Foot   string       `json:"foot"`
	Script string       `json:"script"`
	Pages  []BundlePage `json:"pages"`
}

// BundlePage is a single page definition inside a bundle. Content arrives
// already rendered to HTML; markdown sources are converted by the loader.
type BundlePage struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	Content     string `json:"content"`
	Styles      string `json:"styles,omitempty"`
	Language    string `json:"language,omitempty"`
	Published   bool   `json:"published"`
}

// Page returns the bundle page with the given slug, or nil.
func (b *Bundle) Page(slug string) *BundlePage {
	if b == nil {
		return nil
	}
	for i := range b.Pages {
		if b.Pages[i].Slug == slug {
			return &b.Pages[i]
		}
	}
	return nil
}
