package render

// Context is the fully composed render context for a dynamic page. Every
// field is a plain string so templates never see a nil; absent fragments
// default to "".
type Context struct {
	ShopName     string `json:"shop_name"`
	Slug         string `json:"slug"`
	Language     string `json:"language"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Keywords     string `json:"keywords"`
	Content      string `json:"content"`
	Styles       string `json:"styles"`
	Navbar       string `json:"navbar"`
	NavbarStyles string `json:"navbar_styles"`
	Footer       string `json:"footer"`
	FooterStyles string `json:"footer_styles"`
	Head         string `json:"head"`
	Script       string `json:"script"`
	Foot         string `json:"foot"`
	ThemeName    string `json:"theme_name"`
}
