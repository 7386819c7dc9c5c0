// Package schema defines the content model shared by every storefront
// content component: global site settings, pages composed of ordered
// sections, the text dictionary, and keyed media assets.
package schema

// GlobalSettings is the site-wide content singleton. Exactly one record
// exists in the store at any time; the seeder creates it only when none is
// found.
type GlobalSettings struct {
	SiteName string `json:"siteName"`
	SiteURL  string `json:"siteUrl"`
	Tagline  string `json:"tagline,omitempty"`

	DefaultSEO      SEO             `json:"defaultSeo"`
	Announcement    Announcement    `json:"announcementBar"`
	MainNavigation  []NavItem       `json:"mainNavigation,omitempty"`
	AccountLinks    []Link          `json:"accountNavigation,omitempty"`
	Footer          Footer          `json:"footer"`
	Support         SupportContact  `json:"support"`
	Policies        []Link          `json:"policies,omitempty"`
}

// SEO carries default metadata applied when a page does not override it.
type SEO struct {
	MetaTitle       string   `json:"metaTitle"`
	MetaDescription string   `json:"metaDescription"`
	Keywords        []string `json:"keywords,omitempty"`
	CanonicalURL    string   `json:"canonicalUrl,omitempty"`
}

// PageSEO holds per-page metadata overrides. Empty fields inherit the
// GlobalSettings defaults at resolution time.
type PageSEO struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	CanonicalURL    string `json:"canonicalUrl,omitempty"`
}

// Announcement models the dismissible banner rendered above the header.
type Announcement struct {
	Message string `json:"message"`
	Variant string `json:"variant,omitempty"`
	Enabled bool   `json:"enabled"`
}

// NavItem is a primary navigation entry with optional nested sub-links.
type NavItem struct {
	Label    string `json:"label"`
	Href     string `json:"href"`
	Children []Link `json:"children,omitempty"`
}

// Link is a labelled hyperlink used across navigation, footer, and policies.
type Link struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Footer groups the footer description, link columns, and social links.
type Footer struct {
	Description string      `json:"description,omitempty"`
	LinkGroups  []LinkGroup `json:"linkGroups,omitempty"`
	SocialLinks []Link      `json:"socialLinks,omitempty"`
}

// LinkGroup is a titled column of footer links.
type LinkGroup struct {
	Title string `json:"title"`
	Links []Link `json:"links,omitempty"`
}

// SupportContact carries the customer support coordinates.
type SupportContact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}
