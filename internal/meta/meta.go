// Package meta provides the page metadata bundles applied by storefront
// clients: title, description, keywords, and social preview tags.
package meta

// OpenGraph holds the og:* preview tags.
type OpenGraph struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	URL         string `json:"url,omitempty"`
}

// Twitter holds the twitter:* preview tags.
type Twitter struct {
	Card        string `json:"card,omitempty"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Metadata is one page's full metadata bundle.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Keywords    []string  `json:"keywords"`
	Icon        string    `json:"icon"`
	OpenGraph   OpenGraph `json:"open_graph"`
	Twitter     Twitter   `json:"twitter"`
}

const (
	defaultTitle       = "NareL Digital - Premium Digital Marketplace"
	defaultDescription = "NareL Digital is Indonesia's leading digital marketplace for premium digital products and services at affordable prices."
	defaultImage       = "https://narel.id/og/narel.png"
	defaultURL         = "https://narel.id"
)

// Default returns the site-wide metadata bundle.
func Default() Metadata {
	return Metadata{
		Title:       defaultTitle,
		Description: defaultDescription,
		Keywords:    []string{"narel", "nareldigital", "digital products", "marketplace", "Indonesia", "premium apps", "digital services"},
		Icon:        "/favicon.ico",
		OpenGraph: OpenGraph{
			Title:       defaultTitle,
			Description: defaultDescription,
			Image:       defaultImage,
			URL:         defaultURL,
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Title:       defaultTitle,
			Description: defaultDescription,
			Image:       defaultImage,
		},
	}
}

// Generate merges overrides into the default bundle. Empty override fields
// keep the default values; social preview blocks merge field by field.
func Generate(overrides Metadata) Metadata {
	out := Default()
	if overrides.Title != "" {
		out.Title = overrides.Title
		out.OpenGraph.Title = overrides.Title
		out.Twitter.Title = overrides.Title
	}
	if overrides.Description != "" {
		out.Description = overrides.Description
		out.OpenGraph.Description = overrides.Description
		out.Twitter.Description = overrides.Description
	}
	if len(overrides.Keywords) > 0 {
		out.Keywords = overrides.Keywords
	}
	if overrides.Icon != "" {
		out.Icon = overrides.Icon
	}
	if overrides.OpenGraph.Title != "" {
		out.OpenGraph.Title = overrides.OpenGraph.Title
	}
	if overrides.OpenGraph.Description != "" {
		out.OpenGraph.Description = overrides.OpenGraph.Description
	}
	if overrides.OpenGraph.Image != "" {
		out.OpenGraph.Image = overrides.OpenGraph.Image
	}
	if overrides.OpenGraph.URL != "" {
		out.OpenGraph.URL = overrides.OpenGraph.URL
	}
	if overrides.Twitter.Card != "" {
		out.Twitter.Card = overrides.Twitter.Card
	}
	if overrides.Twitter.Title != "" {
		out.Twitter.Title = overrides.Twitter.Title
	}
	if overrides.Twitter.Description != "" {
		out.Twitter.Description = overrides.Twitter.Description
	}
	if overrides.Twitter.Image != "" {
		out.Twitter.Image = overrides.Twitter.Image
	}
	return out
}

// ForPage returns the metadata bundle for a named page.
func ForPage(page string) (Metadata, bool) {
	switch page {
	case "home":
		return Default(), true
	case "products":
		return Generate(Metadata{
			Title:       "Digital Products - NareL Digital Marketplace",
			Description: "Browse our collection of premium digital products including apps, software, and digital services.",
		}), true
	case "about":
		return Generate(Metadata{
			Title:       "About Us - NareL Digital",
			Description: "Learn about NareL Digital, Indonesia's leading digital marketplace established in 2022.",
		}), true
	case "contact":
		return Generate(Metadata{
			Title:       "Contact Us - NareL Digital Support",
			Description: "Get in touch with our 24/7 customer support team for any questions or assistance.",
		}), true
	default:
		return Metadata{}, false
	}
}
