// Package theme holds the category accent palette, display labels and
// the navigation entries derived from them.
package theme

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/darrylcauldwell/meWeb/internal/content"
)

// DefaultAccent is used for anything without a category colour.
const DefaultAccent = "#007AFF"

// Section accents outside the category palette.
const (
	PresentationsAccent = "#30D158"
	AppsLinksAccent     = "#5AC8FA"
	ObservabilityAccent = "#F59E0B"
)

// Colours are chosen for 4.5:1 contrast against black text.
var categoryColors = map[content.Category]string{
	content.CategoryCloud:      "#007AFF",
	content.CategoryKubernetes: "#BF5AF2",
	content.CategoryVMware:     "#5AC8FA",
	content.CategoryAutomation: "#F59E0B",
	content.CategoryHomelab:    "#30D158",
	content.CategoryCareer:     "#FF2D55",
	content.CategoryApps:       "#FF9500",
}

var categoryLabels = map[content.Category]string{
	content.CategoryCloud:      "Cloud",
	content.CategoryKubernetes: "Kubernetes",
	content.CategoryVMware:     "VMware",
	content.CategoryAutomation: "Automation",
	content.CategoryHomelab:    "Homelab",
	content.CategoryCareer:     "Career",
	content.CategoryApps:       "Apps",
}

// CategoryColor returns the accent for category, or DefaultAccent when it
// is not an exact category name.
func CategoryColor(category string) string {
	if c, ok := categoryColors[content.Category(category)]; ok {
		return c
	}
	return DefaultAccent
}

// CategoryLabel returns the display label for category. Unknown names are
// title-cased.
func CategoryLabel(category string) string {
	if l, ok := categoryLabels[content.Category(category)]; ok {
		return l
	}
	// Casers carry state, so each call gets its own.
	return cases.Title(language.English).String(category)
}

// NavItem is one entry of a navigation menu.
type NavItem struct {
	Label    string `json:"label" yaml:"label"`
	Href     string `json:"href" yaml:"href"`
	Color    string `json:"color,omitempty" yaml:"color,omitempty"`
	External bool   `json:"external,omitempty" yaml:"external,omitempty"`
}

// NavCategories lists "All Posts" followed by every category listing.
func NavCategories() []NavItem {
	items := []NavItem{{Label: "All Posts", Href: "/", Color: DefaultAccent}}
	for _, c := range content.Categories() {
		items = append(items, NavItem{
			Label: categoryLabels[c],
			Href:  CategoryPath(c),
			Color: categoryColors[c],
		})
	}
	return items
}

// CategoryPath is the listing path of a category.
func CategoryPath(c content.Category) string {
	return "/" + string(c) + "/"
}

// MeLinks are the personal pages, shown in the career accent.
func MeLinks() []NavItem {
	return []NavItem{
		{Label: "Bio", Href: "/bio/", Color: categoryColors[content.CategoryCareer]},
		{Label: "CV", Href: "/cv/", Color: categoryColors[content.CategoryCareer]},
	}
}

// PresentationLinks are the talk pages.
func PresentationLinks() []NavItem {
	return []NavItem{
		{Label: "GitOps For The Distributed Enterprise Edge", Href: "/presentations/devops-meetup/", Color: PresentationsAccent},
		{Label: "Sustainable Software", Href: "/presentations/sustainable-software/", Color: PresentationsAccent},
	}
}

// AppLinks are externally hosted applications.
func AppLinks() []NavItem {
	return []NavItem{
		{Label: "Planespotter", Href: "https://planespotter.dreamfold.dev", Color: AppsLinksAccent, External: true},
		{Label: "Equestrian Venue Manager", Href: "https://evm.dreamfold.dev", Color: AppsLinksAccent, External: true},
	}
}

// ObservabilityLink is the dashboards page.
func ObservabilityLink() NavItem {
	return NavItem{Label: "Observability", Href: "/observability/", Color: ObservabilityAccent}
}
