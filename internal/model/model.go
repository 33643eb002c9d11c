package model

import (
	"github.com/darrylcauldwell/meWeb/internal/content"
	"github.com/darrylcauldwell/meWeb/internal/theme"
)

// Manifest is the listing data handed to the page renderer. Nav is the
// category menu; the other menus hold the fixed site links.
type Manifest struct {
	Site          SiteInfo        `json:"site" yaml:"site"`
	Nav           []theme.NavItem `json:"nav" yaml:"nav"`
	Me            []theme.NavItem `json:"me" yaml:"me"`
	Presentations []theme.NavItem `json:"presentations" yaml:"presentations"`
	Apps          []theme.NavItem `json:"apps" yaml:"apps"`
	Observability theme.NavItem   `json:"observability" yaml:"observability"`
	Sections      []*Section      `json:"sections" yaml:"sections"`
}

// SiteInfo holds site-wide settings.
type SiteInfo struct {
	Title      string `json:"title" yaml:"title"`
	BaseURL    string `json:"baseUrl" yaml:"baseUrl"`
	PostCount  int    `json:"postCount" yaml:"postCount"`
	DraftCount int    `json:"draftCount" yaml:"draftCount"`
}

// Section is one paginated listing such as the home page or a category.
type Section struct {
	Name          string        `json:"name" yaml:"name"`
	Title         string        `json:"title" yaml:"title"`
	Color         string        `json:"color" yaml:"color"`
	BaseURL       string        `json:"baseUrl" yaml:"baseUrl"`
	PaginatedPath string        `json:"paginatedPath,omitempty" yaml:"paginatedPath,omitempty"`
	TotalPosts    int           `json:"totalPosts" yaml:"totalPosts"`
	TotalPages    int           `json:"totalPages" yaml:"totalPages"`
	Featured      []PostSummary `json:"featured,omitempty" yaml:"featured,omitempty"`
	Pages         []ListingPage `json:"pages" yaml:"pages"`
}

// PostSummary is a post as it appears in a listing.
type PostSummary struct {
	Title         string        `json:"title" yaml:"title"`
	Permalink     string        `json:"permalink" yaml:"permalink"`
	Date          string        `json:"date" yaml:"date"`
	DateLong      string        `json:"dateLong" yaml:"dateLong"`
	DateShort     string        `json:"dateShort" yaml:"dateShort"`
	Category      string        `json:"category" yaml:"category"`
	CategoryLabel string        `json:"categoryLabel" yaml:"categoryLabel"`
	Color         string        `json:"color" yaml:"color"`
	Tags          []content.Tag `json:"tags" yaml:"tags"`
	Summary       string        `json:"summary,omitempty" yaml:"summary,omitempty"`
	Thumbnail     string        `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`
	Featured      bool          `json:"featured" yaml:"featured"`
}
