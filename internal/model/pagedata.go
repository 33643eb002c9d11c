package model

import "github.com/darrylcauldwell/meWeb/internal/pagination"

// ListingPage is one page of a section.
type ListingPage struct {
	pagination.Descriptor `yaml:",inline"`

	URL     string             `json:"url" yaml:"url"`
	PrevURL string             `json:"prevUrl,omitempty" yaml:"prevUrl,omitempty"`
	NextURL string             `json:"nextUrl,omitempty" yaml:"nextUrl,omitempty"`
	Range   []pagination.Entry `json:"range" yaml:"range"`
	Posts   []PostSummary      `json:"posts" yaml:"posts"`
}
