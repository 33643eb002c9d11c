// Package pagination computes listing page URLs and the page-number strip
// shown under each listing. It knows nothing about the content being paged.
package pagination

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultWindow is the number of contiguous page numbers shown around the
// current page.
const DefaultWindow = 5

// ErrOutOfRange is returned for page arguments that break the caller
// contract: non-positive numbers or a current page past the last one.
var ErrOutOfRange = errors.New("pagination: page out of range")

// Entry is one slot of the page-number strip: a page number or an ellipsis.
type Entry struct {
	Page     int
	Ellipsis bool
}

// PageEntry returns the Entry for page n.
func PageEntry(n int) Entry { return Entry{Page: n} }

// EllipsisEntry returns the ellipsis marker.
func EllipsisEntry() Entry { return Entry{Ellipsis: true} }

func (e Entry) String() string {
	if e.Ellipsis {
		return "ellipsis"
	}
	return strconv.Itoa(e.Page)
}

// MarshalJSON encodes a page as its number and the marker as "ellipsis".
func (e Entry) MarshalJSON() ([]byte, error) {
	if e.Ellipsis {
		return []byte(`"ellipsis"`), nil
	}
	return json.Marshal(e.Page)
}

// UnmarshalJSON accepts what MarshalJSON produces.
func (e *Entry) UnmarshalJSON(b []byte) error {
	if string(b) == `"ellipsis"` {
		*e = EllipsisEntry()
		return nil
	}
	var n int
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("pagination: entry must be a page number or \"ellipsis\": %w", err)
	}
	*e = PageEntry(n)
	return nil
}

// MarshalYAML mirrors MarshalJSON for gopkg.in/yaml.v2.
func (e Entry) MarshalYAML() (interface{}, error) {
	if e.Ellipsis {
		return "ellipsis", nil
	}
	return e.Page, nil
}

// PageURL returns the URL of page. Page 1 is always baseURL itself; later
// pages are paginatedPath (or baseURL when empty) followed by "<page>/".
func PageURL(page int, baseURL, paginatedPath string) string {
	if page == 1 {
		return baseURL
	}
	path := paginatedPath
	if path == "" {
		path = baseURL
	}
	return path + strconv.Itoa(page) + "/"
}

// PrevPage returns the page before current, and false on the first page.
func PrevPage(current int) (int, bool) {
	if current > 1 {
		return current - 1, true
	}
	return 0, false
}

// NextPage returns the page after current, and false on the last page.
func NextPage(current, total int) (int, bool) {
	if current < total {
		return current + 1, true
	}
	return 0, false
}

// PageRange returns the page-number strip for current out of total pages.
// It always starts with 1, ends with total and contains current, showing
// up to window contiguous pages and ellipses where numbers are skipped.
func PageRange(current, total, window int) ([]Entry, error) {
	if err := checkPages(current, total); err != nil {
		return nil, err
	}
	if window < 1 {
		return nil, fmt.Errorf("%w: window %d", ErrOutOfRange, window)
	}

	half := window / 2
	start := max(1, current-half)
	end := min(total, start+window-1)
	if end-start < window-1 {
		start = max(1, end-window+1)
	}

	entries := make([]Entry, 0, window+4)
	if start > 1 {
		entries = append(entries, PageEntry(1))
		if start > 2 {
			entries = append(entries, EllipsisEntry())
		}
	}
	for i := start; i <= end; i++ {
		entries = append(entries, PageEntry(i))
	}
	if end < total {
		if end < total-1 {
			entries = append(entries, EllipsisEntry())
		}
		entries = append(entries, PageEntry(total))
	}
	return entries, nil
}

func checkPages(current, total int) error {
	switch {
	case total < 1:
		return fmt.Errorf("%w: total pages %d", ErrOutOfRange, total)
	case current < 1:
		return fmt.Errorf("%w: current page %d", ErrOutOfRange, current)
	case current > total:
		return fmt.Errorf("%w: current page %d exceeds total %d", ErrOutOfRange, current, total)
	}
	return nil
}

// Descriptor describes one rendered listing page.
type Descriptor struct {
	CurrentPage   int    `json:"currentPage" yaml:"currentPage"`
	TotalPages    int    `json:"totalPages" yaml:"totalPages"`
	BaseURL       string `json:"baseUrl" yaml:"baseUrl"`
	PaginatedPath string `json:"paginatedPath,omitempty" yaml:"paginatedPath,omitempty"`
}

// Validate checks the page bounds and that both paths are absolute and end
// in a slash.
func (d Descriptor) Validate() error {
	if err := checkPages(d.CurrentPage, d.TotalPages); err != nil {
		return err
	}
	if !isDirPath(d.BaseURL) {
		return fmt.Errorf("pagination: base URL %q must start and end with /", d.BaseURL)
	}
	if d.PaginatedPath != "" && !isDirPath(d.PaginatedPath) {
		return fmt.Errorf("pagination: paginated path %q must start and end with /", d.PaginatedPath)
	}
	return nil
}

// URL returns the URL of page n within this listing.
func (d Descriptor) URL(n int) string {
	return PageURL(n, d.BaseURL, d.PaginatedPath)
}

// PrevURL returns the previous page's URL, or "" on the first page.
func (d Descriptor) PrevURL() string {
	if p, ok := PrevPage(d.CurrentPage); ok {
		return d.URL(p)
	}
	return ""
}

// NextURL returns the next page's URL, or "" on the last page.
func (d Descriptor) NextURL() string {
	if p, ok := NextPage(d.CurrentPage, d.TotalPages); ok {
		return d.URL(p)
	}
	return ""
}

// Range returns the page-number strip for this page.
func (d Descriptor) Range(window int) ([]Entry, error) {
	return PageRange(d.CurrentPage, d.TotalPages, window)
}

func isDirPath(p string) bool {
	return strings.HasPrefix(p, "/") && strings.HasSuffix(p, "/")
}
