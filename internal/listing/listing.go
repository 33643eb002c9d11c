// Package listing turns loaded posts into the paginated sections of the
// site: the home page, the post archive and one listing per category.
package listing

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/darrylcauldwell/meWeb/internal/content"
	"github.com/darrylcauldwell/meWeb/internal/dates"
	"github.com/darrylcauldwell/meWeb/internal/model"
	"github.com/darrylcauldwell/meWeb/internal/pagination"
	"github.com/darrylcauldwell/meWeb/internal/theme"
)

const (
	HomeSection    = "home"
	ArchiveSection = "post"
)

// Options configures a Planner.
type Options struct {
	SiteTitle string
	BaseURL   string
	PageSize  int
	// Window is the page-range width; DefaultWindow when zero.
	Window int
}

// Planner builds the listing manifest.
type Planner struct {
	opts Options
	log  zerolog.Logger
}

func NewPlanner(opts Options, log zerolog.Logger) *Planner {
	if opts.Window == 0 {
		opts.Window = pagination.DefaultWindow
	}
	return &Planner{
		opts: opts,
		log:  log.With().Str("component", "listing").Logger(),
	}
}

// Plan drops drafts, orders posts newest first and paginates every section.
// The home section holds only its first page; later pages live under the
// archive's paginated path.
func (p *Planner) Plan(posts []*content.Post) (*model.Manifest, error) {
	if p.opts.PageSize < 1 {
		return nil, fmt.Errorf("page size must be positive, got %d", p.opts.PageSize)
	}

	published := make([]*content.Post, 0, len(posts))
	for _, post := range posts {
		if post.Draft {
			p.log.Debug().Str("permalink", post.Permalink).Msg("Skipping draft")
			continue
		}
		published = append(published, post)
	}
	sorted := dates.SortDescending(published, func(post *content.Post) string { return post.Date })

	m := &model.Manifest{
		Site: model.SiteInfo{
			Title:      p.opts.SiteTitle,
			BaseURL:    p.opts.BaseURL,
			PostCount:  len(published),
			DraftCount: len(posts) - len(published),
		},
		Nav:           theme.NavCategories(),
		Me:            theme.MeLinks(),
		Presentations: theme.PresentationLinks(),
		Apps:          theme.AppLinks(),
		Observability: theme.ObservabilityLink(),
	}

	home, err := p.section(HomeSection, p.opts.SiteTitle, theme.DefaultAccent, "/", content.PostPath, sorted)
	if err != nil {
		return nil, err
	}
	home.Pages = home.Pages[:1]
	for _, post := range sorted {
		if post.Featured {
			home.Featured = append(home.Featured, summarize(post))
		}
	}
	m.Sections = append(m.Sections, home)

	archive, err := p.section(ArchiveSection, "All Posts", theme.DefaultAccent, content.PostPath, "", sorted)
	if err != nil {
		return nil, err
	}
	m.Sections = append(m.Sections, archive)

	byCategory := make(map[content.Category][]*content.Post)
	for _, post := range sorted {
		byCategory[post.Category] = append(byCategory[post.Category], post)
	}
	for _, c := range content.Categories() {
		s, err := p.section(string(c), theme.CategoryLabel(string(c)), theme.CategoryColor(string(c)),
			theme.CategoryPath(c), "", byCategory[c])
		if err != nil {
			return nil, err
		}
		m.Sections = append(m.Sections, s)
	}

	p.log.Info().Int("posts", len(published)).Int("drafts", m.Site.DraftCount).
		Int("sections", len(m.Sections)).Msg("Listing planned")
	return m, nil
}

func (p *Planner) section(name, title, color, baseURL, paginatedPath string, posts []*content.Post) (*model.Section, error) {
	chunks := pagination.Paginate(posts, p.opts.PageSize)
	s := &model.Section{
		Name:          name,
		Title:         title,
		Color:         color,
		BaseURL:       baseURL,
		PaginatedPath: paginatedPath,
		TotalPosts:    len(posts),
		TotalPages:    len(chunks),
		Pages:         make([]model.ListingPage, 0, len(chunks)),
	}

	for i, chunk := range chunks {
		d := pagination.Descriptor{
			CurrentPage:   i + 1,
			TotalPages:    len(chunks),
			BaseURL:       baseURL,
			PaginatedPath: paginatedPath,
		}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}
		r, err := d.Range(p.opts.Window)
		if err != nil {
			return nil, fmt.Errorf("section %s: %w", name, err)
		}

		summaries := make([]model.PostSummary, len(chunk))
		for j, post := range chunk {
			summaries[j] = summarize(post)
		}
		s.Pages = append(s.Pages, model.ListingPage{
			Descriptor: d,
			URL:        d.URL(d.CurrentPage),
			PrevURL:    d.PrevURL(),
			NextURL:    d.NextURL(),
			Range:      r,
			Posts:      summaries,
		})
	}
	return s, nil
}

func summarize(post *content.Post) model.PostSummary {
	cat := string(post.Category)
	return model.PostSummary{
		Title:         post.Title,
		Permalink:     post.Permalink,
		Date:          post.Date,
		DateLong:      dates.FormatLong(post.Date),
		DateShort:     dates.FormatShort(post.Date),
		Category:      cat,
		CategoryLabel: theme.CategoryLabel(cat),
		Color:         theme.CategoryColor(cat),
		Tags:          post.Tags,
		Summary:       post.Summary,
		Thumbnail:     post.Thumbnail,
		Featured:      post.Featured,
	}
}
