package content

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/adrg/frontmatter"
	"github.com/rs/zerolog"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"

	"github.com/darrylcauldwell/meWeb/internal/dates"
)

const (
	// PostPath is the URL prefix every post permalink lives under.
	PostPath = "/post/"

	summaryLimit = 160
)

// yamlFrontMatter decodes with YAML 1.2 rules, so unquoted yes, on and y
// stay strings and reach CoerceBool as written.
var yamlFrontMatter = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Post is a loaded post: its front matter plus what the loader derives
// from the file itself.
type Post struct {
	Record
	Slug       string `json:"slug" yaml:"slug"`
	SourcePath string `json:"sourcePath" yaml:"sourcePath"`
	Permalink  string `json:"permalink" yaml:"permalink"`
	// Summary is the description, or the opening of the body when the
	// front matter has none.
	Summary string `json:"summary" yaml:"summary"`
}

// FileError ties a load failure to the file that caused it.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e FileError) Unwrap() error { return e.Err }

// LoadError reports every file that could not be loaded.
type LoadError struct {
	Files []FileError
}

func (e *LoadError) Error() string {
	if len(e.Files) == 1 {
		return e.Files[0].Error()
	}
	return fmt.Sprintf("%d content files failed to load (first: %s)", len(e.Files), e.Files[0].Error())
}

// Unwrap exposes the per-file errors to errors.Is and errors.As.
func (e *LoadError) Unwrap() []error {
	errs := make([]error, len(e.Files))
	for i := range e.Files {
		errs[i] = e.Files[i]
	}
	return errs
}

// Loader reads markdown posts from a content directory.
type Loader struct {
	dir string
	log zerolog.Logger
	md  goldmark.Markdown
}

// NewLoader returns a Loader for the posts under dir.
func NewLoader(dir string, log zerolog.Logger) *Loader {
	return &Loader{
		dir: dir,
		log: log.With().Str("component", "content").Logger(),
		md:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Load walks the content directory and returns every valid post in path
// order. Files that fail are collected into a *LoadError returned next to
// the posts that did load, so the caller decides whether to stop.
func (l *Loader) Load() ([]*Post, error) {
	if _, err := os.Stat(l.dir); os.IsNotExist(err) {
		return nil, fmt.Errorf("content directory '%s' not found", l.dir)
	}

	var (
		posts  []*Post
		failed []FileError
		bySlug = make(map[string]string)
	)
	walkErr := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("error accessing path '%s' during walk: %w", path, err)
		}
		if d.IsDir() || !strings.HasSuffix(strings.ToLower(d.Name()), ".md") {
			return nil
		}

		post, err := l.LoadFile(path)
		if err != nil {
			l.log.Error().Err(err).Str("path", path).Msg("Rejected content file")
			failed = append(failed, FileError{Path: path, Err: err})
			return nil
		}
		if prev, dup := bySlug[post.Slug]; dup {
			err := fmt.Errorf("permalink %s already used by %s", post.Permalink, prev)
			l.log.Error().Err(err).Str("path", path).Msg("Rejected content file")
			failed = append(failed, FileError{Path: path, Err: err})
			return nil
		}
		bySlug[post.Slug] = path

		l.log.Debug().Str("path", path).Str("permalink", post.Permalink).Msg("Loaded post")
		posts = append(posts, post)
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("error during content walk: %w", walkErr)
	}

	l.log.Info().Int("posts", len(posts)).Int("rejected", len(failed)).Msg("Content loaded")
	if len(failed) > 0 {
		return posts, &LoadError{Files: failed}
	}
	return posts, nil
}

// LoadFile reads and validates a single post.
func (l *Loader) LoadFile(path string) (*Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var fm map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(raw), &fm, yamlFrontMatter)
	if err != nil {
		return nil, fmt.Errorf("failed to parse front matter: %w", err)
	}

	rec, err := NewRecord(fm)
	if err != nil {
		return nil, err
	}
	if !dates.IsValid(rec.Date) {
		l.log.Warn().Str("path", path).Str("date", rec.Date).
			Msg("Unparseable date; post will sort after dated posts")
	}

	rel, err := filepath.Rel(l.dir, path)
	if err != nil {
		return nil, fmt.Errorf("failed to get relative path: %w", err)
	}
	slug := SlugFromPath(rel)
	if slug == "" {
		return nil, errors.New("file name yields an empty slug")
	}

	summary := rec.Description
	if summary == "" {
		summary = l.excerpt(body)
	}

	return &Post{
		Record:     *rec,
		Slug:       slug,
		SourcePath: path,
		Permalink:  PostPath + slug + "/",
		Summary:    summary,
	}, nil
}

// excerpt returns the first paragraph of body that has any text, as plain
// text trimmed to summaryLimit runes.
func (l *Loader) excerpt(body []byte) string {
	doc := l.md.Parser().Parse(text.NewReader(body))

	var found string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || n.Kind() != ast.KindParagraph {
			return ast.WalkContinue, nil
		}
		if s := plainText(n, body); s != "" {
			found = s
			return ast.WalkStop, nil
		}
		return ast.WalkSkipChildren, nil
	})
	return truncate(found, summaryLimit)
}

func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Image:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return strings.Join(strings.Fields(b.String()), " ")
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	cut := string([]rune(s)[:limit])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}
