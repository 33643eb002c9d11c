package content

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePost(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "first-post.md", `---
title: First Post
date: "2024-01-15"
category: cloud
tags: [aws, terraform]
featured: "true"
---
Intro paragraph with **bold** text
over two lines.

Second paragraph.
`)
	writePost(t, dir, "2023/Older One.md", `---
title: Older
date: 2023-06-01
description: Hand written summary
draft: true
---
Body.
`)
	writePost(t, dir, "notes.txt", "ignored")

	posts, err := NewLoader(dir, zerolog.Nop()).Load()
	require.NoError(t, err)
	require.Len(t, posts, 2)

	older, first := posts[0], posts[1]

	assert.Equal(t, "2023/older-one", older.Slug)
	assert.Equal(t, "/post/2023/older-one/", older.Permalink)
	assert.Equal(t, "2023-06-01", older.Date)
	assert.Equal(t, "Hand written summary", older.Summary)
	assert.True(t, older.Draft)

	assert.Equal(t, "First Post", first.Title)
	assert.Equal(t, "first-post", first.Slug)
	assert.Equal(t, "/post/first-post/", first.Permalink)
	assert.Equal(t, CategoryCloud, first.Category)
	assert.Equal(t, []Tag{TagAWS, TagTerraform}, first.Tags)
	assert.True(t, first.Featured)
	assert.Equal(t, "Intro paragraph with bold text over two lines.", first.Summary)
	assert.Empty(t, first.Description)
}

func TestLoaderCollectsFailures(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "good.md", "---\ntitle: Good\ndate: \"2024-02-02\"\n---\nok\n")
	bad := writePost(t, dir, "bad.md", "---\ntitle: Bad\ndate: \"2024-02-02\"\ntags: [Python]\n---\n")
	untitled := writePost(t, dir, "untitled.md", "just markdown, no front matter\n")

	posts, err := NewLoader(dir, zerolog.Nop()).Load()
	require.Len(t, posts, 1)
	assert.Equal(t, "good", posts[0].Slug)

	var lerr *LoadError
	require.True(t, errors.As(err, &lerr))
	require.Len(t, lerr.Files, 2)
	assert.Equal(t, bad, lerr.Files[0].Path)
	assert.Equal(t, untitled, lerr.Files[1].Path)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "tags[0]", verr.Fields[0].Field)
	assert.Contains(t, err.Error(), "2 content files failed to load")
}

func TestLoaderBooleanWords(t *testing.T) {
	for _, word := range []string{"yes", "Yes", "on", "y", "false", "off"} {
		t.Run(word, func(t *testing.T) {
			dir := t.TempDir()
			writePost(t, dir, "post.md", "---\ntitle: P\ndate: 2024-01-01\ndraft: "+word+"\nfeatured: "+word+"\n---\n")

			posts, err := NewLoader(dir, zerolog.Nop()).Load()
			require.NoError(t, err)
			require.Len(t, posts, 1)
			assert.False(t, posts[0].Draft, "draft: %s", word)
			assert.False(t, posts[0].Featured, "featured: %s", word)
			assert.Equal(t, "2024-01-01", posts[0].Date)
		})
	}

	dir := t.TempDir()
	writePost(t, dir, "post.md", "---\ntitle: P\ndate: \"2024-01-01\"\ndraft: True\nfeatured: \"tRuE\"\n---\n")
	posts, err := NewLoader(dir, zerolog.Nop()).Load()
	require.NoError(t, err)
	assert.True(t, posts[0].Draft)
	assert.True(t, posts[0].Featured)
}

func TestLoaderDuplicatePermalink(t *testing.T) {
	dir := t.TempDir()
	writePost(t, dir, "Same Name.md", "---\ntitle: A\ndate: \"2024-01-01\"\n---\n")
	writePost(t, dir, "same-name.md", "---\ntitle: B\ndate: \"2024-01-02\"\n---\n")

	posts, err := NewLoader(dir, zerolog.Nop()).Load()
	require.Len(t, posts, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already used by")
}

func TestLoaderMissingDir(t *testing.T) {
	_, err := NewLoader(filepath.Join(t.TempDir(), "nope"), zerolog.Nop()).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestExcerpt(t *testing.T) {
	l := NewLoader(t.TempDir(), zerolog.Nop())

	tests := []struct {
		name string
		body string
		want string
	}{
		{"first paragraph", "# Heading\n\nHello *world*.\n\nLater.", "Hello world."},
		{"skips image only paragraph", "![diagram](/img/a.png)\n\nReal text.", "Real text."},
		{"links keep their text", "See [the docs](https://example.com) now.", "See the docs now."},
		{"code span", "Run `kubectl get pods` first.", "Run kubectl get pods first."},
		{"empty body", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.excerpt([]byte(tt.body)))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))

	long := strings.Repeat("word ", 50)
	got := truncate(strings.TrimSpace(long), 22)
	assert.Equal(t, "word word word word…", got)
}
