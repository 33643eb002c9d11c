package theme

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrylcauldwell/meWeb/internal/content"
)

var hexColor = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func TestCategoryColor(t *testing.T) {
	tests := map[string]string{
		"cloud":      "#007AFF",
		"kubernetes": "#BF5AF2",
		"vmware":     "#5AC8FA",
		"automation": "#F59E0B",
		"homelab":    "#30D158",
		"career":     "#FF2D55",
		"apps":       "#FF9500",
		"unknown":    DefaultAccent,
		"":           DefaultAccent,
		"Cloud":      DefaultAccent,
		"KUBERNETES": DefaultAccent,
	}
	for in, want := range tests {
		assert.Equal(t, want, CategoryColor(in), "CategoryColor(%q)", in)
	}
}

func TestPaletteCoversVocabulary(t *testing.T) {
	for _, c := range content.Categories() {
		assert.Regexp(t, hexColor, categoryColors[c], "colour for %s", c)
		assert.NotEmpty(t, categoryLabels[c], "label for %s", c)
	}
	assert.Len(t, categoryColors, len(content.Categories()))
	assert.Len(t, categoryLabels, len(categoryColors))
	assert.Regexp(t, hexColor, DefaultAccent)
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "VMware", CategoryLabel("vmware"))
	assert.Equal(t, "Homelab", CategoryLabel("homelab"))
	assert.Equal(t, "Edge Computing", CategoryLabel("edge computing"))
}

func TestNavCategories(t *testing.T) {
	nav := NavCategories()
	require.Len(t, nav, 8)
	assert.Equal(t, "All Posts", nav[0].Label)
	assert.Equal(t, "/", nav[0].Href)
	assert.Equal(t, NavItem{Label: "Cloud", Href: "/cloud/", Color: "#007AFF"}, nav[1])

	for _, item := range nav {
		assert.True(t, strings.HasSuffix(item.Href, "/"), item.Href)
	}
}

func TestLinkMenus(t *testing.T) {
	for _, item := range append(MeLinks(), PresentationLinks()...) {
		assert.True(t, strings.HasPrefix(item.Href, "/"))
		assert.False(t, item.External)
	}
	for _, item := range AppLinks() {
		assert.True(t, item.External)
		assert.True(t, strings.HasPrefix(item.Href, "https://"))
	}
}

func TestObservabilityLink(t *testing.T) {
	l := ObservabilityLink()
	assert.Equal(t, "/observability/", l.Href)
	assert.Equal(t, ObservabilityAccent, l.Color)
	assert.False(t, l.External)
}
