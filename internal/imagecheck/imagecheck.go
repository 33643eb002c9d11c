// Package imagecheck reports static images that exceed the site's file
// size or pixel dimension limits.
package imagecheck

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	_ "golang.org/x/image/webp" // WebP decoder
)

// Extensions are the file types checked, lowercase without the dot.
var Extensions = []string{"jpg", "jpeg", "png", "webp", "gif", "avif"}

// Limits bound a single image.
type Limits struct {
	MaxFileSizeKB int
	MaxDimension  int
}

// DefaultLimits match the site's publishing budget.
var DefaultLimits = Limits{MaxFileSizeKB: 500, MaxDimension: 1600}

// Result describes one checked image.
type Result struct {
	Path   string
	SizeKB float64
	Width  int
	Height int
	// Measured is false when no decoder could read the dimensions.
	Measured bool
	Issues   []string
}

// OK reports whether the image is within limits.
func (r Result) OK() bool { return len(r.Issues) == 0 }

// Report is the outcome of a Check run.
type Report struct {
	Results []Result
}

// Passed counts images without issues.
func (r *Report) Passed() int {
	n := 0
	for _, res := range r.Results {
		if res.OK() {
			n++
		}
	}
	return n
}

// Failed returns the images with issues.
func (r *Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}
	return out
}

// Checker walks a directory of static assets.
type Checker struct {
	limits Limits
	log    zerolog.Logger
}

func NewChecker(limits Limits, log zerolog.Logger) *Checker {
	return &Checker{limits: limits, log: log.With().Str("component", "images").Logger()}
}

// Check inspects every image under root. Paths in the report are relative
// to root. A missing root yields an empty report.
func (c *Checker) Check(root string) (*Report, error) {
	report := &Report{}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		c.log.Info().Str("dir", root).Msg("Static directory not found, nothing to check")
		return report, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isImage(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}

		res := c.checkFile(path)
		res.Path = filepath.ToSlash(rel)
		if res.OK() {
			c.log.Debug().Str("path", res.Path).Float64("sizeKB", res.SizeKB).
				Int("width", res.Width).Int("height", res.Height).Msg("Image within limits")
		} else {
			c.log.Warn().Str("path", res.Path).Strs("issues", res.Issues).Msg("Image exceeds limits")
		}
		report.Results = append(report.Results, res)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	return report, nil
}

func (c *Checker) checkFile(path string) Result {
	var res Result

	info, err := os.Stat(path)
	if err != nil {
		res.Issues = append(res.Issues, fmt.Sprintf("Error reading image: %v", err))
		return res
	}
	res.SizeKB = float64(info.Size()) / 1024
	if res.SizeKB > float64(c.limits.MaxFileSizeKB) {
		res.Issues = append(res.Issues,
			fmt.Sprintf("File size %.1fKB exceeds %dKB limit", res.SizeKB, c.limits.MaxFileSizeKB))
	}

	// No pure Go AVIF decoder; size is all we can check.
	if strings.EqualFold(filepath.Ext(path), ".avif") {
		return res
	}

	f, err := os.Open(path)
	if err != nil {
		res.Issues = append(res.Issues, fmt.Sprintf("Error reading image: %v", err))
		return res
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		res.Issues = append(res.Issues, fmt.Sprintf("Error reading image: %v", err))
		return res
	}
	res.Width, res.Height, res.Measured = cfg.Width, cfg.Height, true
	if res.Width > c.limits.MaxDimension || res.Height > c.limits.MaxDimension {
		res.Issues = append(res.Issues,
			fmt.Sprintf("Dimensions %dx%dpx exceed %dpx limit", res.Width, res.Height, c.limits.MaxDimension))
	}
	return res
}

func isImage(name string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
