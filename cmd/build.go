// cmd/build.go
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/darrylcauldwell/meWeb/internal/config"
	"github.com/darrylcauldwell/meWeb/internal/content"
	"github.com/darrylcauldwell/meWeb/internal/listing"
	"github.com/darrylcauldwell/meWeb/internal/model"
)

const manifestName = "listing"

var (
	manifestFormat string
	manifestOut    string
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Plans the paginated listing pages",
	Long: `The build command loads and validates every post, drops drafts, sorts the
rest newest first and paginates the home page, the post archive and each
category. The resulting manifest of page URLs, page-number strips and post
summaries is written to the output directory (listing.json by default) for
the page renderer. Any invalid content file fails the build.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuildProcess(appConfig, logger)
	},
}

func runBuildProcess(cfg config.Config, log zerolog.Logger) error {
	format := strings.ToLower(manifestFormat)
	if format != "json" && format != "yaml" {
		return fmt.Errorf("unknown manifest format %q, want json or yaml", manifestFormat)
	}

	posts, err := content.NewLoader(cfg.ContentDir, log).Load()
	var lerr *content.LoadError
	if errors.As(err, &lerr) {
		for _, f := range lerr.Files {
			log.Error().Str("path", f.Path).Msg(f.Err.Error())
		}
		return fmt.Errorf("build aborted: %w", err)
	}
	if err != nil {
		return err
	}

	planner := listing.NewPlanner(listing.Options{
		SiteTitle: cfg.SiteTitle,
		BaseURL:   cfg.BaseURL,
		PageSize:  cfg.PageSize,
		Window:    cfg.PageWindow,
	}, log)
	manifest, err := planner.Plan(posts)
	if err != nil {
		return fmt.Errorf("failed to plan listings: %w", err)
	}

	out := manifestOut
	if out == "" {
		out = filepath.Join(cfg.OutputDir, manifestName+"."+format)
	}
	if out == "-" {
		return writeManifest(os.Stdout, manifest, format)
	}

	if err := os.MkdirAll(filepath.Dir(out), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create directory for '%s': %w", out, err)
	}
	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create manifest file '%s': %w", out, err)
	}
	if err := writeManifest(f, manifest, format); err != nil {
		f.Close()
		return fmt.Errorf("failed to write manifest '%s': %w", out, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close manifest '%s': %w", out, err)
	}

	log.Info().Str("path", out).Int("sections", len(manifest.Sections)).Msg("Listing manifest written")
	return nil
}

func writeManifest(w io.Writer, m *model.Manifest, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(m); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}

func init() {
	buildCmd.Flags().StringVar(&manifestFormat, "format", "json", "manifest format: json or yaml")
	buildCmd.Flags().StringVarP(&manifestOut, "out", "o", "", "manifest path, - for stdout (default <outputDir>/listing.<format>)")
	rootCmd.AddCommand(buildCmd)
}
