package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/darrylcauldwell/meWeb/internal/config"
	"github.com/darrylcauldwell/meWeb/internal/imagecheck"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Checks static images against the size and dimension limits",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImageCheck(appConfig, logger)
	},
}

func runImageCheck(cfg config.Config, log zerolog.Logger) error {
	checker := imagecheck.NewChecker(imagecheck.Limits{
		MaxFileSizeKB: cfg.Images.MaxFileSizeKB,
		MaxDimension:  cfg.Images.MaxDimension,
	}, log)

	report, err := checker.Check(cfg.StaticDir)
	if err != nil {
		return err
	}

	failed := report.Failed()
	log.Info().Int("checked", len(report.Results)).Int("passed", report.Passed()).
		Int("issues", len(failed)).Msg("Image check finished")
	if len(failed) > 0 {
		return fmt.Errorf("%d image(s) exceed limits", len(failed))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(imagesCmd)
}
