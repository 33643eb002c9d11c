package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/darrylcauldwell/meWeb/internal/config"
	"github.com/darrylcauldwell/meWeb/internal/content"
	"github.com/darrylcauldwell/meWeb/internal/dates"
)

var watchContent bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validates every post's front matter",
	Long: `The check command loads every markdown file under the content directory,
validates its front matter against the category and tag vocabularies and
reports each problem. It exits non-zero when any file is rejected.
With --watch it keeps running and re-checks whenever content changes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if watchContent {
			return watch(cmd.Context(), appConfig, logger)
		}
		return runCheck(appConfig, logger)
	},
}

func runCheck(cfg config.Config, log zerolog.Logger) error {
	posts, err := content.NewLoader(cfg.ContentDir, log).Load()

	undated := 0
	for _, p := range posts {
		if !dates.IsValid(p.Date) {
			undated++
		}
	}

	var lerr *content.LoadError
	if errors.As(err, &lerr) {
		for _, f := range lerr.Files {
			log.Error().Str("path", f.Path).Msg(f.Err.Error())
		}
		return fmt.Errorf("%d of %d content files failed validation", len(lerr.Files), len(lerr.Files)+len(posts))
	}
	if err != nil {
		return err
	}

	log.Info().Int("posts", len(posts)).Int("undated", undated).Msg("All content valid")
	return nil
}

func init() {
	checkCmd.Flags().BoolVarP(&watchContent, "watch", "w", false, "re-check on every content change")
	rootCmd.AddCommand(checkCmd)
}
