package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/darrylcauldwell/meWeb/internal/imagecheck"
	"github.com/darrylcauldwell/meWeb/internal/pagination"
)

type Config struct {
	SiteTitle  string       `mapstructure:"siteTitle"`
	BaseURL    string       `mapstructure:"baseURL"`
	ContentDir string       `mapstructure:"contentDir"`
	StaticDir  string       `mapstructure:"staticDir"`
	OutputDir  string       `mapstructure:"outputDir"`
	PageSize   int          `mapstructure:"pageSize"`
	PageWindow int          `mapstructure:"pageWindow"`
	Images     ImagesConfig `mapstructure:"images"`
	Log        LogConfig    `mapstructure:"log"`
}

// ImagesConfig bounds the static images checked by the images command.
type ImagesConfig struct {
	MaxFileSizeKB int `mapstructure:"maxFileSizeKB"`
	MaxDimension  int `mapstructure:"maxDimension"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults are registered with viper before any file or env is read.
var Defaults = map[string]any{
	"siteTitle":            "dreamfold",
	"baseURL":              "https://blog.dreamfold.dev",
	"contentDir":           "content/post",
	"staticDir":            "public",
	"outputDir":            "dist",
	"pageSize":             10,
	"pageWindow":           pagination.DefaultWindow,
	"images.maxFileSizeKB": imagecheck.DefaultLimits.MaxFileSizeKB,
	"images.maxDimension":  imagecheck.DefaultLimits.MaxDimension,
	"log.level":            "info",
	"log.format":           "console",
}

// Validate reports every setting that cannot work.
func (c Config) Validate() error {
	var errs []error
	if c.ContentDir == "" {
		errs = append(errs, errors.New("contentDir must be set"))
	}
	if c.PageSize < 1 {
		errs = append(errs, fmt.Errorf("pageSize must be positive, got %d", c.PageSize))
	}
	if c.PageWindow < 1 {
		errs = append(errs, fmt.Errorf("pageWindow must be positive, got %d", c.PageWindow))
	}
	if c.Images.MaxFileSizeKB < 1 || c.Images.MaxDimension < 1 {
		errs = append(errs, errors.New("images limits must be positive"))
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format must be console or json, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
