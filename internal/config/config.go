// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Shared assets every generated page links to.
const (
	DefaultStylesheetURL = "http://2018.igem.org/Template:Rotterdam_HR/css/main?action=raw&ctype=text/css"
	DefaultScriptURL     = "http://2018.igem.org/Template:Rotterdam_HR/js/main?action=raw&ctype=text/javascript"
	DefaultIconBase      = "http://2018.igem.org/Template:Rotterdam_HR/icon/"
)

const (
	DefaultInputDir  = "pages"
	DefaultOutputDir = "public"
	DefaultPreset    = "wiki"
)

// Assets holds the externally hosted URLs referenced by every page.
type Assets struct {
	Stylesheet string `yaml:"stylesheet"`
	Script     string `yaml:"script"`
	IconBase   string `yaml:"icon_base"`
}

// SiteConfig holds the configuration from the site.yaml file.
type SiteConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Preset   string `yaml:"preset"`
	Markdown bool   `yaml:"markdown"` // render .md fragments instead of copying them
	Unsafe   bool   `yaml:"unsafe"`
	Assets   Assets `yaml:"assets"`
}

// Default returns the configuration used when no site.yaml exists.
func Default() SiteConfig {
	cfg := SiteConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *SiteConfig) applyDefaults() {
	if c.Input == "" {
		c.Input = DefaultInputDir
	}
	if c.Output == "" {
		c.Output = DefaultOutputDir
	}
	if c.Preset == "" {
		c.Preset = DefaultPreset
	}
	if c.Assets.Stylesheet == "" {
		c.Assets.Stylesheet = DefaultStylesheetURL
	}
	if c.Assets.Script == "" {
		c.Assets.Script = DefaultScriptURL
	}
	if c.Assets.IconBase == "" {
		c.Assets.IconBase = DefaultIconBase
	}
}

// LoadSiteConfig reads path and fills unset keys with defaults.
// A missing file is not an error: the defaults are returned.
func LoadSiteConfig(path string) (SiteConfig, error) {
	cfg := SiteConfig{}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return SiteConfig{}, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("could not parse config file %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// Marshal renders cfg as site.yaml content.
func Marshal(cfg SiteConfig) ([]byte, error) {
	return yaml.Marshal(cfg)
}
