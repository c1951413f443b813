package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	prom "github.com/prometheus/client_golang/prometheus"

	"wikigen/internal/builder"
	"wikigen/internal/config"
	"wikigen/internal/metrics"
	"wikigen/internal/scaffold"
	"wikigen/internal/server"
)

// CLI is the root command line: global flags plus one struct per command.
type CLI struct {
	Config string `short:"c" help:"Site configuration file" default:"site.yaml" env:"WIKIGEN_CONFIG"`
	Debug  bool   `help:"Enable debug logging" env:"WIKIGEN_DEBUG"`

	Gen   GenCmd   `cmd:"" default:"1" help:"Generate the site from page fragments"`
	Serve ServeCmd `cmd:"" help:"Run a local dev server with auto-rebuild and live reload"`
	New   NewCmd   `cmd:"" help:"Create a new site or page fragment"`
}

// AfterApply runs after flag parsing; set up logging once.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// SiteFlags override values read from site.yaml.
type SiteFlags struct {
	Input    string `short:"i" help:"Directory of page fragments" env:"WIKIGEN_INPUT"`
	Output   string `short:"o" help:"Directory the pages are written to" env:"WIKIGEN_OUTPUT"`
	Preset   string `short:"p" help:"Template preset (wiki or classic)" env:"WIKIGEN_PRESET"`
	Markdown bool   `help:"Render .md fragments as markdown instead of copying them verbatim"`
	Unsafe   bool   `help:"Disable sanitizing of markdown fragments"`
}

// loadSite reads the configuration file and applies flag overrides.
func (c *CLI) loadSite(flags SiteFlags) (config.SiteConfig, error) {
	site, err := config.LoadSiteConfig(c.Config)
	if err != nil {
		return config.SiteConfig{}, fmt.Errorf("failed to load site config: %w", err)
	}
	if flags.Input != "" {
		site.Input = flags.Input
	}
	if flags.Output != "" {
		site.Output = flags.Output
	}
	if flags.Preset != "" {
		site.Preset = flags.Preset
	}
	if flags.Markdown {
		site.Markdown = true
	}
	if flags.Unsafe {
		site.Unsafe = true
	}
	return site, nil
}

// GenCmd implements the 'gen' command.
type GenCmd struct {
	Site  SiteFlags `embed:""`
	Clean bool      `help:"Empty the output directory before writing"`
}

func (g *GenCmd) Run(root *CLI) error {
	site, err := root.loadSite(g.Site)
	if err != nil {
		return err
	}
	fmt.Printf("--- Generating site from %s ---\n", site.Input)
	count, err := builder.BuildSite(site, builder.BuildOptions{CleanDestination: g.Clean})
	if err != nil {
		return fmt.Errorf("site generation failed: %w", err)
	}
	fmt.Printf("Success! Generated %d pages in %s.\n", count, site.Output)
	return nil
}

// ServeCmd implements the 'serve' command.
type ServeCmd struct {
	Site SiteFlags `embed:""`
	Port int       `help:"Port for the local development server" default:"1313" env:"WIKIGEN_PORT"`
}

func (s *ServeCmd) Run(root *CLI) error {
	site, err := root.loadSite(s.Site)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	reg := prom.NewRegistry()
	recorder := metrics.NewRecorder(reg)

	// site.yaml is re-read on every rebuild so edits to it apply live.
	buildFunc := func(opts builder.BuildOptions) error {
		current, err := root.loadSite(s.Site)
		if err != nil {
			return err
		}
		fmt.Println("--- Building site ---")
		count, err := builder.BuildSite(current, opts)
		if err != nil {
			return fmt.Errorf("site generation failed: %w", err)
		}
		fmt.Printf("Site: %d pages generated.\n", count)
		return nil
	}

	cfg := server.Config{
		Port:       s.Port,
		OutputDir:  site.Output,
		WatchPaths: []string{site.Input, root.Config},
		Registry:   reg,
	}
	return server.Run(ctx, cfg, buildFunc, builder.BuildOptions{Metrics: recorder})
}

// NewCmd groups the scaffolding commands.
type NewCmd struct {
	Site NewSiteCmd `cmd:"" help:"Create a new site scaffold"`
	Page NewPageCmd `cmd:"" help:"Create an empty page fragment"`
}

// NewSiteCmd implements 'new site <dir>'.
type NewSiteCmd struct {
	Dir string `arg:"" help:"Directory to create the site in"`
}

func (n *NewSiteCmd) Run() error {
	return scaffold.CreateNewSite(n.Dir)
}

// NewPageCmd implements 'new page <category> <name>'.
type NewPageCmd struct {
	Category string `arg:"" help:"Page category, used for the navigation highlight"`
	Name     string `arg:"" help:"Page name; spaces become underscores"`
	Input    string `short:"i" help:"Directory of page fragments" env:"WIKIGEN_INPUT"`
}

func (n *NewPageCmd) Run(root *CLI) error {
	site, err := root.loadSite(SiteFlags{Input: n.Input})
	if err != nil {
		return err
	}
	_, err = scaffold.CreateNewPage(site.Input, n.Category, n.Name)
	return err
}
