// internal/builder/models.go
package builder

import (
	"fmt"
	"io"
	"strings"

	"wikigen/internal/catalog"
	"wikigen/internal/config"
	"wikigen/internal/metrics"
	"wikigen/internal/util"
)

// NoContentMessage is shown on pages whose fragment is empty.
const NoContentMessage = "This page has no content yet."

// Preset names accepted by PresetOptions.
const (
	PresetWiki    = "wiki"
	PresetClassic = "classic"
)

// Options shapes every rendered page.
type Options struct {
	// IncludePageWrapperDiv wraps the body in <div class="page-<name>">,
	// closed by the footer.
	IncludePageWrapperDiv bool
	// IncludeSmallScreenBanner adds the media query that swaps in the
	// small banner image on narrow screens.
	IncludeSmallScreenBanner bool
	// Markdown renders .md fragments to HTML. When false every fragment
	// is copied byte for byte whatever its extension.
	Markdown bool
	// Unsafe disables sanitizing of rendered markdown fragments.
	Unsafe bool
	Assets config.Assets
}

// BuildOptions controls a whole-site build.
type BuildOptions struct {
	CleanDestination bool
	Progress         io.Writer // per-page progress lines; os.Stdout when nil
	Metrics          *metrics.Recorder
}

// PresetOptions returns the template flags for a named preset. Assets
// are left empty.
func PresetOptions(name string) (Options, error) {
	switch strings.ToLower(name) {
	case PresetWiki, "":
		return Options{IncludePageWrapperDiv: true, IncludeSmallScreenBanner: true}, nil
	case PresetClassic:
		return Options{}, nil
	default:
		return Options{}, fmt.Errorf("unknown preset %q (want %q or %q)", name, PresetWiki, PresetClassic)
	}
}

// OptionsFromConfig resolves the preset named in site and applies the
// remaining site settings on top of it.
func OptionsFromConfig(site config.SiteConfig) (Options, error) {
	opts, err := PresetOptions(site.Preset)
	if err != nil {
		return Options{}, err
	}
	opts.Markdown = site.Markdown
	opts.Unsafe = site.Unsafe
	opts.Assets = site.Assets
	return opts, nil
}

// PageData is the struct passed to the page templates.
type PageData struct {
	Page             catalog.Page
	MenuID           string // lower-cased page name, the navigation entry id
	CategoryID       string // lower-cased category, suffixed with "-category" in CSS
	DisplayTitle     string
	Banner           Banner
	NoContentMessage string
	Options          Options
}

func newPageData(page catalog.Page, opts Options) PageData {
	return PageData{
		Page:             page,
		MenuID:           strings.ToLower(page.Name),
		CategoryID:       strings.ToLower(page.Category),
		DisplayTitle:     DisplayTitle(page.Name),
		Banner:           LookupBanner(page.Name),
		NoContentMessage: NoContentMessage,
		Options:          opts,
	}
}

// DisplayTitle is the heading shown in a page's banner. The home page
// reads "Home" rather than "Index".
func DisplayTitle(name string) string {
	title := util.SpacedTitle(name)
	if title == "Index" {
		return "Home"
	}
	return title
}

// OutputFileName maps a page name to the file it is written to. The home
// page must be served as lower-case index.html.
func OutputFileName(name string) string {
	if name == "Index" {
		name = strings.ToLower(name)
	}
	return name + ".html"
}
