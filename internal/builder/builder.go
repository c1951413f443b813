// internal/builder/builder.go
package builder

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"wikigen/internal/catalog"
	"wikigen/internal/config"
	"wikigen/internal/metrics"
)

// Renderer turns page descriptors into complete HTML documents.
type Renderer struct {
	InputDir string
	Options  Options
	Progress io.Writer // nil discards progress lines
	Metrics  *metrics.Recorder
}

// NewRenderer creates a Renderer reading fragments from inputDir and
// reporting progress on stdout.
func NewRenderer(inputDir string, opts Options) *Renderer {
	return &Renderer{InputDir: inputDir, Options: opts, Progress: os.Stdout}
}

func (r *Renderer) execute(name string, data PageData) (string, error) {
	var sb strings.Builder
	if err := pageTemplates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", fmt.Errorf("failed to execute %s template: %w", name, err)
	}
	return sb.String(), nil
}

// Header renders everything up to the page body: the document head, the
// navigation highlight rule, the banner and the optional page wrapper.
func (r *Renderer) Header(page catalog.Page) (string, error) {
	return r.execute("header", newPageData(page, r.Options))
}

// Banner renders the banner block on its own.
func (r *Renderer) Banner(page catalog.Page) (string, error) {
	return r.execute("banner", newPageData(page, r.Options))
}

// Footer renders the fixed footer. It does not depend on the page.
func (r *Renderer) Footer() (string, error) {
	return r.execute("footer", PageData{Options: r.Options})
}

// ResolveContent returns the page body and the kind reported to metrics.
// Non-empty fragments are used byte for byte. With Options.Markdown set,
// .md fragments are rendered first. Empty fragments get a placeholder.
func (r *Renderer) ResolveContent(page catalog.Page) (string, string, error) {
	if !page.HasContent {
		body, err := r.execute("placeholder", newPageData(page, r.Options))
		return body, metrics.KindPlaceholder, err
	}

	path := filepath.Join(r.InputDir, page.SourceFileName)
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read page %s: %w", path, err)
	}
	if r.Options.Markdown && page.Ext == ".md" {
		body, err := renderMarkdown(raw, r.Options.Unsafe)
		if err != nil {
			return "", "", fmt.Errorf("failed to process content for %s: %w", path, err)
		}
		return body, metrics.KindMarkdown, nil
	}
	return string(raw), metrics.KindContent, nil
}

func (r *Renderer) render(page catalog.Page) (string, string, error) {
	header, err := r.Header(page)
	if err != nil {
		return "", "", err
	}
	content, kind, err := r.ResolveContent(page)
	if err != nil {
		return "", "", err
	}
	footer, err := r.Footer()
	if err != nil {
		return "", "", err
	}
	return header + content + footer, kind, nil
}

// RenderPage returns the complete document for one page.
func (r *Renderer) RenderPage(page catalog.Page) (string, error) {
	doc, _, err := r.render(page)
	return doc, err
}

// OutputName returns the file name for page. The home page's Name is
// lower-cased in place first, so later uses of page.Name see "index".
func OutputName(page *catalog.Page) string {
	if page.Name == "Index" {
		page.Name = strings.ToLower(page.Name)
	}
	return OutputFileName(page.Name)
}

// RenderAll writes one document per page into outputDir, in order, and
// returns the number of pages written. The first failure stops the batch;
// pages already written are left in place.
func (r *Renderer) RenderAll(pages []catalog.Page, outputDir string) (int, error) {
	progress := r.Progress
	if progress == nil {
		progress = io.Discard
	}

	written := 0
	for i := range pages {
		page := &pages[i]
		doc, kind, err := r.render(*page)
		if err != nil {
			return written, fmt.Errorf("failed to render page %s: %w", page.SourceFileName, err)
		}

		outPath := filepath.Join(outputDir, OutputName(page))
		fmt.Fprintf(progress, "Writing page: %s\n", page.Name)
		if err := os.WriteFile(outPath, []byte(doc), 0o644); err != nil {
			return written, fmt.Errorf("failed to write page %s: %w", outPath, err)
		}
		slog.Debug("Page written", "source", page.SourceFileName, "output", outPath, "kind", kind)
		r.Metrics.PageRendered(kind)
		written++
	}
	return written, nil
}

// BuildSite catalogs site.Input and renders every page into site.Output.
func BuildSite(site config.SiteConfig, opts BuildOptions) (count int, err error) {
	start := time.Now()
	defer func() { opts.Metrics.BuildFinished(time.Since(start), err) }()

	pageOpts, err := OptionsFromConfig(site)
	if err != nil {
		return 0, err
	}

	if err := os.MkdirAll(site.Output, 0o755); err != nil {
		return 0, err
	}
	if opts.CleanDestination {
		if err := cleanDestination(site.Output); err != nil {
			return 0, err
		}
	}

	pages, err := catalog.Build(site.Input, site.Assets.IconBase)
	if err != nil {
		return 0, err
	}
	slog.Debug("Catalog built", "input", site.Input, "pages", len(pages))

	renderer := NewRenderer(site.Input, pageOpts)
	if opts.Progress != nil {
		renderer.Progress = opts.Progress
	}
	renderer.Metrics = opts.Metrics
	return renderer.RenderAll(pages, site.Output)
}

// cleanDestination empties outputDir without removing it, so a file
// server rooted there keeps working.
func cleanDestination(outputDir string) error {
	slog.Info("Cleaning destination directory", "dir", outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(outputDir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}
