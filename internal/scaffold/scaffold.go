package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"wikigen/internal/builder"
	"wikigen/internal/catalog"
	"wikigen/internal/config"
)

// CreateNewSite writes a site.yaml and a starter set of fragments into name.
func CreateNewSite(name string) error {
	fmt.Println("Scaffolding new site in:", name)
	cfg := config.Default()
	cfg.Markdown = true

	if err := os.MkdirAll(filepath.Join(name, cfg.Input), 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", cfg.Input, err)
	}

	siteYaml, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode site config: %w", err)
	}

	files := map[string]string{
		"site.yaml": string(siteYaml),
		filepath.Join(cfg.Input, "misc-index.html"):            indexFragment,
		filepath.Join(cfg.Input, "team-team.html"):             teamFragment,
		filepath.Join(cfg.Input, "project-human_practices.md"): humanPracticesFragment,
		filepath.Join(cfg.Input, "hardware-hardware.html"):     "",
	}
	for path, content := range files {
		if err := os.WriteFile(filepath.Join(name, path), []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", path, err)
		}
	}
	fmt.Println("Site scaffolded. You can now:")
	fmt.Println("  cd", name)
	fmt.Println("  wikigen gen")
	fmt.Println("  wikigen serve")
	return nil
}

// CreateNewPage adds an empty fragment for a page to inputDir. Empty
// fragments render as "under construction" until content is written.
// It returns the path of the new fragment.
func CreateNewPage(inputDir, category, name string) (string, error) {
	slug := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
	fileName := strings.ToLower(category) + catalog.Separator + slug + ".html"
	if _, _, err := catalog.ParseFileName(fileName); err != nil {
		return "", err
	}

	if err := os.MkdirAll(inputDir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(inputDir, fileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return "", fmt.Errorf("page fragment %s already exists", path)
	}
	if err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	page, err := catalog.NewPage(fileName, 0, "")
	if err != nil {
		return "", err
	}
	fmt.Printf("Created: %s (renders to %s)\n", path, builder.OutputFileName(page.Name))
	return path, nil
}

const indexFragment = `<section class="intro">
	<p>Welcome to our wiki.</p>
</section>
`

const teamFragment = `<section class="members">
	<p>Meet the team.</p>
</section>
`

const humanPracticesFragment = `## Outreach

Write something meaningful here, then link to the [team](team-team.html).
`
