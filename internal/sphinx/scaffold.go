package sphinx

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/udsdoc/udsdoc/internal/logfields"
)

var titleCaser = cases.Title(language.English)

// scaffold ensures the directories the record declares exist under the docs
// dir and creates a starter index page when none is present. Existing
// content is never touched.
func (g *Generator) scaffold() error {
	var dirs []string
	dirs = append(dirs, g.config.TemplatesPath...)
	dirs = append(dirs, g.config.HTMLStaticPath...)

	for _, dir := range dirs {
		full := filepath.Join(g.docsDir, dir)
		if err := os.MkdirAll(full, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
		// Keep empty directories under version control.
		keep := filepath.Join(full, ".gitkeep")
		if _, err := os.Stat(keep); os.IsNotExist(err) {
			if err := os.WriteFile(keep, nil, 0644); err != nil {
				return fmt.Errorf("failed to create %s: %w", keep, err)
			}
		}
	}

	indexPath := filepath.Join(g.docsDir, "index.rst")
	if _, err := os.Stat(indexPath); err == nil {
		return nil
	}
	if err := os.WriteFile(indexPath, []byte(starterIndex(g.config.Project)), 0644); err != nil {
		return fmt.Errorf("failed to create starter index: %w", err)
	}
	slog.Info("Created starter index page", logfields.Path(indexPath))
	return nil
}

// starterIndex builds a minimal reStructuredText index page titled with a
// human-readable form of the project name.
func starterIndex(project string) string {
	title := titleCaser.String(strings.ReplaceAll(project, "_", " "))

	var b strings.Builder
	b.WriteString(title + "\n")
	b.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	b.WriteString(".. toctree::\n")
	b.WriteString("   :maxdepth: 2\n")
	b.WriteString("   :caption: Contents:\n")
	return b.String()
}
