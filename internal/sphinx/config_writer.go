package sphinx

import (
	"fmt"
	"os"
	"strings"

	"github.com/udsdoc/udsdoc/internal/config"
)

// writeConfig renders the record into the external builder's conf.py.
func (g *Generator) writeConfig() error {
	data := RenderConfig(g.config)
	if err := os.WriteFile(g.ConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write builder config: %w", err)
	}
	return nil
}

// RenderConfig renders a configuration record as the Python source the
// external documentation builder evaluates. The output is deterministic:
// the same record always yields the same bytes. Field order follows the
// builder's reference layout: project information, general configuration,
// HTML output options.
func RenderConfig(c *config.SiteConfig) []byte {
	var b strings.Builder
	b.WriteString("# Configuration file for the Sphinx documentation builder.\n")
	b.WriteString("#\n")
	b.WriteString("# For the full list of built-in configuration values, see the documentation:\n")
	b.WriteString("# https://www.sphinx-doc.org/en/master/usage/configuration.html\n\n")

	b.WriteString("# -- Project information -----------------------------------------------------\n")
	b.WriteString("# https://www.sphinx-doc.org/en/master/usage/configuration.html#project-information\n\n")
	writeAssign(&b, "project", pyString(c.Project))
	writeAssign(&b, "copyright", pyString(c.Copyright))
	writeAssign(&b, "author", pyString(c.AuthorLine()))
	writeAssign(&b, "release", pyString(c.Release))
	b.WriteString("\n")

	b.WriteString("# -- General configuration ---------------------------------------------------\n")
	b.WriteString("# https://www.sphinx-doc.org/en/master/usage/configuration.html#general-configuration\n\n")
	writeAssign(&b, "extensions", pyStringList(c.Extensions))
	b.WriteString("\n")
	writeAssign(&b, "templates_path", pyStringList(c.TemplatesPath))
	writeAssign(&b, "exclude_patterns", pyStringList(c.ExcludePatterns))
	b.WriteString("\n")

	b.WriteString("# -- Options for HTML output -------------------------------------------------\n")
	b.WriteString("# https://www.sphinx-doc.org/en/master/usage/configuration.html#options-for-html-output\n\n")
	writeAssign(&b, "html_theme", pyString(c.HTMLTheme))
	writeAssign(&b, "html_static_path", pyStringList(c.HTMLStaticPath))

	return []byte(b.String())
}

func writeAssign(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "%s = %s\n", name, value)
}

// pyString renders a Python double-quoted string literal.
func pyString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}

// pyStringList renders a Python list of string literals, preserving order.
func pyStringList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = pyString(item)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
