package sphinx

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udsdoc/udsdoc/internal/config"
)

const defaultConfPy = `# Configuration file for the Sphinx documentation builder.
#
# For the full list of built-in configuration values, see the documentation:
# https://www.sphinx-doc.org/en/master/usage/configuration.html

# -- Project information -----------------------------------------------------
# https://www.sphinx-doc.org/en/master/usage/configuration.html#project-information

project = "uds_protocol"
copyright = "Luminar Technologies, Inc 2025"
author = "Justin Kovacich, Kimberly Kryger, Matthew Beisser, Parth Patel, Zach Heylmun"
release = "0.0.1"

# -- General configuration ---------------------------------------------------
# https://www.sphinx-doc.org/en/master/usage/configuration.html#general-configuration

extensions = ["sphinx_needs", "sphinxcontrib.plantuml"]

templates_path = ["_templates"]
exclude_patterns = []

# -- Options for HTML output -------------------------------------------------
# https://www.sphinx-doc.org/en/master/usage/configuration.html#options-for-html-output

html_theme = "pydata_sphinx_theme"
html_static_path = ["_static"]
`

func TestRenderConfigDefaultGolden(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, defaultConfPy, string(RenderConfig(&cfg)))
}

func TestRenderConfigDeterministic(t *testing.T) {
	cfg := config.Default()
	first := RenderConfig(&cfg)
	second := RenderConfig(&cfg)
	assert.Equal(t, first, second)
}

func TestRenderConfigPreservesExtensionOrder(t *testing.T) {
	cfg := config.Default()
	cfg.Extensions = []string{"sphinxcontrib.plantuml", "sphinx_needs"}
	out := string(RenderConfig(&cfg))
	assert.Contains(t, out, `extensions = ["sphinxcontrib.plantuml", "sphinx_needs"]`)
}

func TestRenderConfigEmptyLists(t *testing.T) {
	cfg := config.Default()
	cfg.Extensions = []string{}
	cfg.ExcludePatterns = []string{}
	out := string(RenderConfig(&cfg))
	assert.Contains(t, out, "extensions = []")
	assert.Contains(t, out, "exclude_patterns = []")
}

func TestPyStringEscaping(t *testing.T) {
	assert.Equal(t, `"plain"`, pyString("plain"))
	assert.Equal(t, `"a \"quoted\" word"`, pyString(`a "quoted" word`))
	assert.Equal(t, `"back\\slash"`, pyString(`back\slash`))
}
