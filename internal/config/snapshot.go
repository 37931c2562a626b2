package config

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Snapshot computes a stable hash of the record's build-affecting fields.
// Ordered sequences are hashed in configured order: the external builder
// loads extensions in order, so reordering IS a meaningful change.
// Callers SHOULD run applyDefaults before computing a snapshot so that
// omitted and defaulted records hash identically.
func (c *SiteConfig) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		h.Write([]byte(strings.Join(parts, "=")))
		h.Write([]byte{0})
	}
	w("project", c.Project)
	w("copyright", c.Copyright)
	w("authors", strings.Join(c.Authors, ","))
	w("release", c.Release)
	w("extensions", strings.Join(c.Extensions, ","))
	w("templates_path", strings.Join(c.TemplatesPath, ","))
	w("exclude_patterns", strings.Join(c.ExcludePatterns, ","))
	w("html_theme", c.HTMLTheme)
	w("html_static_path", strings.Join(c.HTMLStaticPath, ","))
	return hex.EncodeToString(h.Sum(nil))
}
