package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyConfigPath = "config_path"
	KeyDocsDir    = "docs_dir"
	KeyRunID      = "run_id"
	KeyTrigger    = "trigger"
	KeyProject    = "project"
	KeyTheme      = "theme"
	KeyExtension  = "extension"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func ConfigPath(p string) slog.Attr   { return slog.String(KeyConfigPath, p) }
func DocsDir(d string) slog.Attr      { return slog.String(KeyDocsDir, d) }
func RunID(id string) slog.Attr       { return slog.String(KeyRunID, id) }
func Trigger(t string) slog.Attr      { return slog.String(KeyTrigger, t) }
func Project(p string) slog.Attr      { return slog.String(KeyProject, p) }
func Theme(t string) slog.Attr        { return slog.String(KeyTheme, t) }
func Extension(e string) slog.Attr    { return slog.String(KeyExtension, e) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
