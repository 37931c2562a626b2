package config

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *SiteConfig) error
	Domain() string
}

// ProjectDefaultApplier handles project metadata defaults.
type ProjectDefaultApplier struct{}

func (p *ProjectDefaultApplier) Domain() string { return "project" }

func (p *ProjectDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	def := Default()

	if cfg.Project == "" {
		cfg.Project = def.Project
	}
	if cfg.Copyright == "" {
		cfg.Copyright = def.Copyright
	}
	// Distinguish between nil (omitted) and explicitly empty list.
	if cfg.Authors == nil {
		cfg.Authors = def.Authors
	}
	if cfg.Release == "" {
		cfg.Release = def.Release
	}

	return nil
}

// ExtensionDefaultApplier handles build extension defaults.
type ExtensionDefaultApplier struct{}

func (e *ExtensionDefaultApplier) Domain() string { return "extensions" }

func (e *ExtensionDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	// An omitted list gets the built-in extensions; an explicitly empty
	// list means the user disabled them all and is left alone.
	if cfg.Extensions == nil {
		cfg.Extensions = Default().Extensions
	}

	return nil
}

// HTMLDefaultApplier handles HTML output defaults.
type HTMLDefaultApplier struct{}

func (h *HTMLDefaultApplier) Domain() string { return "html" }

func (h *HTMLDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	def := Default()

	if cfg.HTMLTheme == "" {
		cfg.HTMLTheme = def.HTMLTheme
	}
	if cfg.HTMLStaticPath == nil {
		cfg.HTMLStaticPath = def.HTMLStaticPath
	}

	return nil
}

// PathsDefaultApplier handles template and exclusion path defaults.
type PathsDefaultApplier struct{}

func (p *PathsDefaultApplier) Domain() string { return "paths" }

func (p *PathsDefaultApplier) ApplyDefaults(cfg *SiteConfig) error {
	if cfg.TemplatesPath == nil {
		cfg.TemplatesPath = Default().TemplatesPath
	}
	// Unset collections default to empty, never absent.
	if cfg.ExcludePatterns == nil {
		cfg.ExcludePatterns = []string{}
	}

	return nil
}

// defaultAppliers lists the per-domain appliers in application order.
var defaultAppliers = []DefaultApplier{
	&ProjectDefaultApplier{},
	&ExtensionDefaultApplier{},
	&HTMLDefaultApplier{},
	&PathsDefaultApplier{},
}

// applyDefaults runs every domain applier against the configuration.
func applyDefaults(cfg *SiteConfig) error {
	for _, a := range defaultAppliers {
		if err := a.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}
