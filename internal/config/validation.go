package config

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateConfig performs structural validation of a loaded record.
// Resolvability of extension identifiers and the theme stays with the
// external build tool; this only catches what would make the record itself
// malformed before it is ever handed over.
func ValidateConfig(cfg *SiteConfig) error {
	validator := newConfigurationValidator(cfg)
	return validator.validate()
}

// configurationValidator coordinates validation across configuration domains.
type configurationValidator struct {
	config *SiteConfig
}

func newConfigurationValidator(config *SiteConfig) *configurationValidator {
	return &configurationValidator{config: config}
}

func (cv *configurationValidator) validate() error {
	if err := cv.validateProject(); err != nil {
		return err
	}
	if err := cv.validateExtensions(); err != nil {
		return err
	}
	if err := cv.validateHTML(); err != nil {
		return err
	}
	return cv.validatePaths()
}

func (cv *configurationValidator) validateProject() error {
	if strings.TrimSpace(cv.config.Project) == "" {
		return errors.New("project name cannot be empty")
	}
	for _, a := range cv.config.Authors {
		if strings.TrimSpace(a) == "" {
			return errors.New("author entries cannot be blank")
		}
	}
	return nil
}

func (cv *configurationValidator) validateExtensions() error {
	seen := make(map[string]bool)
	for _, ext := range cv.config.Extensions {
		if strings.TrimSpace(ext) == "" {
			return errors.New("extension identifier cannot be empty")
		}
		if seen[ext] {
			return fmt.Errorf("duplicate extension: %s", ext)
		}
		seen[ext] = true
	}
	return nil
}

func (cv *configurationValidator) validateHTML() error {
	if strings.TrimSpace(cv.config.HTMLTheme) == "" {
		return errors.New("html theme cannot be empty")
	}
	return cv.validatePathList("html_static_path", cv.config.HTMLStaticPath)
}

func (cv *configurationValidator) validatePaths() error {
	if err := cv.validatePathList("templates_path", cv.config.TemplatesPath); err != nil {
		return err
	}
	for _, pat := range cv.config.ExcludePatterns {
		if strings.TrimSpace(pat) == "" {
			return errors.New("exclude pattern cannot be blank")
		}
	}
	return nil
}

func (cv *configurationValidator) validatePathList(field string, paths []string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%s entries cannot be blank", field)
		}
	}
	return nil
}
