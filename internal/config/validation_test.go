package config

import "testing"

func TestValidateDefaultConfig(t *testing.T) {
	cfg := Default()
	if err := ValidateConfig(&cfg); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
}

func TestValidateRejectsDuplicateExtensions(t *testing.T) {
	cfg := Default()
	cfg.Extensions = []string{"sphinx_needs", "sphinx_needs"}
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatal("expected duplicate extension error")
	}
}

func TestValidateRejectsEmptyExtensionIdentifier(t *testing.T) {
	cfg := Default()
	cfg.Extensions = []string{"sphinx_needs", "  "}
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatal("expected empty extension identifier error")
	}
}

func TestValidateRejectsEmptyProject(t *testing.T) {
	cfg := Default()
	cfg.Project = ""
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatal("expected empty project error")
	}
}

func TestValidateRejectsEmptyTheme(t *testing.T) {
	cfg := Default()
	cfg.HTMLTheme = " "
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatal("expected empty theme error")
	}
}

func TestValidateRejectsBlankPathEntries(t *testing.T) {
	cfg := Default()
	cfg.TemplatesPath = []string{""}
	if err := ValidateConfig(&cfg); err == nil {
		t.Fatal("expected blank templates_path entry error")
	}
}
