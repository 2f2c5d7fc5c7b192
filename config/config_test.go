package config

import (
	"testing"
)

func TestValidateYAMLContent_AcceptsFullConfig(t *testing.T) {
	t.Parallel()

	content := []byte(`database:
  path: "/var/lib/clubroster/clubroster.db"
import:
  auto_process_after_upload: false
  uploaded_by: "state-admin"
`)

	cfg, err := ValidateYAMLContent(content)
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Database.Path != "/var/lib/clubroster/clubroster.db" {
		t.Fatalf("unexpected database path: %q", cfg.Database.Path)
	}
	if cfg.Import.AutoProcessAfterUpload {
		t.Fatalf("expected auto_process_after_upload to be false")
	}
	if cfg.Import.UploadedBy != "state-admin" {
		t.Fatalf("unexpected uploaded_by: %q", cfg.Import.UploadedBy)
	}
}

func TestValidateYAMLContent_AppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ValidateYAMLContent([]byte(`import:
  uploaded_by: "admin"
`))
	if err != nil {
		t.Fatalf("expected config to validate: %v", err)
	}
	if cfg.Database.Path != "./clubroster.db" {
		t.Fatalf("expected default database path, got %q", cfg.Database.Path)
	}
	if !cfg.Import.AutoProcessAfterUpload {
		t.Fatalf("expected auto_process_after_upload default true")
	}
}

func TestValidateYAMLContent_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte("database: [broken")); err == nil {
		t.Fatalf("expected error for malformed YAML")
	}
}

func TestExampleYAML_Validates(t *testing.T) {
	t.Parallel()

	if _, err := ValidateYAMLContent([]byte(ExampleYAML())); err != nil {
		t.Fatalf("expected example config to validate: %v", err)
	}
}
