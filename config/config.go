package config

import (
	"bytes"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	KeyDatabasePath      = "database.path"
	KeyImportAutoProcess = "import.auto_process_after_upload"
	KeyImportUploadedBy  = "import.uploaded_by"
)

type Config struct {
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Import   ImportConfig   `mapstructure:"import"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type ImportConfig struct {
	AutoProcessAfterUpload bool   `mapstructure:"auto_process_after_upload"`
	UploadedBy             string `mapstructure:"uploaded_by"`
}

// SetDefaults sets default values if not provided
func SetDefaults() {
	setDefaults(viper.GetViper())
}

// LoadAndValidate loads config from Viper and validates it
func LoadAndValidate() (*Config, error) {
	return loadAndValidateFromViper(viper.GetViper())
}

// ValidateYAMLContent validates configuration from raw YAML content.
func ValidateYAMLContent(content []byte) (*Config, error) {
	local := viper.New()
	setDefaults(local)
	local.SetConfigType("yaml")
	if err := local.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("read config content: %w", err)
	}
	return loadAndValidateFromViper(local)
}

// ExampleYAML returns the default configuration template.
func ExampleYAML() string {
	return `# clubroster configuration
database:
  path: "./clubroster.db"

import:
  auto_process_after_upload: true
  uploaded_by: ""
`
}

func loadAndValidateFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyDatabasePath, "./clubroster.db")
	v.SetDefault(KeyImportAutoProcess, true)
	v.SetDefault(KeyImportUploadedBy, "")
}
