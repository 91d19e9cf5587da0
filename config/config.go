// Package config loads and validates the orchestrator configuration (§6):
// the set of keys that tell the CLI which RETW files to ingest and where
// to write intermediate output, plus the opaque collaborator sections
// (generator/publisher/devops) the core never interprets itself.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrValidation wraps a *validator.ValidationErrors so callers can branch
// with errors.Is without depending on the validator package directly.
var ErrValidation = errors.New("config: validation failed")

// PowerDesigner names the PowerDesigner LDM export files to extract from.
type PowerDesigner struct {
	Folder string   `yaml:"folder" validate:"required"`
	Files  []string `yaml:"files" validate:"required,min=1"`
}

// Extractor controls where extracted RETW JSON files are read from.
// Folder defaults to "RETW" when the key is absent from the document.
type Extractor struct {
	Folder string `yaml:"folder"`
}

// Generator configures DDL/code generation; opaque beyond the keys the
// original tooling happens to name, never interpreted by the core graph.
type Generator struct {
	Folder            string `yaml:"folder"`
	TemplatesPlatform string `yaml:"templates_platform"`
	CreatedDDLsJSON   string `yaml:"created_ddls_json"`
}

// Config is the full orchestrator configuration document (§6). Publisher
// and DevOps are collaborator-specific and deliberately untyped: the core
// never reads their contents, only threads them through to the CLI's
// external collaborators.
type Config struct {
	Title                  string         `yaml:"title" validate:"required"`
	FolderIntermediateRoot string         `yaml:"folder_intermediate_root" validate:"required"`
	PowerDesigner          PowerDesigner  `yaml:"power_designer" validate:"required"`
	Extractor              Extractor      `yaml:"extractor"`
	Generator              Generator      `yaml:"generator"`
	Publisher              map[string]any `yaml:"publisher"`
	DevOps                 map[string]any `yaml:"devops"`
}

const defaultExtractorFolder = "RETW"

// Load reads and validates the configuration document at path. It applies
// defaulting (Extractor.Folder -> "RETW" when empty) before running struct
// validation, mirroring the original's read-with-default-then-validate
// sequence rather than baking defaults into the zero value.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	if cfg.Extractor.Folder == "" {
		cfg.Extractor.Folder = defaultExtractorFolder
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrValidation, err)
	}

	return &cfg, nil
}
