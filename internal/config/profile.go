package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/favicon-maker/internal/model"
)

// Profile holds command-line export settings read from a YAML file
type Profile struct {
	OutputDir      string `yaml:"output_dir"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Bundle         bool   `yaml:"bundle"`
	Overwrite      bool   `yaml:"overwrite"`
	Sizes          []int  `yaml:"sizes"` // single exports when not bundling; empty means all
}

// DefaultProfile returns the profile used when no file is given
func DefaultProfile() *Profile {
	return &Profile{
		OutputDir:      ".",
		TimeoutSeconds: DefaultExportTimeoutSeconds,
		Bundle:         true,
	}
}

// LoadProfile reads and parses a profile file. Missing keys keep their defaults.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	p := DefaultProfile()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}

	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	return p, nil
}

// Validate checks the profile against the supported export sizes and limits
func (p *Profile) Validate() error {
	if p.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	if p.TimeoutSeconds < MinExportTimeoutSeconds || p.TimeoutSeconds > MaxExportTimeoutSeconds {
		return fmt.Errorf("timeout_seconds must be between %d and %d, got %d",
			MinExportTimeoutSeconds, MaxExportTimeoutSeconds, p.TimeoutSeconds)
	}
	for _, size := range p.Sizes {
		if _, ok := model.FindExportSpec(size); !ok {
			return fmt.Errorf("unsupported size %d, expected one of %v", size, model.ExportSizes())
		}
	}
	return nil
}

// Timeout returns the export timeout as a duration
func (p *Profile) Timeout() time.Duration {
	return time.Duration(p.TimeoutSeconds) * time.Second
}

// Specs returns the export specs selected by Sizes, in default spec order
func (p *Profile) Specs() []model.ExportSpec {
	if len(p.Sizes) == 0 {
		return model.DefaultExportSpecs()
	}

	specs := make([]model.ExportSpec, 0, len(p.Sizes))
	for _, spec := range model.DefaultExportSpecs() {
		for _, size := range p.Sizes {
			if spec.TargetSize == size {
				specs = append(specs, spec)
				break
			}
		}
	}
	return specs
}
