package ui

import (
	"context"

	"github.com/ytget/favicon-maker/internal/config"
	"github.com/ytget/favicon-maker/internal/model"
	"github.com/ytget/favicon-maker/internal/platform"
)

// SettingsSink delivers into the output directory currently configured in settings
type SettingsSink struct {
	settings *config.Settings
}

// NewSettingsSink creates a sink that follows settings changes
func NewSettingsSink(settings *config.Settings) *SettingsSink {
	return &SettingsSink{settings: settings}
}

// Deliver writes asset into the configured output directory
func (s *SettingsSink) Deliver(ctx context.Context, asset model.EncodedAsset) (string, error) {
	sink := &platform.DirectorySink{
		Dir:       s.settings.GetOutputDirectory(),
		Overwrite: s.settings.GetOverwriteExisting(),
	}
	return sink.Deliver(ctx, asset)
}
