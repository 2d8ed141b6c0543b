package export

import (
	"context"
	"time"

	"github.com/ytget/favicon-maker/internal/model"
)

// Exporter defines the interface for the export service.
type Exporter interface {
	SetUpdateCallback(func(*model.ExportTask))
	ExportSingle(ctx context.Context, spec model.ExportSpec) (*model.ExportTask, error)
	ExportAll(ctx context.Context) (*model.ExportTask, error)
	GetTask(id string) (*model.ExportTask, bool)
	GetAllTasks() []*model.ExportTask

	// SetTimeout bounds every subsequent export
	SetTimeout(timeout time.Duration)
}

// SourceProvider exposes the current source image, if one is loaded
type SourceProvider interface {
	Source() (*model.SourceImage, bool)
}

// Sink delivers a finished asset to the user and reports where it went
type Sink interface {
	Deliver(ctx context.Context, asset model.EncodedAsset) (string, error)
}
