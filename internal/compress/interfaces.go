package compress

import (
	"context"

	"github.com/ytget/favicon-maker/internal/model"
)

// Archiver defines the interface for the archive service.
type Archiver interface {
	Build(ctx context.Context, assets []model.EncodedAsset) ([]byte, error)
}
