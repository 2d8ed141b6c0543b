package export

import (
	"context"
	"fmt"
	"image"

	"golang.org/x/sync/errgroup"

	"github.com/ytget/favicon-maker/internal/imaging"
	"github.com/ytget/favicon-maker/internal/model"
)

// Render rasterizes src to spec.TargetSize and encodes it as spec.Format
func Render(ctx context.Context, src image.Image, spec model.ExportSpec) (model.EncodedAsset, error) {
	surface, err := imaging.Rasterize(src, spec.TargetSize)
	if err != nil {
		return model.EncodedAsset{}, fmt.Errorf("failed to render %s: %w", spec.OutputName, err)
	}
	return imaging.Encode(ctx, surface, spec.Format, spec.OutputName)
}

// RenderAll renders every spec concurrently. Results keep the order of
// specs; the first failure cancels the rest and is returned.
func RenderAll(ctx context.Context, src image.Image, specs []model.ExportSpec) ([]model.EncodedAsset, error) {
	return renderAll(ctx, src, specs, Render)
}

type renderFunc func(ctx context.Context, src image.Image, spec model.ExportSpec) (model.EncodedAsset, error)

func renderAll(ctx context.Context, src image.Image, specs []model.ExportSpec, render renderFunc) ([]model.EncodedAsset, error) {
	assets := make([]model.EncodedAsset, len(specs))

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range specs {
		g.Go(func() error {
			asset, err := render(gctx, src, spec)
			if err != nil {
				return err
			}
			assets[i] = asset
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return assets, nil
}
