package imaging

// Package imaging turns uploaded bytes into favicon blobs: it decodes the
// upload into a SourceImage, rasterizes it into fixed-size squares with
// golang.org/x/image/draw, and encodes the squares as PNG or ICO.
