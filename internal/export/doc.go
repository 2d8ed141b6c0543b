package export

// Package export drives the favicon pipeline for the current source image:
// rasterize, encode, optionally bundle into an archive, and hand the result
// to a Sink. Each export is tracked as a model.ExportTask so the UI can show
// a history, and each runs under a deadline.
