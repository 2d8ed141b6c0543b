package session

// Package session holds the single current upload and its lifecycle:
// Empty until an image decodes, Loaded until it is cleared. A successful
// upload replaces the previous source entirely and refreshes the live preview.
