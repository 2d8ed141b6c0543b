package platform

// Package platform contains OS integration: filesystem helpers, delivery of
// exported files into a directory, source file watching, and OS open/reveal.
