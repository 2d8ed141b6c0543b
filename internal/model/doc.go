package model

// Package model defines domain data structures used across the app: export
// specs, decoded source images, encoded assets, export tasks and status enums.
// Structures are designed for direct binding in the UI and explicit state
// transitions.
