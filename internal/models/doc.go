// Package models defines the data types flowing through the lbx conversion pipeline.
//
// The package contains two categories of types:
//
// 1. Input shapes: structs mirroring the ListenBrainz export JSON
//   - [ListenRecord] : one logged play with a timestamp and track metadata
//   - [TrackMetadata] : nullable track/artist/release names
//
// 2. Output shapes: what the CLI emits
//   - [Row] : the flat 4-tuple serialized as one TSV data line
//   - [Report] : accept/reject counts produced by the check command
//   - [Summary] : aggregate listen statistics produced by the stats command
//
// Nullable JSON fields are modeled as pointers. A nil pointer covers both an
// absent key and an explicit null; the two are deliberately not distinguished,
// because both mean the record is skipped.
package models
