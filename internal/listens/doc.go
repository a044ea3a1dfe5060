// Package listens owns ingest of ListenBrainz JSON exports: loading the whole
// document into memory, flattening records into output rows, and the
// corruption-marker filter.
//
// Filtering is deliberately two-tiered. Structural problems (unreadable file,
// invalid JSON, a record without a timestamp) are errors that abort the run.
// Per-record problems (null metadata, known mis-encoding markers) are expected
// noise in real exports and are skipped silently.
package listens
