// Package analyze scans a directory for video files and probes their
// metadata. Scanning is non-recursive and deterministic: files are visited
// in sorted filename order and probed one at a time, so two scans of an
// unchanged directory produce identical batches. The Batch it returns feeds
// the planner's threshold samples and the scan table.
package analyze
