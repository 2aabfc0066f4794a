// Package preflight provides readiness checks for the paths and external
// tools a sorting run depends on.
//
// The doctor command renders every check so a missing source directory or
// an absent ffprobe binary is diagnosed up front instead of failing half
// way through a batch.
package preflight
