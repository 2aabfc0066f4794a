// Package organizer applies sort plans to disk and runs the reset and split
// maintenance operations.
//
// Every move is collision safe: a taken destination name gets a numeric
// suffix instead of being overwritten. The flip side is that reset is not a
// strict inverse of sort. A file renamed during flattening keeps its new
// name, so sorting again may bucket it under the suffixed filename.
//
// Per-file move failures are logged and counted in the Result rather than
// aborting, so one unreadable file never strands the rest of a batch.
//
// An Organizer assumes exclusive ownership of the directory for the length
// of one call. Concurrent sorts or a sort racing a reset against the same
// tree are not guarded and leave undefined results.
package organizer
