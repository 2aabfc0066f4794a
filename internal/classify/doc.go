// Package classify maps numeric video attributes onto named category
// buckets. It owns the bucket boundary rule (lower-inclusive upper bound)
// and the label naming scheme that embeds boundary values into folder-safe
// names like short_under_60s or high_over_100pct.
package classify
