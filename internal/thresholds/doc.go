// Package thresholds derives category boundaries from numeric samples.
//
// Compute takes the values collected across a scan (durations in seconds,
// quality ratios) and returns the cutoffs that partition them into two or
// three buckets. Five methods are supported: fixed (boundaries come from
// configuration, Compute derives nothing), percentile, stddev, kmeans, and
// jenks. The statistical methods degrade predictably on thin input: kmeans
// reports empty cutoffs when the sample cannot separate, jenks delegates to
// the percentile split below 20 values, and both mark the Set with
// UsedFallback so planners can surface the substitution.
//
// The same Set feeds classify for label construction, so cutoff ordering is
// guaranteed non-decreasing whenever cutoffs are produced at all.
package thresholds
