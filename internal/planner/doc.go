// Package planner resolves category boundaries for an analyzed batch and
// assigns every video a destination folder. The resulting plan separates the
// decision of where files go from the act of moving them, so the same plan
// can back a dry-run preview or a live sort.
package planner
