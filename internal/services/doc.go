// Package services defines shared utilities consumed by the sorting engine
// and the CLI commands that drive it.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and sort dimensions so log
//     lines from one invocation can be correlated.
//   - Structured error markers plus the Wrap helper that keep failure
//     classification consistent across probing, planning, and file moves.
//
// Use these helpers when wiring new commands so operational behaviour (error
// handling, observability, exit codes) stays uniform across the tool.
package services
