// Package textutil provides small text helpers: sanitizing path segments
// for safe filesystem use and a generic conditional.
package textutil
