// Package kernel contains shared value objects used across aggregates:
// identifiers and other primitives with no lifecycle of their own.
package kernel
