// Package logging provides slog helpers shared across the codebase.
//
// It defines the attribute keys used in log output so that the same
// concept is always logged under the same name, plus small constructor
// helpers (Operation, Tool, Err, ...) to reduce repetition at call sites.
package logging
