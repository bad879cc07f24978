// Package orchestrator wires the descriptor → transformer → slug fill →
// validation → renderer pipeline behind a single entry point used by the CLI
// and by callers embedding the form tooling.
package orchestrator
