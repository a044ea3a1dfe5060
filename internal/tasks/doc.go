// Package tasks implements the operations behind the CLI commands: the
// convert pipeline and its check/stats companions. Each operation makes a
// single pass over a fully loaded document; there is no cross-record state
// beyond preserving input order.
package tasks
