// Package cpu implements the octo8 execution engine: register file, RAM,
// program counter and call stack, stack pointer, flags, the decoded
// instruction model, executor dispatch, instruction semantics, and the
// three-stage pipeline controller.
//
// The package does not parse assembly text and does not resolve labels;
// it consumes an already-decoded Program built by an external collaborator.
package cpu
