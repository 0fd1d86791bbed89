// Package cart defines the bytecode engine contract the console core
// runs carts against, plus a concrete container format for packaging a
// compiled guest program on disk.
//
// The bytecode engine itself — whatever VM actually executes guest
// code — is an external collaborator; this package only describes its
// contract (Engine) and ships a minimal reference implementation for
// exercising the rest of the runtime without a real compiler toolchain.
package cart

import "nitrocart/internal/memory"

// Engine is the bytecode engine contract the console core requires: it
// must be able to instantiate a module against a shared linear memory
// and a table of named host functions, then invoke the guest's
// exported entry points.
type Engine interface {
	// Instantiate loads program bytes as a module sharing mem for its
	// linear memory, with imports available as named host functions.
	Instantiate(program []byte, mem *memory.Memory, imports map[string]HostFunc) error
	// Start invokes the guest's exported start function, if present. A
	// missing export is a no-op, not an error.
	Start() error
	// Update invokes the guest's exported update function, if present.
	Update() error
}

// HostFunc is a single named host-call import, as seen by the engine.
// Arguments and results are raw i32/i64/f32/f64 words in wasm calling
// convention order; the hostcall dispatcher is responsible for giving
// each import the right arity for its own signature.
type HostFunc func(args []uint64) []uint64
