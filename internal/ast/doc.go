// Package ast defines the document tree produced by the parser.
//
// The tree is a pure value: every node exclusively owns its children, there
// are no back references, and nothing is mutated after the parser returns.
// Block and Run are closed sum types; the set of implementations below is
// exhaustive and consumers are expected to switch over all of them.
package ast
