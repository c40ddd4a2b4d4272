// Package osdep is the OS shim between the VM core and the host runtime:
// heap allocation with ANSI realloc semantics, a comparison-sort
// passthrough, and a power function that handles the numeric edge cases
// some libm implementations get wrong.
//
// The shim exists so the VM core never calls the host runtime directly.
// None of it is algorithmically interesting; the contracts are what
// matter. Allocation failure is signaled by a nil sentinel, never a
// panic, and a failed Realloc leaves the original block and its contents
// byte-for-byte intact so the core can retry or abort cleanly.
package osdep
