package glulxruntime

// Allocator is the heap allocation contract the VM core depends on.
// It follows ANSI realloc semantics: failures are signaled by a nil
// return, never a panic, and a failed Realloc leaves the original
// allocation and its contents untouched.
type Allocator interface {
	Alloc(size uint32) []byte
	Realloc(buf []byte, size uint32) []byte
	Free(buf []byte)
}

// RandomSource produces 32-bit values for the VM's random opcodes.
// Implementations are total: every call yields a value, never an error.
type RandomSource interface {
	Seed(seed uint32)
	Uint32() uint32
}
