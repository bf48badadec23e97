// Package arch registers specialized kernels with the vx registry.
//
// Entries are registered per instruction set from build-tagged init()
// functions, mirroring how the portable and hardware paths relate: the
// portable cores in the vx package are the source of semantic truth, and
// everything registered here must be substitutable for them. Under the
// purego build tag this package registers nothing.
//
// The kernel bodies are concrete-typed Go, shaped one-per-instruction so
// an asm lowering can replace each body without touching the registry.
package arch
