// Package errors provides structured error types for the glulx-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The Error type includes context: location path, offending value,
// and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseExtract, errors.KindInvalidData).
//		Path("RIdx", "Exec").
//		Detail("resource offset beyond end of container").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadMagic(head)
//	err := errors.Truncated(errors.PhaseClassify, "image header", 7, 12)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
