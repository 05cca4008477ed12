// Package errors provides structured error types for the typelayout library.
//
// Errors are categorized by Phase (which extraction surface the error came
// from) and Kind (error category). The Error type includes rich context: the
// offending type's name, a field path, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseInspect, errors.KindUnsupportedShape).
//		TypeName("map[string]int").
//		Detail("map types have no fixed field layout").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedShape(errors.PhaseWIT, "color", "enum types are not product types")
//	err := errors.NotFound(errors.PhaseWIT, "type", "point")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
