// Package typelayout reports the compiled in-memory layout of structured types.
//
// For a given type it describes the total size, minimum alignment, and every
// declared field's name, type, byte size, and byte offset, plus any padding
// bytes the compiler inserted between or after fields. The intended audience
// is anyone verifying FFI struct compatibility, binary serialization formats,
// or struct packing.
//
// # Architecture Overview
//
// The library is organized into a small set of packages:
//
//	typelayout/          Root package with the Report/Field model and renderer
//	├── inspect/         Reflection-based layout extraction for Go types
//	├── witlayout/       Canonical ABI layout extraction for WIT types
//	├── errors/          Structured error types for debugging
//	└── cmd/layout/      CLI for reporting layouts from WIT documents
//
// # Quick Start
//
// Inspect a Go struct and print its layout:
//
//	report, err := inspect.Of[Header]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(report)
//	// Header (size 8, alignment 4)
//	// | Offset | Name      | Size |
//	// | ------ | --------- | ---- |
//	// | 0      | a         | 1    |
//	// | 1      | [padding] | 3    |
//	// | 4      | b         | 4    |
//
// # Model
//
// Report is a plain immutable snapshot: extraction constructs it once and the
// renderer only reads it. The renderer is a total function over its input;
// it never validates field spans and renders malformed reports mechanically.
//
// # Structured Export
//
// Report and Field carry JSON tags so a layout can be exported for machine
// consumption (for example, diffing layouts across builds):
//
//	data, _ := json.MarshalIndent(report, "", "  ")
package typelayout
