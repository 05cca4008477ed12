// Package witlayout extracts layout reports from WIT types per the
// Canonical ABI.
//
// The Component Model fixes the in-memory representation of every WIT type:
// primitives have size equal to alignment, records lay fields out
// sequentially with padding for alignment, variants place a discriminant
// before the largest payload case, and lists and strings are (pointer,
// length) pairs. Because the layout is fully determined by the spec, reports
// built here are the fixed, C-compatible layouts an FFI consumer sees in
// wasm32 linear memory.
//
// Layout reports are built for product types only: records and tuples.
// Variants, enums, flags, and other non-product shapes are rejected at this
// boundary with an unsupported-shape error.
//
// # Usage
//
//	res, err := wit.DecodeJSON(file) // wasm-tools component wit -j
//	calc := witlayout.NewCalculator()
//	report, err := calc.Report(typedef)
//
// Or enumerate every product type of a decoded document:
//
//	reports := witlayout.Reports(res)
package witlayout
