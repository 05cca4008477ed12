// Package inspect extracts layout reports from Go types via reflection.
//
// Size, alignment, and per-field offsets are read straight from the runtime's
// own layout computation (reflect.Type.Size, reflect.Type.Align,
// reflect.StructField.Offset) and are never recomputed or simulated. Reported
// values therefore always reflect the layout on the machine performing the
// inspection.
//
// Only struct types are supported. Interfaces, maps, channels, and other
// non-product kinds have no ordered field layout and return an
// unsupported-shape error at this boundary.
//
// # Usage
//
//	report, err := inspect.Of[Header]()
//	report, err := inspect.Inspect(&value)
//	report, err := inspect.TypeOf(reflect.TypeOf(value))
//
// A Registry provides an explicit opt-in table of inspectable types so tools
// can enumerate and look up layouts by name:
//
//	reg := inspect.NewRegistry()
//	inspect.Register[Header](reg)
//	report, err := reg.Lookup("Header")
package inspect
