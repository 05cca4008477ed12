package typelayout

import (
	"sort"

	"github.com/layoutkit/typelayout/errors"
)

// Field describes one declared field of a structured type.
// For unnamed or positional fields, Name is the zero-based index rendered
// as a decimal string.
type Field struct {
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
	Size     uint64 `json:"size"`
	Offset   uint64 `json:"offset"`
}

// Report is the layout snapshot of one inspected type.
//
// It is a plain record: extraction fills it in once and nothing mutates it
// afterward. Fields may arrive in any order; the renderer sorts by offset
// before display. TypeName and the per-field type names are best-effort
// display strings and must never be parsed back.
type Report struct {
	TypeName  string  `json:"type_name"`
	Size      uint64  `json:"size"`
	Alignment uint64  `json:"alignment"`
	Fields    []Field `json:"fields"`

	// GenericParams holds one display string per type parameter the type
	// was instantiated with. Informational only.
	GenericParams []string `json:"generic_parameters"`
}

// Validate checks that all field spans lie within the type's total size and
// that no two spans overlap. The renderer never calls this; rendering a
// malformed report produces inconsistent rows rather than an error. Validate
// is for callers that want to fail fast on a broken extraction instead.
func (r *Report) Validate() error {
	fields := make([]Field, len(r.Fields))
	copy(fields, r.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Offset < fields[j].Offset
	})

	var covered uint64
	for _, f := range fields {
		if f.Offset+f.Size > r.Size {
			return errors.New(errors.PhaseRender, errors.KindMalformedReport).
				TypeName(r.TypeName).
				Path(f.Name).
				Detail("field spans [%d, %d) outside type size %d", f.Offset, f.Offset+f.Size, r.Size).
				Build()
		}
		if f.Offset < covered {
			return errors.New(errors.PhaseRender, errors.KindMalformedReport).
				TypeName(r.TypeName).
				Path(f.Name).
				Detail("field at offset %d overlaps the previous field ending at %d", f.Offset, covered).
				Build()
		}
		covered = f.Offset + f.Size
	}
	return nil
}
