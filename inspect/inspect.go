package inspect

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/layoutkit/typelayout"
	"github.com/layoutkit/typelayout/errors"
)

// Reports are cached per reflect.Type; a type's layout is fixed for the
// lifetime of the process. Cached reports are shared and must be treated
// as read-only.
var cache sync.Map // reflect.Type -> *typelayout.Report

// Of returns the layout report for the type T.
func Of[T any]() (*typelayout.Report, error) {
	return TypeOf(reflect.TypeOf((*T)(nil)).Elem())
}

// Inspect returns the layout report for the dynamic type of v.
// Pointer values are dereferenced to their element type.
func Inspect(v any) (*typelayout.Report, error) {
	if v == nil {
		return nil, errors.NilPointer(errors.PhaseInspect, "value cannot be nil")
	}

	t := reflect.TypeOf(v)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return TypeOf(t)
}

// TypeOf returns the layout report for t, which must be a struct type.
func TypeOf(t reflect.Type) (*typelayout.Report, error) {
	if t == nil {
		return nil, errors.NilPointer(errors.PhaseInspect, "type cannot be nil")
	}
	if t.Kind() != reflect.Struct {
		return nil, errors.New(errors.PhaseInspect, errors.KindUnsupportedShape).
			TypeName(t.String()).
			Detail("%s is not an ordered-field product type", t.Kind()).
			Build()
	}

	if cached, ok := cache.Load(t); ok {
		return cached.(*typelayout.Report), nil
	}

	report := build(t)
	cache.Store(t, report)

	debugf("inspected %s: size=%d align=%d fields=%d",
		report.TypeName, report.Size, report.Alignment, len(report.Fields))
	return report, nil
}

func build(t reflect.Type) *typelayout.Report {
	name := t.Name()
	if name == "" {
		name = t.String()
	}

	report := &typelayout.Report{
		TypeName:      name,
		Size:          uint64(t.Size()),
		Alignment:     uint64(t.Align()),
		GenericParams: typeParams(name),
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)

		fieldName := f.Name
		if fieldName == "_" {
			// Blank fields have no identifier; report the field index.
			fieldName = strconv.Itoa(i)
		}

		report.Fields = append(report.Fields, typelayout.Field{
			Name:     fieldName,
			TypeName: f.Type.String(),
			Size:     uint64(f.Type.Size()),
			Offset:   uint64(f.Offset),
		})
	}
	return report
}

// typeParams extracts the instantiation arguments from a generic type's
// display name, e.g. "Pair[int,string]" yields ["int", "string"]. The
// results are display strings only.
func typeParams(name string) []string {
	open := strings.IndexByte(name, '[')
	if open < 0 || !strings.HasSuffix(name, "]") {
		return nil
	}

	inner := name[open+1 : len(name)-1]
	if inner == "" {
		return nil
	}

	var params []string
	depth := 0
	start := 0
	for i := 0; i < len(inner); i++ {
		switch inner[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(inner[start:i]))
				start = i + 1
			}
		}
	}
	params = append(params, strings.TrimSpace(inner[start:]))
	return params
}
