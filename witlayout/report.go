package witlayout

import (
	"strconv"

	"github.com/layoutkit/typelayout"
	"github.com/layoutkit/typelayout/errors"
	"github.com/layoutkit/typelayout/witlayout/internal/abi"
	"go.bytecodealliance.org/wit"
)

// Report builds a layout report for a record or tuple typedef. Other shapes
// (variants, enums, flags, aliases of primitives) are not product types and
// return an unsupported-shape error; a report never exists for them.
func (c *Calculator) Report(td *wit.TypeDef) (*typelayout.Report, error) {
	if td == nil {
		return nil, errors.NilPointer(errors.PhaseWIT, "typedef cannot be nil")
	}

	name := TypeName(td)

	switch kind := td.Kind.(type) {
	case *wit.Record:
		return c.recordReport(td, name, kind), nil

	case *wit.Tuple:
		return c.tupleReport(td, name, kind), nil

	case *wit.TypeDef:
		// Alias to another typedef: report the target's layout under the
		// alias's own name when it has one.
		report, err := c.Report(kind)
		if err != nil {
			return nil, err
		}
		if td.Name != nil {
			aliased := *report
			aliased.TypeName = *td.Name
			return &aliased, nil
		}
		return report, nil

	default:
		return nil, errors.New(errors.PhaseWIT, errors.KindUnsupportedShape).
			TypeName(name).
			Detail("%s is not an ordered-field product type", kindName(td.Kind)).
			Build()
	}
}

func (c *Calculator) recordReport(td *wit.TypeDef, name string, r *wit.Record) *typelayout.Report {
	info := c.Calculate(td)
	report := &typelayout.Report{
		TypeName:  name,
		Size:      uint64(info.Size),
		Alignment: uint64(info.Align),
	}

	offset := uint32(0)
	for _, field := range r.Fields {
		fieldLayout := c.Calculate(field.Type)
		offset = abi.AlignTo(offset, fieldLayout.Align)

		report.Fields = append(report.Fields, typelayout.Field{
			Name:     field.Name,
			TypeName: TypeName(field.Type),
			Size:     uint64(fieldLayout.Size),
			Offset:   uint64(offset),
		})
		offset += fieldLayout.Size
	}

	debugf("reported record %s: size=%d align=%d fields=%d",
		name, report.Size, report.Alignment, len(report.Fields))
	return report
}

func (c *Calculator) tupleReport(td *wit.TypeDef, name string, t *wit.Tuple) *typelayout.Report {
	info := c.Calculate(td)
	report := &typelayout.Report{
		TypeName:  name,
		Size:      uint64(info.Size),
		Alignment: uint64(info.Align),
	}

	offset := uint32(0)
	for i, typ := range t.Types {
		elemLayout := c.Calculate(typ)
		offset = abi.AlignTo(offset, elemLayout.Align)

		report.Fields = append(report.Fields, typelayout.Field{
			Name:     strconv.Itoa(i),
			TypeName: TypeName(typ),
			Size:     uint64(elemLayout.Size),
			Offset:   uint64(offset),
		})
		offset += elemLayout.Size
	}

	debugf("reported tuple %s: size=%d align=%d elements=%d",
		name, report.Size, report.Alignment, len(report.Fields))
	return report
}

// Reports builds layout reports for every named product typedef in a decoded
// WIT document, in document order. Non-product typedefs are skipped.
func Reports(res *wit.Resolve) []*typelayout.Report {
	calc := NewCalculator()

	var reports []*typelayout.Report
	for _, td := range res.TypeDefs {
		if td.Name == nil {
			continue
		}
		report, err := calc.Report(td)
		if err != nil {
			continue
		}
		reports = append(reports, report)
	}
	return reports
}

// Lookup builds the layout report for the named typedef of a decoded
// WIT document.
func Lookup(res *wit.Resolve, name string) (*typelayout.Report, error) {
	calc := NewCalculator()

	for _, td := range res.TypeDefs {
		if td.Name != nil && *td.Name == name {
			return calc.Report(td)
		}
	}
	return nil, errors.NotFound(errors.PhaseWIT, "type", name)
}
