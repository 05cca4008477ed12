package typelayout

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

const paddingLabel = "[padding]"

const (
	offsetHeader = "Offset"
	nameHeader   = "Name"
	sizeHeader   = "Size"
)

// String renders the report as a fixed-width table, one row per field with
// synthetic "[padding]" rows wherever the field spans leave gaps.
func (r *Report) String() string {
	var b strings.Builder
	r.WriteTable(&b)
	return b.String()
}

// WriteTable writes the layout table to w. The output is deterministic:
// fields are sorted by ascending offset (stable on ties) before rendering,
// so pre-shuffled input produces identical text.
//
// WriteTable does not validate the report. Overlapping or out-of-bounds
// field spans render mechanically rather than failing; correctness of the
// input is the extraction side's contract.
func (r *Report) WriteTable(w io.Writer) error {
	fields := make([]Field, len(r.Fields))
	copy(fields, r.Fields)
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Offset < fields[j].Offset
	})

	rows := buildRows(fields, r.Size)

	// The name column reserves room for the "[padding]" label only when the
	// field sizes don't cover the total size. The width is fixed here, before
	// the padding rows are walked.
	var declared uint64
	for _, f := range fields {
		declared += f.Size
	}

	longestName := 1
	if len(fields) > 0 {
		longestName = 0
		for _, f := range fields {
			if len(f.Name) > longestName {
				longestName = len(f.Name)
			}
		}
	}
	if declared < r.Size && longestName < len(paddingLabel) {
		longestName = len(paddingLabel)
	}

	widths := rowWidths{
		offset: len(offsetHeader),
		name:   max(longestName, len(nameHeader)),
		size:   len(sizeHeader),
	}
	for _, row := range rows {
		if len(row[0]) > widths.offset {
			widths.offset = len(row[0])
		}
		if len(row[2]) > widths.size {
			widths.size = len(row[2])
		}
	}

	if _, err := fmt.Fprintf(w, "%s (size %d, alignment %d)\n", r.TypeName, r.Size, r.Alignment); err != nil {
		return err
	}
	if err := writeRow(w, widths, offsetHeader, nameHeader, sizeHeader); err != nil {
		return err
	}
	err := writeRow(w, widths,
		strings.Repeat("-", widths.offset),
		strings.Repeat("-", widths.name),
		strings.Repeat("-", widths.size))
	if err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeRow(w, widths, row[0], row[1], row[2]); err != nil {
			return err
		}
	}
	return nil
}

// buildRows walks the sorted fields with a covered-offset cursor, emitting a
// padding row before any field that starts past the cursor and a tail padding
// row if the cursor ends short of the total size (over-aligned types).
func buildRows(fields []Field, size uint64) [][3]string {
	rows := make([][3]string, 0, 2*len(fields)+1)

	var covered uint64
	for _, f := range fields {
		if f.Offset > covered {
			rows = append(rows, [3]string{
				formatU64(covered),
				paddingLabel,
				formatU64(f.Offset - covered),
			})
		}
		rows = append(rows, [3]string{
			formatU64(f.Offset),
			f.Name,
			formatU64(f.Size),
		})
		covered = f.Offset + f.Size
	}

	if covered < size {
		rows = append(rows, [3]string{
			formatU64(covered),
			paddingLabel,
			formatU64(size - covered),
		})
	}
	return rows
}

type rowWidths struct {
	offset int
	name   int
	size   int
}

func writeRow(w io.Writer, widths rowWidths, offset, name, size string) error {
	_, err := fmt.Fprintf(w, "| %-*s | %-*s | %-*s |\n",
		widths.offset, offset,
		widths.name, name,
		widths.size, size)
	return err
}

func formatU64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
