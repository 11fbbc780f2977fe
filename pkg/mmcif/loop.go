package mmcif

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
)

const (
	MissingValue = "?" // value not known
	DefaultValue = "." // value deliberately left out
	LoopStart    = "loop_"
	LoopEnd      = "#"
)

// Schema is a category and its field names, in the order they are
// written. The header and every row are written from the same Schema,
// so they cannot disagree.
type Schema struct {
	Category string // with the leading underscore, like "_atom_site"
	Fields   []string
}

// Header returns the loop_ line and one line per field.
func (s Schema) Header() string {
	var b bytes.Buffer
	s.writeHeader(&b)
	return b.String()
}

func (s Schema) writeHeader(b *bytes.Buffer) {
	b.WriteString(LoopStart + "\n")
	for _, f := range s.Fields {
		b.WriteString(s.Category)
		b.WriteByte('.')
		b.WriteString(f)
		b.WriteByte('\n')
	}
}

// Record is one row of a loop. Field(i) gives the value for the i'th
// field of the Schema it is written with. An error means the one
// field could not be read. It will be written as MissingValue.
type Record interface {
	Len() int
	Field(i int) (string, error)
}

// Row is a Record for when there is no dedicated type. Values may be
// nil (missing), strings or anything with a String method.
type Row []any

func (r Row) Len() int { return len(r) }

func (r Row) Field(i int) (string, error) {
	switch v := r[i].(type) {
	case nil:
		return MissingValue, nil
	case string:
		if v == "" { // an empty token cannot be written
			return MissingValue, nil
		}
		return v, nil
	case fmt.Stringer:
		return v.String(), nil
	default:
		return MissingValue, &FieldAccessError{Field: i, Type: fmt.Sprintf("%T", v)}
	}
}

// fieldName is only for messages. names may be nil.
func fieldName(names []string, i int) any {
	if i < len(names) {
		return names[i]
	}
	return i
}

// quoteAll checks that all records are the same shape and returns the
// quoted value of every field. This is the first pass. names is only
// used for log messages.
func quoteAll(recs []Record, names []string) ([][]string, error) {
	if len(recs) == 0 {
		return nil, ErrEmptyInput
	}
	n := recs[0].Len()
	ret := make([][]string, len(recs))
	for i, r := range recs {
		if r.Len() != n {
			return nil, &ShapeMismatchError{Index: i, Want: n, Got: r.Len()}
		}
		row := make([]string, n)
		for j := range row {
			v, err := r.Field(j)
			if err != nil {
				slog.Warn("cannot read field, writing missing value",
					"record", i, "field", fieldName(names, j), "error", err)
				v = MissingValue
			}
			row[j] = Quote(v)
		}
		ret[i] = row
	}
	return ret, nil
}

// sizesOf gives the widest value in each column. Nothing is narrower
// than a missing value.
func sizesOf(quoted [][]string) []int {
	sizes := make([]int, len(quoted[0]))
	for _, row := range quoted {
		for j, v := range row {
			if len(v) > sizes[j] {
				sizes[j] = len(v)
			}
		}
	}
	for j := range sizes {
		if sizes[j] < len(MissingValue) {
			sizes[j] = len(MissingValue)
		}
	}
	return sizes
}

// ColumnSizes returns, for each field position, the length of the
// longest quoted value over all records.
func ColumnSizes(recs []Record) ([]int, error) {
	quoted, err := quoteAll(recs, nil)
	if err != nil {
		return nil, err
	}
	return sizesOf(quoted), nil
}

// render writes the whole loop to b. Shapes have been checked.
func render(b *bytes.Buffer, schema Schema, quoted [][]string, sizes []int) {
	schema.writeHeader(b)
	for _, row := range quoted {
		for j, v := range row {
			fmt.Fprintf(b, "%-*s ", sizes[j], v)
		}
		b.WriteByte('\n')
	}
	b.WriteString(LoopEnd + "\n")
}

// checkShape makes sure the records and sizes fit the schema.
func checkShape(schema Schema, recs []Record, sizes []int) error {
	if len(recs) == 0 {
		return ErrEmptyInput
	}
	nf := len(schema.Fields)
	if len(sizes) != nf {
		return &ShapeMismatchError{Index: -1, Want: nf, Got: len(sizes)}
	}
	for i, r := range recs {
		if r.Len() != nf {
			return &ShapeMismatchError{Index: i, Want: nf, Got: r.Len()}
		}
	}
	return nil
}

// WriteLoop writes the schema header, one row per record padded to
// sizes, and the end marker. If anything is wrong with the shape of
// the input, nothing is written.
func WriteLoop(w io.Writer, schema Schema, recs []Record, sizes []int) error {
	if err := checkShape(schema, recs, sizes); err != nil {
		return err
	}
	quoted, err := quoteAll(recs, schema.Fields)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	render(&b, schema, quoted, sizes)
	_, err = w.Write(b.Bytes())
	return err
}

// SerializeLoop sizes the columns and returns the loop as text. On
// error the text is empty.
func SerializeLoop(schema Schema, recs []Record) (string, error) {
	if len(recs) == 0 {
		return "", ErrEmptyInput
	}
	quoted, err := quoteAll(recs, schema.Fields)
	if err != nil {
		return "", err
	}
	sizes := sizesOf(quoted)
	if err := checkShape(schema, recs, sizes); err != nil {
		return "", err
	}
	var b bytes.Buffer
	render(&b, schema, quoted, sizes)
	return b.String(), nil
}
