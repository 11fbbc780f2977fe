// Errors from building and writing loops.
package mmcif

import (
	"errors"
	"strconv"
)

// ErrEmptyInput is returned when asked to size or write a loop with no
// records. An mmcif loop must have at least one row.
var ErrEmptyInput = errors.New("mmcif: no records for loop")

// ShapeMismatchError says a record, or the list of column sizes, does
// not have the number of fields we expected. Index is the record
// number, or -1 if the sizes were wrong.
type ShapeMismatchError struct {
	Index int
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	what := "record " + strconv.Itoa(e.Index)
	if e.Index < 0 {
		what = "column sizes"
	}
	return "mmcif: " + what + " has " + strconv.Itoa(e.Got) +
		" fields, expected " + strconv.Itoa(e.Want)
}

// FieldAccessError is one field we could not turn into a string. It is
// not fatal. The field is written as a missing value.
type FieldAccessError struct {
	Field int    // position in the record
	Type  string // type of the value we were given
}

func (e *FieldAccessError) Error() string {
	return "mmcif: field " + strconv.Itoa(e.Field) + " has type " + e.Type +
		", want string"
}

// BlockCodeError is a data block name that cannot be written.
type BlockCodeError struct {
	Code string
	desc string
}

func (e *BlockCodeError) Error() string {
	return "mmcif: block code " + strconv.Quote(e.Code) + " " + e.desc
}
