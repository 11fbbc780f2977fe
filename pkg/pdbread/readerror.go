// An error implementation that saves the line number and the
// line we were trying to read.
package pdbread

import (
	"strconv"
)

const maxMsgLen = 70

// ReadError is a line we could not make sense of.
type ReadError struct {
	N    int    // line number
	Line string // The line that provoked the error
	Desc string // Description of error
}

func firstPart(s string) string {
	l := len(s)
	if l > maxMsgLen {
		l = maxMsgLen
	}
	return s[:l]
}

// Error gives the line number, the description and the start of the
// offending line.
func (e *ReadError) Error() string {
	var errmsg string
	if e.N != 0 {
		errmsg = "Line: " + strconv.Itoa(e.N) + " "
	}
	errmsg += e.Desc
	if e.N != 0 {
		errmsg += "\nLine starting with\n" + firstPart(e.Line)
	}
	return errmsg
}
