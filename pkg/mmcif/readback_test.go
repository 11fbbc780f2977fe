package mmcif

// Reading loops back in, for checking what we write.

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"
)

// SyntaxError is text readLoop could not make sense of.
type SyntaxError struct {
	Line int // 1-based
	Msg  string
}

func (e *SyntaxError) Error() string {
	return "mmcif: line " + strconv.Itoa(e.Line) + ": " + e.Msg
}

// Splitting a line of a loop back into values. A quoted value ends at
// a matching quote followed by white space, so 'it's' is one value.
// This is a small state machine. Each state looks at one byte and
// returns the next state.

var errUnterminated = errors.New("unterminated quote")

func isWhite(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

type splitter struct {
	line  string
	vals  []string
	start int  // of the current value
	quote byte // ' or " while in a quoted value
	err   error
}

type stateFn func(sp *splitter, i int, c byte) stateFn

func inWhite(sp *splitter, i int, c byte) stateFn {
	switch {
	case isWhite(c):
		return inWhite
	case c == '\'' || c == '"':
		sp.quote = c
		sp.start = i + 1
		return inQuote
	}
	sp.start = i
	return inText
}

func inText(sp *splitter, i int, c byte) stateFn {
	if isWhite(c) {
		sp.vals = append(sp.vals, sp.line[sp.start:i])
		return inWhite
	}
	return inText
}

func inQuote(sp *splitter, i int, c byte) stateFn {
	switch c {
	case sp.quote:
		return afterQuote
	case '\n':
		sp.err = errUnterminated
		return inWhite
	}
	return inQuote
}

// afterQuote has just seen a possible closing quote.
func afterQuote(sp *splitter, i int, c byte) stateFn {
	if isWhite(c) {
		sp.vals = append(sp.vals, sp.line[sp.start:i-1])
		return inWhite
	}
	return inQuote(sp, i, c)
}

// splitRow breaks one line into values, removing quotes. It undoes
// Quote.
func splitRow(line string) ([]string, error) {
	sp := splitter{line: line}
	state := inWhite
	for i := 0; i < len(line); i++ {
		state = state(&sp, i, line[i])
	}
	state(&sp, len(line), '\n') // flushes the last value
	if sp.err != nil {
		return nil, sp.err
	}
	return sp.vals, nil
}

// readLoop reads the first loop in r and returns its schema and rows,
// with quotes removed. It only knows what WriteLoop writes, which is
// enough for checking output. Text fields delimited by ';' are not
// handled.
func readLoop(r io.Reader) (Schema, [][]string, error) {
	var schema Schema
	var rows [][]string
	var pending []string // values of a row that is not finished
	scnr := bufio.NewScanner(r)
	scnr.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	const (
		before = iota
		header
		body
	)
	where := before
scan:
	for scnr.Scan() {
		n++
		l := strings.TrimRight(scnr.Text(), " \t\r")
		switch where {
		case before:
			if l == LoopStart {
				where = header
			}
			continue
		case header:
			if strings.HasPrefix(l, "_") {
				cat, field, ok := strings.Cut(l, ".")
				if !ok || field == "" {
					return schema, nil, &SyntaxError{Line: n, Msg: "bad field name " + l}
				}
				if schema.Category == "" {
					schema.Category = cat
				} else if cat != schema.Category {
					return schema, nil, &SyntaxError{Line: n, Msg: "category " + cat + " in loop of " + schema.Category}
				}
				schema.Fields = append(schema.Fields, field)
				continue
			}
			if len(schema.Fields) == 0 {
				return schema, nil, &SyntaxError{Line: n, Msg: "loop_ without fields"}
			}
			where = body
		}
		if l == LoopEnd || strings.HasPrefix(l, "_") ||
			strings.HasPrefix(l, LoopStart) || strings.HasPrefix(l, TopHeader) {
			break scan
		}
		vals, err := splitRow(l)
		if err != nil {
			return schema, nil, &SyntaxError{Line: n, Msg: err.Error()}
		}
		for _, v := range vals {
			pending = append(pending, v)
			if len(pending) == len(schema.Fields) {
				rows = append(rows, pending)
				pending = nil
			}
		}
	}
	if err := scnr.Err(); err != nil {
		return schema, nil, err
	}
	switch {
	case where == before:
		return schema, nil, &SyntaxError{Line: n, Msg: "no loop_ found"}
	case len(pending) != 0:
		return schema, nil, &ShapeMismatchError{Index: len(rows), Want: len(schema.Fields), Got: len(pending)}
	case len(rows) == 0:
		return schema, nil, ErrEmptyInput
	}
	return schema, rows, nil
}
