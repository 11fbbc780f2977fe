package mmcif

import (
	"log/slog"
	"strings"
)

const (
	squote byte = '\''
	dquote byte = '"'
	space  byte = ' '
)

// Quote applies the STAR quoting rules we support to one value.
// Single quote inside -> double quotes. Space inside -> single
// quotes. Otherwise the value is unchanged.
func Quote(v string) string {
	hasSq := strings.IndexByte(v, squote) >= 0
	hasSp := strings.IndexByte(v, space) >= 0
	if strings.ContainsAny(v, "\n\r") {
		slog.Warn("multi-line value cannot be quoted, writing as is", "value", v)
	}
	switch {
	case hasSq:
		if hasSp { // Could close early if there is a '" ' inside
			slog.Warn("value has both spaces and single quotes, quoting may be wrong", "value", v)
		}
		return string(dquote) + v + string(dquote)
	case hasSp:
		return string(squote) + v + string(squote)
	}
	return v
}
