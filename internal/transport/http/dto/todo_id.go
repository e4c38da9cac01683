package dto

import (
	"strconv"
	"strings"
)

// ParseTodoID reads the leading integer of a path segment: optional
// whitespace, an optional sign, then decimal digits. Anything after the
// digits is ignored, so "1abc" and "1.5" both read as 1. ok is false when
// there are no digits or the value does not fit in an int64.
func ParseTodoID(raw string) (id int64, ok bool) {
	s := strings.TrimLeft(raw, " \t\n\v\f\r")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
