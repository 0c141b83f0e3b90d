package utils

import (
	"strconv"
	"strings"
)

// ParseLeadingInt reads an optionally signed run of digits from the start of s,
// ignoring surrounding whitespace and anything after the digits ("3abc" is 3, "2.5" is 2).
// ok is false when s does not start with a number.
func ParseLeadingInt(s string) (n int, ok bool) {
	s = strings.TrimSpace(s)
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
	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return v, true
}

// NormalizeHeader lower-cases and trims a CSV header cell, dropping a UTF-8 byte order mark.
func NormalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))
}

// ToBool converts various types to bool.
// It handles bool, integers (1=true), and strings ("1", "true", "on", "yes").
func ToBool(val any) bool {
	switch v := val.(type) {
	case bool:
		return v
	case int:
		return v == 1
	case int64:
		return v == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "on", "yes":
			return true
		}
		return false
	case []byte:
		return ToBool(string(v))
	default:
		return false
	}
}
