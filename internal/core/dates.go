package core

import (
	"regexp"
	"strings"
	"time"
)

// Date layouts. The backend speaks DD.MM.YYYY; date inputs speak
// YYYY-MM-DD.
const (
	WireDateLayout  = "02.01.2006"
	InputDateLayout = "2006-01-02"
)

var wireDatePattern = regexp.MustCompile(`^\d{2}\.\d{2}\.\d{4}$`)

// IsWireDate reports whether s matches the wire date shape. This is a
// syntactic check only: 31.02.2024 passes. Calendar validity is the
// backend's problem.
func IsWireDate(s string) bool {
	return wireDatePattern.MatchString(s)
}

// InputDateToWire converts YYYY-MM-DD to DD.MM.YYYY. Strings that do
// not split into three components are returned unchanged so the wire
// shape check downstream rejects them.
func InputDateToWire(s string) string {
	if s == "" {
		return ""
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "." + parts[1] + "." + parts[0]
}

// WireDateToInput converts DD.MM.YYYY to YYYY-MM-DD. Strings without a
// dot are assumed to already be in input format and pass through
// unchanged. Short day/month components are zero-padded.
func WireDateToInput(s string) string {
	if s == "" {
		return ""
	}
	if !strings.Contains(s, ".") {
		return s
	}
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return s
	}
	return parts[2] + "-" + pad2(parts[1]) + "-" + pad2(parts[0])
}

// Today returns the current date in input format, for seeding the
// create form.
func Today() string {
	return time.Now().Format(InputDateLayout)
}

func pad2(s string) string {
	if len(s) < 2 {
		return "0" + s
	}
	return s
}
