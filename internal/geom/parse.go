package geom

import (
	"math"
	"strconv"
	"strings"
)

// ParseCoordinate turns one free-text cell into a signed decimal degree
// value. It tolerates hemisphere letters ("48.85S", "W 2.35"), European
// decimal commas ("48,85"), and unit junk around the number.
//
// The sign comes from the text, not the digits: any S or W anywhere in the
// cell, or a leading minus, makes the result negative; everything else is
// positive. An S or W inside unrelated text ("West Plaza") flips the sign
// too — that is a known limit of the heuristic.
func ParseCoordinate(raw string) (float64, bool) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return 0, false
	}
	neg := strings.ContainsAny(s, "SW") || strings.HasPrefix(s, "-")
	// exactly one comma and no period: European decimal separator
	if strings.Count(s, ",") == 1 && !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	var b strings.Builder
	for _, ch := range s {
		if (ch >= '0' && ch <= '9') || ch == '.' || ch == '-' {
			b.WriteRune(ch)
		}
	}
	v, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	// hemisphere/prefix sign is authoritative over stray minus signs
	v = math.Abs(v)
	if neg {
		v = -v
	}
	return v, true
}
