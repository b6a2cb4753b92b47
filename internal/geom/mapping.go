package geom

import "strings"

// ResolveMapping picks the coordinate columns for a dataset. An external
// hint wins when it survives revalidation against the actual header list; a
// deterministic header scan comes next; the first two columns are the last
// resort. With two or more headers the result is always structurally
// complete — callers own the judgement of whether it is semantically right.
func ResolveMapping(headers []string, hint *ColumnMapping) ColumnMapping {
	if ValidateHint(headers, hint) {
		return *hint
	}
	m := ColumnMapping{
		LatColumn: scanHeader(headers, isLatHeader),
		LngColumn: scanHeader(headers, isLngHeader),
	}
	if m.LatColumn == "" && len(headers) > 0 {
		m.LatColumn = headers[0]
	}
	if m.LngColumn == "" && len(headers) > 1 {
		m.LngColumn = headers[1]
	}
	return m
}

// ValidateHint reports whether an advisory mapping can be trusted: both of
// its column names must exist in headers. A hint naming a nonexistent column
// must never propagate.
func ValidateHint(headers []string, hint *ColumnMapping) bool {
	if hint == nil || hint.LatColumn == "" || hint.LngColumn == "" {
		return false
	}
	return containsHeader(headers, hint.LatColumn) && containsHeader(headers, hint.LngColumn)
}

func containsHeader(headers []string, name string) bool {
	for _, h := range headers {
		if h == name {
			return true
		}
	}
	return false
}

func scanHeader(headers []string, match func(string) bool) string {
	for _, h := range headers {
		if match(strings.ToLower(h)) {
			return h
		}
	}
	return ""
}

func isLatHeader(h string) bool {
	return strings.Contains(h, "lat") || h == "y" || h == "coordinates" || h == "coords"
}

func isLngHeader(h string) bool {
	return strings.Contains(h, "lng") || strings.Contains(h, "long") || h == "x" || h == "coordinates" || h == "coords"
}
