package store

import "strings"

// Path is a sequence of mapping keys, written with "." between segments.
type Path []string

// ParsePath splits expr on ".". Segments are kept verbatim, including spaces.
func ParsePath(expr string) Path {
	return Path(strings.Split(expr, "."))
}

func (p Path) String() string {
	return strings.Join(p, ".")
}
