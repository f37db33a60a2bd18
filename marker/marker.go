package marker

import (
	"regexp"
	"strings"

	"github.com/0xalexb/ssot-embed/store"
)

var pattern = regexp.MustCompile(`\{\{ssot:([^}]+)\}\}`)

// Marker is one occurrence of a marker in a text.
type Marker struct {
	// Expr is the key expression between "{{ssot:" and "}}".
	Expr string
	// Start and End are the byte offsets of the whole marker.
	Start int
	End   int
}

// Path returns the dotted path named by the marker.
func (m Marker) Path() store.Path {
	return store.ParsePath(m.Expr)
}

// Find returns the markers in text in order of appearance.
func Find(text string) []Marker {
	matches := pattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}

	markers := make([]Marker, 0, len(matches))

	for _, loc := range matches {
		markers = append(markers, Marker{
			Expr:  text[loc[2]:loc[3]],
			Start: loc[0],
			End:   loc[1],
		})
	}

	return markers
}

// Lookuper resolves a dotted path.
type Lookuper interface {
	Lookup(path store.Path) store.Result
}

// Resolver substitutes markers using a Lookuper.
type Resolver struct {
	lookup Lookuper
}

// NewResolver creates a Resolver backed by lookup.
func NewResolver(lookup Lookuper) *Resolver {
	return &Resolver{lookup: lookup}
}

// Resolve returns text with every marker replaced by its rendered value.
func (r *Resolver) Resolve(text string) string {
	resolved, _ := r.ResolveWithResults(text)

	return resolved
}

// ResolveWithResults is Resolve that also returns each marker's lookup result in order.
func (r *Resolver) ResolveWithResults(text string) (string, []store.Result) {
	markers := Find(text)
	if len(markers) == 0 {
		return text, nil
	}

	results := make([]store.Result, 0, len(markers))

	var b strings.Builder

	b.Grow(len(text))

	last := 0

	for _, m := range markers {
		result := r.lookup.Lookup(m.Path())
		results = append(results, result)

		b.WriteString(text[last:m.Start])
		b.WriteString(result.String())

		last = m.End
	}

	b.WriteString(text[last:])

	return b.String(), results
}

// Unresolved returns the paths of results that were not found.
func Unresolved(results []store.Result) []string {
	var paths []string

	for _, result := range results {
		if !result.Found {
			paths = append(paths, result.Path.String())
		}
	}

	return paths
}
