package store

import (
	"errors"
	"fmt"
)

// ErrNotMapping is returned when the SSOT document does not decode to a mapping.
var ErrNotMapping = errors.New("document is not a mapping")

// Tree is the decoded SSOT document.
type Tree map[string]any

// Validate implements config.Validator.
func (t *Tree) Validate() error {
	if t == nil || *t == nil {
		return ErrNotMapping
	}

	return nil
}

// Result is the outcome of a lookup: either a found value or a miss for Path.
type Result struct {
	Path  Path
	Value any
	Found bool
}

// String renders the value, or the not-found diagnostic for a miss.
func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("{ERROR: %s not found}", r.Path)
	}

	return Render(r.Value)
}

// Store answers lookups against a loaded Tree.
type Store struct {
	tree Tree
}

// New creates a Store over tree.
func New(tree *Tree) *Store {
	if tree == nil {
		return &Store{tree: Tree{}}
	}

	return &Store{tree: *tree}
}

// Lookup walks the tree one segment at a time.
func (s *Store) Lookup(path Path) Result {
	var node any = map[string]any(s.tree)

	for _, key := range path {
		value, ok := child(node, key)
		if !ok {
			return Result{Path: path, Value: nil, Found: false}
		}

		node = value
	}

	return Result{Path: path, Value: node, Found: true}
}

// Len reports the number of top-level keys.
func (s *Store) Len() int {
	return len(s.tree)
}

func child(node any, key string) (any, bool) {
	switch mapping := node.(type) {
	case map[string]any:
		value, ok := mapping[key]

		return value, ok
	case Tree:
		value, ok := mapping[key]

		return value, ok
	case map[any]any:
		if value, ok := mapping[key]; ok {
			return value, true
		}

		// Non-string keys match by their printed form; ties go to the
		// lexically first key type so the answer does not depend on map order.
		var (
			found    any
			foundTyp string
			ok       bool
		)

		for k, value := range mapping {
			if fmt.Sprint(k) != key {
				continue
			}

			typ := fmt.Sprintf("%T", k)
			if !ok || typ < foundTyp {
				found, foundTyp, ok = value, typ, true
			}
		}

		return found, ok
	default:
		return nil, false
	}
}
