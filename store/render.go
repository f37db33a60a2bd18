package store

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-yaml"
)

// Render converts a tree value to the text substituted for a marker.
//
// Scalars use their plain YAML spelling. Sequences and mappings are rendered
// in YAML flow style with sorted mapping keys, e.g. [10.0.1.0/24, 10.0.2.0/24].
func Render(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float32:
		return renderFloat(float64(v))
	case float64:
		return renderFloat(v)
	case time.Time:
		return renderTime(v)
	case map[string]any, map[any]any, []any, Tree:
		return renderComposite(v)
	default:
		return fmt.Sprint(v)
	}
}

func renderFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}

	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

func renderTime(t time.Time) string {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Format(time.DateOnly)
	}

	return t.Format(time.RFC3339Nano)
}

func renderComposite(value any) string {
	out, err := yaml.MarshalWithOptions(value, yaml.Flow(true))
	if err != nil {
		return fmt.Sprint(value)
	}

	return strings.TrimSpace(string(out))
}
