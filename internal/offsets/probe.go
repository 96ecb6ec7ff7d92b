package offsets

import (
	"fmt"
	"reflect"
	"strings"
)

// Probe returns the byte offset of the field at path inside t, using reflection.
// path may name nested fields with dots ("CFS.MinVruntime") and may use fields
// promoted from embedded structs. Paths that cross a pointer have no fixed
// offset and are rejected.
func Probe(t reflect.Type, path string) (uintptr, error) {
	if t == nil {
		return 0, fmt.Errorf("probe %q: nil type", path)
	}
	if path == "" {
		return 0, fmt.Errorf("probe %s: empty field path", t)
	}

	var off uintptr
	cur := t
	for _, name := range strings.Split(path, ".") {
		if cur.Kind() != reflect.Struct {
			return 0, fmt.Errorf("probe %s.%s: %s is not a struct", t, path, cur)
		}
		f, ok := cur.FieldByName(name)
		if !ok {
			return 0, fmt.Errorf("%w: %s.%s", ErrFieldNotFound, t, path)
		}

		// f.Offset is relative to the innermost embedded struct; walk the index.
		for i, idx := range f.Index {
			sf := cur.Field(idx)
			off += sf.Offset
			cur = sf.Type
			if i < len(f.Index)-1 && cur.Kind() != reflect.Struct {
				return 0, fmt.Errorf("probe %s.%s: embedded %s is not inline", t, path, cur)
			}
		}
	}

	return off, nil
}
