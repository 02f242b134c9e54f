// Package jsonld provides the Fragment type produced by field
// converters and a Builder that encodes the accumulation rules for
// multi-valued properties in one place.
package jsonld

// Fragment is a partial JSON-LD document: a mapping from property URI
// to a string, object, or array value. Fragments produced by separate
// converters are merged into one document per record.
type Fragment = map[string]any

// Builder accumulates values into a Fragment. Several relationship
// types legitimately target the same output property, so collisions
// merge into arrays instead of overwriting.
type Builder struct {
	frag Fragment
}

// NewBuilder returns a Builder over an empty Fragment.
func NewBuilder() *Builder {
	return &Builder{frag: make(Fragment)}
}

// Set writes a scalar property. The first writer wins; later Set calls
// for the same key are ignored.
func (b *Builder) Set(key string, value any) {
	if _, ok := b.frag[key]; ok {
		return
	}
	b.frag[key] = value
}

// Add accumulates a value under key: an absent key gets the value as
// is, a second writer turns the slot into a two-element array, and
// later writers append.
func (b *Builder) Add(key string, value any) {
	prev, ok := b.frag[key]
	if !ok {
		b.frag[key] = value
		return
	}
	if arr, isArr := prev.([]any); isArr {
		b.frag[key] = append(arr, value)
		return
	}
	b.frag[key] = []any{prev, value}
}

// AddAll accumulates every element of values under key.
func (b *Builder) AddAll(key string, values []any) {
	for _, v := range values {
		b.Add(key, v)
	}
}

// AppendTypeTag appends a class to the @type array of the object
// stored under key. When the slot holds an array of objects only the
// first one is tagged. Non-object slots are left untouched.
func (b *Builder) AppendTypeTag(key, tag string) {
	v, ok := b.frag[key]
	if !ok {
		return
	}
	if arr, isArr := v.([]any); isArr {
		if len(arr) == 0 {
			return
		}
		v = arr[0]
	}
	obj, isObj := v.(map[string]any)
	if !isObj {
		return
	}
	switch types := obj["@type"].(type) {
	case nil:
		obj["@type"] = []string{tag}
	case []string:
		obj["@type"] = append(types, tag)
	case []any:
		obj["@type"] = append(types, tag)
	case string:
		obj["@type"] = []string{types, tag}
	}
}

// Merge folds another fragment into the builder with Add semantics for
// colliding keys.
func (b *Builder) Merge(frag Fragment) {
	for k, v := range frag {
		b.Add(k, v)
	}
}

// Fragment returns the accumulated fragment. An empty builder returns
// an empty, non-nil map.
func (b *Builder) Fragment() Fragment {
	return b.frag
}

// Len returns the number of properties accumulated so far.
func (b *Builder) Len() int {
	return len(b.frag)
}
