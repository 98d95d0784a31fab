package values

import "strings"

// List is Mrya's mutable ordered sequence, a reference type: copies of a
// *List share the same backing slice-holder, satisfying the aliasing law
// (spec §8).
type List struct {
	Elements []Value
}

func NewList(elems []Value) *List { return &List{Elements: elems} }

func (l *List) Type() Type { return ListType }

func (l *List) String() string {
	parts := make([]string, len(l.Elements))
	for i, e := range l.Elements {
		parts[i] = e.Inspect()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func (l *List) Inspect() string { return l.String() }

// mapKey canonicalizes a key Value into a comparable Go key. Keys are
// strings, ints, or floats (spec §3).
func mapKey(v Value) (any, bool) {
	switch k := v.(type) {
	case *String:
		return "s:" + k.Value, true
	case *Int:
		return k.Value, true
	case *Float:
		return k.Value, true
	default:
		return nil, false
	}
}

// Map is Mrya's reference-typed key/value mapping. The language leaves
// map order unspecified (spec §5) and `for` does not iterate maps; order
// records insertion order only so that Pairs and String are deterministic.
type Map struct {
	entries map[any]Value
	keys    map[any]Value // canonical key -> original key Value, for iteration/printing
	order   []any
}

func NewMap() *Map {
	return &Map{entries: make(map[any]Value), keys: make(map[any]Value)}
}

func (m *Map) Type() Type { return MapType }

func (m *Map) Set(key, val Value) bool {
	k, ok := mapKey(key)
	if !ok {
		return false
	}
	if _, exists := m.entries[k]; !exists {
		m.order = append(m.order, k)
	}
	m.entries[k] = val
	m.keys[k] = key
	return true
}

func (m *Map) Get(key Value) (Value, bool) {
	k, ok := mapKey(key)
	if !ok {
		return nil, false
	}
	v, found := m.entries[k]
	return v, found
}

func (m *Map) Delete(key Value) {
	k, ok := mapKey(key)
	if !ok {
		return
	}
	delete(m.entries, k)
	delete(m.keys, k)
	for i, o := range m.order {
		if o == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

func (m *Map) Len() int { return len(m.entries) }

// Pairs returns (key, value) pairs in insertion order. The order is an
// implementation convenience, not a language guarantee (spec §5).
func (m *Map) Pairs() [][2]Value {
	out := make([][2]Value, 0, len(m.order))
	for _, k := range m.order {
		out = append(out, [2]Value{m.keys[k], m.entries[k]})
	}
	return out
}

func (m *Map) String() string {
	parts := make([]string, 0, len(m.order))
	for _, p := range m.Pairs() {
		parts = append(parts, p[0].Inspect()+": "+p[1].Inspect())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

func (m *Map) Inspect() string { return m.String() }
