package adapters

// mapDocument wraps a map-backed document (bson.M or map[string]any).
// Maps have reference semantics, so every mutation is visible to the owner.
type mapDocument struct {
	fields   map[string]any
	original any
}

// Lookup returns the value stored under key.
func (m *mapDocument) Lookup(key string) (any, bool) {
	value, ok := m.fields[key]
	return value, ok
}

// Store writes value under key.
func (m *mapDocument) Store(key string, value any) {
	m.fields[key] = value
}

// Remove deletes key from the document.
func (m *mapDocument) Remove(key string) {
	delete(m.fields, key)
}

// Unwrap returns the underlying container in its original concrete type.
func (m *mapDocument) Unwrap() any {
	return m.original
}

// InPlace reports that all mutations reach the owner of the container.
func (m *mapDocument) InPlace() bool {
	return true
}
