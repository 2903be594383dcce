// Package query provides a dynamic, JSON-friendly view over a parsed
// dom.Document, plus the navigation, export, canonicalisation, and
// validation operations that naturally want that looser shape instead of
// the typed tree. The dom package stays the source of truth; everything
// here is a projection of it.
package query

import "strings"

// OrderedMap is a hybrid map: O(1) lookup by key, but iteration and
// marshalling preserve insertion order. encoding/json's map[string]any
// randomises key order, which is wrong for a format where attribute and
// element order is part of the document.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty OrderedMap.
func NewMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]any)}
}

// Put inserts or overwrites key at this level, keeping insertion order on
// first write.
func (om *OrderedMap) Put(key string, value any) {
	if _, exists := om.values[key]; !exists {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

// Set inserts value at a "/"-separated path, creating intermediate
// OrderedMaps as needed. Returns om for chaining.
func (om *OrderedMap) Set(path string, value any) *OrderedMap {
	parts := strings.Split(path, "/")
	current := om
	for _, key := range parts[:len(parts)-1] {
		if next, ok := current.Get(key).(*OrderedMap); ok {
			current = next
			continue
		}
		next := NewMap()
		current.Put(key, next)
		current = next
	}
	current.Put(parts[len(parts)-1], value)
	return om
}

// Get returns the value at key in this level, or nil.
func (om *OrderedMap) Get(key string) any { return om.values[key] }

// Has reports whether key exists in this level.
func (om *OrderedMap) Has(key string) bool {
	_, ok := om.values[key]
	return ok
}

// Remove deletes key from this level.
func (om *OrderedMap) Remove(key string) {
	if !om.Has(key) {
		return
	}
	delete(om.values, key)
	for i, k := range om.keys {
		if k == key {
			om.keys = append(om.keys[:i], om.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of keys at this level.
func (om *OrderedMap) Len() int { return len(om.keys) }

// Keys returns the keys at this level, in insertion order.
func (om *OrderedMap) Keys() []string { return om.keys }

// GetPath navigates a "/"-separated path through nested OrderedMaps,
// returning nil instead of panicking on any missing segment.
func (om *OrderedMap) GetPath(path string) any {
	var current any = om
	for _, key := range strings.Split(path, "/") {
		node, ok := current.(*OrderedMap)
		if !ok || !node.Has(key) {
			return nil
		}
		current = node.Get(key)
	}
	return current
}

// MarshalJSON renders the map as a JSON object, preserving key order
// (which encoding/json's default map handling cannot do).
func (om *OrderedMap) MarshalJSON() ([]byte, error) {
	var b []byte
	b = append(b, '{')
	for i, k := range om.keys {
		if i > 0 {
			b = append(b, ',')
		}
		kb, err := marshalJSONValue(k)
		if err != nil {
			return nil, err
		}
		b = append(b, kb...)
		b = append(b, ':')
		vb, err := marshalJSONValue(om.values[k])
		if err != nil {
			return nil, err
		}
		b = append(b, vb...)
	}
	b = append(b, '}')
	return b, nil
}
