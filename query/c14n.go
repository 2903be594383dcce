package query

import (
	"sort"
	"strings"
)

// Canonicalize renders an OrderedMap tree as a canonical byte form: the
// same document serialised twice, possibly with its attributes read back
// in a different order, must always produce byte-identical output. That
// requires sorting each element's attributes alphabetically and always
// emitting a closing tag (never a self-closing one), since the presence
// or absence of a shorthand is not semantically meaningful.
func Canonicalize(om *OrderedMap) []byte {
	var b []byte
	b = writeCanonical(b, om, "root")
	return b
}

func writeCanonical(b []byte, v any, tag string) []byte {
	om, ok := v.(*OrderedMap)
	if !ok {
		b = append(b, '<')
		b = append(b, tag...)
		b = append(b, '>')
		b = append(b, escapeText(scalarString(v))...)
		b = append(b, '<', '/')
		b = append(b, tag...)
		b = append(b, '>')
		return b
	}

	b = append(b, '<')
	b = append(b, tag...)

	var attrKeys []string
	for _, k := range om.Keys() {
		if strings.HasPrefix(k, "@") {
			attrKeys = append(attrKeys, k)
		}
	}
	sort.Strings(attrKeys)
	for _, k := range attrKeys {
		b = append(b, ' ')
		b = append(b, k[1:]...)
		b = append(b, '=', '"')
		b = append(b, escapeAttr(scalarString(om.Get(k)))...)
		b = append(b, '"')
	}
	b = append(b, '>')

	for _, k := range om.Keys() {
		if strings.HasPrefix(k, "@") {
			continue
		}
		if k == "#text" {
			b = append(b, escapeText(scalarString(om.Get(k)))...)
			continue
		}
		switch v := om.Get(k).(type) {
		case *OrderedMap:
			b = writeCanonical(b, v, k)
		case []any:
			for _, item := range v {
				b = writeCanonical(b, item, k)
			}
		}
	}

	b = append(b, '<', '/')
	b = append(b, tag...)
	b = append(b, '>')
	return b
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

func escapeAttr(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
	return r.Replace(s)
}
