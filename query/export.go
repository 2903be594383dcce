package query

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"github.com/arturoeanton/go-xmltok/dom"
)

// ToOrderedMap projects a dom.Element into the dynamic view used by the
// rest of this package: "@name" keys for attributes, "#text" for the
// element's own text content, and one key per distinct child tag (a
// single *OrderedMap if the tag appears once, a []any of them if it
// repeats).
func ToOrderedMap(el *dom.Element) *OrderedMap {
	om := NewMap()
	for _, a := range el.Attributes() {
		om.Put("@"+a.Name, a.Value)
	}

	byTag := map[string][]*OrderedMap{}
	var order []string
	seen := map[string]bool{}
	for _, child := range el.Elements() {
		tag := child.TagName()
		if !seen[tag] {
			seen[tag] = true
			order = append(order, tag)
		}
		byTag[tag] = append(byTag[tag], ToOrderedMap(child))
	}
	for _, tag := range order {
		items := byTag[tag]
		if len(items) == 1 {
			om.Put(tag, items[0])
			continue
		}
		arr := make([]any, len(items))
		for i, it := range items {
			arr[i] = it
		}
		om.Put(tag, arr)
	}

	if text := directText(el); text != "" {
		om.Put("#text", text)
	}
	return om
}

// directText concatenates only the text runs that are direct children of
// el, skipping text that belongs to nested elements (TextContent would
// pull those in too).
func directText(el *dom.Element) string {
	var b []byte
	for _, c := range el.Children {
		if c.Element == nil {
			b = append(b, c.Text...)
		}
	}
	return string(b)
}

func marshalJSONValue(v any) ([]byte, error) {
	switch t := v.(type) {
	case *OrderedMap:
		return t.MarshalJSON()
	case []any:
		var b []byte
		b = append(b, '[')
		for i, item := range t {
			if i > 0 {
				b = append(b, ',')
			}
			ib, err := marshalJSONValue(item)
			if err != nil {
				return nil, err
			}
			b = append(b, ib...)
		}
		b = append(b, ']')
		return b, nil
	default:
		return json.Marshal(t)
	}
}

// ToJSON renders an OrderedMap (or any JSON-marshalable value) as a JSON
// string, preserving key order for OrderedMap values.
func ToJSON(v any) (string, error) {
	switch t := v.(type) {
	case *OrderedMap:
		b, err := t.MarshalJSON()
		return string(b), err
	default:
		b, err := json.Marshal(t)
		return string(b), err
	}
}

// ToCSV writes rows, each an OrderedMap of flat scalar values, as CSV with
// header taken from the first row's keys.
func ToCSV(w io.Writer, rows []*OrderedMap) error {
	cw := csv.NewWriter(w)
	if len(rows) == 0 {
		cw.Flush()
		return cw.Error()
	}
	header := rows[0].Keys()
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, k := range header {
			record[i] = scalarString(row.Get(k))
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case nil:
		return ""
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
