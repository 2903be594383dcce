package query

import (
	"strconv"
	"strings"
)

// QueryAll evaluates a small path-query language against an OrderedMap
// tree (normally the result of ToOrderedMap). Segments are separated by
// "/"; a leading or embedded empty segment (from "//") means "search at
// any depth" instead of "this level's direct child". A segment may carry
// one bracketed suffix:
//
//	tag           direct children named tag
//	*             all direct children, regardless of tag
//	tag[0]        the N'th (0-based) tag among same-named siblings
//	tag[@id=7]    tag children whose "id" attribute equals "7"
//	func:name     direct children whose tag name passes the predicate
//	              registered under name (see RegisterQueryFunction)
//	#text         the node's own text content
//	#count        the number of matches so far, as a single int result
//
// The result is always []any; callers that expect exactly one match index
// [0] themselves.
func QueryAll(root *OrderedMap, path string) []any {
	segments := strings.Split(path, "/")
	nodes := []any{root}
	for i := 0; i < len(segments); i++ {
		seg := segments[i]
		if seg == "" {
			// "//": collapse with the next real segment into a deep search.
			for i < len(segments) && segments[i] == "" {
				i++
			}
			if i >= len(segments) {
				break
			}
			nodes = deepSearch(nodes, segments[i])
			continue
		}
		nodes = stepSegment(nodes, seg)
	}
	return nodes
}

func stepSegment(nodes []any, seg string) []any {
	if seg == "#count" {
		return []any{len(nodes)}
	}
	if seg == "#text" {
		var out []any
		for _, n := range nodes {
			if om, ok := n.(*OrderedMap); ok && om.Has("#text") {
				out = append(out, om.Get("#text"))
			}
		}
		return out
	}
	if strings.HasPrefix(seg, "func:") {
		fn, ok := LookupQueryFunction(strings.TrimPrefix(seg, "func:"))
		if !ok {
			return nil
		}
		var out []any
		for _, n := range nodes {
			if om, ok := n.(*OrderedMap); ok {
				out = append(out, childrenMatchingFunc(om, fn)...)
			}
		}
		return out
	}

	tag, index, filterKey, filterVal, hasFilter := parseSegment(seg)

	var out []any
	for _, n := range nodes {
		om, ok := n.(*OrderedMap)
		if !ok {
			continue
		}
		matches := childrenNamed(om, tag)
		if hasFilter {
			matches = filterByAttr(matches, filterKey, filterVal)
		}
		if index >= 0 {
			if index < len(matches) {
				out = append(out, matches[index])
			}
			continue
		}
		out = append(out, matches...)
	}
	return out
}

func deepSearch(nodes []any, seg string) []any {
	var all []*OrderedMap
	for _, n := range nodes {
		if om, ok := n.(*OrderedMap); ok {
			collectDeep(om, &all)
		}
	}
	wrapped := make([]any, len(all))
	for i, om := range all {
		wrapped[i] = om
	}
	return stepSegment(wrapped, seg)
}

func collectDeep(om *OrderedMap, out *[]*OrderedMap) {
	*out = append(*out, om)
	for _, k := range om.Keys() {
		if strings.HasPrefix(k, "@") || k == "#text" {
			continue
		}
		switch v := om.Get(k).(type) {
		case *OrderedMap:
			collectDeep(v, out)
		case []any:
			for _, item := range v {
				if child, ok := item.(*OrderedMap); ok {
					collectDeep(child, out)
				}
			}
		}
	}
}

func childrenNamed(om *OrderedMap, tag string) []*OrderedMap {
	var out []*OrderedMap
	for _, k := range om.Keys() {
		if tag != "*" && k != tag {
			continue
		}
		if strings.HasPrefix(k, "@") || k == "#text" {
			continue
		}
		switch v := om.Get(k).(type) {
		case *OrderedMap:
			out = append(out, v)
		case []any:
			for _, item := range v {
				if child, ok := item.(*OrderedMap); ok {
					out = append(out, child)
				}
			}
		}
	}
	return out
}

// childrenMatchingFunc returns the direct children of om whose tag name
// satisfies fn, regardless of tag.
func childrenMatchingFunc(om *OrderedMap, fn QueryFunction) []any {
	var out []any
	for _, k := range om.Keys() {
		if strings.HasPrefix(k, "@") || k == "#text" || !fn(k) {
			continue
		}
		switch v := om.Get(k).(type) {
		case *OrderedMap:
			out = append(out, v)
		case []any:
			out = append(out, v...)
		}
	}
	return out
}

func filterByAttr(nodes []*OrderedMap, key, val string) []*OrderedMap {
	var out []*OrderedMap
	for _, n := range nodes {
		if got, ok := n.Get("@" + key).(string); ok && got == val {
			out = append(out, n)
		}
	}
	return out
}

// parseSegment splits "tag[...]" into its tag (or "*"), an explicit
// 0-based index (-1 if absent), and an "@key=value" attribute filter.
func parseSegment(seg string) (tag string, index int, filterKey, filterVal string, hasFilter bool) {
	index = -1
	open := strings.IndexByte(seg, '[')
	if open < 0 {
		return seg, index, "", "", false
	}
	tag = seg[:open]
	close := strings.IndexByte(seg[open:], ']')
	if close < 0 {
		return tag, index, "", "", false
	}
	inner := seg[open+1 : open+close]
	if strings.HasPrefix(inner, "@") {
		eq := strings.IndexByte(inner, '=')
		if eq < 0 {
			return tag, index, "", "", false
		}
		return tag, index, inner[1:eq], strings.Trim(inner[eq+1:], `"'`), true
	}
	if n, err := strconv.Atoi(inner); err == nil {
		index = n
	}
	return tag, index, "", "", false
}
