package query

import (
	"strings"
	"testing"

	"github.com/arturoeanton/go-xmltok/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOM(t *testing.T, input string) *OrderedMap {
	t.Helper()
	doc, err := dom.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.False(t, doc.IsError(), doc.ErrorMessage())
	return ToOrderedMap(doc.Root())
}

func TestQueryAllDirectChildren(t *testing.T) {
	om := parseOM(t, `<root><item id="1">a</item><item id="2">b</item></root>`)
	results := QueryAll(om, "item")
	assert.Len(t, results, 2)
}

func TestQueryAllAttrFilter(t *testing.T) {
	om := parseOM(t, `<root><item id="1">a</item><item id="2">b</item></root>`)
	results := QueryAll(om, `item[@id=2]`)
	require.Len(t, results, 1)
	assert.Equal(t, "b", results[0].(*OrderedMap).Get("#text"))
}

func TestQueryAllDeepSearch(t *testing.T) {
	om := parseOM(t, `<root><a><b><c>x</c></b></a></root>`)
	results := QueryAll(om, "/c")
	assert.Len(t, results, 1)
}

func TestQueryAllFuncSegment(t *testing.T) {
	om := parseOM(t, `<root><item_one>a</item_one><itemtwo>b</itemtwo></root>`)
	results := QueryAll(om, "func:hasUnderscore")
	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].(*OrderedMap).Get("#text"))
}

func TestValidateRequired(t *testing.T) {
	om := parseOM(t, `<root><item id="1">a</item></root>`)
	rules := []Rule{{Path: "missing", Required: true}}
	problems := Validate(om, rules)
	assert.Len(t, problems, 1)
}

func TestCanonicalizeSortsAttributes(t *testing.T) {
	om := parseOM(t, `<root z="1" a="2"></root>`)
	out := string(Canonicalize(om))
	assert.Contains(t, out, `a="2" z="1"`)
}
