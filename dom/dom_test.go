package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsTree(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<root><a id="1">hi</a><a id="2">bye</a></root>`))
	require.NoError(t, err)
	require.False(t, doc.IsError(), doc.ErrorMessage())

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "root", root.TagName())
	assert.Equal(t, 2, root.ChildElementCount())

	as := root.ChildrenByTag("a")
	require.Len(t, as, 2)
	v, ok := as[0].GetAttribute("id")
	assert.True(t, ok)
	assert.Equal(t, "1", v)
	assert.Equal(t, "bye", as[1].TextContent())
}

func TestParseReportsError(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<a><b></c></a>`))
	require.NoError(t, err)
	assert.True(t, doc.IsError())
	assert.Nil(t, doc.Root(), "a failed parse must not leave a partial tree reachable")
}

func TestGetElementsByTagNamePreOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<root><a><b/></a><b/></root>`))
	require.NoError(t, err)
	require.False(t, doc.IsError())

	bs := doc.Root().GetElementsByTagName("b")
	require.Len(t, bs, 2)
	assert.Equal(t, "a", bs[0].Parent.TagName(), "the <b> nested in <a> comes first in pre-order")
	assert.Equal(t, "root", bs[1].Parent.TagName())
}

func TestTextContentAcrossMixedContent(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<p>foo<b>bar</b>baz</p>`))
	require.NoError(t, err)
	require.False(t, doc.IsError())
	assert.Equal(t, "foobarbaz", doc.Root().TextContent())
}

func TestInnerHTMLReproducesMixedContentVerbatim(t *testing.T) {
	doc, err := Parse(strings.NewReader(`<html>This is innerHTML <b id="lol">get</b> property</html>`))
	require.NoError(t, err)
	require.False(t, doc.IsError(), doc.ErrorMessage())
	assert.Equal(t, `This is innerHTML <b id="lol">get</b> property`, doc.Root().InnerHTML())
}

func TestParseTranscodesDeclaredCharset(t *testing.T) {
	// ISO-8859-1 byte 0xE9 is "é"; a caller that read this off an HTTP
	// response's Content-Type header passes it along as a hint so the
	// tokenizer, which only ever sees UTF-8, doesn't have to care.
	raw := "<note>caf\xe9</note>"
	doc, err := Parse(strings.NewReader(raw), WithContentTypeHint("text/xml; charset=iso-8859-1"))
	require.NoError(t, err)
	require.False(t, doc.IsError(), doc.ErrorMessage())
	assert.Equal(t, "café", doc.Root().TextContent())
}
