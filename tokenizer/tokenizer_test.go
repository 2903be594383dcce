package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, p *Parser, input string) []Event {
	t.Helper()
	var events []Event
	for i := 0; i < len(input); i++ {
		ev := p.Parse(input[i])
		if ev != OK {
			events = append(events, ev)
		}
		if ev.IsError() {
			return events
		}
	}
	events = append(events, p.EOF())
	return events
}

func newParser() *Parser {
	p := &Parser{}
	p.Init(make([]byte, 256))
	return p
}

func TestBasicNesting(t *testing.T) {
	p := newParser()
	input := `<?xml version="1.0" encoding="UTF-8" ?><root><test /><test/><test><inner></inner></test></root>`
	events := run(t, p, input)

	want := []Event{
		ELEMSTART, ELEMSTART, ELEMEND,
		ELEMSTART, ELEMEND,
		ELEMSTART, ELEMSTART, ELEMEND,
		ELEMEND,
		ELEMEND,
		OK,
	}
	assert.Equal(t, want, events)
}

func TestAttributes(t *testing.T) {
	p := newParser()
	input := `<a id="1" name='x&amp;y'></a>`
	var data []byte
	for i := 0; i < len(input); i++ {
		ev := p.Parse(input[i])
		if ev == ATTRVAL {
			data = append(data, p.Data()...)
		}
		assert.False(t, ev.IsError(), "unexpected error %v at byte %d", ev, i)
	}
	assert.Equal(t, OK, p.EOF())
	assert.Equal(t, "1x&y", string(data))
}

func TestCloseTagMismatch(t *testing.T) {
	p := newParser()
	events := run(t, p, `<a><b></c></a>`)
	assert.Equal(t, ECLOSE, events[len(events)-1])
}

func TestUnexpectedEOF(t *testing.T) {
	p := newParser()
	events := run(t, p, `<a><b>`)
	assert.Equal(t, EEOF, events[len(events)-1])
	assert.Equal(t, EEOF, p.EOF())
}

func TestNumericReference(t *testing.T) {
	p := newParser()
	input := `<a>&#x10348;</a>`
	var got []byte
	for i := 0; i < len(input); i++ {
		ev := p.Parse(input[i])
		if ev == CONTENT {
			got = append(got, p.Data()...)
		}
		assert.False(t, ev.IsError())
	}
	assert.Equal(t, []byte{0xF0, 0x90, 0x8D, 0x88}, got)
}

func TestInvalidReference(t *testing.T) {
	p := newParser()
	events := run(t, p, `<a>&bogus;</a>`)
	assert.Equal(t, EREF, events[len(events)-1])
}

func TestZeroByteIsSyntaxError(t *testing.T) {
	p := newParser()
	assert.Equal(t, ESYN, p.Parse(0))
	assert.Equal(t, 0, p.Total(), "NUL byte must not count toward total")
}

func TestCRLFNormalization(t *testing.T) {
	p1, p2 := newParser(), newParser()
	runRaw := func(p *Parser, s string) {
		for i := 0; i < len(s); i++ {
			assert.False(t, p.Parse(s[i]).IsError())
		}
	}
	runRaw(p1, "<a>x\r\ny</a>")
	runRaw(p2, "<a>x\ny</a>")
	assert.Equal(t, p2.Line(), p1.Line(), "CRLF and LF documents must agree on line count")
}

func TestCDATABracketAmbiguity(t *testing.T) {
	p := newParser()
	// The CDATA section closes at the leftmost "]]>": "x]]]>" is "x" plus
	// a dangling "]" followed by the closing "]]>". The "y]]>" that
	// follows is ordinary element content, not CDATA, so its "]" bytes
	// are reported one at a time rather than merged into a chunk.
	input := "<a><![CDATA[x]]]>y]]></a>"
	var got []byte
	for i := 0; i < len(input); i++ {
		ev := p.Parse(input[i])
		if ev == CONTENT {
			got = append(got, p.Data()...)
		}
		assert.False(t, ev.IsError(), "unexpected error %v at %d", ev, i)
	}
	assert.Equal(t, "x]y]]>", string(got))
}

func TestStackOverflow(t *testing.T) {
	p := &Parser{}
	p.Init(make([]byte, 4))
	events := run(t, p, `<abcdef>`)
	assert.Equal(t, ESTACK, events[len(events)-1])
}

func TestProcessingInstruction(t *testing.T) {
	p := newParser()
	input := `<a><?target a?b?></a>`
	var got []byte
	sawStart, sawEnd := false, false
	for i := 0; i < len(input); i++ {
		ev := p.Parse(input[i])
		switch ev {
		case PISTART:
			sawStart = true
			assert.Equal(t, "target", string(p.PI()))
		case PICONTENT:
			got = append(got, p.Data()...)
		case PIEND:
			sawEnd = true
		}
		assert.False(t, ev.IsError(), "unexpected error %v at %d", ev, i)
	}
	assert.True(t, sawStart)
	assert.True(t, sawEnd)
	assert.Equal(t, "a?b", string(got))
}
