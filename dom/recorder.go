package dom

import (
	"bufio"
	"io"

	"github.com/arturoeanton/go-xmltok/tokenizer"
	"golang.org/x/net/html/charset"
)

// config mirrors the functional-options shape used throughout this module:
// small, composable settings passed as trailing arguments rather than a
// constructor with a long parameter list.
type config struct {
	scratchSize int
	contentType string
}

func defaultConfig() *config {
	return &config{scratchSize: 8192}
}

// Option configures a Parse call.
type Option func(*config)

// WithScratchSize overrides the size of the tokenizer's name-nesting
// buffer. Documents nested deeper, or with longer element/attribute names,
// than this buffer can hold fail with ESTACK instead of growing it: the
// bound is a caller choice, not an implicit allocation.
func WithScratchSize(n int) Option {
	return func(c *config) { c.scratchSize = n }
}

// WithContentTypeHint passes a "Content-Type" style header value (as seen
// on an HTTP response or stored alongside a document) to the charset
// sniffer. The tokenizer itself only understands UTF-8; anything declared
// otherwise in a BOM or this hint is transcoded to UTF-8 before a single
// byte reaches it. The encoding="..." of an XML declaration is not read.
func WithContentTypeHint(contentType string) Option {
	return func(c *config) { c.contentType = contentType }
}

// transcodeToUTF8 wraps r so that a legacy encoding signalled by a BOM or
// the supplied content-type hint is converted to UTF-8 on the fly; the
// encoding named in an XML declaration is not consulted. Documents that are already UTF-8 pass
// through with no copying overhead beyond the sniff.
func transcodeToUTF8(r io.Reader, contentType string) (io.Reader, error) {
	return charset.NewReader(r, contentType)
}

// recorder is the tokenizer's DOM-building collaborator: it owns nothing
// the tokenizer doesn't tell it about, and reacts to each event by
// appending to whichever element is currently open.
type recorder struct {
	root    *Element
	current *Element
	pendingAttrName string
}

func (rec *recorder) openElement(tag string) {
	el := &Element{Tag: tag, Parent: rec.current}
	if rec.current == nil {
		rec.root = el
	} else {
		rec.current.Children = append(rec.current.Children, Child{Element: el})
	}
	rec.current = el
}

func (rec *recorder) closeElement() {
	if rec.current != nil {
		rec.current = rec.current.Parent
	}
}

func (rec *recorder) appendText(b []byte) {
	if rec.current == nil || len(b) == 0 {
		return
	}
	n := len(rec.current.Children)
	if n > 0 && rec.current.Children[n-1].Element == nil {
		rec.current.Children[n-1].Text += string(b)
		return
	}
	rec.current.Children = append(rec.current.Children, Child{Text: string(b)})
}

func (rec *recorder) startAttr(name string) {
	rec.pendingAttrName = name
	if rec.current != nil {
		rec.current.Attrs = append(rec.current.Attrs, Attribute{Name: name})
	}
}

func (rec *recorder) appendAttrValue(b []byte) {
	if rec.current == nil || len(b) == 0 {
		return
	}
	attrs := rec.current.Attrs
	if len(attrs) == 0 {
		return
	}
	attrs[len(attrs)-1].Value += string(b)
}

// Parse reads a complete XML byte stream from r and records it into a
// Document. Parsing always returns a non-nil *Document; check
// Document.IsError (or Err) to distinguish a well-formed document from one
// that stopped partway through.
func Parse(r io.Reader, opts ...Option) (*Document, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var p tokenizer.Parser
	p.Init(make([]byte, cfg.scratchSize))

	transcoded, err := transcodeToUTF8(r, cfg.contentType)
	if err != nil {
		return &Document{}, err
	}

	rec := &recorder{}
	br := bufio.NewReader(transcoded)

	for {
		b, err := br.ReadByte()
		if err == io.EOF {
			ev := p.EOF()
			if ev.IsError() {
				return &Document{err: &ParseError{Event: ev, Line: p.Line(), Column: p.Column()}}, nil
			}
			return &Document{root: rec.root}, nil
		}
		if err != nil {
			return &Document{}, err
		}

		ev := p.Parse(b)
		if ev.IsError() {
			return &Document{err: &ParseError{Event: ev, Line: p.Line(), Column: p.Column()}}, nil
		}

		switch ev {
		case tokenizer.ELEMSTART:
			rec.openElement(string(p.Elem()))
		case tokenizer.ELEMEND:
			rec.closeElement()
		case tokenizer.CONTENT:
			rec.appendText(p.Data())
		case tokenizer.ATTRSTART:
			rec.startAttr(string(p.Attr()))
		case tokenizer.ATTRVAL:
			rec.appendAttrValue(p.Data())
		}
	}
}
