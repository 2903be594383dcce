package dom

import (
	"bufio"
	"context"
	"io"

	"github.com/arturoeanton/go-xmltok/tokenizer"
)

// Stream incrementally parses r and delivers each completed top-level
// child of the (single) root element — matched by tag — on a channel, so
// a caller can process a large feed of repeated records (e.g. one <item>
// per line of a huge document) without holding the whole tree in memory.
//
// The channel is closed once the document ends, errors out, or ctx is
// cancelled. A read or parse error is delivered as a final StreamResult
// with Err set before the channel closes; a clean end or a cancellation
// closes the channel without sending anything further.
type StreamResult struct {
	Element *Element
	Err     error
}

// Stream starts parsing r in a background goroutine and returns a channel
// of matched elements. Only elements at depth 1 (direct children of the
// document root) are delivered; nested structure below that depth is kept
// intact on each delivered Element.
func Stream(ctx context.Context, r io.Reader, tag string, opts ...Option) <-chan StreamResult {
	out := make(chan StreamResult)
	go func() {
		defer close(out)
		streamLoop(ctx, r, tag, out, opts...)
	}()
	return out
}

func streamLoop(ctx context.Context, r io.Reader, tag string, out chan<- StreamResult, opts ...Option) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	var p tokenizer.Parser
	p.Init(make([]byte, cfg.scratchSize))

	transcoded, err := transcodeToUTF8(r, cfg.contentType)
	if err != nil {
		out <- StreamResult{Err: err}
		return
	}

	rec := &recorder{}
	br := bufio.NewReader(transcoded)
	depth := 0

	deliver := func(el *Element) bool {
		select {
		case out <- StreamResult{Element: el}:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		b, err := br.ReadByte()
		if err == io.EOF {
			if ev := p.EOF(); ev.IsError() {
				out <- StreamResult{Err: &ParseError{Event: ev, Line: p.Line(), Column: p.Column()}}
			}
			return
		}
		if err != nil {
			out <- StreamResult{Err: err}
			return
		}

		ev := p.Parse(b)
		if ev.IsError() {
			out <- StreamResult{Err: &ParseError{Event: ev, Line: p.Line(), Column: p.Column()}}
			return
		}

		switch ev {
		case tokenizer.ELEMSTART:
			rec.openElement(string(p.Elem()))
			depth++
		case tokenizer.ELEMEND:
			finished := rec.current
			depth--
			rec.closeElement()
			if depth == 1 && finished != nil && finished.Tag == tag {
				// Detach from the root so memory doesn't grow with every
				// record delivered; the caller now owns the subtree.
				if rec.current != nil {
					n := len(rec.current.Children)
					rec.current.Children = rec.current.Children[:n-1]
				}
				if !deliver(finished) {
					return
				}
			}
		case tokenizer.CONTENT:
			rec.appendText(p.Data())
		case tokenizer.ATTRSTART:
			rec.startAttr(string(p.Attr()))
		case tokenizer.ATTRVAL:
			rec.appendAttrValue(p.Data())
		}
	}
}
