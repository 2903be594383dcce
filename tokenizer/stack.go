package tokenizer

// The name stack is a caller-owned byte buffer holding the lexically nested
// open element names, NUL-separated, with one further name pushed on top
// while an attribute or PI header is being read. Cursors (elem, attr, pi)
// are stored as byte offsets into that buffer rather than raw pointers, so
// the Parser value itself stays a plain, copyable struct with no internal
// aliasing.
//
// Layout invariant: stack[0] == 0 (leading sentinel), and names are stored
// back-to-back as NUL, byte..byte, NUL, byte..byte, NUL, ... . stacklen is
// always the index of the trailing NUL.

// pushstack opens a new name slot: it writes a sentinel, the first byte of
// the name, and a new trailing NUL, then points *cursor at the name's first
// byte. Precondition: stacklen+2 < len(stack). Returns ESTACK on overflow.
func (p *Parser) pushstack(cursor *int, b byte) Event {
	if p.stacklen+2 >= len(p.stack) {
		return ESTACK
	}
	p.stacklen++ // skip past the sentinel slot that already holds 0
	p.stack[p.stacklen] = b
	*cursor = p.stacklen
	p.stacklen++
	p.stack[p.stacklen] = 0
	return OK
}

// pushstackc appends one more byte to the name currently being built in
// place, without opening a new sentinel. Precondition: stacklen+1 <
// len(stack). Returns ESTACK on overflow.
func (p *Parser) pushstackc(b byte) Event {
	if p.stacklen+1 >= len(p.stack) {
		return ESTACK
	}
	p.stack[p.stacklen] = b
	p.stacklen++
	p.stack[p.stacklen] = 0
	return OK
}

// popstack discards the name currently on top of the stack, walking
// backwards from stacklen to the leading NUL sentinel that opened it.
func (p *Parser) popstack() {
	for p.stacklen > 0 && p.stack[p.stacklen-1] != 0 {
		p.stacklen--
	}
	if p.stacklen > 0 {
		p.stacklen--
	}
}

// symlen returns the length of the NUL-terminated name starting at cursor.
// Only meaningful immediately after the *START event for that name.
func (p *Parser) symlen(cursor int) int {
	n := 0
	for cursor+n < len(p.stack) && p.stack[cursor+n] != 0 {
		n++
	}
	return n
}

// symbytes returns the name at cursor as a byte slice, not including its
// terminating NUL. The slice aliases the caller's scratch buffer and is
// only valid until the next mutating call.
func (p *Parser) symbytes(cursor int) []byte {
	return p.stack[cursor : cursor+p.symlen(cursor)]
}
