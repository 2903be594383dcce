package tokenizer

// Character classifiers. Every predicate here looks at a single byte and
// makes no assumption about what came before it; the state machine is the
// only place that carries context across bytes.

// isSP reports whether c is XML whitespace (space, tab, CR, LF). By the time
// classifiers see a byte, line-ending normalisation has already folded CR
// into LF or dropped it, but the predicate still recognises both.
func isSP(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

// isAlpha reports whether c is an ASCII letter.
func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// isNum reports whether c is an ASCII decimal digit.
func isNum(c byte) bool {
	return c >= '0' && c <= '9'
}

// isHex reports whether c is a hexadecimal digit.
func isHex(c byte) bool {
	return isNum(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// isEncName reports whether c may appear in an XML declaration's encoding
// name (EncName in the XML grammar): letters, digits, '.', '_', '-'.
func isEncName(c byte) bool {
	return isAlpha(c) || isNum(c) || c == '.' || c == '_' || c == '-'
}

// isNameStart reports whether c may open an element, attribute, or PI
// target name. Bytes above 0x7F are treated as opaque UTF-8 lead/continuation
// bytes and accepted as name-start bytes; the tokenizer does no Unicode-aware
// name validation, only byte-level nesting.
func isNameStart(c byte) bool {
	return isAlpha(c) || c == '_' || c == ':' || c >= 0x80
}

// isName reports whether c may appear after the first byte of a name.
func isName(c byte) bool {
	return isNameStart(c) || isNum(c) || c == '-' || c == '.'
}

// isAttValue reports whether c may appear literally inside a quoted
// attribute value (i.e. it isn't the start of markup or a reference, and
// isn't the NUL byte rejected earlier in the pipeline). The closing quote
// itself is checked by the caller against p.quote, not here.
func isAttValue(c byte) bool {
	return c != 0 && c != '<' && c != '&'
}

// isRef reports whether c may appear inside a character/entity reference
// body, before the terminating ';': letters and digits cover the five
// built-in entity names, '#' introduces a numeric reference.
func isRef(c byte) bool {
	return isAlpha(c) || isNum(c) || c == '#'
}

// isChar reports whether c is a legal XML character-data byte. NUL is
// rejected earlier in the input pipeline, so this only needs to say "yes"
// for everything else; it exists as a named predicate so call sites read
// the same way the grammar does.
func isChar(c byte) bool {
	return c != 0
}
