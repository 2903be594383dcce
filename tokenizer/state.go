package tokenizer

// state identifies one node of the Mealy machine: (state, byte) -> (state',
// event). States are kept as named constants, grouped by the construct they
// belong to, rather than packed into a smaller enum, because the names are
// the documentation: each one answers "what am I in the middle of reading".
type state int

const (
	stInit state = iota

	// "Between markup" positions.
	stMisc0  // before the XML declaration
	stMisc1  // after the XML declaration / in the prolog
	stMisc2  // inside root element content
	stMisc2a // resolving a reference inside content
	stMisc3  // after the root element has closed

	// '<' dispatch at each of the four misc positions.
	stLe0  // prolog
	stLe1  // post-XML-decl
	stLe2  // inside root
	stLe3  // post-root
	stLee1 // '<!' seen, prolog/post-decl context
	stLee2 // '<!' seen, inside-root context
	stLeq0 // '<?' seen, deciding PI vs XML decl

	// Open tag.
	stElem0 // reading the element name
	stElem1 // whitespace after the name, before first attribute
	stElem2 // whitespace after an attribute, before next attribute or '>'
	stElem3 // trailing '/' seen, expecting '>'

	// Attribute.
	stAttr0 // reading the attribute name
	stAttr1 // whitespace before '='
	stAttr2 // whitespace after '=', before the opening quote
	stAttr3 // inside the quoted value body
	stAttr4 // reference inside the value

	// Close tag.
	stEtag0 // expecting the first byte of the name
	stEtag1 // reading the rest of the name
	stEtag2 // trailing whitespace before '>'

	// Processing instruction.
	stPi0 // reading the target name
	stPi1 // whitespace between target and body
	stPi2 // reading body
	stPi3 // body byte was '?', deciding whether it closes the PI
	stPi4 // whitespace-only target/body edge (target with no body)

	// CDATA section.
	stCd0 // reading body
	stCd1 // body byte was ']', deciding whether it starts "]]>"
	stCd2 // body bytes were "]]", deciding whether the next is '>'

	// Comment.
	stComment0 // reading body
	stComment1 // body byte was '-', deciding whether it starts "-->"
	stComment2 // body bytes were "--", expecting '>'
	stComment3 // matching the literal "<!--" opener
	stComment4 // unused padding state kept for naming symmetry with dt group

	// DOCTYPE.
	stDt0 // reading top-level body
	stDt1 // inside a quoted literal
	stDt2 // inside the internal subset '[' ... ']'
	stDt3 // inside a nested comment
	stDt4 // inside a nested quoted literal within the internal subset

	// Literal string matcher sub-mode.
	stString // walking string_ref byte-for-byte, then jumping to nextstate

	// XML declaration: encoding="...".
	stEnc0 // matched "encoding", expecting whitespace or '='
	stEnc1 // opening quote seen, expecting the first letter of the encoding name
	stEnc2 // inside the quoted encoding name
	stEnc3 // expecting the first byte of the encoding name

	// XML declaration: version="1.N".
	stVer0
	stVer1
	stVer2
	stVer3

	// XML declaration: standalone="yes"|"no".
	stStd0
	stStd1
	stStd2
	stStd3

	// XML declaration driver: decides whitespace vs attribute-name vs "?>".
	stXmldecl0
	stXmldecl1
	stXmldecl2
	stXmldecl3
	stXmldecl4
	stXmldecl5
	stXmldecl6
	stXmldecl7
	stXmldecl8
	stXmldecl9
)
