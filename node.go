package rx

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Node is one immutable fragment of a regular expression. The set of
// implementations is closed; fragments are built with the constructor
// functions in this package and rendered with Render.
//
// The same Node may be referenced from any number of parent fragments.
// Nodes are never mutated after construction, so sharing needs no copying
// and no synchronization.
type Node interface {
	node()
}

// literal matches an exact character sequence.
type literal struct {
	text string // Raw text, escaped on render
}

// node implements the Node interface.
func (literal) node() {}

// sequence is an ordered concatenation of fragments.
type sequence struct {
	children []Node // Concatenated fragments, in order
}

// node implements the Node interface.
func (sequence) node() {}

// choice is an alternation of fragments. Order matters: the host engine
// prefers earlier alternatives.
type choice struct {
	alts []Node // Alternatives, in priority order
}

// node implements the Node interface.
func (choice) node() {}

// capture is a capturing group, optionally named.
type capture struct {
	name     string // Group name, empty for anonymous groups
	children []Node // Group body, rendered as a sequence
}

// node implements the Node interface.
func (capture) node() {}

// repeat applies a postfix repetition operator to a single fragment.
type repeat struct {
	child  Node // Repeated fragment
	min    int  // Lower bound, valid when hasMin
	max    int  // Upper bound, valid when hasMax
	hasMin bool // Whether a lower bound was given
	hasMax bool // Whether an upper bound was given
}

// node implements the Node interface.
func (repeat) node() {}

// standAlone is a fixed token that is always a single atom, such as an
// anchor or a predefined escape.
type standAlone struct {
	text string // Token emitted verbatim
}

// node implements the Node interface.
func (standAlone) node() {}

// Literal returns a fragment matching text exactly. Regex metacharacters
// in text are escaped on render.
func Literal(text string) Node {
	return literal{text: text}
}

// Codepoint returns a fragment matching the single code point cp. Code
// points outside the Basic Multilingual Plane need no special treatment:
// the host engine matches whole runes.
func Codepoint(cp rune) Node {
	return literal{text: string(cp)}
}

// Sequence returns the concatenation of children, in order.
func Sequence(children ...Node) Node {
	return sequence{children: append([]Node(nil), children...)}
}

// Choice returns the alternation of alts. Earlier alternatives take
// priority, matching the host engine's leftmost-first semantics.
func Choice(alts ...Node) Node {
	return choice{alts: append([]Node(nil), alts...)}
}

// Capture returns an anonymous capturing group around children.
func Capture(children ...Node) Node {
	return capture{children: append([]Node(nil), children...)}
}

// captureName is the identifier grammar for named groups.
var captureName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NamedCapture returns a named capturing group around children. The name
// must start with a letter or underscore and continue with letters, digits,
// or underscores.
func NamedCapture(name string, children ...Node) (Node, error) {
	if !captureName.MatchString(name) {
		return nil, fmt.Errorf("%w: %q", ErrCaptureName, name)
	}

	return capture{name: name, children: append([]Node(nil), children...)}, nil
}

// Start returns the start-of-input anchor.
func Start() Node {
	return standAlone{text: "^"}
}

// End returns the end-of-input anchor.
func End() Node {
	return standAlone{text: "$"}
}

// Whitespace returns the predefined whitespace class token.
func Whitespace() Node {
	return standAlone{text: `\s`}
}

// Must returns n unchanged if err is nil and panics otherwise. It is meant
// for static fragment tables built at package initialization, where a
// construction error is a programming mistake.
func Must[T Node](n T, err error) T {
	if err != nil {
		panic(err)
	}

	return n
}

// runeCount reports the number of code points in a literal's text.
func runeCount(text string) int {
	return utf8.RuneCountInString(text)
}
