package rx

import (
	"regexp"
	"strconv"
	"strings"
)

// Render produces the regex source for n in a context where multiple
// concatenated or alternated tokens are acceptable. Rendering is pure: the
// same node always renders to the same string, and never mutates the tree.
func Render(n Node) string {
	var r renderer
	r.writeNode(n)

	return r.sb.String()
}

// RenderSingular renders n so the result parses as exactly one atom,
// wrapping it in a non-capturing group when needed. This is the correct
// form for the operand of a postfix repetition operator.
func RenderSingular(n Node) string {
	var r renderer
	r.writeSingular(n)

	return r.sb.String()
}

// RenderNonExpansive renders n so it cannot change the matching boundary
// of neighboring fragments. Non-expansive multi-atom content is emitted
// inline; expansive content (alternation) is isolated in a group. This is
// the correct form for one element of a concatenation.
func RenderNonExpansive(n Node) string {
	var r renderer
	r.writeNonExpansive(n)

	return r.sb.String()
}

// Compile renders n and compiles the result with the host regex engine.
func Compile(n Node) (*regexp.Regexp, error) {
	return regexp.Compile(Render(n))
}

// Singular reports whether n's rendered form is guaranteed to parse as
// exactly one atom from the perspective of a postfix repetition operator.
func Singular(n Node) bool {
	switch t := n.(type) {
	case literal:
		return runeCount(t.text) == 1
	case sequence:
		return len(t.children) == 1 && Singular(t.children[0])
	case choice:
		return len(t.alts) == 1 && Singular(t.alts[0])
	case capture:
		// A capture always renders as an explicit group.
		return true
	case Class:
		return true
	case repeat:
		return false
	case standAlone:
		return true
	default:
		return false
	}
}

// Expansive reports whether n's rendered form, placed next to other
// fragments without isolation, could change their matching boundary. Only
// alternation with more than one atom reaches across concatenation.
func Expansive(n Node) bool {
	if t, ok := n.(choice); ok {
		return !Singular(t)
	}

	return false
}

// literalReserved lists the metacharacters escaped inside a Literal.
const literalReserved = `\.^$*+?{}[]|()`

// renderer accumulates the rendered form of a node tree.
type renderer struct {
	sb strings.Builder // Output buffer
}

// writeNode writes the plain rendering of n.
func (r *renderer) writeNode(n Node) {
	switch t := n.(type) {
	case literal:
		r.writeLiteral(t)
	case sequence:
		r.writeJoined(t.children, "")
	case choice:
		r.writeJoined(t.alts, "|")
	case capture:
		r.writeCapture(t)
	case Class:
		r.writeClass(t)
	case repeat:
		r.writeRepeat(t)
	case standAlone:
		r.sb.WriteString(t.text)
	}
}

// writeSingular writes n wrapped in a non-capturing group unless it is
// already a single atom.
func (r *renderer) writeSingular(n Node) {
	if Singular(n) {
		r.writeNode(n)
		return
	}

	r.sb.WriteString("(?:")
	r.writeNode(n)
	r.sb.WriteString(")")
}

// writeNonExpansive writes n, isolating it only if it is expansive.
func (r *renderer) writeNonExpansive(n Node) {
	if Expansive(n) {
		r.writeSingular(n)
		return
	}

	r.writeNode(n)
}

// writeJoined writes each element through the non-expansive rule, joined
// by sep. Concatenation binds tighter than alternation, so non-expansive
// content inlines directly; alternation must not reach across siblings.
func (r *renderer) writeJoined(nodes []Node, sep string) {
	for i, n := range nodes {
		if i > 0 {
			r.sb.WriteString(sep)
		}
		r.writeNonExpansive(n)
	}
}

// writeLiteral writes the literal's text with metacharacters escaped.
func (r *renderer) writeLiteral(t literal) {
	for _, c := range t.text {
		if strings.ContainsRune(literalReserved, c) {
			r.sb.WriteByte('\\')
		}
		r.sb.WriteRune(c)
	}
}

// writeCapture writes the group body as a sequence and wraps it in an
// explicit capturing group.
func (r *renderer) writeCapture(t capture) {
	if t.name != "" {
		r.sb.WriteString("(?P<")
		r.sb.WriteString(t.name)
		r.sb.WriteString(">")
	} else {
		r.sb.WriteString("(")
	}
	r.writeJoined(t.children, "")
	r.sb.WriteString(")")
}

// writeClass writes the class members in declaration order inside [...].
func (r *renderer) writeClass(t Class) {
	r.sb.WriteString("[")
	for i, rg := range t.ranges {
		r.writeClassChar(rg.Start, i == 0)
		if !rg.Single() {
			r.sb.WriteString("-")
			r.writeClassChar(rg.End, false)
		}
	}
	r.sb.WriteString("]")
}

// writeClassChar writes one class member code point. Backslash, closing
// bracket, and dash are metacharacters anywhere in a class; a caret is one
// only in the first position.
func (r *renderer) writeClassChar(c rune, first bool) {
	if c == '\\' || c == ']' || c == '-' || (first && c == '^') {
		r.sb.WriteByte('\\')
	}
	r.sb.WriteRune(c)
}

// writeRepeat writes the repeated child as a single atom followed by the
// postfix operator for the bounds.
func (r *renderer) writeRepeat(t repeat) {
	r.writeSingular(t.child)
	r.sb.WriteString(repeatOperator(t))
}

// repeatOperator selects the postfix operator for a repeat's bounds. An
// absent minimum renders {0,max}: the host engine has no {,max} form.
func repeatOperator(t repeat) string {
	switch {
	case !t.hasMin && !t.hasMax:
		return "*"
	case t.hasMin && t.min == 1 && !t.hasMax:
		return "+"
	case t.hasMin && t.min == 0 && t.hasMax && t.max == 1:
		return "?"
	case t.hasMin && t.hasMax && t.min == t.max:
		return "{" + strconv.Itoa(t.min) + "}"
	case !t.hasMin:
		return "{0," + strconv.Itoa(t.max) + "}"
	case !t.hasMax:
		return "{" + strconv.Itoa(t.min) + ",}"
	default:
		return "{" + strconv.Itoa(t.min) + "," + strconv.Itoa(t.max) + "}"
	}
}
