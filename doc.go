/*
Package rx builds abstract syntax trees of regular-expression fragments and
renders them to syntactically correct, minimally parenthesized pattern
strings for the standard regexp engine.

Fragments are immutable values composed bottom up: literals, character
classes, concatenation, alternation, repetition, and capturing groups. The
renderer decides where non-capturing groups are required so that nesting
fragments can never change their match semantics: a repetition operand is
always a single atom, and alternation never reaches across concatenation
boundaries.

Builder example:

	word := rx.OneOrMore(rx.Must(rx.Set(rx.Range('a', 'z'))))
	pair, err := rx.NamedCapture("key", word)
	if err != nil {
		// handle error
	}
	expr := rx.Sequence(pair, rx.Literal("="), rx.Capture(word))

Render example:

	pattern := rx.Render(expr)
	// key=([a-z]+) with the key group named: (?P<key>[a-z]+)=([a-z]+)

Compile example:

	re, err := rx.Compile(rx.Sequence(rx.Start(), expr, rx.End()))
	if err != nil {
		// handle error
	}
	_ = re.MatchString("foo=bar")

Inspect example:

	issues := rx.Inspect(expr, nil)
	if len(issues) != 0 {
		// handle inspection issues
	}

The rfc3986 subpackage uses this package to define the complete URI grammar
from RFC 3986 Appendix A as named, reusable fragments.
*/
package rx
