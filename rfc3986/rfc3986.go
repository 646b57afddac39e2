/*
Package rfc3986 exposes the ABNF grammar rules from Appendix A of RFC 3986
as composed regex fragments, looked up by their RFC rule names.

	re, err := rfc3986.Get(rfc3986.RuleURI)
	if err != nil {
		// handle error
	}
	_ = re.MatchString("foo://bar/a/b/c;d=1?foo=bar#xyz")

Compiled matchers are anchored to the whole input and cached for the
lifetime of the process; the rule set is fixed, so the cache never evicts.
*/
package rfc3986

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"sync"

	"github.com/uritools/rx"
)

// ErrUnknownRule indicates a lookup with a name outside the RFC 3986 grammar.
var ErrUnknownRule = errors.New("unknown rule name")

// Rule is the name of one RFC 3986 Appendix A grammar rule, spelled exactly
// as in the RFC.
type Rule string

// All RFC 3986 Appendix A rule names.
const (
	RuleURI          Rule = "URI"
	RuleHierPart     Rule = "hier-part"
	RuleURIReference Rule = "URI-reference"
	RuleAbsoluteURI  Rule = "absolute-URI"
	RuleRelativeRef  Rule = "relative-ref"
	RuleRelativePart Rule = "relative-part"
	RuleScheme       Rule = "scheme"
	RuleAuthority    Rule = "authority"
	RuleUserinfo     Rule = "userinfo"
	RuleHost         Rule = "host"
	RulePort         Rule = "port"
	RuleIPLiteral    Rule = "IP-literal"
	RuleIPvFuture    Rule = "IPvFuture"
	RuleIPv6Address  Rule = "IPv6address"
	RuleH16          Rule = "h16"
	RuleLS32         Rule = "ls32"
	RuleIPv4Address  Rule = "IPv4address"
	RuleDecOctet     Rule = "dec-octet"
	RuleRegName      Rule = "reg-name"
	RulePath         Rule = "path"
	RulePathAbempty  Rule = "path-abempty"
	RulePathAbsolute Rule = "path-absolute"
	RulePathNoscheme Rule = "path-noscheme"
	RulePathRootless Rule = "path-rootless"
	RulePathEmpty    Rule = "path-empty"
	RuleSegment      Rule = "segment"
	RuleSegmentNz    Rule = "segment-nz"
	RuleSegmentNzNc  Rule = "segment-nz-nc"
	RulePchar        Rule = "pchar"
	RuleQuery        Rule = "query"
	RuleFragment     Rule = "fragment"
	RulePctEncoded   Rule = "pct-encoded"
	RuleUnreserved   Rule = "unreserved"
	RuleReserved     Rule = "reserved"
	RuleGenDelims    Rule = "gen-delims"
	RuleSubDelims    Rule = "sub-delims"
	RuleHexdig       Rule = "HEXDIG"
	RuleAlpha        Rule = "ALPHA"
	RuleDigit        Rule = "DIGIT"
)

// rules maps every grammar rule name to its fragment. Built once at package
// initialization and never modified afterwards; safe for concurrent reads.
var rules = map[Rule]rx.Node{
	RuleURI:          uri,
	RuleHierPart:     hierPart,
	RuleURIReference: uriReference,
	RuleAbsoluteURI:  absoluteURI,
	RuleRelativeRef:  relativeRef,
	RuleRelativePart: relativePart,
	RuleScheme:       scheme,
	RuleAuthority:    authority,
	RuleUserinfo:     userinfo,
	RuleHost:         host,
	RulePort:         port,
	RuleIPLiteral:    ipLiteral,
	RuleIPvFuture:    ipvFuture,
	RuleIPv6Address:  ipv6address,
	RuleH16:          h16,
	RuleLS32:         ls32,
	RuleIPv4Address:  ipv4address,
	RuleDecOctet:     decOctet,
	RuleRegName:      regName,
	RulePath:         path,
	RulePathAbempty:  pathAbempty,
	RulePathAbsolute: pathAbsolute,
	RulePathNoscheme: pathNoscheme,
	RulePathRootless: pathRootless,
	RulePathEmpty:    pathEmpty,
	RuleSegment:      segment,
	RuleSegmentNz:    segmentNz,
	RuleSegmentNzNc:  segmentNzNc,
	RulePchar:        pchar,
	RuleQuery:        query,
	RuleFragment:     fragment,
	RulePctEncoded:   pctEncoded,
	RuleUnreserved:   unreserved,
	RuleReserved:     reserved,
	RuleGenDelims:    genDelims,
	RuleSubDelims:    subDelims,
	RuleHexdig:       hexdig,
	RuleAlpha:        alpha,
	RuleDigit:        digit,
}

// cache holds compiled, anchored matchers keyed by rule name. All keys are
// known statically and compilation is idempotent, so a plain mutex-guarded
// lazily populated map is enough.
var (
	cacheMu sync.Mutex
	cache   = make(map[Rule]*regexp.Regexp, len(rules))
)

// Rules returns every grammar rule name, sorted.
func Rules() []Rule {
	out := make([]Rule, 0, len(rules))
	for name := range rules {
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Expr returns the fragment for the named rule, for composition into larger
// expressions or for rendering without anchors.
func Expr(rule Rule) (rx.Node, error) {
	node, ok := rules[rule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, string(rule))
	}

	return node, nil
}

// Get returns a compiled matcher for the named rule, anchored to consume
// the entire input. Matchers are compiled on first use and cached.
func Get(rule Rule) (*regexp.Regexp, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if re, ok := cache[rule]; ok {
		return re, nil
	}

	node, ok := rules[rule]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, string(rule))
	}

	// The rules carry no anchors of their own, and the host engine does not
	// anchor matches to the full input by default.
	re, err := rx.Compile(rx.Sequence(rx.Start(), node, rx.End()))
	if err != nil {
		return nil, err
	}
	cache[rule] = re

	return re, nil
}

// IsURI reports whether text matches the URI rule. The URI rule is less
// general than URI-reference: it requires an absolute URI with a scheme.
func IsURI(text string) bool {
	return matches(RuleURI, text)
}

// IsURIReference reports whether text matches the URI-reference rule, which
// also admits relative references.
func IsURIReference(text string) bool {
	return matches(RuleURIReference, text)
}

// matches checks text against an anchored rule matcher.
func matches(rule Rule, text string) bool {
	re, err := Get(rule)
	if err != nil {
		return false
	}

	return re.MatchString(text)
}
