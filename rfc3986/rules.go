package rfc3986

import "github.com/uritools/rx"

// The fragments below mirror RFC 3986 Appendix A rule for rule, composed
// bottom up. Shared fragments such as pchar and h16 are single values
// referenced from many parents; rx nodes are immutable, so the sharing
// needs no copying.

//	ALPHA = %x41-5A / %x61-7A
var alpha = rx.Must(rx.Set(rx.Range('a', 'z'), rx.Range('A', 'Z')))

//	DIGIT = %x30-39
var digit = rx.Must(rx.Set(rx.Range('0', '9')))

//	HEXDIG = DIGIT / "A" / "B" / "C" / "D" / "E" / "F"
//
// Lowercase digits are accepted as well, matching common usage.
var hexdig = rx.Must(rx.Set(rx.Range('a', 'f'), rx.Range('A', 'F'), digit))

//	sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
var subDelims = rx.Must(rx.Set(rx.Chars("!$&'()*+,;=")))

//	gen-delims = ":" / "/" / "?" / "#" / "[" / "]" / "@"
var genDelims = rx.Must(rx.Set(rx.Chars(":/?#[]@")))

//	reserved = gen-delims / sub-delims
var reserved = rx.Must(rx.Set(genDelims, subDelims))

//	unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
var unreserved = rx.Must(rx.Set(alpha, digit, rx.Chars("-._~")))

//	pct-encoded = "%" HEXDIG HEXDIG
var pctEncoded = rx.Sequence(rx.Literal("%"), rx.Must(rx.RepeatExact(hexdig, 2)))

//	pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
var pchar = rx.Choice(pctEncoded, rx.Must(rx.Set(unreserved, subDelims, rx.Chars(":@"))))

//	query = *( pchar / "/" / "?" )
var query = rx.ZeroOrMore(rx.Choice(pchar, rx.Must(rx.Set(rx.Chars("/?")))))

//	fragment = *( pchar / "/" / "?" )
var fragment = query

//	segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
//	              ; non-zero-length segment without any colon ":"
var segmentNzNc = rx.OneOrMore(rx.Choice(pctEncoded, rx.Must(rx.Set(unreserved, subDelims, rx.Char('@')))))

//	segment-nz = 1*pchar
var segmentNz = rx.OneOrMore(pchar)

//	segment = *pchar
var segment = rx.ZeroOrMore(pchar)

//	path-empty = 0<pchar>
var pathEmpty = rx.Literal("")

var zomSegments = rx.ZeroOrMore(rx.Sequence(rx.Literal("/"), segment))

//	path-rootless = segment-nz *( "/" segment )
var pathRootless = rx.Sequence(segmentNz, zomSegments)

//	path-noscheme = segment-nz-nc *( "/" segment )
var pathNoscheme = rx.Sequence(segmentNzNc, zomSegments)

//	path-absolute = "/" [ segment-nz *( "/" segment ) ]
var pathAbsolute = rx.Sequence(rx.Literal("/"), rx.Optional(rx.Sequence(segmentNz, zomSegments)))

//	path-abempty = *( "/" segment )
var pathAbempty = zomSegments

//	path = path-abempty / path-absolute / path-noscheme / path-rootless / path-empty
var path = rx.Choice(pathAbempty, pathAbsolute, pathNoscheme, pathRootless, pathEmpty)

//	reg-name = *( unreserved / pct-encoded / sub-delims )
var regName = rx.ZeroOrMore(rx.Choice(pctEncoded, rx.Must(rx.Set(unreserved, subDelims))))

//	dec-octet = DIGIT              ; 0-9
//	          / %x31-39 DIGIT      ; 10-99
//	          / "1" 2DIGIT         ; 100-199
//	          / "2" %x30-34 DIGIT  ; 200-249
//	          / "25" %x30-35       ; 250-255
var decOctet = rx.Choice(
	digit,
	rx.Sequence(rx.Must(rx.Set(rx.Range(0x31, 0x39))), digit),
	rx.Sequence(rx.Literal("1"), rx.Must(rx.RepeatExact(digit, 2))),
	rx.Sequence(rx.Literal("2"), rx.Must(rx.Set(rx.Range(0x30, 0x34))), digit),
	rx.Sequence(rx.Literal("25"), rx.Must(rx.Set(rx.Range(0x30, 0x35)))),
)

//	IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet
var ipv4address = rx.Sequence(
	decOctet, rx.Literal("."), decOctet, rx.Literal("."), decOctet, rx.Literal("."), decOctet,
)

//	h16 = 1*4HEXDIG
var h16 = rx.Must(rx.RepeatBetween(hexdig, 1, 4))

//	ls32 = ( h16 ":" h16 ) / IPv4address
var ls32 = rx.Choice(rx.Sequence(h16, rx.Literal(":"), h16), ipv4address)

var h16Colon = rx.Sequence(h16, rx.Literal(":"))

//	IPv6address =                            6( h16 ":" ) ls32
//	            /                       "::" 5( h16 ":" ) ls32
//	            / [               h16 ] "::" 4( h16 ":" ) ls32
//	            / [ *1( h16 ":" ) h16 ] "::" 3( h16 ":" ) ls32
//	            / [ *2( h16 ":" ) h16 ] "::" 2( h16 ":" ) ls32
//	            / [ *3( h16 ":" ) h16 ] "::"    h16 ":"   ls32
//	            / [ *4( h16 ":" ) h16 ] "::"              ls32
//	            / [ *5( h16 ":" ) h16 ] "::"              h16
//	            / [ *6( h16 ":" ) h16 ] "::"
var ipv6address = rx.Choice(
	rx.Sequence(rx.Must(rx.RepeatExact(h16Colon, 6)), ls32),

	rx.Sequence(rx.Literal("::"), rx.Must(rx.RepeatExact(h16Colon, 5)), ls32),

	rx.Sequence(rx.Optional(h16), rx.Literal("::"), rx.Must(rx.RepeatExact(h16Colon, 4)), ls32),

	rx.Sequence(
		rx.Optional(rx.Sequence(rx.Must(rx.RepeatAtMost(h16Colon, 1)), h16)),
		rx.Literal("::"), rx.Must(rx.RepeatExact(h16Colon, 3)), ls32,
	),

	rx.Sequence(
		rx.Optional(rx.Sequence(rx.Must(rx.RepeatAtMost(h16Colon, 2)), h16)),
		rx.Literal("::"), rx.Must(rx.RepeatExact(h16Colon, 2)), ls32,
	),

	rx.Sequence(
		rx.Optional(rx.Sequence(rx.Must(rx.RepeatAtMost(h16Colon, 3)), h16)),
		rx.Literal("::"), h16, rx.Literal(":"), ls32,
	),

	rx.Sequence(
		rx.Optional(rx.Sequence(rx.Must(rx.RepeatAtMost(h16Colon, 4)), h16)),
		rx.Literal("::"), ls32,
	),

	rx.Sequence(
		rx.Optional(rx.Sequence(rx.Must(rx.RepeatAtMost(h16Colon, 5)), h16)),
		rx.Literal("::"), h16,
	),

	rx.Sequence(
		rx.Optional(rx.Sequence(rx.Must(rx.RepeatAtMost(h16Colon, 6)), h16)),
		rx.Literal("::"),
	),
)

//	IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
var ipvFuture = rx.Sequence(
	rx.Literal("v"), rx.OneOrMore(hexdig), rx.Literal("."),
	rx.OneOrMore(rx.Must(rx.Set(unreserved, subDelims, rx.Char(':')))),
)

//	IP-literal = "[" ( IPv6address / IPvFuture ) "]"
var ipLiteral = rx.Sequence(rx.Literal("["), rx.Choice(ipv6address, ipvFuture), rx.Literal("]"))

//	port = *DIGIT
var port = rx.ZeroOrMore(digit)

//	host = IP-literal / IPv4address / reg-name
var host = rx.Choice(ipLiteral, ipv4address, regName)

//	userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
var userinfo = rx.ZeroOrMore(rx.Choice(pctEncoded, rx.Must(rx.Set(unreserved, subDelims, rx.Char(':')))))

//	authority = [ userinfo "@" ] host [ ":" port ]
var authority = rx.Sequence(
	rx.Optional(rx.Sequence(userinfo, rx.Literal("@"))),
	host,
	rx.Optional(rx.Sequence(rx.Literal(":"), port)),
)

//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
var scheme = rx.Sequence(alpha, rx.ZeroOrMore(rx.Must(rx.Set(alpha, digit, rx.Chars("+-.")))))

//	relative-part = "//" authority path-abempty
//	              / path-absolute
//	              / path-noscheme
//	              / path-empty
var relativePart = rx.Choice(
	rx.Sequence(rx.Literal("//"), authority, pathAbempty),
	pathAbsolute,
	pathNoscheme,
	pathEmpty,
)

//	relative-ref = relative-part [ "?" query ] [ "#" fragment ]
var relativeRef = rx.Sequence(
	relativePart,
	rx.Optional(rx.Sequence(rx.Literal("?"), query)),
	rx.Optional(rx.Sequence(rx.Literal("#"), fragment)),
)

//	hier-part = "//" authority path-abempty
//	          / path-absolute
//	          / path-rootless
//	          / path-empty
var hierPart = rx.Choice(
	rx.Sequence(rx.Literal("//"), authority, pathAbempty),
	pathAbsolute,
	pathRootless,
	pathEmpty,
)

//	absolute-URI = scheme ":" hier-part [ "?" query ]
var absoluteURI = rx.Sequence(
	scheme, rx.Literal(":"), hierPart,
	rx.Optional(rx.Sequence(rx.Literal("?"), query)),
)

//	URI = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
var uri = rx.Sequence(
	scheme, rx.Literal(":"), hierPart,
	rx.Optional(rx.Sequence(rx.Literal("?"), query)),
	rx.Optional(rx.Sequence(rx.Literal("#"), fragment)),
)

//	URI-reference = URI / relative-ref
var uriReference = rx.Choice(uri, relativeRef)
