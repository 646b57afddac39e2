package rfc3986

import (
	"testing"

	"github.com/uritools/rx"
)

func BenchmarkRenderURI(b *testing.B) {
	node, err := Expr(RuleURI)
	if err != nil {
		b.Fatalf("expr: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = rx.Render(node)
	}
}

func BenchmarkGetCached(b *testing.B) {
	if _, err := Get(RuleURIReference); err != nil {
		b.Fatalf("get: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Get(RuleURIReference); err != nil {
			b.Fatalf("get: %v", err)
		}
	}
}

func BenchmarkMatchURIReference(b *testing.B) {
	re, err := Get(RuleURIReference)
	if err != nil {
		b.Fatalf("get: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !re.MatchString("foo://bar/a/b/c;d=1?foo=bar#xyz") {
			b.Fatal("expected match")
		}
	}
}
