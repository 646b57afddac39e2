package rx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectSetOverlap(t *testing.T) {
	issues := Inspect(Must(Set(Range('a', 'z'), Range('m', 'p'))), nil)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueWarning, issues[0].Level)
	assert.Equal(t, "set_overlap", issues[0].Code)

	// Touching but disjoint ranges are fine.
	issues = Inspect(Must(Set(Range('a', 'f'), Range('A', 'F'), Range('0', '9'))), nil)
	assert.Empty(t, issues)
}

func TestInspectDuplicateCaptureNames(t *testing.T) {
	a := Must(NamedCapture("x", Literal("a")))
	b := Must(NamedCapture("x", Literal("b")))

	issues := Inspect(Sequence(a, Literal(":"), b), nil)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueError, issues[0].Level)
	assert.Equal(t, "dup_capture_name", issues[0].Code)
	assert.Contains(t, issues[0].Message, `"x"`)

	// Distinct names are fine, as are repeated anonymous groups.
	issues = Inspect(Sequence(a, Capture(Literal("b")), Capture(Literal("c"))), nil)
	assert.Empty(t, issues)
}

func TestInspectEmptyAlternative(t *testing.T) {
	issues := Inspect(Choice(Literal(""), Literal("a")), nil)
	require.Len(t, issues, 1)
	assert.Equal(t, IssueWarning, issues[0].Level)
	assert.Equal(t, "empty_alternative", issues[0].Code)

	// An empty final alternative is the idiomatic way to make a choice
	// optional, as path-empty does in the URI grammar.
	issues = Inspect(Choice(Literal("a"), Literal("")), nil)
	assert.Empty(t, issues)
}

func TestInspectWalksNestedNodes(t *testing.T) {
	overlapping := Must(Set(Range('a', 'z'), Char('m')))
	node := Sequence(OneOrMore(Choice(Literal("x"), overlapping)))

	issues := Inspect(node, nil)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Path, "set")
}

func TestInspectOptions(t *testing.T) {
	node := Sequence(
		Must(Set(Range('a', 'z'), Char('m'))),
		Must(NamedCapture("x", Literal("a"))),
		Must(NamedCapture("x", Literal("b"))),
		Choice(Literal(""), Literal("a")),
	)

	all := Inspect(node, nil)
	assert.Len(t, all, 3)

	issues := Inspect(node, &InspectOptions{DisableOverlapCheck: true})
	assert.Len(t, issues, 2)

	issues = Inspect(node, &InspectOptions{
		DisableOverlapCheck:          true,
		DisableCaptureNameCheck:      true,
		DisableEmptyAlternativeCheck: true,
	})
	assert.Empty(t, issues)
}
