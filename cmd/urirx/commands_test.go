package main

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns captured output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRulesCommand(t *testing.T) {
	out, err := execute(t, "rules")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 39)
	assert.Contains(t, lines, "URI")
	assert.Contains(t, lines, "sub-delims")
}

func TestRenderCommand(t *testing.T) {
	out, err := execute(t, "render", "dec-octet")
	require.NoError(t, err)

	pattern := strings.TrimSpace(out)
	re, err := regexp.Compile("^(?:" + pattern + ")$")
	require.NoError(t, err)
	assert.True(t, re.MatchString("255"))
	assert.False(t, re.MatchString("256"))
}

func TestRenderCommandAnchored(t *testing.T) {
	out, err := execute(t, "render", "--anchored", "DIGIT")
	require.NoError(t, err)

	pattern := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(pattern, "^"))
	assert.True(t, strings.HasSuffix(pattern, "$"))

	re, err := regexp.Compile(pattern)
	require.NoError(t, err)
	assert.True(t, re.MatchString("7"))
	assert.False(t, re.MatchString("77"))
}

func TestRenderCommandUnknownRule(t *testing.T) {
	_, err := execute(t, "render", "not-a-rule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not-a-rule")
}

func TestMatchCommand(t *testing.T) {
	out, err := execute(t, "match", "URI", "foo://bar/a/b/c;d=1?foo=bar#xyz")
	require.NoError(t, err)
	assert.Contains(t, out, "match")

	out, err = execute(t, "match", "URI", "not a uri")
	require.Error(t, err)
	assert.Contains(t, out, "no match")
}

func TestMatchCommandQuiet(t *testing.T) {
	out, err := execute(t, "match", "--quiet", "IPv6address", "::1", "2001:db8::ff00:42:8329")
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = execute(t, "match", "--quiet", "IPv6address", "nope")
	require.Error(t, err)
}
