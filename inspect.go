package rx

import (
	"fmt"
	"strconv"
)

// IssueLevel represents severity of an inspection issue.
type IssueLevel string

const (
	// IssueError indicates a construct the host engine will reject.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a legal but suspicious construct.
	IssueWarning IssueLevel = "warning"
)

// Issue represents one inspection finding.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Path to the affected node
}

// Inspect runs advisory checks over a built fragment and returns findings.
// Inspection never fails: every finding is a report, not an error path, and
// a tree with no findings is not guaranteed to be useful, only unsuspicious.
func Inspect(n Node, opt *InspectOptions) []Issue {
	iopt := opt.normalize()
	ins := &inspector{opt: iopt, names: make(map[string]string)}
	ins.walk(n, kindName(n))

	return ins.out
}

// inspector carries state for one Inspect pass.
type inspector struct {
	opt   InspectOptions    // Enabled checks
	names map[string]string // Capture name -> path of first occurrence
	out   []Issue           // Findings, in walk order
}

// walk visits n and its children depth first.
func (ins *inspector) walk(n Node, path string) {
	switch t := n.(type) {
	case sequence:
		ins.walkChildren(t.children, path)
	case choice:
		ins.checkAlternatives(t, path)
		ins.walkChildren(t.alts, path)
	case capture:
		ins.checkCaptureName(t, path)
		ins.walkChildren(t.children, path)
	case Class:
		ins.checkOverlap(t, path)
	case repeat:
		ins.walk(t.child, childPath(path, 0, t.child))
	}
}

// walkChildren visits each child with its position appended to the path.
func (ins *inspector) walkChildren(children []Node, path string) {
	for i, c := range children {
		ins.walk(c, childPath(path, i, c))
	}
}

// checkOverlap reports class members sharing code points. Overlaps render
// redundant but harmless members, so this is advisory only.
func (ins *inspector) checkOverlap(t Class, path string) {
	if ins.opt.DisableOverlapCheck {
		return
	}

	for i := 0; i < len(t.ranges); i++ {
		for j := i + 1; j < len(t.ranges); j++ {
			if !t.ranges[i].Intersects(t.ranges[j]) {
				continue
			}
			ins.out = append(ins.out, Issue{
				Level:   IssueWarning,
				Code:    "set_overlap",
				Message: fmt.Sprintf("set ranges %d and %d overlap", i, j),
				Path:    path,
			})
		}
	}
}

// checkCaptureName reports a group name already used elsewhere in the tree.
// The host engine rejects duplicate names at compile time.
func (ins *inspector) checkCaptureName(t capture, path string) {
	if ins.opt.DisableCaptureNameCheck || t.name == "" {
		return
	}

	if first, ok := ins.names[t.name]; ok {
		ins.out = append(ins.out, Issue{
			Level:   IssueError,
			Code:    "dup_capture_name",
			Message: fmt.Sprintf("capture group name %q already used at %s", t.name, first),
			Path:    path,
		})
		return
	}
	ins.names[t.name] = path
}

// checkAlternatives reports an empty alternative that is not the last one.
// With leftmost-first alternation an empty branch should close the choice,
// the way path-empty does in the URI grammar.
func (ins *inspector) checkAlternatives(t choice, path string) {
	if ins.opt.DisableEmptyAlternativeCheck {
		return
	}

	for i, alt := range t.alts {
		if i == len(t.alts)-1 {
			break
		}
		if Render(alt) == "" {
			ins.out = append(ins.out, Issue{
				Level:   IssueWarning,
				Code:    "empty_alternative",
				Message: fmt.Sprintf("empty alternative %d precedes later alternatives", i),
				Path:    path,
			})
		}
	}
}

// childPath appends a child's position and kind to a node path.
func childPath(path string, i int, child Node) string {
	return path + "/" + strconv.Itoa(i) + ":" + kindName(child)
}

// kindName names a node variant for issue paths.
func kindName(n Node) string {
	switch n.(type) {
	case literal:
		return "literal"
	case sequence:
		return "sequence"
	case choice:
		return "choice"
	case capture:
		return "capture"
	case Class:
		return "set"
	case repeat:
		return "repeat"
	case standAlone:
		return "standalone"
	default:
		return "node"
	}
}
