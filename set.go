package rx

import "fmt"

// SetItem is a member accepted by Set: a single code point, a run of code
// points, a contiguous range, or another class whose ranges are spliced in.
type SetItem interface {
	setItem()
}

// SetRange is one contiguous code point range. A single code point is a
// range with Start == End.
type SetRange struct {
	Start rune // First code point in the range
	End   rune // Last code point in the range, >= Start
}

// setItem implements the SetItem interface.
func (SetRange) setItem() {}

// NewSetRange returns the range [start, end]. An inverted range is a
// construction error.
func NewSetRange(start, end rune) (SetRange, error) {
	if end < start {
		return SetRange{}, fmt.Errorf("%w: start %U, end %U", ErrRangeInverted, start, end)
	}

	return SetRange{Start: start, End: end}, nil
}

// Single reports whether the range covers exactly one code point.
func (r SetRange) Single() bool {
	return r.Start == r.End
}

// Intersects reports whether the two ranges share at least one code point.
func (r SetRange) Intersects(o SetRange) bool {
	endsBefore := r.End < o.Start
	startsAfter := r.Start > o.End

	return !endsBefore && !startsAfter
}

// span is a range whose bounds are validated when the enclosing class is
// constructed.
type span struct {
	lo rune // First code point
	hi rune // Last code point
}

// setItem implements the SetItem interface.
func (span) setItem() {}

// chars is a run of individual code points.
type chars struct {
	text string // Each rune becomes its own single-point range
}

// setItem implements the SetItem interface.
func (chars) setItem() {}

// Char returns a set member matching the single code point r.
func Char(r rune) SetItem {
	return SetRange{Start: r, End: r}
}

// Chars returns set members matching each code point of s individually.
func Chars(s string) SetItem {
	return chars{text: s}
}

// Range returns a set member covering [lo, hi]. The bounds are checked when
// the enclosing Set is constructed.
func Range(lo, hi rune) SetItem {
	return span{lo: lo, hi: hi}
}

// Class is a character class node built by Set. A Class is itself a
// SetItem, so classes compose: passing one class to Set splices its ranges
// into the new class.
type Class struct {
	ranges []SetRange // Members, in declaration order
}

// node implements the Node interface.
func (Class) node() {}

// setItem implements the SetItem interface.
func (Class) setItem() {}

// Ranges returns a copy of the class members in declaration order.
func (c Class) Ranges() []SetRange {
	return append([]SetRange(nil), c.ranges...)
}

// Set returns a character class containing every given member. An empty
// class and an inverted range are construction errors. Overlapping members
// are permitted; they render redundant but harmless class members.
func Set(items ...SetItem) (Class, error) {
	var ranges []SetRange
	for _, item := range items {
		switch t := item.(type) {
		case SetRange:
			ranges = append(ranges, t)
		case span:
			r, err := NewSetRange(t.lo, t.hi)
			if err != nil {
				return Class{}, err
			}
			ranges = append(ranges, r)
		case chars:
			for _, c := range t.text {
				ranges = append(ranges, SetRange{Start: c, End: c})
			}
		case Class:
			ranges = append(ranges, t.ranges...)
		}
	}

	if len(ranges) == 0 {
		return Class{}, ErrEmptySet
	}

	return Class{ranges: ranges}, nil
}
