package rx

import "fmt"

// RepeatBetween returns child repeated between min and max times inclusive.
// Bounds must be non-negative and min must not exceed max.
func RepeatBetween(child Node, min, max int) (Node, error) {
	if min < 0 || max < 0 {
		return nil, fmt.Errorf("%w: negative bound (min %d, max %d)", ErrRepeatBounds, min, max)
	}
	if min > max {
		return nil, fmt.Errorf("%w: min %d > max %d", ErrRepeatBounds, min, max)
	}

	return repeat{child: child, min: min, max: max, hasMin: true, hasMax: true}, nil
}

// RepeatAtLeast returns child repeated min or more times.
func RepeatAtLeast(child Node, min int) (Node, error) {
	if min < 0 {
		return nil, fmt.Errorf("%w: negative min %d", ErrRepeatBounds, min)
	}

	return repeat{child: child, min: min, hasMin: true}, nil
}

// RepeatAtMost returns child repeated at most max times, including zero.
func RepeatAtMost(child Node, max int) (Node, error) {
	if max < 0 {
		return nil, fmt.Errorf("%w: negative max %d", ErrRepeatBounds, max)
	}

	return repeat{child: child, max: max, hasMax: true}, nil
}

// RepeatExact returns child repeated exactly count times.
func RepeatExact(child Node, count int) (Node, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrRepeatBounds, count)
	}

	return repeat{child: child, min: count, max: count, hasMin: true, hasMax: true}, nil
}

// ZeroOrMore returns child repeated any number of times, including zero.
func ZeroOrMore(child Node) Node {
	return repeat{child: child}
}

// OneOrMore returns child repeated one or more times.
func OneOrMore(child Node) Node {
	return repeat{child: child, min: 1, hasMin: true}
}

// Optional returns child matched zero or one time.
func Optional(child Node) Node {
	return repeat{child: child, min: 0, max: 1, hasMin: true, hasMax: true}
}
