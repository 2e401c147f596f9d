package trail

import (
	"errors"
	"fmt"
)

var ErrInvalidIndexSet = errors.New("trail: invalid sample index set")

// IndexSet lists the history depths that get drawn. Dense near the head and
// sparse toward the tail, so the trail fades out without storing or drawing
// every frame.
type IndexSet []int

// DefaultIndexSet is the set used by the display.
var DefaultIndexSet = IndexSet{1, 2, 3, 5, 7, 9, 12, 15, 18, 22, 26, 30, 35, 40, 45}

// NewIndexSet validates indices: non-empty, non-negative, strictly
// ascending.
func NewIndexSet(indices ...int) (IndexSet, error) {
	set := IndexSet(append([]int(nil), indices...))
	if err := set.Validate(); err != nil {
		return nil, err
	}
	return set, nil
}

func (s IndexSet) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidIndexSet)
	}
	for i, v := range s {
		if v < 0 {
			return fmt.Errorf("%w: negative index %d", ErrInvalidIndexSet, v)
		}
		if i > 0 && v <= s[i-1] {
			return fmt.Errorf("%w: %d after %d is not ascending", ErrInvalidIndexSet, v, s[i-1])
		}
	}
	return nil
}

// Max returns the deepest index, or -1 for an empty set.
func (s IndexSet) Max() int {
	m := -1
	for _, v := range s {
		if v > m {
			m = v
		}
	}
	return m
}

// Capacity is the buffer length needed to serve every index.
func (s IndexSet) Capacity() int {
	return s.Max() + 1
}
