// Package frame implements a small column-oriented table over string
// category columns and float64 value columns. It covers the reshaping the
// slide builders need: filter, group-sum, pivot, totals, growth, and mix.
package frame

import (
	"fmt"
	"sort"
	"strconv"
)

type column struct {
	numeric bool
	strs    []string
	nums    []float64
}

// Frame is an ordered collection of named columns of equal length.
type Frame struct {
	names []string
	cols  map[string]*column
	rows  int
	typed bool // rows is meaningful once the first column is set
}

// New creates an empty frame.
func New() *Frame {
	return &Frame{cols: map[string]*column{}}
}

// Len returns the number of rows.
func (f *Frame) Len() int { return f.rows }

// Columns returns the column names in order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// HasColumn reports whether the named column exists.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.cols[name]
	return ok
}

// IsNumeric reports whether the named column holds float64 values.
func (f *Frame) IsNumeric(name string) bool {
	c, ok := f.cols[name]
	return ok && c.numeric
}

func (f *Frame) setLen(n int) error {
	if !f.typed {
		f.rows = n
		f.typed = true
		return nil
	}
	if n != f.rows {
		return fmt.Errorf("column length %d does not match frame length %d", n, f.rows)
	}
	return nil
}

// SetStrings adds or replaces a string column.
func (f *Frame) SetStrings(name string, vals []string) error {
	if err := f.setLen(len(vals)); err != nil {
		return fmt.Errorf("could not set column %s: %w", name, err)
	}
	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
	}
	copied := make([]string, len(vals))
	copy(copied, vals)
	f.cols[name] = &column{strs: copied}
	return nil
}

// SetNumbers adds or replaces a numeric column.
func (f *Frame) SetNumbers(name string, vals []float64) error {
	if err := f.setLen(len(vals)); err != nil {
		return fmt.Errorf("could not set column %s: %w", name, err)
	}
	if _, exists := f.cols[name]; !exists {
		f.names = append(f.names, name)
	}
	copied := make([]float64, len(vals))
	copy(copied, vals)
	f.cols[name] = &column{numeric: true, nums: copied}
	return nil
}

// Strings returns the values of a string column.
func (f *Frame) Strings(name string) ([]string, error) {
	c, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", name)
	}
	if c.numeric {
		return nil, fmt.Errorf("column %s is numeric, not string", name)
	}
	out := make([]string, len(c.strs))
	copy(out, c.strs)
	return out, nil
}

// Numbers returns the values of a numeric column.
func (f *Frame) Numbers(name string) ([]float64, error) {
	c, ok := f.cols[name]
	if !ok {
		return nil, fmt.Errorf("unknown column: %s", name)
	}
	if !c.numeric {
		return nil, fmt.Errorf("column %s is string, not numeric", name)
	}
	out := make([]float64, len(c.nums))
	copy(out, c.nums)
	return out, nil
}

// Filter returns a new frame containing only the rows for which keep returns
// true. Column order is preserved.
func (f *Frame) Filter(keep func(row int) bool) *Frame {
	var idx []int
	for i := 0; i < f.rows; i++ {
		if keep(i) {
			idx = append(idx, i)
		}
	}
	return f.take(idx)
}

// FilterEq returns the rows where the string column equals value.
func (f *Frame) FilterEq(name, value string) (*Frame, error) {
	vals, err := f.Strings(name)
	if err != nil {
		return nil, err
	}
	return f.Filter(func(i int) bool { return vals[i] == value }), nil
}

// Head returns the first n rows (all rows if n exceeds the length).
func (f *Frame) Head(n int) *Frame {
	if n > f.rows {
		n = f.rows
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return f.take(idx)
}

// Select returns a frame with only the named columns, in the given order.
func (f *Frame) Select(names ...string) (*Frame, error) {
	out := New()
	for _, name := range names {
		c, ok := f.cols[name]
		if !ok {
			return nil, fmt.Errorf("unknown column: %s", name)
		}
		if c.numeric {
			if err := out.SetNumbers(name, c.nums); err != nil {
				return nil, err
			}
		} else {
			if err := out.SetStrings(name, c.strs); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Drop returns a frame without the named columns. Unknown names are ignored.
func (f *Frame) Drop(names ...string) *Frame {
	dropped := map[string]bool{}
	for _, name := range names {
		dropped[name] = true
	}
	var keep []string
	for _, name := range f.names {
		if !dropped[name] {
			keep = append(keep, name)
		}
	}
	out, _ := f.Select(keep...)
	return out
}

// Unique returns the distinct values of a string column in first-appearance
// order.
func (f *Frame) Unique(name string) ([]string, error) {
	vals, err := f.Strings(name)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var out []string
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out, nil
}

// SortNumbers sorts the frame by a numeric column. The sort is stable.
func (f *Frame) SortNumbers(name string, descending bool) error {
	vals, err := f.Numbers(name)
	if err != nil {
		return err
	}
	idx := identity(f.rows)
	sort.SliceStable(idx, func(a, b int) bool {
		if descending {
			return vals[idx[a]] > vals[idx[b]]
		}
		return vals[idx[a]] < vals[idx[b]]
	})
	f.reorder(idx)
	return nil
}

// SortByOrder sorts the frame by a string column following an explicit value
// order (categorical sort). Values missing from the order sort last, keeping
// their relative position.
func (f *Frame) SortByOrder(name string, order []string) error {
	vals, err := f.Strings(name)
	if err != nil {
		return err
	}
	rank := map[string]int{}
	for i, v := range order {
		rank[v] = i
	}
	pos := func(v string) int {
		if r, ok := rank[v]; ok {
			return r
		}
		return len(order)
	}
	idx := identity(f.rows)
	sort.SliceStable(idx, func(a, b int) bool {
		return pos(vals[idx[a]]) < pos(vals[idx[b]])
	})
	f.reorder(idx)
	return nil
}

// LeftMerge joins other onto f by a shared string key column. Every row of f
// is kept; for each, the first matching row of other supplies the remaining
// columns. Unmatched rows get empty strings and zeros.
func (f *Frame) LeftMerge(other *Frame, on string) (*Frame, error) {
	leftKeys, err := f.Strings(on)
	if err != nil {
		return nil, err
	}
	rightKeys, err := other.Strings(on)
	if err != nil {
		return nil, err
	}

	match := map[string]int{}
	for i := len(rightKeys) - 1; i >= 0; i-- {
		match[rightKeys[i]] = i
	}

	out := New()
	for _, name := range f.names {
		c := f.cols[name]
		if c.numeric {
			if err := out.SetNumbers(name, c.nums); err != nil {
				return nil, err
			}
		} else {
			if err := out.SetStrings(name, c.strs); err != nil {
				return nil, err
			}
		}
	}
	for _, name := range other.names {
		if name == on || out.HasColumn(name) {
			continue
		}
		c := other.cols[name]
		if c.numeric {
			vals := make([]float64, f.rows)
			for i, key := range leftKeys {
				if j, ok := match[key]; ok {
					vals[i] = c.nums[j]
				}
			}
			if err := out.SetNumbers(name, vals); err != nil {
				return nil, err
			}
		} else {
			vals := make([]string, f.rows)
			for i, key := range leftKeys {
				if j, ok := match[key]; ok {
					vals[i] = c.strs[j]
				}
			}
			if err := out.SetStrings(name, vals); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// take builds a new frame from the given row indices.
func (f *Frame) take(idx []int) *Frame {
	out := New()
	for _, name := range f.names {
		c := f.cols[name]
		if c.numeric {
			vals := make([]float64, len(idx))
			for i, j := range idx {
				vals[i] = c.nums[j]
			}
			_ = out.SetNumbers(name, vals)
		} else {
			vals := make([]string, len(idx))
			for i, j := range idx {
				vals[i] = c.strs[j]
			}
			_ = out.SetStrings(name, vals)
		}
	}
	if len(f.names) > 0 {
		out.rows = len(idx)
		out.typed = true
	}
	return out
}

// reorder permutes the rows of every column in place.
func (f *Frame) reorder(idx []int) {
	for _, c := range f.cols {
		if c.numeric {
			vals := make([]float64, len(idx))
			for i, j := range idx {
				vals[i] = c.nums[j]
			}
			c.nums = vals
		} else {
			vals := make([]string, len(idx))
			for i, j := range idx {
				vals[i] = c.strs[j]
			}
			c.strs = vals
		}
	}
}

func identity(n int) []int {
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// numericLess compares two labels numerically when both parse as numbers,
// lexicographically otherwise. Pivot column ordering uses it so year labels
// come out chronological.
func numericLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}
