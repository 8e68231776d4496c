package frame

import (
	"fmt"
	"sort"
)

// GroupSum groups rows by the given string columns and sums each named value
// column. Groups appear in first-appearance order.
func (f *Frame) GroupSum(by []string, values ...string) (*Frame, error) {
	keys := make([][]string, len(by))
	for i, name := range by {
		vals, err := f.Strings(name)
		if err != nil {
			return nil, err
		}
		keys[i] = vals
	}
	nums := make([][]float64, len(values))
	for i, name := range values {
		vals, err := f.Numbers(name)
		if err != nil {
			return nil, err
		}
		nums[i] = vals
	}

	type group struct {
		labels []string
		sums   []float64
	}
	index := map[string]*group{}
	var order []*group

	for row := 0; row < f.rows; row++ {
		key := ""
		labels := make([]string, len(by))
		for i := range by {
			labels[i] = keys[i][row]
			key += keys[i][row] + "\x00"
		}
		g, ok := index[key]
		if !ok {
			g = &group{labels: labels, sums: make([]float64, len(values))}
			index[key] = g
			order = append(order, g)
		}
		for i := range values {
			g.sums[i] += nums[i][row]
		}
	}

	out := New()
	for i, name := range by {
		col := make([]string, len(order))
		for j, g := range order {
			col[j] = g.labels[i]
		}
		if err := out.SetStrings(name, col); err != nil {
			return nil, err
		}
	}
	for i, name := range values {
		col := make([]float64, len(order))
		for j, g := range order {
			col[j] = g.sums[i]
		}
		if err := out.SetNumbers(name, col); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Pivot reshapes long data into a wide frame: one row per distinct index
// value (first-appearance order), one numeric column per distinct column
// label, cells summed. Column labels are ordered numerically when they all
// parse as numbers, lexicographically otherwise. Missing cells are zero.
func (f *Frame) Pivot(index, columns, values string) (*Frame, error) {
	idxVals, err := f.Strings(index)
	if err != nil {
		return nil, err
	}
	colVals, err := f.Strings(columns)
	if err != nil {
		return nil, err
	}
	numVals, err := f.Numbers(values)
	if err != nil {
		return nil, err
	}

	rowPos := map[string]int{}
	var rowOrder []string
	colSeen := map[string]bool{}
	var colOrder []string
	for i := 0; i < f.rows; i++ {
		if _, ok := rowPos[idxVals[i]]; !ok {
			rowPos[idxVals[i]] = len(rowOrder)
			rowOrder = append(rowOrder, idxVals[i])
		}
		if !colSeen[colVals[i]] {
			colSeen[colVals[i]] = true
			colOrder = append(colOrder, colVals[i])
		}
	}
	sort.SliceStable(colOrder, func(a, b int) bool {
		return numericLess(colOrder[a], colOrder[b])
	})

	cells := map[string][]float64{}
	for _, label := range colOrder {
		cells[label] = make([]float64, len(rowOrder))
	}
	for i := 0; i < f.rows; i++ {
		cells[colVals[i]][rowPos[idxVals[i]]] += numVals[i]
	}

	out := New()
	if err := out.SetStrings(index, rowOrder); err != nil {
		return nil, err
	}
	for _, label := range colOrder {
		if err := out.SetNumbers(label, cells[label]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AddTotalsRow appends a row holding the sum of every numeric column. The
// first string column carries the label; other string columns stay empty.
func (f *Frame) AddTotalsRow(label string) error {
	if f.rows == 0 && len(f.names) == 0 {
		return fmt.Errorf("cannot total an empty frame")
	}
	labeled := false
	for _, name := range f.names {
		c := f.cols[name]
		if c.numeric {
			sum := 0.0
			for _, v := range c.nums {
				sum += v
			}
			c.nums = append(c.nums, sum)
		} else if !labeled {
			c.strs = append(c.strs, label)
			labeled = true
		} else {
			c.strs = append(c.strs, "")
		}
	}
	f.rows++
	return nil
}

// Growth computes period-over-period growth in percent. A zero prior period
// maps to +100 when the current value is positive and 0 when it is also
// zero, so fresh categories read as full growth rather than dividing by zero.
func Growth(prior, current float64) float64 {
	if prior == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	return (current - prior) / prior * 100
}

// GrowthAcross derives a growth frame from a wide frame: for each numeric
// column beyond the first lag columns, the cell becomes the growth versus the
// column lag places earlier. The leading lag columns are dropped. String
// columns are carried over unchanged.
func (f *Frame) GrowthAcross(lag int) (*Frame, error) {
	if lag < 1 {
		return nil, fmt.Errorf("growth lag must be at least 1, got %d", lag)
	}
	var numeric []string
	out := New()
	for _, name := range f.names {
		c := f.cols[name]
		if c.numeric {
			numeric = append(numeric, name)
			continue
		}
		if err := out.SetStrings(name, c.strs); err != nil {
			return nil, err
		}
	}
	if len(numeric) <= lag {
		return nil, fmt.Errorf("growth needs more than %d numeric columns, got %d", lag, len(numeric))
	}
	for i := lag; i < len(numeric); i++ {
		prior := f.cols[numeric[i-lag]].nums
		current := f.cols[numeric[i]].nums
		vals := make([]float64, f.rows)
		for row := range vals {
			vals[row] = Growth(prior[row], current[row])
		}
		if err := out.SetNumbers(numeric[i], vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// Mix converts every numeric column to its percentage of the column total,
// so each column sums to 100. A zero-sum column stays all zeros. Call before
// AddTotalsRow, or the totals row doubles the denominator.
func (f *Frame) Mix() (*Frame, error) {
	out := New()
	for _, name := range f.names {
		c := f.cols[name]
		if !c.numeric {
			if err := out.SetStrings(name, c.strs); err != nil {
				return nil, err
			}
			continue
		}
		sum := 0.0
		for _, v := range c.nums {
			sum += v
		}
		vals := make([]float64, f.rows)
		if sum != 0 {
			for i, v := range c.nums {
				vals[i] = v / sum * 100
			}
		}
		if err := out.SetNumbers(name, vals); err != nil {
			return nil, err
		}
	}
	return out, nil
}
