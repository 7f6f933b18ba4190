package regression

import (
	"fmt"
	"math"
	"slices"

	"github.com/arloliu/calfit/errs"
)

// Sample is one observation of the independent variable X and the dependent variable Y.
type Sample struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Dataset is an ordered sequence of samples. The order has no effect on a fit.
type Dataset []Sample

// NewDataset pairs xs and ys element by element.
func NewDataset(xs, ys []float64) (Dataset, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: %d x values vs %d y values", errs.ErrMismatchedLengths, len(xs), len(ys))
	}

	ds := make(Dataset, len(xs))
	for i := range xs {
		ds[i] = Sample{X: xs[i], Y: ys[i]}
	}

	return ds, nil
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	return len(d)
}

// Xs returns a new slice holding the X column.
func (d Dataset) Xs() []float64 {
	xs := make([]float64, len(d))
	for i, s := range d {
		xs[i] = s.X
	}

	return xs
}

// Ys returns a new slice holding the Y column.
func (d Dataset) Ys() []float64 {
	ys := make([]float64, len(d))
	for i, s := range d {
		ys[i] = s.Y
	}

	return ys
}

// Clone returns a copy that shares no memory with d.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}

	return slices.Clone(d)
}

// Sorted returns a copy ordered by ascending X. Equal X values keep their relative order.
func (d Dataset) Sorted() Dataset {
	out := d.Clone()
	slices.SortStableFunc(out, func(a, b Sample) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		default:
			return 0
		}
	})

	return out
}

// Validate reports errs.ErrNonFiniteSample for the first sample holding NaN or ±Inf.
func (d Dataset) Validate() error {
	for i, s := range d {
		if !isFinite(s.X) || !isFinite(s.Y) {
			return fmt.Errorf("%w: sample %d (%v, %v)", errs.ErrNonFiniteSample, i, s.X, s.Y)
		}
	}

	return nil
}

// Range returns the smallest and largest X. Both are zero for an empty dataset.
func (d Dataset) Range() (lo, hi float64) {
	if len(d) == 0 {
		return 0, 0
	}

	lo, hi = d[0].X, d[0].X
	for _, s := range d[1:] {
		lo = math.Min(lo, s.X)
		hi = math.Max(hi, s.X)
	}

	return lo, hi
}

// DistinctX counts the distinct X values. A fit of degree d is well posed only
// when DistinctX() >= d+1.
func (d Dataset) DistinctX() int {
	seen := make(map[float64]struct{}, len(d))
	for _, s := range d {
		seen[s.X] = struct{}{}
	}

	return len(seen)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
