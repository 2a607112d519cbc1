package extract

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// fitBackground fits a first order polynomial in normalized column position to the weighted
// pixels of one row and evaluates it at every column. Rows with a single weighted column fall back
// to the weighted mean; rows without weight get a zero background.
func fitBackground(row, weight []float64) []float64 {
	n := len(row)
	x := normalizedColumns(n)
	bg := make([]float64, n)

	var used []int
	distinct := 0
	for c, w := range weight {
		if w <= 0 {
			continue
		}
		if len(used) == 0 || x[c] != x[used[len(used)-1]] {
			distinct++
		}
		used = append(used, c)
	}

	switch {
	case len(used) == 0:
		return bg
	case distinct < 2:
		fillConstant(bg, weightedMean(row, weight))
		return bg
	}

	a := mat.NewDense(len(used), 2, nil)
	b := mat.NewVecDense(len(used), nil)
	for k, c := range used {
		sw := math.Sqrt(weight[c])
		a.Set(k, 0, sw)
		a.Set(k, 1, sw*x[c])
		b.SetVec(k, sw*row[c])
	}

	var coef mat.VecDense
	if err := coef.SolveVec(a, b); err != nil {
		fillConstant(bg, weightedMean(row, weight))
		return bg
	}

	c0, c1 := coef.AtVec(0), coef.AtVec(1)
	vecmath.ScaleBlock(bg, x, c1)
	for i := range bg {
		bg[i] += c0
	}
	return bg
}

func normalizedColumns(n int) []float64 {
	x := make([]float64, n)
	if n < 2 {
		return x
	}
	step := 1 / float64(n-1)
	for i := range x {
		x[i] = float64(i) * step
	}
	return x
}

func weightedMean(row, weight []float64) float64 {
	sw := vecmath.Sum(weight)
	if sw == 0 {
		return 0
	}
	return vecmath.DotProduct(row, weight) / sw
}

func fillConstant(dst []float64, v float64) {
	for i := range dst {
		dst[i] = v
	}
}
