package ndarray

import (
	"errors"
	"math"
	"testing"
)

// Reduction Tests

func TestSumAxis(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))

	s0 := must(a.SumAxis(0))
	assertShape(t, Shape{2}, s0.Shape(), "SumAxis(0)")
	assertValues(t, s0, []float64{4, 6}, "SumAxis(0)")

	s1 := must(a.SumAxis(1))
	assertShape(t, Shape{2}, s1.Shape(), "SumAxis(1)")
	assertValues(t, s1, []float64{3, 7}, "SumAxis(1)")

	if s0.DType() != Float64 {
		t.Errorf("reduction dtype = %s, want float64", s0.DType())
	}
}

func TestSumAll(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))
	if s, err := a.Sum(); err != nil || s != 10 {
		t.Errorf("Sum = %v, %v, want 10", s, err)
	}

	empty := must(Zeros(Shape{0}))
	if s, err := empty.Sum(); err != nil || s != 0 {
		t.Errorf("empty Sum = %v, %v, want 0", s, err)
	}
}

func TestMeanMinMax(t *testing.T) {
	a := must(FromSlice([]float64{4, -2, 7, 1}, Shape{4}))

	if m, err := a.Mean(); err != nil || m != 2.5 {
		t.Errorf("Mean = %v, %v, want 2.5", m, err)
	}
	if m, err := a.Min(); err != nil || m != -2 {
		t.Errorf("Min = %v, %v, want -2", m, err)
	}
	if m, err := a.Max(); err != nil || m != 7 {
		t.Errorf("Max = %v, %v, want 7", m, err)
	}
}

func TestEmptyReductionErrors(t *testing.T) {
	empty := must(Zeros(Shape{0}))

	if _, err := empty.Mean(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty Mean = %v, want ErrInvalidParameter", err)
	}
	if _, err := empty.Min(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty Min = %v, want ErrInvalidParameter", err)
	}
	if _, err := empty.Max(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty Max = %v, want ErrInvalidParameter", err)
	}
	if _, err := empty.ArgMax(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("empty ArgMax = %v, want ErrInvalidParameter", err)
	}
}

func TestVarianceTwoPass(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3, 4}, Shape{4}))

	v0 := must(a.Var(0))
	if math.Abs(v0-1.25) > 1e-12 {
		t.Errorf("Var(0) = %v, want 1.25", v0)
	}
	v1 := must(a.Var(1))
	if math.Abs(v1-5.0/3.0) > 1e-12 {
		t.Errorf("Var(1) = %v, want 5/3", v1)
	}
	s0 := must(a.Std(0))
	if math.Abs(s0-math.Sqrt(1.25)) > 1e-12 {
		t.Errorf("Std(0) = %v, want sqrt(1.25)", s0)
	}
}

func TestVarianceDdofErrors(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3}, Shape{3}))

	if _, err := a.Var(-1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Var(-1) = %v, want ErrInvalidParameter", err)
	}
	if _, err := a.Var(3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Var(n) = %v, want ErrInvalidParameter", err)
	}
}

func TestMeanAxis(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))

	m0 := must(a.MeanAxis(0))
	assertValues(t, m0, []float64{2, 3}, "MeanAxis(0)")

	m1 := must(a.MeanAxis(1))
	assertValues(t, m1, []float64{1.5, 3.5}, "MeanAxis(1)")
}

func TestMinMaxAxis(t *testing.T) {
	a := must(FromNested([][]float64{{3, 1, 2}, {0, 5, 4}}))

	mn := must(a.MinAxis(0))
	assertValues(t, mn, []float64{0, 1, 2}, "MinAxis(0)")

	mx := must(a.MaxAxis(1))
	assertValues(t, mx, []float64{3, 5}, "MaxAxis(1)")
}

func TestVarStdAxis(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))

	v0 := must(a.VarAxis(0, 0))
	assertValues(t, v0, []float64{1, 1}, "VarAxis(0, ddof=0)")

	v1 := must(a.VarAxis(0, 1))
	assertValues(t, v1, []float64{2, 2}, "VarAxis(0, ddof=1)")

	s0 := must(a.StdAxis(0, 0))
	assertValues(t, s0, []float64{1, 1}, "StdAxis(0, ddof=0)")

	if _, err := a.VarAxis(0, 2); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("VarAxis ddof=n = %v, want ErrInvalidParameter", err)
	}
}

func TestReduce1DYieldsShape1(t *testing.T) {
	a := must(FromSlice([]float64{1, 2, 3}, Shape{3}))

	s := must(a.SumAxis(0))
	assertShape(t, Shape{1}, s.Shape(), "SumAxis on 1-D input")
	assertValues(t, s, []float64{6}, "SumAxis on 1-D input")
}

func TestReduceNegativeAxis(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))

	s := must(a.SumAxis(-1))
	assertValues(t, s, []float64{3, 7}, "SumAxis(-1)")
}

func TestReduceAxisOutOfRange(t *testing.T) {
	a := must(Zeros(Shape{2, 2}))
	if _, err := a.SumAxis(2); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("SumAxis(2) = %v, want ErrInvalidParameter", err)
	}
	if _, err := a.SumAxis(-3); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("SumAxis(-3) = %v, want ErrInvalidParameter", err)
	}
}

func TestReduceAxisCustomFold(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))

	p := must(a.ReduceAxis(0, 1, func(acc, v float64) float64 { return acc * v }))
	assertValues(t, p, []float64{3, 8}, "column products")
}

func TestReduceOnTransposedView(t *testing.T) {
	a := must(FromNested([][]float64{{1, 2}, {3, 4}}))
	tr := a.T()

	s := must(tr.SumAxis(0))
	assertValues(t, s, []float64{3, 7}, "SumAxis(0) of transpose")
}

func TestReduce3D(t *testing.T) {
	a := must(Arange(0, 24, 1))
	c := must(a.Reshape(2, 3, 4))

	s1 := must(c.SumAxis(1))
	assertShape(t, Shape{2, 4}, s1.Shape(), "SumAxis(1) of {2,3,4}")
	assertValues(t, s1, []float64{
		12, 15, 18, 21,
		48, 51, 54, 57,
	}, "SumAxis(1) of {2,3,4}")
}

func TestMeanAxisZeroLength(t *testing.T) {
	a := must(Zeros(Shape{2, 0}))

	if _, err := a.MeanAxis(1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("MeanAxis over empty axis = %v, want ErrInvalidParameter", err)
	}
	if _, err := a.MinAxis(1); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("MinAxis over empty axis = %v, want ErrInvalidParameter", err)
	}

	s := must(a.SumAxis(1))
	assertValues(t, s, []float64{0, 0}, "SumAxis over empty axis")
}

func TestArgMaxArgMin(t *testing.T) {
	a := must(FromSlice([]float64{3, 9, 1, 9}, Shape{4}))

	if ix, err := a.ArgMax(); err != nil || ix != 1 {
		t.Errorf("ArgMax = %v, %v, want 1 (first occurrence)", ix, err)
	}
	if ix, err := a.ArgMin(); err != nil || ix != 2 {
		t.Errorf("ArgMin = %v, %v, want 2", ix, err)
	}
}

func TestArgMaxOnView(t *testing.T) {
	a := must(FromSlice([]float64{1, 5, 2, 4, 3, 6}, Shape{2, 3}))
	tr := a.T()

	// Transposed logical order is 1,4,5,3,2,6.
	if ix, err := tr.ArgMax(); err != nil || ix != 5 {
		t.Errorf("ArgMax of transpose = %v, %v, want 5", ix, err)
	}
}

func TestArgMaxAxis(t *testing.T) {
	a := must(FromNested([][]float64{{3, 1, 2}, {0, 5, 4}}))

	am0 := must(a.ArgMaxAxis(0))
	if am0.DType() != Int32 {
		t.Errorf("ArgMaxAxis dtype = %s, want int32", am0.DType())
	}
	assertValues(t, am0, []float64{0, 1, 1}, "ArgMaxAxis(0)")

	am1 := must(a.ArgMinAxis(1))
	assertValues(t, am1, []float64{1, 0}, "ArgMinAxis(1)")

	one := must(must(FromSlice([]float64{2, 7, 1}, Shape{3})).ArgMaxAxis(0))
	assertShape(t, Shape{1}, one.Shape(), "ArgMaxAxis on 1-D input")
	assertValues(t, one, []float64{1}, "ArgMaxAxis on 1-D input")
}
