package ndarray

import "testing"

func benchInput(n int) *Array {
	a, err := Arange(0, float64(n), 1)
	if err != nil {
		panic(err)
	}
	return a
}

func BenchmarkAddContiguous(b *testing.B) {
	x := benchInput(1 << 12)
	y := benchInput(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := x.Add(y)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkAddBroadcast(b *testing.B) {
	col := must(benchInput(64).Reshape(64, 1))
	row := benchInput(64)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := col.Add(row)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkSumAxis(b *testing.B) {
	m := must(benchInput(1 << 12).Reshape(64, 64))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		out, err := m.SumAxis(0)
		if err != nil {
			b.Fatal(err)
		}
		out.Release()
	}
}

func BenchmarkValuesTransposed(b *testing.B) {
	tr := must(benchInput(1 << 12).Reshape(64, 64)).T()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = tr.Values()
	}
}
