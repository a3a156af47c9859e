// Copyright 2025 The Axon Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"fmt"

	"github.com/axon-ml/axon/ndarray"
)

func ExampleFromNested() {
	a, _ := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})

	fmt.Println(a.Shape())
	fmt.Println(a.Values())
	// Output:
	// [2 2]
	// [1 2 3 4]
}

func ExampleArange() {
	a, _ := ndarray.Arange(0, 10, 2)

	fmt.Println(a.Values())
	// Output:
	// [0 2 4 6 8]
}

func ExampleArray_Add_broadcasting() {
	col, _ := ndarray.FromSlice([]float64{1, 2, 3}, ndarray.Shape{3, 1})
	row, _ := ndarray.FromSlice([]float64{10, 20, 30, 40}, ndarray.Shape{1, 4})

	sum, _ := col.Add(row)
	fmt.Println(sum.Shape())
	fmt.Println(sum.Values())
	// Output:
	// [3 4]
	// [11 21 31 41 12 22 32 42 13 23 33 43]
}

func ExampleArray_SumAxis() {
	a, _ := ndarray.FromNested([][]float64{{1, 2}, {3, 4}})

	byCol, _ := a.SumAxis(0)
	byRow, _ := a.SumAxis(1)
	total, _ := a.Sum()

	fmt.Println(byCol.Values())
	fmt.Println(byRow.Values())
	fmt.Println(total)
	// Output:
	// [4 6]
	// [3 7]
	// 10
}

func ExampleArray_Slice() {
	a, _ := ndarray.Arange(0, 20, 1)
	m, _ := a.Reshape(4, 5)

	block, _ := m.Slice(ndarray.S(1, 3), ndarray.S(0, 4, 2))
	fmt.Println(block.Shape())
	fmt.Println(block.Values())
	// Output:
	// [2 2]
	// [5 7 10 12]
}

func ExampleArray_Transpose() {
	m, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3})

	tr := m.T()
	fmt.Println(tr.Shape())
	fmt.Println(tr.Values())
	fmt.Println(tr.SharesDataWith(m))
	// Output:
	// [3 2]
	// [1 4 2 5 3 6]
	// true
}
