/*
 * v3_test.go, part of goChem.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * goChem is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package v3

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMatrix(Te *testing.T) {
	A, err := NewMatrix([]float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(Te, err)
	assert.Equal(Te, 3, A.NVecs())
	_, err = NewMatrix([]float64{1, 2})
	assert.Error(Te, err)
	View := A.VecView(1)
	View.Set(0, 0, 100)
	assert.Equal(Te, 100.0, A.At(1, 0))
}

func TestSomeVecs(Te *testing.T) {
	A, err := NewMatrix([]float64{1.0, 2.0, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18})
	require.NoError(Te, err)
	B := Zeros(3)
	B.SomeVecs(A, []int{1, 3, 5})
	assert.Equal(Te, 4.0, B.At(0, 0))
	assert.Equal(Te, 16.0, B.At(2, 0))
	err = B.SomeVecsSafe(A, []int{1, 3, 6})
	assert.Error(Te, err)
}

func TestInsertVec(Te *testing.T) {
	A, _ := NewMatrix([]float64{0, 0, 0, 1, 1, 1})
	v, _ := NewMatrix([]float64{9, 9, 9})
	B := InsertVec(A, v, 1)
	require.Equal(Te, 3, B.NVecs())
	assert.Equal(Te, 9.0, B.At(1, 2))
	assert.Equal(Te, 1.0, B.At(2, 0))
	C := InsertVec(A, v, 2)
	assert.Equal(Te, 9.0, C.At(2, 0))
}

func TestCrossUnit(Te *testing.T) {
	x, _ := NewMatrix([]float64{2, 0, 0})
	y, _ := NewMatrix([]float64{0, 3, 0})
	z := Zeros(1)
	z.Cross(x, y)
	assert.InDelta(Te, 6.0, z.At(0, 2), 1e-12)
	z.Unit(z)
	assert.InDelta(Te, 1.0, z.Norm(2), 1e-12)
	assert.InDelta(Te, 0.0, math.Abs(z.Dot(x)), 1e-12)
}

func TestInPlaceOps(Te *testing.T) {
	v, _ := NewMatrix([]float64{1, 2, 3})
	w, _ := NewMatrix([]float64{1, 1, 1})
	v.Sub(v, w)
	assert.Equal(Te, []float64{0, 1, 2}, v.RawRowView(0))
	v.Add(v, v)
	assert.Equal(Te, []float64{0, 2, 4}, v.RawRowView(0))
	v.Scale(0.5, v)
	assert.Equal(Te, []float64{0, 1, 2}, v.RawRowView(0))
	w.Sub(v, w)
	assert.Equal(Te, []float64{-1, 0, 1}, w.RawRowView(0))
	//views share the storage of their matrix
	A, _ := NewMatrix([]float64{3, 0, 0, 0, 4, 0})
	row := A.VecView(1)
	row.Unit(row)
	assert.Equal(Te, []float64{0, 1, 0}, A.RawRowView(1))
	A.VecView(0).Copy(A.VecView(1))
	assert.Equal(Te, []float64{0, 1, 0}, A.RawRowView(0))
}
