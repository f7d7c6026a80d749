/*
 * gocoords.go, part of goChem.
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

import "gonum.org/v1/gonum/mat"

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//SomeVecs puts in the receiver the vectors of A listed in clist, in that order.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if F.NVecs() != len(clist) {
		panic(ErrShape)
	}
	for key, val := range clist {
		F.VecView(key).Copy(A.VecView(val))
	}
}

//SomeVecsSafe is the same as SomeVecs but it returns an error instead of panicking.
func (F *Matrix) SomeVecsSafe(A *Matrix, clist []int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			switch e := r.(type) {
			case PanicMsg:
				err = Error{string(e), []string{"SomeVecsSafe"}, true}
			case mat.Error:
				err = Error{e.Error(), []string{"SomeVecsSafe"}, true}
			default:
				panic(r)
			}
		}
	}()
	for _, v := range clist {
		if v >= A.NVecs() || v < 0 {
			panic(ErrIndexOutOfRange)
		}
	}
	F.SomeVecs(A, clist)
	return nil
}

//InsertVec returns a new matrix with the vector vec inserted at position i.
//i can be equal to A.NVecs(), in which case vec is appended.
func InsertVec(A, vec *Matrix, i int) *Matrix {
	n := A.NVecs()
	if i < 0 || i > n {
		panic(ErrIndexOutOfRange)
	}
	ret := Zeros(n + 1)
	for j := 0; j < i; j++ {
		ret.VecView(j).Copy(A.VecView(j))
	}
	ret.VecView(i).Copy(vec)
	for j := i; j < n; j++ {
		ret.VecView(j + 1).Copy(A.VecView(j))
	}
	return ret
}

//Cross puts the cross product of the row vectors a and b in the receiver.
func (F *Matrix) Cross(a, b *Matrix) {
	if a.NVecs() != 1 || b.NVecs() != 1 || F.NVecs() != 1 {
		panic(ErrNoCrossProduct)
	}
	x := a.At(0, 1)*b.At(0, 2) - a.At(0, 2)*b.At(0, 1)
	y := a.At(0, 2)*b.At(0, 0) - a.At(0, 0)*b.At(0, 2)
	z := a.At(0, 0)*b.At(0, 1) - a.At(0, 1)*b.At(0, 0)
	F.Set(0, 0, x)
	F.Set(0, 1, y)
	F.Set(0, 2, z)
}

//Unit puts in the receiver the unit vector pointing in the same
//direction as the row vector A. A zero vector is left as is.
func (F *Matrix) Unit(A *Matrix) {
	norm := A.Norm(2)
	if norm <= appzero {
		F.Copy(A)
		return
	}
	F.Scale(1/norm, A)
}
