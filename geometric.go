/*
 * geometric.go, part of goChem.
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

package chem

import (
	"math"
	"sort"

	v3 "github.com/rmera/tsscan/v3"
)

const appzero float64 = 0.000000000001 //used to correct floating point
//errors. Everything equal or less than this is considered zero.

//DummyKeyMap maps the key of an atom flagged as linear to the key of
//the dummy atom placed over it. Both keys are in the numbering of the
//geometry that contains the dummy atoms.
type DummyKeyMap map[int]int

//ParentKeys returns the keys of the atoms that carry a dummy atom, sorted.
func (D DummyKeyMap) ParentKeys() []int {
	ret := make([]int, 0, len(D))
	for k := range D {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

//Angle takes 2 vectors and calculate the angle in radians between them
//It does not check for correctness or return errors!
func Angle(v1, v2 *v3.Matrix) float64 {
	normproduct := v1.Norm(2) * v2.Norm(2)
	if normproduct <= appzero {
		return 0
	}
	argument := v1.Dot(v2) / normproduct
	//Take care of floating point math errors
	if argument > 1 {
		argument = 1
	} else if argument < -1 {
		argument = -1
	}
	angle := math.Acos(argument)
	if math.Abs(angle) <= appzero {
		return 0.00
	}
	return angle
}

//Dihedral calculate the dihedral between the points a, b, c, d, where the first plane
//is defined by abc and the second by bcd.
func Dihedral(a, b, c, d *v3.Matrix) float64 {
	//bma=b minus a
	bma := v3.Zeros(1)
	cmb := v3.Zeros(1)
	dmc := v3.Zeros(1)
	bmascaled := v3.Zeros(1)
	bma.Sub(b, a)
	cmb.Sub(c, b)
	dmc.Sub(d, c)
	bmascaled.Scale(cmb.Norm(2), bma)
	first := bmascaled.Dot(cross(cmb, dmc))
	v1 := cross(bma, cmb)
	v2 := cross(cmb, dmc)
	second := v1.Dot(v2)
	return math.Atan2(first, second)
}

//cross Takes 2 3-len row vectors and returns a row vector with the Cross product of them.
func cross(a, b *v3.Matrix) *v3.Matrix {
	c := v3.Zeros(1)
	c.Cross(a, b)
	return c
}

//Distance returns the distance, in A, between atoms i and j of G.
func Distance(G *Geom, i, j int) float64 {
	t := v3.Zeros(1)
	t.Sub(G.Coord(i), G.Coord(j))
	return t.Norm(2)
}

//CentralAngle returns the angle i-j-k, in radians, with j at the vertex.
func CentralAngle(G *Geom, i, j, k int) float64 {
	v1 := v3.Zeros(1)
	v2 := v3.Zeros(1)
	v1.Sub(G.Coord(i), G.Coord(j))
	v2.Sub(G.Coord(k), G.Coord(j))
	return Angle(v1, v2)
}

//DihedralAngle returns the i-j-k-l dihedral angle, in radians.
func DihedralAngle(G *Geom, i, j, k, l int) float64 {
	return Dihedral(G.Coord(i), G.Coord(j), G.Coord(k), G.Coord(l))
}

//LinearAtoms returns the keys of the atoms that are in the middle of a linear, or
//nearly linear, arrangement: any pair of neighbors forming an angle within tol degrees of 180.
//If ngb is nil, the connectivity is obtained from the geometry with AssignBonds.
func LinearAtoms(G *Geom, ngb Neighborer, tol float64) ([]int, error) {
	var err error
	if ngb == nil {
		ngb, err = AssignBonds(G)
		if err != nil {
			return nil, errDecorate(err, "LinearAtoms")
		}
	}
	ret := make([]int, 0, 2)
	for i := 0; i < G.Len(); i++ {
		if G.IsDummy(i) {
			continue
		}
		n := realNeighbors(G, ngb, i)
		if len(n) < 2 {
			continue
		}
	pairs:
		for a := 0; a < len(n); a++ {
			for b := a + 1; b < len(n); b++ {
				ang := CentralAngle(G, n[a], i, n[b]) * Rad2Deg
				if math.Abs(ang-180) < tol {
					ret = append(ret, i)
					break pairs
				}
			}
		}
	}
	return ret, nil
}

//realNeighbors returns the neighbors of i that are in the geometry and are not dummies.
func realNeighbors(G *Geom, ngb Neighborer, i int) []int {
	ret := make([]int, 0, 4)
	for _, v := range ngb.Neighbors(i) {
		if v >= 0 && v < G.Len() && v != i && !G.IsDummy(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

//InsertDummiesOnLinearAtoms returns a new geometry with one dummy atom inserted right after each of
//the atoms in linIdxs, placed dist A away from the atom in a direction perpendicular to its linear axis.
//ngb gives the connectivity of G (if nil, it is obtained with AssignBonds). The returned DummyKeyMap
//uses the numbering of the new geometry. With no linear atoms, a copy of G and an empty map are returned.
func InsertDummiesOnLinearAtoms(G *Geom, linIdxs []int, ngb Neighborer, dist float64) (*Geom, DummyKeyMap, error) {
	var err error
	dkeys := make(DummyKeyMap)
	lin := uniqueSorted(linIdxs)
	if len(lin) == 0 {
		return G.Copy(), dkeys, nil
	}
	for _, v := range lin {
		if v < 0 || v >= G.Len() {
			return nil, nil, newCError("InsertDummiesOnLinearAtoms", "Linear atom key %d out of range (%d atoms)", v, G.Len())
		}
		if G.IsDummy(v) {
			return nil, nil, newCError("InsertDummiesOnLinearAtoms", "Atom %d is already a dummy atom", v)
		}
	}
	if ngb == nil {
		ngb, err = AssignBonds(G)
		if err != nil {
			return nil, nil, errDecorate(err, "InsertDummiesOnLinearAtoms")
		}
	}
	positions := make([]*v3.Matrix, len(lin))
	for i, v := range lin {
		positions[i] = dummyPosition(G, ngb, v, dist)
	}
	ret := G.Copy()
	//from the end, so the insertions don't shift the keys we still have to use.
	for i := len(lin) - 1; i >= 0; i-- {
		at := lin[i]
		ret.Coords = v3.InsertVec(ret.Coords, positions[i], at+1)
		ret.Symbols = append(ret.Symbols[:at+1], append([]string{DummySymbol}, ret.Symbols[at+1:]...)...)
	}
	for i, v := range lin {
		//each previous insertion moves the atom one position up.
		dkeys[v+i] = v + i + 1
	}
	return ret, dkeys, nil
}

//dummyPosition returns the position for a dummy atom over the atom at. The direction
//is perpendicular to the linear axis and as far as possible from the bonds of at,
//so no angle between the dummy, at and a neighbor is close to 0 or 180 degrees.
func dummyPosition(G *Geom, ngb Neighborer, at int, dist float64) *v3.Matrix {
	n := realNeighbors(G, ngb, at)
	axis := v3.Zeros(1)
	switch {
	case len(n) >= 2:
		//the most linear pair of neighbors defines the axis
		best := [2]int{n[0], n[1]}
		bestang := -1.0
		for a := 0; a < len(n); a++ {
			for b := a + 1; b < len(n); b++ {
				ang := CentralAngle(G, n[a], at, n[b])
				if ang > bestang {
					bestang = ang
					best = [2]int{n[a], n[b]}
				}
			}
		}
		axis.Sub(G.Coord(best[0]), G.Coord(best[1]))
	case len(n) == 1:
		axis.Sub(G.Coord(n[0]), G.Coord(at))
	default:
		axis.Set(0, 0, 1)
	}
	axis.Unit(axis)
	bonds := make([]*v3.Matrix, 0, len(n))
	for _, v := range n {
		b := v3.Zeros(1)
		b.Sub(G.Coord(v), G.Coord(at))
		b.Unit(b)
		bonds = append(bonds, b)
	}
	//Candidates: for every other atom, the direction towards it in the plane
	//perpendicular to the axis, and the normal to that; then fixed directions.
	cands := make([]*v3.Matrix, 0, 2*G.Len()+3)
	tmp := v3.Zeros(1)
	for i := 0; i < G.Len(); i++ {
		if i == at || G.IsDummy(i) {
			continue
		}
		tmp.Sub(G.Coord(i), G.Coord(at))
		p := perpendicular(tmp, axis)
		if p == nil {
			continue
		}
		o := v3.Zeros(1)
		o.Cross(axis, p)
		cands = append(cands, p, o)
	}
	for _, ref := range [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}} {
		r, _ := v3.NewMatrix(ref)
		if p := perpendicular(r, axis); p != nil {
			cands = append(cands, p)
		}
	}
	var ret *v3.Matrix
	bestscore := -1.0
	for _, c := range cands {
		score := 1.0
		for _, b := range bonds {
			score = math.Min(score, 1-math.Abs(c.Dot(b)))
		}
		if score > bestscore+appzero {
			ret, bestscore = c, score
		}
	}
	ret.Scale(dist, ret)
	ret.Add(ret, G.Coord(at))
	return ret
}

//perpendicular returns the unit component of v perpendicular to the unit vector axis,
//or nil if v is within a few degrees of the axis.
func perpendicular(v, axis *v3.Matrix) *v3.Matrix {
	p := v3.Zeros(1)
	p.Scale(v.Dot(axis), axis)
	p.Sub(v, p)
	if p.Norm(2) <= 0.1*v.Norm(2) {
		return nil
	}
	p.Unit(p)
	return p
}

func uniqueSorted(s []int) []int {
	m := make(map[int]bool, len(s))
	ret := make([]int, 0, len(s))
	for _, v := range s {
		if !m[v] {
			m[v] = true
			ret = append(ret, v)
		}
	}
	sort.Ints(ret)
	return ret
}
