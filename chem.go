/*
 * chem.go, part of goChem.
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
	"fmt"
	"strings"

	v3 "github.com/rmera/tsscan/v3"
)

//Geom is a molecular geometry: one element symbol and one set of cartesian
//coordinates (in A) per atom. Atoms are identified by their position (the atom key).
//Dummy atoms have the symbol "X".
type Geom struct {
	Symbols []string
	Coords  *v3.Matrix
}

//NewGeom returns a geometry with the given symbols and coordinates. It returns an error
//if the number of symbols doesn't match the number of coordinates.
func NewGeom(symbols []string, coords *v3.Matrix) (*Geom, error) {
	if coords == nil {
		return nil, newCError("NewGeom", "Supplied nil coordinates")
	}
	if len(symbols) != coords.NVecs() {
		return nil, newCError("NewGeom", "Inconsistent geometry: %d symbols, %d coordinates", len(symbols), coords.NVecs())
	}
	s := make([]string, len(symbols))
	copy(s, symbols)
	return &Geom{Symbols: s, Coords: coords}, nil
}

//Len returns the number of atoms in the geometry
func (G *Geom) Len() int {
	return len(G.Symbols)
}

//Copy returns a deep copy of the geometry.
func (G *Geom) Copy() *Geom {
	s := make([]string, len(G.Symbols))
	copy(s, G.Symbols)
	return &Geom{Symbols: s, Coords: G.Coords.Clone()}
}

//Coord returns a view of the coordinates of atom i. Panics if out of range.
func (G *Geom) Coord(i int) *v3.Matrix {
	return G.Coords.VecView(i)
}

//IsDummy returns true if the atom i is a dummy atom.
func (G *Geom) IsDummy(i int) bool {
	return G.Symbols[i] == DummySymbol
}

//DummyKeys returns the keys of the dummy atoms in the geometry.
func (G *Geom) DummyKeys() []int {
	ret := make([]int, 0, 2)
	for i := range G.Symbols {
		if G.IsDummy(i) {
			ret = append(ret, i)
		}
	}
	return ret
}

//FromSubset returns a new geometry containing the atoms with the given keys,
//in the given order.
func FromSubset(G *Geom, keys []int) (*Geom, error) {
	c := v3.Zeros(len(keys))
	if err := c.SomeVecsSafe(G.Coords, keys); err != nil {
		return nil, errDecorate(err, "FromSubset")
	}
	syms := make([]string, 0, len(keys))
	for _, k := range keys {
		syms = append(syms, G.Symbols[k])
	}
	return &Geom{Symbols: syms, Coords: c}, nil
}

//String returns the geometry in the body format of an XYZ file.
func (G *Geom) String() string {
	lines := make([]string, 0, G.Len())
	for i, s := range G.Symbols {
		c := G.Coords.VecView(i)
		lines = append(lines, fmt.Sprintf("%-2s %14.8f %14.8f %14.8f", s, c.At(0, 0), c.At(0, 1), c.At(0, 2)))
	}
	return strings.Join(lines, "\n")
}
