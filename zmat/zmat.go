/*
 * zmat.go, part of goChem.
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

package zmat

import (
	"fmt"
	"sort"
	"strings"

	chem "github.com/rmera/tsscan"
)

//ZMatrix is a v-matrix with values for its coordinates. Distances are in
//the length unit given when building it, angles and dihedrals in radians.
type ZMatrix struct {
	*VMatrix
	values map[string]float64
}

//FromGeometry takes the values of the coordinates of the v-matrix V from the
//geometry G, which must contain the atoms in row order. lengthUnit is the factor
//that converts A to the desired length unit (chem.A2Bohr for Bohr, 1 for A).
func FromGeometry(V *VMatrix, G *chem.Geom, lengthUnit float64) (*ZMatrix, error) {
	if G.Len() != V.Len() {
		return nil, newError(ErrBadGeometry, "FromGeometry", "%d atoms for %d rows", G.Len(), V.Len())
	}
	for i, r := range V.rows {
		if G.Symbols[i] != r.Symbol {
			return nil, newError(ErrBadGeometry, "FromGeometry", "atom %d is %s, row is %s", i, G.Symbols[i], r.Symbol)
		}
	}
	Z := &ZMatrix{VMatrix: V.Copy(), values: make(map[string]float64, 3*V.Len())}
	for i, r := range V.rows {
		k := r.Keys
		if k[0] >= 0 {
			Z.values[r.Names[0]] = chem.Distance(G, i, k[0]) * lengthUnit
		}
		if k[1] >= 0 {
			Z.values[r.Names[1]] = chem.CentralAngle(G, i, k[0], k[1])
		}
		if k[2] >= 0 {
			Z.values[r.Names[2]] = chem.DihedralAngle(G, i, k[0], k[1], k[2])
		}
	}
	return Z, nil
}

//Value returns the value of the named coordinate, and false if there is no such coordinate.
func (Z *ZMatrix) Value(name string) (float64, bool) {
	v, ok := Z.values[name]
	return v, ok
}

//Values returns a map with the values of all the coordinates.
func (Z *ZMatrix) Values() map[string]float64 {
	ret := make(map[string]float64, len(Z.values))
	for k, v := range Z.values {
		ret[k] = v
	}
	return ret
}

//ConstraintDct returns the current values of the named coordinates.
func (Z *ZMatrix) ConstraintDct(names []string) (map[string]float64, error) {
	ret := make(map[string]float64, len(names))
	for _, n := range names {
		v, ok := Z.values[n]
		if !ok {
			return nil, newError(ErrMissingCoordinate, "ConstraintDct", "no coordinate named %q", n)
		}
		ret[n] = v
	}
	return ret, nil
}

//String returns the z-matrix in the usual text layout: one line per atom with
//the 1-based rows and names of its anchors, then a blank line and the values.
//Angles are given in degrees.
func (Z *ZMatrix) String() string {
	var sb strings.Builder
	for _, r := range Z.rows {
		sb.WriteString(r.Symbol)
		for j, k := range r.Keys {
			if k < 0 {
				break
			}
			fmt.Fprintf(&sb, " %d %s", k+1, r.Names[j])
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	for _, n := range Z.Names() {
		v := Z.values[n]
		if !strings.HasPrefix(n, "R") {
			v *= chem.Rad2Deg
		}
		fmt.Fprintf(&sb, "%-5s = %12.6f\n", n, v)
	}
	return sb.String()
}

//DistanceCoordinateName returns the name of the distance between the atoms in rows a and b.
func (V *VMatrix) DistanceCoordinateName(a, b int) (string, error) {
	if n, ok := V.lookup(0, a, b); ok {
		return n, nil
	}
	if n, ok := V.lookup(0, b, a); ok {
		return n, nil
	}
	return "", newError(ErrMissingCoordinate, "DistanceCoordinateName", "no distance between rows %d and %d", a, b)
}

//CentralAngleCoordinateName returns the name of the a-b-c angle, with b at the vertex.
func (V *VMatrix) CentralAngleCoordinateName(a, b, c int) (string, error) {
	if n, ok := V.lookup(1, a, b, c); ok {
		return n, nil
	}
	if n, ok := V.lookup(1, c, b, a); ok {
		return n, nil
	}
	return "", newError(ErrMissingCoordinate, "CentralAngleCoordinateName", "no angle for rows %d-%d-%d", a, b, c)
}

//DihedralAngleCoordinateName returns the name of the a-b-c-d dihedral.
func (V *VMatrix) DihedralAngleCoordinateName(a, b, c, d int) (string, error) {
	if n, ok := V.lookup(2, a, b, c, d); ok {
		return n, nil
	}
	if n, ok := V.lookup(2, d, c, b, a); ok {
		return n, nil
	}
	return "", newError(ErrMissingCoordinate, "DihedralAngleCoordinateName", "no dihedral for rows %d-%d-%d-%d", a, b, c, d)
}

//lookup returns the name of coordinate j of row rows[0], if its anchors are rows[1:].
func (V *VMatrix) lookup(j int, rows ...int) (string, bool) {
	i := rows[0]
	if i < 0 || i >= len(V.rows) {
		return "", false
	}
	r := V.rows[i]
	for l, k := range rows[1:] {
		if r.Keys[l] != k {
			return "", false
		}
	}
	return r.Names[j], r.Names[j] != ""
}

//SortedNames returns the given coordinate names sorted by row, then by kind.
func SortedNames(names []string) []string {
	ret := make([]string, len(names))
	copy(ret, names)
	kind := map[byte]int{'R': 0, 'A': 1, 'D': 2}
	sort.SliceStable(ret, func(i, j int) bool {
		var ri, rj int
		fmt.Sscanf(ret[i][1:], "%d", &ri)
		fmt.Sscanf(ret[j][1:], "%d", &rj)
		if ri != rj {
			return ri < rj
		}
		return kind[ret[i][0]] < kind[ret[j][0]]
	})
	return ret
}
