/*
 * bonds.go, part of goChem.
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
	"sort"

	v3 "github.com/rmera/tsscan/v3"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

type bond struct {
	at1, at2 int
	dist     float64
}

//Connectivity is the adjacency of a geometry, indexed by atom key.
//It implements Neighborer.
type Connectivity [][]int

//Neighbors returns the atoms bonded to key, in ascending order.
func (C Connectivity) Neighbors(key int) []int {
	if key < 0 || key >= len(C) {
		return nil
	}
	return C[key]
}

//AssignBonds returns the connectivity of a geometry based on a simple distance
//criterium, similar to that described in DOI:10.1186/1758-2946-3-33
//Dummy atoms are never bonded.
func AssignBonds(G *Geom) (Connectivity, error) {
	tot := G.Len()
	t3 := v3.Zeros(1)
	perat := make([][]bond, tot)
	for i := 0; i < tot; i++ {
		if G.IsDummy(i) {
			continue
		}
		cov1, ok := symbolCovrad[G.Symbols[i]]
		if !ok {
			return nil, newCError("AssignBonds", "Couldn't find the covalent radii for %s %d", G.Symbols[i], i)
		}
		for j := i + 1; j < tot; j++ {
			if G.IsDummy(j) {
				continue
			}
			cov2, ok := symbolCovrad[G.Symbols[j]]
			if !ok {
				return nil, newCError("AssignBonds", "Couldn't find the covalent radii for %s %d", G.Symbols[j], j)
			}
			t3.Sub(G.Coord(j), G.Coord(i))
			d := t3.Norm(2)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := bond{at1: i, at2: j, dist: d}
				perat[i] = append(perat[i], b)
				perat[j] = append(perat[j], b)
			}
		}
	}
	//Now we check that no atom has too many bonds.
	removed := make(map[[2]int]bool)
	for i := 0; i < tot; i++ {
		max := symbolMaxBonds[G.Symbols[i]]
		if max == 0 { //means there is not a specified number of bonds for this atom.
			continue
		}
		bs := perat[i][:0:0]
		for _, b := range perat[i] {
			if !removed[[2]int{b.at1, b.at2}] {
				bs = append(bs, b)
			}
		}
		sort.Slice(bs, func(i, j int) bool { return bs[i].dist < bs[j].dist })
		for k := max; k < len(bs); k++ {
			removed[[2]int{bs[k].at1, bs[k].at2}] = true //we remove the longest bonds
		}
	}
	conn := make(Connectivity, tot)
	for i := 0; i < tot; i++ {
		for _, b := range perat[i] {
			if removed[[2]int{b.at1, b.at2}] {
				continue
			}
			other := b.at1
			if other == i {
				other = b.at2
			}
			conn[i] = append(conn[i], other)
		}
		sort.Ints(conn[i])
	}
	return conn, nil
}
