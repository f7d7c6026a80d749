/*
 * keys.go, part of goChem.
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

package tsgraph

import (
	"fmt"
	"sort"
)

//BondKey is an unordered pair of atom keys. It is always stored
//with the smaller key first, so BondKeys can be compared with ==.
type BondKey [2]int

//NewBondKey returns the bond key for atoms a and b. Panics if a==b.
func NewBondKey(a, b int) BondKey {
	if a == b {
		panic(fmt.Sprintf("tsgraph: an atom (%d) can't be bonded to itself", a))
	}
	if a > b {
		a, b = b, a
	}
	return BondKey{a, b}
}

//Contains returns true if k is one of the atoms in the bond.
func (B BondKey) Contains(k int) bool {
	return B[0] == k || B[1] == k
}

//Other returns the atom in the bond which is not k. Panics if k is not in the bond.
func (B BondKey) Other(k int) int {
	switch k {
	case B[0]:
		return B[1]
	case B[1]:
		return B[0]
	}
	panic(fmt.Sprintf("tsgraph: atom %d is not in bond %v", k, B))
}

//Intersect returns the atoms present in both B and O, sorted.
func (B BondKey) Intersect(O BondKey) []int {
	ret := make([]int, 0, 2)
	for _, v := range B {
		if O.Contains(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

//Minus returns the atoms of B that are not in O, sorted.
func (B BondKey) Minus(O BondKey) []int {
	ret := make([]int, 0, 2)
	for _, v := range B {
		if !O.Contains(v) {
			ret = append(ret, v)
		}
	}
	return ret
}

//Slice returns the atoms in the bond as a slice.
func (B BondKey) Slice() []int {
	return []int{B[0], B[1]}
}

func (B BondKey) String() string {
	return fmt.Sprintf("{%d,%d}", B[0], B[1])
}

//Less gives the canonical order of bond keys: by the sorted atom tuples.
func (B BondKey) Less(O BondKey) bool {
	if B[0] != O[0] {
		return B[0] < O[0]
	}
	return B[1] < O[1]
}

//SortBondKeys sorts the bond keys in canonical order, in place.
func SortBondKeys(keys []BondKey) {
	sort.Slice(keys, func(i, j int) bool { return keys[i].Less(keys[j]) })
}
