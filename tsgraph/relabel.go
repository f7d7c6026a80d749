/*
 * relabel.go, part of goChem.
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
	"sort"

	chem "github.com/rmera/tsscan"
)

//Relabel returns a copy of the graph with the atom keys changed according to keyMap.
//Keys absent from keyMap are kept. The resulting keys must be unique.
func (G *Graph) Relabel(keyMap map[int]int) (*Graph, error) {
	ret := New()
	newkey := func(k int) int {
		if v, ok := keyMap[k]; ok {
			return v
		}
		return k
	}
	for _, k := range G.AtomKeys() {
		if err := ret.AddAtom(newkey(k), G.symbols[k]); err != nil {
			err.(*Error).Decorate("Relabel")
			return nil, err
		}
	}
	for _, k := range G.BondKeys() {
		b := G.bonds[k]
		if err := ret.AddBond(newkey(k[0]), newkey(k[1]), b.Order, b.Tag); err != nil {
			err.(*Error).Decorate("Relabel")
			return nil, err
		}
	}
	return ret, nil
}

//DummyShiftMap returns how each of keys changes when the dummy atoms in dummyKeys are
//inserted in the numbering: every key equal or larger than a dummy key is moved one
//position up, with the dummy keys processed in ascending order.
func DummyShiftMap(keys []int, dummyKeys chem.DummyKeyMap) map[int]int {
	ret := make(map[int]int, len(keys))
	for _, k := range keys {
		ret[k] = k
	}
	dks := make([]int, 0, len(dummyKeys))
	for _, d := range dummyKeys {
		dks = append(dks, d)
	}
	sort.Ints(dks)
	for _, d := range dks {
		for k, v := range ret {
			if v >= d {
				ret[k] = v + 1
			}
		}
	}
	return ret
}

//AddDummyAtoms returns a copy of the graph with the dummy atoms in dummyKeys added. dummyKeys
//maps parent atom keys to dummy keys, both in the numbering of the geometry with the dummy atoms
//(as returned by chem.InsertDummiesOnLinearAtoms). The original atoms are renumbered
//accordingly, and each dummy atom is joined to its parent with a zero-order bond.
func (G *Graph) AddDummyAtoms(dummyKeys chem.DummyKeyMap) (*Graph, error) {
	shift := DummyShiftMap(G.AtomKeys(), dummyKeys)
	ret, err := G.Relabel(shift)
	if err != nil {
		err.(*Error).Decorate("AddDummyAtoms")
		return nil, err
	}
	for _, parent := range dummyKeys.ParentKeys() {
		d := dummyKeys[parent]
		if !ret.HasAtom(parent) {
			return nil, newError(ErrBadKey, "AddDummyAtoms", "parent atom %d of dummy atom %d not in graph", parent, d)
		}
		if err := ret.AddAtom(d, chem.DummySymbol); err != nil {
			err.(*Error).Decorate("AddDummyAtoms")
			return nil, err
		}
		if err := ret.AddBond(parent, d, 0, Plain); err != nil {
			err.(*Error).Decorate("AddDummyAtoms")
			return nil, err
		}
	}
	return ret, nil
}

//DummyAtomKeys returns the keys of the dummy atoms in the graph, sorted.
func (G *Graph) DummyAtomKeys() []int {
	ret := make([]int, 0, 2)
	for _, k := range G.AtomKeys() {
		if G.symbols[k] == chem.DummySymbol {
			ret = append(ret, k)
		}
	}
	return ret
}
