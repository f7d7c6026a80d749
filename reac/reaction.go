/*
 * reaction.go, part of goChem.
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

package reac

import (
	"sort"

	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/tsgraph"
)

//Reaction is a classified elementary reaction. Functions in this package never
//modify a Reaction, they derive new ones.
type Reaction struct {
	Class ReactionClass
	//TSGraph is the graph of the forward transition state.
	TSGraph *tsgraph.Graph
	//ReactantsKeys contains the atom keys of each reactant. It is
	//only required for bimolecular reactions.
	ReactantsKeys [][]int
}

//Copy returns an independent copy of the reaction.
func (R *Reaction) Copy() *Reaction {
	ret := &Reaction{Class: R.Class}
	if R.TSGraph != nil {
		ret.TSGraph = R.TSGraph.Copy()
	}
	ret.ReactantsKeys = copyKeys(R.ReactantsKeys)
	return ret
}

func copyKeys(keys [][]int) [][]int {
	if keys == nil {
		return nil
	}
	ret := make([][]int, len(keys))
	for i, v := range keys {
		ret[i] = make([]int, len(v))
		copy(ret[i], v)
	}
	return ret
}

//AddDummyAtoms returns a new reaction with the dummy atoms in dummyKeys added to the
//TS graph (see tsgraph.Graph.AddDummyAtoms). The reactant key sets are renumbered the
//same way, and each dummy atom joins the reactant of the atom it is attached to.
func (R *Reaction) AddDummyAtoms(dummyKeys chem.DummyKeyMap) (*Reaction, error) {
	g, err := R.TSGraph.AddDummyAtoms(dummyKeys)
	if err != nil {
		return nil, errDecorate(err, "AddDummyAtoms")
	}
	shift := tsgraph.DummyShiftMap(R.TSGraph.AtomKeys(), dummyKeys)
	ret := &Reaction{Class: R.Class, TSGraph: g}
	if R.ReactantsKeys != nil {
		ret.ReactantsKeys = make([][]int, len(R.ReactantsKeys))
	}
	for i, rk := range R.ReactantsKeys {
		nk := make([]int, 0, len(rk)+1)
		for _, k := range rk {
			nk = append(nk, shift[k])
		}
		for _, p := range dummyKeys.ParentKeys() {
			if containsInt(nk, p) {
				nk = append(nk, dummyKeys[p])
			}
		}
		sort.Ints(nk)
		ret.ReactantsKeys[i] = nk
	}
	return ret, nil
}

//Relabel returns a new reaction with the atom keys changed according to keyMap.
func (R *Reaction) Relabel(keyMap map[int]int) (*Reaction, error) {
	g, err := R.TSGraph.Relabel(keyMap)
	if err != nil {
		return nil, errDecorate(err, "Relabel")
	}
	ret := &Reaction{Class: R.Class, TSGraph: g, ReactantsKeys: copyKeys(R.ReactantsKeys)}
	for _, rk := range ret.ReactantsKeys {
		for j, k := range rk {
			if v, ok := keyMap[k]; ok {
				rk[j] = v
			}
		}
		sort.Ints(rk)
	}
	return ret, nil
}

//checkGeometry verifies that the atoms of G are those of the TS graph, with atom i of
//G corresponding to the key i.
func (R *Reaction) checkGeometry(G *chem.Geom) error {
	if R.TSGraph == nil {
		return newError(ErrMalformedReactionGraph, "checkGeometry", "no TS graph")
	}
	keys := R.TSGraph.AtomKeys()
	if len(keys) != G.Len() {
		return newError(ErrMalformedReactionGraph, "checkGeometry", "%d atoms in the graph, %d in the geometry", len(keys), G.Len())
	}
	for i, k := range keys {
		s, _ := R.TSGraph.Symbol(k)
		if k != i || s != G.Symbols[i] {
			return newError(ErrMalformedReactionGraph, "checkGeometry", "atom %d of the geometry (%s) doesn't match the graph", i, G.Symbols[i])
		}
	}
	return nil
}

//checkReactants verifies that there are two sets of reactant keys, covering the TS graph.
func (R *Reaction) checkReactants() error {
	if len(R.ReactantsKeys) != 2 {
		return newError(ErrMalformedReactionGraph, "checkReactants", "a %s needs 2 reactants, got %d", R.Class, len(R.ReactantsKeys))
	}
	n := 0
	for _, rk := range R.ReactantsKeys {
		for _, k := range rk {
			if !R.TSGraph.HasAtom(k) {
				return newError(ErrMalformedReactionGraph, "checkReactants", "reactant atom %d not in the TS graph", k)
			}
		}
		n += len(rk)
	}
	if n != R.TSGraph.Len() {
		return newError(ErrMalformedReactionGraph, "checkReactants", "reactants have %d atoms, the TS graph %d", n, R.TSGraph.Len())
	}
	return nil
}

func containsInt(s []int, v int) bool {
	for _, k := range s {
		if k == v {
			return true
		}
	}
	return false
}
