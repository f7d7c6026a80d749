/*
 * tszmat.go, part of goChem.
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
	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/tsgraph"
	"github.com/rmera/tsscan/zmat"
)

//TSZMatrix builds the z-matrix for the TS geometry tsGeo of the reaction. Atom i of tsGeo
//must be the atom with key i in the TS graph. Dummy atoms are added over the linear
//atoms (and, depending on the class, over the atoms that become linear along the
//reaction), and the atoms are ordered so that the coordinates to scan are z-matrix
//coordinates. It returns the z-matrix, the atom key of each of its rows, and the dummy
//atoms added. rxn is not modified.
func TSZMatrix(rxn *Reaction, tsGeo *chem.Geom, O *Options) (*zmat.ZMatrix, []int, chem.DummyKeyMap, error) {
	if O == nil {
		O = DefaultOptions()
	}
	st, err := dispatch(rxn.Class)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	if err := rxn.checkGeometry(tsGeo); err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	rxn = rxn.Copy()

	//1. linear atoms
	lin, err := chem.LinearAtoms(tsGeo, nil, O.LinearTolerance())
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	extra, err := st.linear(rxn)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	lin = append(lin, extra...)

	//2. dummy atoms, in the geometry and in the reaction
	geo, dkm, err := chem.InsertDummiesOnLinearAtoms(tsGeo, lin, rxn.TSGraph, O.DummyDistance())
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	if len(dkm) > 0 {
		O.Logger().Debug("dummy atoms added", "class", rxn.Class.String(), "dummies", len(dkm))
	}
	rxn, err = rxn.AddDummyAtoms(dkm)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}

	//3. order of the atoms
	ord, err := st.order(rxn)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}

	//4. the z-matrix
	var vma *zmat.VMatrix
	var keys []int
	tsg := rxn.TSGraph
	if ord.reactants {
		if err = rxn.checkReactants(); err != nil {
			return nil, nil, nil, errDecorate(err, "TSZMatrix")
		}
		vma, keys, err = zmat.FromGraph(tsg, rxn.ReactantsKeys[0], nil)
		if err == nil {
			vma, keys, err = zmat.Continue(tsg, rxn.ReactantsKeys[1], vma, keys)
		}
	} else {
		vma, keys, err = zmat.FromGraph(tsg, nil, ord.start)
	}
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	if len(keys) != geo.Len() {
		return nil, nil, nil, newError(ErrMalformedReactionGraph, "TSZMatrix", "z-matrix has %d atoms, geometry %d", len(keys), geo.Len())
	}
	sub, err := chem.FromSubset(geo, keys)
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	zma, err := zmat.FromGeometry(vma, sub, O.LengthFactor())
	if err != nil {
		return nil, nil, nil, errDecorate(err, "TSZMatrix")
	}
	return zma, keys, dkm, nil
}

//The atom orderings for each class follow.

func naturalOrder(*Reaction) (zmaOrder, error) { return zmaOrder{}, nil }

func reactantsOrder(*Reaction) (zmaOrder, error) { return zmaOrder{reactants: true}, nil }

//formingRing returns the first ring closed by a forming bond.
func formingRing(rxn *Reaction) ([]int, error) {
	rings := rxn.TSGraph.FormingRingsAtomKeys()
	if len(rings) == 0 {
		return nil, newError(ErrMalformedReactionGraph, "formingRing", "a %s needs a ring closed by the forming bond", rxn.Class)
	}
	return rings[0], nil
}

//hydrogenMigrationOrder is the ring from the migrating atom to the donating
//atom, so the breaking bond is left out of the z-matrix:
//(transferring, attacking, ..., donating).
func hydrogenMigrationOrder(rxn *Reaction) (zmaOrder, error) {
	ring, err := formingRing(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	r, err := AtomRoles(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	start, err := tsgraph.CycleRingAtomKeyToFront(ring, r.Transferring, r.Donating)
	if err != nil {
		return zmaOrder{}, errDecorate(err, "hydrogenMigrationOrder")
	}
	return zmaOrder{start: start}, nil
}

//ringFormingScissionOrder is (atom, attacking, transferring, ...): the bond between the
//last atom and the one before the attacking atom is left out of the z-matrix.
func ringFormingScissionOrder(rxn *Reaction) (zmaOrder, error) {
	ring, err := formingRing(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	r, err := AtomRoles(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	start, err := tsgraph.CycleRingAtomKeyToFront(ring, r.Transferring, r.Attacking)
	if err != nil {
		return zmaOrder{}, errDecorate(err, "ringFormingScissionOrder")
	}
	if len(start) < 3 {
		return zmaOrder{}, newError(ErrMalformedReactionGraph, "ringFormingScissionOrder", "ring %v too small", ring)
	}
	start, err = tsgraph.CycleRingAtomKeyToFront(start, start[len(start)-2])
	if err != nil {
		return zmaOrder{}, errDecorate(err, "ringFormingScissionOrder")
	}
	return zmaOrder{start: start}, nil
}

//ringEnds returns the atoms of bond b ordered so that the first one is the closest to
//the group of atoms other.
func ringEnds(rxn *Reaction, b, other tsgraph.BondKey) (int, int, error) {
	if in := b.Intersect(other); len(in) == 1 {
		return in[0], b.Other(in[0]), nil
	}
	path, err := rxn.TSGraph.ShortestPathBetweenGroups(b.Slice(), other.Slice())
	if err != nil {
		return -1, -1, errDecorate(err, "ringEnds")
	}
	return path[0], b.Other(path[0]), nil
}

//eliminationOrder leaves out of the z-matrix the breaking bond that doesn't share an atom
//with the forming bond (or the first one, if both or neither do). The ring starts at
//its atom closest to the forming bond.
func eliminationOrder(rxn *Reaction) (zmaOrder, error) {
	ring, err := formingRing(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	frm, err := formingBondKey(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	bks, err := EliminationBreakingBondKeys(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	k1, k2, err := ringEnds(rxn, bks[0], frm)
	if err != nil {
		return zmaOrder{}, errDecorate(err, "eliminationOrder")
	}
	start, err := tsgraph.CycleRingAtomKeyToFront(ring, k1, k2)
	if err != nil {
		return zmaOrder{}, errDecorate(err, "eliminationOrder")
	}
	return zmaOrder{start: start}, nil
}

//insertionOrder leaves out of the z-matrix the forming bond that is not scanned, if the
//insertion closes a ring. Otherwise the reactants are placed one after the other, or in
//the natural order of the graph if they are not known.
func insertionOrder(rxn *Reaction) (zmaOrder, error) {
	fks, err := InsertionFormingBondKeys(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	rings := rxn.TSGraph.FormingRingsAtomKeys()
	if len(rings) == 0 {
		if len(rxn.ReactantsKeys) == 2 {
			return reactantsOrder(rxn)
		}
		return naturalOrder(rxn)
	}
	brk, err := breakingBondKey(rxn)
	if err != nil {
		return zmaOrder{}, err
	}
	ring := rings[0]
	for _, r := range rings {
		if containsInt(r, fks[1][0]) && containsInt(r, fks[1][1]) {
			ring = r
			break
		}
	}
	k1, k2, err := ringEnds(rxn, fks[1], brk)
	if err != nil {
		return zmaOrder{}, errDecorate(err, "insertionOrder")
	}
	start, err := tsgraph.CycleRingAtomKeyToFront(ring, k1, k2)
	if err != nil {
		return zmaOrder{}, errDecorate(err, "insertionOrder")
	}
	return zmaOrder{start: start}, nil
}

//hydrogenAbstractionLinear returns the transferring hydrogen, which is collinear with
//the attacking and donating atoms, and the attacking atom if it is a sigma radical.
func hydrogenAbstractionLinear(rxn *Reaction) ([]int, error) {
	r, err := AtomRoles(rxn)
	if err != nil {
		return nil, err
	}
	ret := []int{r.Transferring}
	sigma, err := HydrogenAbstractionIsSigma(rxn)
	if err != nil {
		return nil, err
	}
	if sigma {
		ret = append(ret, r.Attacking)
	}
	return ret, nil
}

//substitutionLinear returns the transferring atom, between the attacking and leaving ones.
func substitutionLinear(rxn *Reaction) ([]int, error) {
	r, err := AtomRoles(rxn)
	if err != nil {
		return nil, err
	}
	return []int{r.Transferring}, nil
}
