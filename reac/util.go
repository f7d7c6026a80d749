/*
 * util.go, part of goChem.
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

	"github.com/rmera/tsscan/tsgraph"
)

//Roles contains the reacting atoms of a reaction with one forming and one
//breaking bond sharing an atom.
type Roles struct {
	Attacking    int //in the forming bond only
	Transferring int //in both bonds
	Donating     int //in the breaking bond only. The leaving atom, in substitutions.
}

//singleBondKeys returns the forming and the breaking bonds of the reaction, and an
//error if there is not exactly one of each.
func singleBondKeys(rxn *Reaction) (frm, brk tsgraph.BondKey, err error) {
	fks := rxn.TSGraph.FormingBondKeys()
	bks := rxn.TSGraph.BreakingBondKeys()
	if len(fks) != 1 || len(bks) != 1 {
		return frm, brk, newError(ErrMalformedReactionGraph, "singleBondKeys", "a %s needs one forming and one breaking bond, got %d and %d", rxn.Class, len(fks), len(bks))
	}
	return fks[0], bks[0], nil
}

//formingBondKey returns the only forming bond of the reaction.
func formingBondKey(rxn *Reaction) (tsgraph.BondKey, error) {
	fks := rxn.TSGraph.FormingBondKeys()
	if len(fks) != 1 {
		return tsgraph.BondKey{}, newError(ErrMalformedReactionGraph, "formingBondKey", "a %s needs one forming bond, got %d", rxn.Class, len(fks))
	}
	return fks[0], nil
}

//breakingBondKey returns the only breaking bond of the reaction.
func breakingBondKey(rxn *Reaction) (tsgraph.BondKey, error) {
	bks := rxn.TSGraph.BreakingBondKeys()
	if len(bks) != 1 {
		return tsgraph.BondKey{}, newError(ErrMalformedReactionGraph, "breakingBondKey", "a %s needs one breaking bond, got %d", rxn.Class, len(bks))
	}
	return bks[0], nil
}

//AtomRoles obtains the attacking, transferring and donating atoms from the forming
//and breaking bonds. The transferring atom is the one shared by both bonds, the
//attacking atom is the rest of the forming bond and the donating atom the rest of
//the breaking bond.
func AtomRoles(rxn *Reaction) (Roles, error) {
	frm, brk, err := singleBondKeys(rxn)
	if err != nil {
		return Roles{}, errDecorate(err, "AtomRoles")
	}
	tra := frm.Intersect(brk)
	if len(tra) != 1 {
		return Roles{}, newError(ErrMalformedReactionGraph, "AtomRoles", "forming bond %v and breaking bond %v must share one atom", frm, brk)
	}
	return Roles{
		Attacking:    frm.Minus(brk)[0],
		Transferring: tra[0],
		Donating:     brk.Minus(frm)[0],
	}, nil
}

//HydrogenMigrationAtomKeys returns the roles of the atoms in a hydrogen migration, plus
//the neighbor of the attacking atom along the shortest path, in the reactants, from
//the attacking atom to the donating one.
func HydrogenMigrationAtomKeys(rxn *Reaction) (Roles, int, error) {
	r, err := AtomRoles(rxn)
	if err != nil {
		return r, -1, errDecorate(err, "HydrogenMigrationAtomKeys")
	}
	gra := rxn.TSGraph.ReactantsGraph()
	path, err := gra.ShortestPathBetweenAtoms(r.Attacking, r.Donating)
	if err != nil {
		return r, -1, newError(ErrMalformedReactionGraph, "HydrogenMigrationAtomKeys", "attacking atom %d and donating atom %d are not connected", r.Attacking, r.Donating)
	}
	ngb, ok := gra.AtomNeighborAtomKey(r.Attacking, path)
	if !ok {
		return r, -1, newError(ErrMalformedReactionGraph, "HydrogenMigrationAtomKeys", "attacking atom %d has no neighbor toward %d", r.Attacking, r.Donating)
	}
	return r, ngb, nil
}

//RingFormingScissionChain returns the atoms along the shortest path, in the
//reactants, from the donating atom to the attacking atom.
func RingFormingScissionChain(rxn *Reaction) ([]int, error) {
	r, err := AtomRoles(rxn)
	if err != nil {
		return nil, errDecorate(err, "RingFormingScissionChain")
	}
	path, err := rxn.TSGraph.ReactantsGraph().ShortestPathBetweenAtoms(r.Donating, r.Attacking)
	if err != nil {
		return nil, newError(ErrMalformedReactionGraph, "RingFormingScissionChain", "donating atom %d and attacking atom %d are not connected", r.Donating, r.Attacking)
	}
	return path, nil
}

//HydrogenAbstractionIsSigma returns true if the attacking atom of a hydrogen abstraction is
//a sigma radical in the reactants.
func HydrogenAbstractionIsSigma(rxn *Reaction) (bool, error) {
	r, err := AtomRoles(rxn)
	if err != nil {
		return false, errDecorate(err, "HydrogenAbstractionIsSigma")
	}
	for _, k := range rxn.TSGraph.ReactantsGraph().SigmaRadicalAtomKeys() {
		if k == r.Attacking {
			return true, nil
		}
	}
	return false, nil
}

//InsertionFormingBondKeys returns the forming bonds of an insertion. The first one is the
//bond to scan: the bonds are sorted by the number of atoms they share with the breaking bond,
//ties broken by the canonical order of the bond keys.
func InsertionFormingBondKeys(rxn *Reaction) ([]tsgraph.BondKey, error) {
	brk, err := breakingBondKey(rxn)
	if err != nil {
		return nil, errDecorate(err, "InsertionFormingBondKeys")
	}
	fks := rxn.TSGraph.FormingBondKeys()
	if len(fks) != 2 {
		return nil, newError(ErrMalformedReactionGraph, "InsertionFormingBondKeys", "an insertion needs two forming bonds, got %d", len(fks))
	}
	sort.SliceStable(fks, func(i, j int) bool {
		return len(fks[i].Intersect(brk)) < len(fks[j].Intersect(brk))
	})
	return fks, nil
}

//EliminationBreakingBondKeys returns the breaking bonds of an elimination, sorted by the number
//of atoms they share with the forming bond, ties broken by canonical order. The first one is
//the bond left out of the TS z-matrix.
func EliminationBreakingBondKeys(rxn *Reaction) ([]tsgraph.BondKey, error) {
	frm, err := formingBondKey(rxn)
	if err != nil {
		return nil, errDecorate(err, "EliminationBreakingBondKeys")
	}
	bks := rxn.TSGraph.BreakingBondKeys()
	if len(bks) < 1 {
		return nil, newError(ErrMalformedReactionGraph, "EliminationBreakingBondKeys", "an elimination needs breaking bonds")
	}
	sort.SliceStable(bks, func(i, j int) bool {
		return len(bks[i].Intersect(frm)) < len(bks[j].Intersect(frm))
	})
	return bks, nil
}
