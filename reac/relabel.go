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

package reac

import (
	chem "github.com/rmera/tsscan"
)

//RelabelForZMatrix returns a reaction in which the atom keys are the rows of the TS
//z-matrix: the dummy atoms in dummyKeys are added, and each atom is relabeled to the
//index of its key in zmaKeys, as returned by TSZMatrix.
func RelabelForZMatrix(rxn *Reaction, zmaKeys []int, dummyKeys chem.DummyKeyMap) (*Reaction, error) {
	drxn, err := rxn.AddDummyAtoms(dummyKeys)
	if err != nil {
		return nil, errDecorate(err, "RelabelForZMatrix")
	}
	if len(zmaKeys) != drxn.TSGraph.Len() {
		return nil, newError(ErrMalformedReactionGraph, "RelabelForZMatrix", "%d z-matrix keys for %d atoms", len(zmaKeys), drxn.TSGraph.Len())
	}
	m := make(map[int]int, len(zmaKeys))
	for i, k := range zmaKeys {
		if !drxn.TSGraph.HasAtom(k) {
			return nil, newError(ErrMalformedReactionGraph, "RelabelForZMatrix", "z-matrix key %d not in the reaction", k)
		}
		m[k] = i
	}
	ret, err := drxn.Relabel(m)
	return ret, errDecorate(err, "RelabelForZMatrix")
}
