/*
 * util_test.go, part of goChem.
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
	"errors"
	"testing"

	"github.com/rmera/tsscan/tsgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtomRolesPartition(Te *testing.T) {
	rxn := testReactions(Te)[HydrogenMigration]
	r, ngb, err := HydrogenMigrationAtomKeys(rxn)
	require.NoError(Te, err)
	assert.Equal(Te, Roles{Attacking: 2, Transferring: 3, Donating: 0}, r)
	assert.Equal(Te, 1, ngb)
	assert.NotEqual(Te, r.Attacking, r.Transferring)
	assert.NotEqual(Te, r.Attacking, r.Donating)
	assert.NotEqual(Te, r.Transferring, r.Donating)
	frm := rxn.TSGraph.FormingBondKeys()[0]
	brk := rxn.TSGraph.BreakingBondKeys()[0]
	assert.False(Te, brk.Contains(r.Attacking))
	assert.False(Te, frm.Contains(r.Donating))
}

func TestAtomRolesMalformed(Te *testing.T) {
	//two forming bonds
	rxn := newReaction(Te, HydrogenMigration, []string{"C", "H", "C", "C"},
		[]testBond{{0, 1, 1, B}, {1, 2, 0, F}, {1, 3, 0, F}, {2, 3, 1, P}})
	_, err := AtomRoles(rxn)
	assert.True(Te, errors.Is(err, ErrMalformedReactionGraph))
	//bonds not sharing an atom
	rxn = newReaction(Te, Substitution, []string{"C", "H", "C", "H"},
		[]testBond{{0, 1, 1, B}, {2, 3, 0, F}})
	_, err = AtomRoles(rxn)
	assert.True(Te, errors.Is(err, ErrMalformedReactionGraph))
}

func TestInsertionFormingBondKeys(Te *testing.T) {
	rxn := newReaction(Te, Insertion, []string{"C", "C", "H", "H", "C", "C"},
		[]testBond{{2, 3, 1, B}, {1, 2, 0, F}, {4, 5, 0, F}, {0, 1, 1, P}})
	fks, err := InsertionFormingBondKeys(rxn)
	require.NoError(Te, err)
	assert.Equal(Te, []tsgraph.BondKey{{4, 5}, {1, 2}}, fks)
	//ties keep the canonical order
	fks, err = InsertionFormingBondKeys(testReactions(Te)[Insertion])
	require.NoError(Te, err)
	assert.Equal(Te, []tsgraph.BondKey{{0, 1}, {0, 2}}, fks)
}

func TestEliminationBreakingBondKeys(Te *testing.T) {
	bks, err := EliminationBreakingBondKeys(testReactions(Te)[Elimination])
	require.NoError(Te, err)
	assert.Equal(Te, []tsgraph.BondKey{{1, 2}, {0, 4}}, bks)
}

func TestRingFormingScissionChain(Te *testing.T) {
	chain, err := RingFormingScissionChain(testReactions(Te)[RingFormScission])
	require.NoError(Te, err)
	assert.Equal(Te, []int{4, 3, 2, 1, 0}, chain)
	assert.Equal(Te, [][]int{{2, 1, 0}, {3, 2, 1}}, windows(chain[1:], 3))
	assert.Equal(Te, [][]int{{3, 2, 1, 0}, {4, 3, 2, 1}}, windows(chain, 4))
}

func TestHydrogenAbstractionIsSigma(Te *testing.T) {
	sigma, err := HydrogenAbstractionIsSigma(testReactions(Te)[HydrogenAbstraction])
	require.NoError(Te, err)
	assert.False(Te, sigma)
	//C2H + H2: the ethynyl radical is a sigma radical
	rxn := newReaction(Te, HydrogenAbstraction, []string{"H", "C", "C", "H", "H"},
		[]testBond{{0, 1, 1, P}, {1, 2, 3, P}, {3, 4, 1, B}, {2, 3, 0, F}},
		[]int{0, 1, 2}, []int{3, 4})
	sigma, err = HydrogenAbstractionIsSigma(rxn)
	require.NoError(Te, err)
	assert.True(Te, sigma)
}

func TestReactionAddDummyAtoms(Te *testing.T) {
	rxn := testReactions(Te)[HydrogenAbstraction]
	d, err := rxn.AddDummyAtoms(map[int]int{1: 2})
	require.NoError(Te, err)
	assert.Equal(Te, [][]int{{0, 1, 2, 3, 4, 5}, {6, 7}}, d.ReactantsKeys)
	assert.Equal(Te, []tsgraph.BondKey{{1, 6}}, d.TSGraph.FormingBondKeys())
	//the original is untouched
	assert.Equal(Te, 7, rxn.TSGraph.Len())
	assert.Equal(Te, [][]int{{0, 1, 2, 3, 4}, {5, 6}}, rxn.ReactantsKeys)
}
