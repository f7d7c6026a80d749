/*
 * tsgraph_test.go, part of goChem.
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
	"errors"
	"testing"

	chem "github.com/rmera/tsscan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//chain builds a graph of carbon atoms 0..n-1 joined in a chain by single bonds.
func chain(Te *testing.T, n int) *Graph {
	G := New()
	for i := 0; i < n; i++ {
		require.NoError(Te, G.AddAtom(i, "C"))
	}
	for i := 1; i < n; i++ {
		require.NoError(Te, G.AddBond(i-1, i, 1, Plain))
	}
	return G
}

func TestBondKey(Te *testing.T) {
	b := NewBondKey(5, 2)
	assert.Equal(Te, BondKey{2, 5}, b)
	assert.True(Te, b.Contains(5))
	assert.Equal(Te, 2, b.Other(5))
	assert.Equal(Te, []int{2}, b.Intersect(NewBondKey(2, 7)))
	assert.Equal(Te, []int{5}, b.Minus(NewBondKey(2, 7)))
	assert.Empty(Te, b.Intersect(NewBondKey(3, 4)))
	assert.Panics(Te, func() { NewBondKey(1, 1) })
	keys := []BondKey{{3, 4}, {0, 9}, {0, 2}}
	SortBondKeys(keys)
	assert.Equal(Te, []BondKey{{0, 2}, {0, 9}, {3, 4}}, keys)
}

func TestGraphBasics(Te *testing.T) {
	G := chain(Te, 4)
	assert.Error(Te, G.AddAtom(2, "C"))
	assert.Error(Te, G.AddBond(0, 8, 1, Plain))
	require.NoError(Te, G.AddBond(0, 3, 0, Forming))
	_, ok := G.Bond(1, 2)
	assert.True(Te, ok)
	assert.Equal(Te, []BondKey{{0, 3}}, G.FormingBondKeys())
	assert.Equal(Te, []int{0, 2}, G.Neighbors(3))
	r := G.ReactantsGraph()
	assert.Equal(Te, []int{2}, r.Neighbors(3))
	assert.Empty(Te, r.FormingBondKeys())
	n, ok := G.AtomNeighborAtomKey(3, []int{0, 1})
	assert.True(Te, ok)
	assert.Equal(Te, 0, n)
}

func TestGraphGonum(Te *testing.T) {
	G := chain(Te, 3)
	assert.True(Te, G.HasEdgeBetween(0, 1))
	assert.False(Te, G.HasEdgeBetween(0, 2))
	assert.Nil(Te, G.Node(7))
	assert.Equal(Te, 3, G.Nodes().Len())
	assert.NotNil(Te, G.Edge(2, 1))
}

func TestShortestPaths(Te *testing.T) {
	G := chain(Te, 6)
	p, err := G.ShortestPathBetweenAtoms(1, 4)
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 2, 3, 4}, p)
	p, err = G.ShortestPathBetweenGroups([]int{0, 1}, []int{4, 5})
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 2, 3, 4}, p)
	p, err = G.ShortestPathBetweenGroups([]int{0, 3}, []int{3})
	require.NoError(Te, err)
	assert.Equal(Te, []int{3}, p)
	require.NoError(Te, G.AddAtom(10, "H"))
	_, err = G.ShortestPathBetweenAtoms(0, 10)
	assert.True(Te, errors.Is(err, ErrNoPath))
	cc := G.ConnectedComponentsAtomKeys()
	assert.Equal(Te, [][]int{{0, 1, 2, 3, 4, 5}, {10}}, cc)
}

func TestFormingRings(Te *testing.T) {
	G := chain(Te, 5)
	require.NoError(Te, G.AddBond(0, 4, 0, Forming))
	rings := G.FormingRingsAtomKeys()
	require.Len(Te, rings, 1)
	assert.Equal(Te, []int{0, 1, 2, 3, 4}, rings[0])
	assert.Empty(Te, chain(Te, 3).FormingRingsAtomKeys())
}

func TestCycleRingAtomKeyToFront(Te *testing.T) {
	ring := []int{1, 2, 3, 4, 5}
	r, err := CycleRingAtomKeyToFront(ring, 3)
	require.NoError(Te, err)
	assert.Equal(Te, []int{3, 4, 5, 1, 2}, r)
	r, err = CycleRingAtomKeyToFront(ring, 3, 5)
	require.NoError(Te, err)
	assert.Equal(Te, []int{3, 4, 1, 2, 5}, r)
	r, err = CycleRingAtomKeyToFront(ring, 3, 4)
	require.NoError(Te, err)
	assert.Equal(Te, []int{3, 2, 1, 5, 4}, r)
	r, err = CycleRingAtomKeyToFront(ring, 3, 2)
	require.NoError(Te, err)
	assert.Equal(Te, []int{3, 4, 5, 1, 2}, r)
	assert.Equal(Te, []int{1, 2, 3, 4, 5}, ring)
	//rotating back to the original first key gives the original ring
	for _, k := range ring {
		r, err := CycleRingAtomKeyToFront(ring, k)
		require.NoError(Te, err)
		back, err := CycleRingAtomKeyToFront(r, ring[0])
		require.NoError(Te, err)
		assert.Equal(Te, ring, back)
	}
	_, err = CycleRingAtomKeyToFront(ring, 9)
	assert.True(Te, errors.Is(err, ErrKeyNotInRing))
	_, err = CycleRingAtomKeyToFront(ring, 1, 1)
	assert.Error(Te, err)
}

func TestAddDummyAtoms(Te *testing.T) {
	//H-C#C-H with dummies on both carbons
	G := New()
	for i, s := range []string{"H", "C", "C", "H"} {
		require.NoError(Te, G.AddAtom(i, s))
	}
	require.NoError(Te, G.AddBond(0, 1, 1, Plain))
	require.NoError(Te, G.AddBond(1, 2, 3, Plain))
	require.NoError(Te, G.AddBond(2, 3, 1, Breaking))
	dkm := chem.DummyKeyMap{1: 2, 3: 4}
	D, err := G.AddDummyAtoms(dkm)
	require.NoError(Te, err)
	assert.Equal(Te, 6, D.Len())
	assert.Equal(Te, []int{2, 4}, D.DummyAtomKeys())
	s, _ := D.Symbol(3)
	assert.Equal(Te, "C", s)
	s, _ = D.Symbol(5)
	assert.Equal(Te, "H", s)
	assert.Equal(Te, []BondKey{{3, 5}}, D.BreakingBondKeys())
	b, ok := D.Bond(1, 2)
	require.True(Te, ok)
	assert.Equal(Te, 0.0, b.Order)
	assert.Equal(Te, map[int]int{0: 0, 1: 1, 2: 3, 3: 5}, DummyShiftMap(G.AtomKeys(), dkm))
	E, err := G.AddDummyAtoms(chem.DummyKeyMap{})
	require.NoError(Te, err)
	assert.Equal(Te, G.AtomKeys(), E.AtomKeys())
}

func TestRadicals(Te *testing.T) {
	//vinyl radical, H2C=CH*
	G := New()
	for i, s := range []string{"C", "C", "H", "H", "H"} {
		require.NoError(Te, G.AddAtom(i, s))
	}
	require.NoError(Te, G.AddBond(0, 1, 2, Plain))
	require.NoError(Te, G.AddBond(0, 2, 1, Plain))
	require.NoError(Te, G.AddBond(0, 3, 1, Plain))
	require.NoError(Te, G.AddBond(1, 4, 1, Plain))
	assert.Equal(Te, []int{1}, G.RadicalAtomKeys())
	assert.Equal(Te, []int{1}, G.SigmaRadicalAtomKeys())
	//methyl radical
	M := New()
	for i, s := range []string{"C", "H", "H", "H"} {
		require.NoError(Te, M.AddAtom(i, s))
	}
	for i := 1; i < 4; i++ {
		require.NoError(Te, M.AddBond(0, i, 1, Plain))
	}
	assert.Equal(Te, []int{0}, M.RadicalAtomKeys())
	assert.Empty(Te, M.SigmaRadicalAtomKeys())
}
