/*
 * helpers_test.go, part of goChem.
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
	"testing"

	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/tsgraph"
	v3 "github.com/rmera/tsscan/v3"
	"github.com/stretchr/testify/require"
)

type testBond struct {
	a, b  int
	order float64
	tag   tsgraph.Tag
}

func newReaction(Te *testing.T, class ReactionClass, symbols []string, bonds []testBond, reactants ...[]int) *Reaction {
	G := tsgraph.New()
	for i, s := range symbols {
		require.NoError(Te, G.AddAtom(i, s))
	}
	for _, b := range bonds {
		require.NoError(Te, G.AddBond(b.a, b.b, b.order, b.tag))
	}
	return &Reaction{Class: class, TSGraph: G, ReactantsKeys: reactants}
}

//zigzag returns a geometry with the atoms along a non-linear chain.
func zigzag(Te *testing.T, symbols []string) *chem.Geom {
	data := make([]float64, 0, 3*len(symbols))
	for i := range symbols {
		data = append(data, 1.2*float64(i), 0.8*float64(i%2), 0.3*float64(i%3))
	}
	coords, err := v3.NewMatrix(data)
	require.NoError(Te, err)
	G, err := chem.NewGeom(symbols, coords)
	require.NoError(Te, err)
	return G
}

const (
	P = tsgraph.Plain
	F = tsgraph.Forming
	B = tsgraph.Breaking
)

//testReactions contains a small reaction for each class.
func testReactions(Te *testing.T) map[ReactionClass]*Reaction {
	return map[ReactionClass]*Reaction{
		//H3 moves from C0 to C2
		HydrogenMigration: newReaction(Te, HydrogenMigration, []string{"C", "C", "C", "H"},
			[]testBond{{0, 1, 1, P}, {1, 2, 1, P}, {0, 3, 1, B}, {2, 3, 0, F}}),
		BetaScission: newReaction(Te, BetaScission, []string{"C", "C", "C", "H"},
			[]testBond{{0, 1, 1, P}, {1, 2, 1, B}, {0, 3, 1, P}}),
		//C0 closes a ring on O3, releasing O4
		RingFormScission: newReaction(Te, RingFormScission, []string{"C", "C", "C", "O", "O"},
			[]testBond{{0, 1, 1, P}, {1, 2, 1, P}, {2, 3, 1, P}, {3, 4, 1, B}, {0, 3, 0, F}}),
		//C2H4O2H -> C2H4 + HO2
		Elimination: newReaction(Te, Elimination, []string{"C", "C", "O", "O", "H"},
			[]testBond{{0, 1, 1, P}, {1, 2, 1, B}, {2, 3, 1, P}, {0, 4, 1, B}, {3, 4, 0, F}}),
		//CH4 + OH -> CH3 + H2O
		HydrogenAbstraction: newReaction(Te, HydrogenAbstraction, []string{"C", "H", "H", "H", "H", "O", "H"},
			[]testBond{{0, 1, 1, B}, {0, 2, 1, P}, {0, 3, 1, P}, {0, 4, 1, P}, {5, 6, 1, P}, {1, 5, 0, F}},
			[]int{0, 1, 2, 3, 4}, []int{5, 6}),
		Addition: newReaction(Te, Addition, []string{"C", "C", "H"},
			[]testBond{{0, 1, 2, P}, {1, 2, 0, F}},
			[]int{0, 1}, []int{2}),
		//CH2 + H2 -> CH4
		Insertion: newReaction(Te, Insertion, []string{"C", "H", "H", "H", "H"},
			[]testBond{{1, 2, 1, B}, {0, 1, 0, F}, {0, 2, 0, F}, {0, 3, 1, P}, {0, 4, 1, P}},
			[]int{0, 3, 4}, []int{1, 2}),
		//F + CH3Cl -> CH3F + Cl
		Substitution: newReaction(Te, Substitution, []string{"C", "H", "H", "H", "Cl", "F"},
			[]testBond{{0, 1, 1, P}, {0, 2, 1, P}, {0, 3, 1, P}, {0, 4, 1, B}, {0, 5, 0, F}},
			[]int{0, 1, 2, 3, 4}, []int{5}),
	}
}

func newGeom(Te *testing.T, symbols []string, data ...float64) *chem.Geom {
	coords, err := v3.NewMatrix(data)
	require.NoError(Te, err)
	G, err := chem.NewGeom(symbols, coords)
	require.NoError(Te, err)
	return G
}
