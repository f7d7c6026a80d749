/*
 * dispatch.go, part of goChem.
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
	"github.com/rmera/tsscan/zmat"
)

//zmaOrder tells how the atoms of a TS z-matrix are ordered.
type zmaOrder struct {
	start     []int //atoms to place first, in this order
	reactants bool  //place the first reactant, then the second
}

//strategy contains the class-specific parts of the TS z-matrix and scan construction.
//Grids are built by Grid, which also matches on the class.
type strategy struct {
	scan        func(*Reaction, *zmat.ZMatrix) ([]string, error)
	constraints func(*Reaction, *zmat.ZMatrix, *Options) ([]string, error)
	linear      func(*Reaction) ([]int, error) //atoms that always get a dummy atom
	order       func(*Reaction) (zmaOrder, error)
	updateGuess bool
}

var strategies = map[ReactionClass]strategy{
	HydrogenMigration: {
		scan:        formingBondScan,
		constraints: hydrogenMigrationConstraints,
		linear:      noLinear,
		order:       hydrogenMigrationOrder,
		updateGuess: true,
	},
	BetaScission: {
		scan:        breakingBondScan,
		constraints: noConstraints,
		linear:      noLinear,
		order:       naturalOrder,
	},
	RingFormScission: {
		scan:        breakingBondScan,
		constraints: ringFormingScissionConstraints,
		linear:      noLinear,
		order:       ringFormingScissionOrder,
	},
	Elimination: {
		scan:        eliminationScan,
		constraints: noConstraints,
		linear:      noLinear,
		order:       eliminationOrder,
	},
	HydrogenAbstraction: {
		scan:        formingBondScan,
		constraints: noConstraints,
		linear:      hydrogenAbstractionLinear,
		order:       reactantsOrder,
	},
	Addition: {
		scan:        formingBondScan,
		constraints: noConstraints,
		linear:      noLinear,
		order:       reactantsOrder,
	},
	Insertion: {
		scan:        insertionScan,
		constraints: noConstraints,
		linear:      noLinear,
		order:       insertionOrder,
	},
	Substitution: {
		scan:        formingBondScan,
		constraints: noConstraints,
		linear:      substitutionLinear,
		order:       reactantsOrder,
	},
}

//dispatch returns the strategy for the class, or an error if the class is not supported.
func dispatch(class ReactionClass) (strategy, error) {
	s, ok := strategies[class]
	if !ok {
		return strategy{}, newError(ErrUnsupportedReactionClass, "dispatch", "class %d", int(class))
	}
	return s, nil
}

//UpdateGuess returns whether each point of the scan should start from the geometry
//optimized in the previous one. Only hydrogen migrations do.
func UpdateGuess(class ReactionClass) (bool, error) {
	s, err := dispatch(class)
	if err != nil {
		return false, errDecorate(err, "UpdateGuess")
	}
	return s.updateGuess, nil
}

func noLinear(*Reaction) ([]int, error) { return nil, nil }

func noConstraints(*Reaction, *zmat.ZMatrix, *Options) ([]string, error) { return nil, nil }
