/*
 * grid.go, part of goChem.
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
	"math"

	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/zmat"
	"gonum.org/v1/gonum/floats"
)

//Lengths in this file are in A. Grids are converted to the working unit at the end.

const (
	migrationSwitch   = 2.0  //end of the coarse segment of migration grids
	migrationInterval = 0.3  //spacing of the coarse segment
	migrationOffset   = 0.05 //end of the fine segment, past the forming bond
	eliminationHH     = 0.74 //anchor of the second elimination grid
	growthFactor      = 1.1
	firstStep         = 0.05
)

//rangeRule gives the limits of an equally spaced (or geometric) grid as offsets
//from a bond length, and the limits to use when the length is unknown.
type rangeRule struct {
	offLo, offHi float64
	defLo, defHi float64
}

func (r rangeRule) bounds(bnd float64, known bool) (float64, float64) {
	if !known {
		return r.defLo, r.defHi
	}
	return bnd + r.offLo, bnd + r.offHi
}

var rangeRules = map[ReactionClass]rangeRule{
	BetaScission:        {0.1, 0.8, 1.4 + 0.1, 1.4 + 0.8},
	RingFormScission:    {0.1, 0.7, 1.54 + 0.1, 1.54 + 0.7},
	Elimination:         {0.2, 1.4, 1.54 + 0.2, 1.54 + 1.4},
	HydrogenAbstraction: {0.1, 1.0, 0.7, 2.2},
	Addition:            {0.1, 1.2, 1.6, 2.8},
	Insertion:           {0, 1.4, 1.4, 2.4},
	Substitution:        {0, 1.4, 0.7, 2.4},
}

//Linspace returns n equally spaced values from start to end, both included. It
//returns an empty slice for n < 1 and start alone for n == 1.
func Linspace(start, end float64, n int) []float64 {
	switch {
	case n < 1:
		return []float64{}
	case n == 1:
		return []float64{start}
	}
	ret := make([]float64, n)
	floats.Span(ret, start, end)
	return ret
}

//GeometricProgression returns at most n values, starting with rmin, where each
//step is gfact times the previous one, the first being rstp. The progression
//stops before reaching rmax.
func GeometricProgression(rmin, rmax float64, n int, gfact, rstp float64) []float64 {
	if n < 1 {
		return []float64{}
	}
	ret := make([]float64, 1, n)
	ret[0] = rmin
	r := rmin
	for len(ret) < n {
		r += rstp
		if r >= rmax-appzero {
			break
		}
		ret = append(ret, r)
		rstp *= gfact
	}
	return ret
}

const appzero = 1e-9

//Grid returns the scan grids for a reaction of the given class, given the reference
//length (A) of the scanned bond. known is false if the length couldn't be determined,
//in which case the class default range is used. The grids are in the length unit of O.
//Elimination returns two grids, one per scan coordinate. With O.Barrierless(), additions
//and hydrogen abstractions return the two segments of a radical-radical scan instead.
func Grid(class ReactionClass, bnd float64, known bool, O *Options) ([][]float64, error) {
	if O == nil {
		O = DefaultOptions()
	}
	if !class.Valid() {
		return nil, newError(ErrUnsupportedReactionClass, "Grid", "class %d", int(class))
	}
	if !known {
		O.Logger().Debug("bond length unresolved, using the default range", "class", class.String())
	}
	var grids [][]float64
	switch class {
	case HydrogenMigration:
		if !known {
			bnd = migrationSwitch
		}
		grids = [][]float64{migrationGrid(bnd, O.npointsAt(class, 0), O)}
	case Elimination:
		lo, hi := rangeRules[class].bounds(bnd, known)
		grids = [][]float64{
			Linspace(lo, hi, O.npointsAt(class, 0)),
			Linspace(eliminationHH+0.2, eliminationHH+0.8, O.npointsAt(class, 1)),
		}
	case Addition:
		if O.Barrierless() {
			grids = RadRadAdditionGrid()
			break
		}
		lo, hi := rangeRules[class].bounds(bnd, known)
		grids = [][]float64{GeometricProgression(lo, hi, O.npointsAt(class, 0), growthFactor, firstStep)}
	case HydrogenAbstraction:
		if O.Barrierless() {
			grids = RadRadHydrogenAbstractionGrid()
			break
		}
		fallthrough
	default:
		lo, hi := rangeRules[class].bounds(bnd, known)
		grids = [][]float64{Linspace(lo, hi, O.npointsAt(class, 0))}
	}
	f := O.LengthFactor()
	for _, g := range grids {
		floats.Scale(f, g)
	}
	return grids, nil
}

//migrationGrid is a coarse segment from the bond length down to 2 A, if the bond is
//longer than that, followed by a fine segment from 2 A to just past the bond length.
func migrationGrid(bnd float64, n int, O *Options) []float64 {
	var coarse []float64
	if bnd > migrationSwitch {
		np := int(math.Ceil((bnd-migrationSwitch)/migrationInterval - appzero))
		coarse = Linspace(bnd, migrationSwitch, np)
	}
	if len(coarse) == 0 {
		O.Logger().Debug("empty coarse segment in migration grid", "bond", bnd)
	}
	fine := Linspace(migrationSwitch, bnd+migrationOffset, n)
	return append(coarse, fine...)
}

//RadRadAdditionGrid returns the two segments, in A, of the scan for a barrierless
//radical-radical addition: inward from 2.6 to 1.8 A and outward from 2.6 to 3.85 A.
func RadRadAdditionGrid() [][]float64 {
	return [][]float64{Linspace(2.6, 1.8, 5), Linspace(2.6, 3.85, 6)}
}

//RadRadHydrogenAbstractionGrid returns the two segments, in A, of the scan for a
//barrierless radical-radical hydrogen abstraction: inward from 2.4 to 1.4 A and outward
//from 2.4 to 3.0 A, without repeating the starting point.
func RadRadHydrogenAbstractionGrid() [][]float64 {
	return [][]float64{Linspace(2.4, 1.4, 8), Linspace(2.4, 3.0, 4)[1:]}
}

//TSBondLength returns the reference length, in A, of the bond between the atoms that
//define the distance coordinate name of zma, and false if it is not known.
func TSBondLength(zma *zmat.ZMatrix, name string) (float64, bool) {
	coo, ok := zma.Coordinates()[name]
	if !ok || len(coo) != 2 {
		return 0, false
	}
	sym := zma.Symbols()
	return chem.BondLength(sym[coo[0]], sym[coo[1]])
}

//ScanGrid returns the grids for the scan of the reaction, which must be indexed
//by the rows of zma (see RelabelForZMatrix).
func ScanGrid(rxn *Reaction, zma *zmat.ZMatrix, O *Options) ([][]float64, error) {
	if O == nil {
		O = DefaultOptions()
	}
	names, err := ScanCoordinates(rxn, zma)
	if err != nil {
		return nil, errDecorate(err, "ScanGrid")
	}
	bnd, known := TSBondLength(zma, names[0])
	if !known && rxn.Class == HydrogenMigration {
		//no reference length: the current one is used
		v, _ := zma.Value(names[0])
		bnd, known = v/O.LengthFactor(), true
	}
	g, err := Grid(rxn.Class, bnd, known, O)
	return g, errDecorate(err, "ScanGrid")
}
