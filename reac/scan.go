/*
 * scan.go, part of goChem.
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
	"github.com/rmera/tsscan/zmat"
)

//ScanSpec contains what is needed to run a constrained scan toward a TS.
type ScanSpec struct {
	//Names of the coordinates to scan. Eliminations scan two coordinates.
	Names []string `json:"scan_names" yaml:"scan_names"`
	//Constraints maps the coordinates to keep frozen to their current values.
	Constraints map[string]float64 `json:"constraints" yaml:"constraints"`
	//Grids contains the values for each scan coordinate, in the working length unit.
	//In barrierless scans, both grids are segments of the scan of Names[0].
	Grids       [][]float64 `json:"grids" yaml:"grids"`
	UpdateGuess bool        `json:"update_guess" yaml:"update_guess"`
	Barrierless bool        `json:"barrierless,omitempty" yaml:"barrierless,omitempty"`
}

//BuildScanInfo returns the scan specification for the reaction, which must be indexed
//by the rows of the TS z-matrix zma (see TSZMatrix and RelabelForZMatrix).
func BuildScanInfo(rxn *Reaction, zma *zmat.ZMatrix, O *Options) (*ScanSpec, error) {
	if O == nil {
		O = DefaultOptions()
	}
	st, err := dispatch(rxn.Class)
	if err != nil {
		return nil, errDecorate(err, "BuildScanInfo")
	}
	names, err := st.scan(rxn, zma)
	if err != nil {
		return nil, errDecorate(err, "BuildScanInfo")
	}
	cnames, err := st.constraints(rxn, zma, O)
	if err != nil {
		return nil, errDecorate(err, "BuildScanInfo")
	}
	cons, err := zma.ConstraintDct(cnames)
	if err != nil {
		return nil, errDecorate(err, "BuildScanInfo")
	}
	grids, err := ScanGrid(rxn, zma, O)
	if err != nil {
		return nil, errDecorate(err, "BuildScanInfo")
	}
	barrierless := O.Barrierless() && (rxn.Class == Addition || rxn.Class == HydrogenAbstraction)
	O.Logger().Debug("scan built", "class", rxn.Class.String(), "coord", names, "constraints", len(cons))
	return &ScanSpec{Names: names, Constraints: cons, Grids: grids, UpdateGuess: st.updateGuess, Barrierless: barrierless}, nil
}

//ScanCoordinates returns the names of the z-matrix coordinates to scan.
func ScanCoordinates(rxn *Reaction, zma *zmat.ZMatrix) ([]string, error) {
	st, err := dispatch(rxn.Class)
	if err != nil {
		return nil, errDecorate(err, "ScanCoordinates")
	}
	names, err := st.scan(rxn, zma)
	return names, errDecorate(err, "ScanCoordinates")
}

//ConstraintCoordinates returns the names of the z-matrix coordinates to freeze during the scan.
func ConstraintCoordinates(rxn *Reaction, zma *zmat.ZMatrix, O *Options) ([]string, error) {
	if O == nil {
		O = DefaultOptions()
	}
	st, err := dispatch(rxn.Class)
	if err != nil {
		return nil, errDecorate(err, "ConstraintCoordinates")
	}
	names, err := st.constraints(rxn, zma, O)
	return names, errDecorate(err, "ConstraintCoordinates")
}

func distanceName(zma *zmat.ZMatrix, b tsgraph.BondKey) (string, error) {
	n, err := zma.DistanceCoordinateName(b[0], b[1])
	return n, errDecorate(err, "distanceName")
}

func formingBondScan(rxn *Reaction, zma *zmat.ZMatrix) ([]string, error) {
	frm, err := formingBondKey(rxn)
	if err != nil {
		return nil, err
	}
	n, err := distanceName(zma, frm)
	if err != nil {
		return nil, err
	}
	return []string{n}, nil
}

func breakingBondScan(rxn *Reaction, zma *zmat.ZMatrix) ([]string, error) {
	brk, err := breakingBondKey(rxn)
	if err != nil {
		return nil, err
	}
	n, err := distanceName(zma, brk)
	if err != nil {
		return nil, err
	}
	return []string{n}, nil
}

//firstDistanceName returns the name of the first of the bonds that is a z-matrix distance.
func firstDistanceName(zma *zmat.ZMatrix, bonds []tsgraph.BondKey) (string, error) {
	for _, b := range bonds {
		if n, err := zma.DistanceCoordinateName(b[0], b[1]); err == nil {
			return n, nil
		}
	}
	return "", newError(zmat.ErrMissingCoordinate, "firstDistanceName", "none of the bonds %v is in the z-matrix", bonds)
}

//eliminationScan returns the forming bond and the breaking bond kept in the z-matrix,
//preferring the one that shares an atom with the forming bond.
func eliminationScan(rxn *Reaction, zma *zmat.ZMatrix) ([]string, error) {
	frm, err := formingBondKey(rxn)
	if err != nil {
		return nil, err
	}
	bks, err := EliminationBreakingBondKeys(rxn)
	if err != nil {
		return nil, err
	}
	if len(bks) < 2 {
		return nil, newError(ErrMalformedReactionGraph, "eliminationScan", "an elimination needs two breaking bonds, got %d", len(bks))
	}
	n1, err := distanceName(zma, frm)
	if err != nil {
		return nil, err
	}
	rev := make([]tsgraph.BondKey, 0, len(bks))
	for i := len(bks) - 1; i >= 0; i-- {
		rev = append(rev, bks[i])
	}
	n2, err := firstDistanceName(zma, rev)
	if err != nil {
		return nil, err
	}
	return []string{n1, n2}, nil
}

//insertionScan returns the first forming bond, in the order of InsertionFormingBondKeys,
//that is a z-matrix distance. Only one of them is, if the insertion closes a ring.
func insertionScan(rxn *Reaction, zma *zmat.ZMatrix) ([]string, error) {
	fks, err := InsertionFormingBondKeys(rxn)
	if err != nil {
		return nil, err
	}
	n, err := firstDistanceName(zma, fks)
	if err != nil {
		return nil, err
	}
	return []string{n}, nil
}

//hydrogenMigrationConstraints freezes the distance between the attacking atom and its
//neighbor toward the donating atom.
func hydrogenMigrationConstraints(rxn *Reaction, zma *zmat.ZMatrix, _ *Options) ([]string, error) {
	r, ngb, err := HydrogenMigrationAtomKeys(rxn)
	if err != nil {
		return nil, err
	}
	n, err := zma.DistanceCoordinateName(r.Attacking, ngb)
	if err != nil {
		return nil, errDecorate(err, "hydrogenMigrationConstraints")
	}
	return []string{n}, nil
}

//ringFormingScissionConstraints freezes the angles and dihedrals along the chain from
//the donating to the attacking atom. Those not represented in the z-matrix are skipped.
func ringFormingScissionConstraints(rxn *Reaction, zma *zmat.ZMatrix, O *Options) ([]string, error) {
	chain, err := RingFormingScissionChain(rxn)
	if err != nil {
		return nil, err
	}
	var names []string
	if len(chain) > 1 {
		for _, w := range windows(chain[1:], 3) {
			n, err := zma.CentralAngleCoordinateName(w[0], w[1], w[2])
			if err != nil {
				O.Logger().Debug("angle not in z-matrix, not constrained", "class", rxn.Class.String(), "coord", w)
				continue
			}
			names = append(names, n)
		}
	}
	for _, w := range windows(chain, 4) {
		n, err := zma.DihedralAngleCoordinateName(w[0], w[1], w[2], w[3])
		if err != nil {
			O.Logger().Debug("dihedral not in z-matrix, not constrained", "class", rxn.Class.String(), "coord", w)
			continue
		}
		names = append(names, n)
	}
	return names, nil
}

//windows returns the consecutive size-long windows of s, sorted.
func windows(s []int, size int) [][]int {
	var ret [][]int
	for i := 0; i+size <= len(s); i++ {
		w := make([]int, size)
		copy(w, s[i:i+size])
		ret = append(ret, w)
	}
	sort.Slice(ret, func(i, j int) bool {
		for k := range ret[i] {
			if ret[i][k] != ret[j][k] {
				return ret[i][k] < ret[j][k]
			}
		}
		return false
	})
	return ret
}
