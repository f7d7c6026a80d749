/*
 * atomicdata.go, part of goChem.
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

package chem

import "sort"

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, // 0.31 altered. Since H always has only one bond, extra bonds get eliminated later.
	"He": 0.28,
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"Si": 1.11,
	"B":  0.84,
	"F":  0.57,
	"Cl": 1.02,
	"Br": 1.2,
	"I":  1.39,
	"Ar": 1.06,
	"Ne": 0.58,
}

//A map for checking that atoms don't
//have too many bonds. A value of 0 means
//undefined, i.e. that this atom shouldn't
//be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}

//Usual valences, used to find radical sites in molecular graphs.
var symbolValence = map[string]int{
	"H":  1,
	"He": 0,
	"B":  3,
	"C":  4,
	"N":  3,
	"O":  2,
	"F":  1,
	"Si": 4,
	"P":  3,
	"S":  2,
	"Cl": 1,
	"Br": 1,
	"I":  1,
	"Ne": 0,
	"Ar": 0,
}

//Reference equilibrium bond lengths, in A, keyed by the pair
//of element symbols sorted alphabetically. This table is never
//modified after initialization.
var bondLengths = map[[2]string]float64{
	{"H", "H"}:   0.74,
	{"C", "H"}:   1.09,
	{"H", "N"}:   1.01,
	{"H", "O"}:   0.95,
	{"H", "S"}:   1.34,
	{"Cl", "H"}:  1.27,
	{"F", "H"}:   0.92,
	{"Br", "H"}:  1.41,
	{"C", "C"}:   1.54,
	{"C", "N"}:   1.47,
	{"C", "O"}:   1.43,
	{"C", "S"}:   1.82,
	{"C", "Cl"}:  1.77,
	{"C", "F"}:   1.35,
	{"Br", "C"}:  1.94,
	{"N", "N"}:   1.45,
	{"N", "O"}:   1.43,
	{"O", "O"}:   1.40,
	{"O", "S"}:   1.57,
	{"Cl", "Cl"}: 1.99,
	{"S", "S"}:   2.05,
}

//CovalentRadius returns the covalent radius, in A, for the element, and false if unknown.
func CovalentRadius(symbol string) (float64, bool) {
	r, ok := symbolCovrad[symbol]
	return r, ok
}

//Valence returns the usual valence for the element, and false if unknown.
func Valence(symbol string) (int, bool) {
	v, ok := symbolValence[symbol]
	return v, ok
}

//BondLength returns the reference equilibrium length, in A, for a bond between
//elements s1 and s2. The order of the symbols doesn't matter. It returns
//false if the pair is not tabulated (which is always the case for dummy atoms).
func BondLength(s1, s2 string) (float64, bool) {
	pair := []string{s1, s2}
	sort.Strings(pair)
	l, ok := bondLengths[[2]string{pair[0], pair[1]}]
	return l, ok
}
