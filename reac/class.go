/*
 * class.go, part of goChem.
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

//Package reac derives, for a classified elementary reaction, the specification of
//a constrained transition state scan: a z-matrix for the TS geometry, the coordinate
//to scan, the coordinates to keep frozen, and the grid of values for the scan.
package reac

import (
	"strings"
)

//ReactionClass is the class of an elementary reaction. The set of classes is closed.
type ReactionClass int

const (
	HydrogenMigration ReactionClass = iota + 1
	BetaScission
	RingFormScission
	Elimination
	HydrogenAbstraction
	Addition
	Insertion
	Substitution
)

//Classes contains all the supported reaction classes.
var Classes = []ReactionClass{HydrogenMigration, BetaScission, RingFormScission, Elimination,
	HydrogenAbstraction, Addition, Insertion, Substitution}

var classNames = map[ReactionClass]string{
	HydrogenMigration:   "hydrogen migration",
	BetaScission:        "beta scission",
	RingFormScission:    "ring forming scission",
	Elimination:         "elimination",
	HydrogenAbstraction: "hydrogen abstraction",
	Addition:            "addition",
	Insertion:           "insertion",
	Substitution:        "substitution",
}

func (C ReactionClass) String() string {
	if s, ok := classNames[C]; ok {
		return s
	}
	return "unknown"
}

//Valid returns true if C is one of the supported classes.
func (C ReactionClass) Valid() bool {
	_, ok := classNames[C]
	return ok
}

//Unimolecular returns true for the classes with a single reactant.
func (C ReactionClass) Unimolecular() bool {
	switch C {
	case HydrogenMigration, BetaScission, RingFormScission, Elimination:
		return true
	}
	return false
}

//ParseReactionClass returns the class with the given name. Both the descriptive
//names ("hydrogen migration") and the tag names ("HYDROGEN_MIGRATION") are accepted,
//in any case.
func ParseReactionClass(name string) (ReactionClass, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", " ")
	n = strings.ReplaceAll(n, "-", " ")
	if n == "ring form scission" {
		n = "ring forming scission"
	}
	for c, s := range classNames {
		if s == n {
			return c, nil
		}
	}
	return 0, newError(ErrUnsupportedReactionClass, "ParseReactionClass", "%q", name)
}

//MarshalText implements encoding.TextMarshaler.
func (C ReactionClass) MarshalText() ([]byte, error) {
	if !C.Valid() {
		return nil, newError(ErrUnsupportedReactionClass, "MarshalText", "class %d", int(C))
	}
	return []byte(C.String()), nil
}

//UnmarshalText implements encoding.TextUnmarshaler.
func (C *ReactionClass) UnmarshalText(text []byte) error {
	c, err := ParseReactionClass(string(text))
	if err != nil {
		err.(*Error).Decorate("UnmarshalText")
		return err
	}
	*C = c
	return nil
}
