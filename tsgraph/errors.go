/*
 * errors.go, part of goChem.
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
	"fmt"
)

var (
	//ErrNoPath means that two atoms, or groups of atoms, are not connected.
	ErrNoPath = errors.New("tsgraph: no path between atoms")
	//ErrKeyNotInRing means that an atom key requested to be placed in a ring ordering is not in the ring.
	ErrKeyNotInRing = errors.New("tsgraph: atom key not in ring")
	//ErrBadKey means that an atom or bond refers to an atom key not present, or already present, in the graph.
	ErrBadKey = errors.New("tsgraph: invalid atom key")
)

//Error is the error type for this package. It keeps the trail of functions
//it went through, and wraps one of the package's sentinel errors.
type Error struct {
	msg  string
	deco []string
	kind error
}

func (err *Error) Error() string {
	return err.msg
}

//Decorate will add the dec string to the decoration slice of strings of the error,
//and return the resulting slice.
func (err *Error) Decorate(dec string) []string {
	if dec == "" {
		return err.deco
	}
	err.deco = append(err.deco, dec)
	return err.deco
}

//Unwrap returns the sentinel error.
func (err *Error) Unwrap() error {
	return err.kind
}

func newError(kind error, caller, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{msg: fmt.Sprintf("%s: %s", kind.Error(), msg), deco: []string{caller}, kind: kind}
}
