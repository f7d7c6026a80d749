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

package zmat

import (
	"errors"
	"fmt"
)

var (
	//ErrMissingCoordinate means that the requested distance, angle or dihedral
	//is not one of the coordinates of the z-matrix.
	ErrMissingCoordinate = errors.New("zmat: coordinate not in z-matrix")
	//ErrBadGraph means that a v-matrix can't be built for the given graph and keys.
	ErrBadGraph = errors.New("zmat: invalid graph or keys")
	//ErrBadGeometry means that a geometry doesn't match the v-matrix.
	ErrBadGeometry = errors.New("zmat: geometry doesn't match v-matrix")
)

//Error is the error type of the package. It carries the trail of functions
//it went through, and wraps one of the sentinel errors above.
type Error struct {
	msg  string
	deco []string
	kind error
}

func (err *Error) Error() string { return err.msg }

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
func (err *Error) Unwrap() error { return err.kind }

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("%s: %s", kind.Error(), fmt.Sprintf(format, args...)), deco: []string{caller}, kind: kind}
}
