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

package reac

import (
	"errors"
	"fmt"
)

var (
	//ErrUnsupportedReactionClass means that the reaction class is not one of the supported ones.
	ErrUnsupportedReactionClass = errors.New("reac: unsupported reaction class")
	//ErrMalformedReactionGraph means that the forming and breaking bonds of the TS graph
	//are not consistent with the reaction class.
	ErrMalformedReactionGraph = errors.New("reac: malformed reaction graph")
)

//Error is the error type of the package. It keeps the trail of functions it went
//through, and wraps the sentinel error that gives its kind.
type Error struct {
	msg  string
	deco []string
	Kind error
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

//Unwrap returns the kind of the error, so errors.Is works with the sentinels.
func (err *Error) Unwrap() error { return err.Kind }

func newError(kind error, caller, format string, args ...interface{}) *Error {
	return &Error{msg: fmt.Sprintf("%s: %s", kind.Error(), fmt.Sprintf(format, args...)), deco: []string{caller}, Kind: kind}
}

//decorable is implemented by the errors of this library.
type decorable interface {
	Decorate(string) []string
}

//errDecorate adds caller to the trail of err, if err supports it, and returns err.
func errDecorate(err error, caller string) error {
	if err == nil {
		return nil
	}
	var d decorable
	if errors.As(err, &d) {
		d.Decorate(caller)
	}
	return err
}
