/*
 * conversion.go, part of goChem.
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

//This provides useful conversion factors and other constants

//Conversions
const (
	Deg2Rad = 0.017453292519943295
	Rad2Deg = 1 / Deg2Rad
	A2Bohr  = 1.889725989
	Bohr2A  = 1 / 1.889725989
)

//Others
const (
	//DummySymbol is the element symbol used for dummy atoms.
	DummySymbol = "X"
)
