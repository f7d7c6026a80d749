/*
 * radical.go, part of goChem.
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

import chem "github.com/rmera/tsscan"

//bondOrderSum returns the sum of the orders of the non-dummy bonds of key.
func (G *Graph) bondOrderSum(key int) float64 {
	var sum float64
	for _, n := range G.adj[key] {
		if G.symbols[n] == chem.DummySymbol {
			continue
		}
		b, _ := G.Bond(key, n)
		sum += b.Order
	}
	return sum
}

//RadicalAtomKeys returns the keys of the atoms with unsatisfied valence,
//given the bond orders of the graph.
func (G *Graph) RadicalAtomKeys() []int {
	ret := make([]int, 0, 2)
	for _, k := range G.AtomKeys() {
		val, ok := chem.Valence(G.symbols[k])
		if !ok {
			continue
		}
		if float64(val)-G.bondOrderSum(k) >= 0.5 {
			ret = append(ret, k)
		}
	}
	return ret
}

//SigmaRadicalAtomKeys returns the radical atoms whose unpaired electron lies in a sigma
//orbital: radical sites on atoms that take part in a multiple bond (vinyl, phenyl
//or ethynyl type radicals).
func (G *Graph) SigmaRadicalAtomKeys() []int {
	ret := make([]int, 0, 1)
	for _, k := range G.RadicalAtomKeys() {
		for _, n := range G.adj[k] {
			if b, _ := G.Bond(k, n); b.Order >= 2 {
				ret = append(ret, k)
				break
			}
		}
	}
	return ret
}
