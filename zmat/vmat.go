/*
 * vmat.go, part of goChem.
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
	"fmt"
	"sort"

	chem "github.com/rmera/tsscan"
	"github.com/rmera/tsscan/tsgraph"
)

//Row is a row of a v-matrix: an atom placed by a distance, an angle and
//a dihedral to three atoms in earlier rows.
type Row struct {
	Symbol string
	Keys   [3]int    //rows of the distance, angle and dihedral anchors, -1 if absent
	Names  [3]string //names of the distance, angle and dihedral coordinates, "" if absent
}

//VMatrix is the skeleton of a z-matrix: the atoms, their anchors, and the names
//of the coordinates, without values.
type VMatrix struct {
	rows []Row
}

//Len returns the number of rows.
func (V *VMatrix) Len() int {
	return len(V.rows)
}

//Row returns a copy of row i.
func (V *VMatrix) Row(i int) Row {
	return V.rows[i]
}

//Copy returns an independent copy.
func (V *VMatrix) Copy() *VMatrix {
	r := make([]Row, len(V.rows))
	copy(r, V.rows)
	return &VMatrix{rows: r}
}

//Symbols returns the element symbols, in row order.
func (V *VMatrix) Symbols() []string {
	ret := make([]string, len(V.rows))
	for i, r := range V.rows {
		ret[i] = r.Symbol
	}
	return ret
}

//Names returns the coordinate names, in row order.
func (V *VMatrix) Names() []string {
	ret := make([]string, 0, 3*len(V.rows))
	for _, r := range V.rows {
		for _, n := range r.Names {
			if n != "" {
				ret = append(ret, n)
			}
		}
	}
	return ret
}

//Coordinates returns, for each coordinate name, the rows of the atoms that define it.
//The first row is always that of the atom being placed.
func (V *VMatrix) Coordinates() map[string][]int {
	ret := make(map[string][]int, 3*len(V.rows))
	for i, r := range V.rows {
		for j, n := range r.Names {
			if n == "" {
				continue
			}
			c := make([]int, 0, j+2)
			c = append(c, i)
			c = append(c, r.Keys[:j+1]...)
			ret[n] = c
		}
	}
	return ret
}

var prefixes = [3]string{"R", "A", "D"}

//builder places the atoms of a graph, one row at a time.
type builder struct {
	g       *tsgraph.Graph
	allowed map[int]bool
	vma     *VMatrix
	keys    []int       //atom key of each row
	row     map[int]int //row of each placed atom key
}

func newBuilder(G *tsgraph.Graph, V *VMatrix, zmaKeys []int) *builder {
	b := &builder{g: G, vma: V, keys: zmaKeys, row: make(map[int]int, G.Len())}
	for i, k := range zmaKeys {
		b.row[k] = i
	}
	return b
}

func (b *builder) placed(k int) bool {
	_, ok := b.row[k]
	return ok
}

func (b *builder) isDummy(k int) bool {
	s, _ := b.g.Symbol(k)
	return s == chem.DummySymbol
}

//dummyOf returns the dummy atom attached to k, if any.
func (b *builder) dummyOf(k int) (int, bool) {
	for _, n := range b.g.Neighbors(k) {
		if b.isDummy(n) {
			return n, true
		}
	}
	return -1, false
}

//anchorKeys returns the atom keys of the anchors of the placed atom k.
func (b *builder) anchorKeys(k int) []int {
	r := b.vma.rows[b.row[k]]
	ret := make([]int, 0, 3)
	for _, v := range r.Keys {
		if v >= 0 {
			ret = append(ret, b.keys[v])
		}
	}
	return ret
}

func (b *builder) lastReal() int {
	for i := len(b.keys) - 1; i >= 0; i-- {
		if !b.isDummy(b.keys[i]) {
			return b.keys[i]
		}
	}
	return b.keys[len(b.keys)-1]
}

//pick returns the first placed candidate not in excl.
func (b *builder) pick(excl []int, cands ...[]int) (int, bool) {
	for _, cs := range cands {
	next:
		for _, c := range cs {
			if !b.placed(c) {
				continue
			}
			for _, e := range excl {
				if c == e {
					continue next
				}
			}
			return c, true
		}
	}
	return -1, false
}

//place adds atom k to the v-matrix. a is the distance anchor (-1 to let the builder choose)
//and pref are the preferred angle and dihedral anchors, in that order.
func (b *builder) place(k, a int, pref []int) {
	n := len(b.keys)
	r := Row{Keys: [3]int{-1, -1, -1}}
	r.Symbol, _ = b.g.Symbol(k)
	anchors := make([]int, 0, 3)
	if n > 0 {
		if a < 0 || !b.placed(a) {
			a = b.lastReal()
		}
		anchors = append(anchors, a)
	}
	if n > 1 {
		var ang []int
		if d, ok := b.dummyOf(a); ok && b.placed(d) {
			ang = append(ang, d)
		}
		c, _ := b.pick([]int{a, k}, ang, pref, b.anchorKeys(a), b.g.Neighbors(a), b.keys)
		anchors = append(anchors, c)
	}
	if n > 2 {
		ang := anchors[1]
		var dih []int
		if d, ok := b.dummyOf(ang); ok && d != a {
			dih = append(dih, d)
		}
		c, _ := b.pick([]int{a, ang, k}, dih, pref, b.g.Neighbors(ang), b.g.Neighbors(a), b.keys)
		anchors = append(anchors, c)
	}
	for j, v := range anchors {
		r.Keys[j] = b.row[v]
		r.Names[j] = fmt.Sprintf("%s%d", prefixes[j], n)
	}
	b.vma.rows = append(b.vma.rows, r)
	b.keys = append(b.keys, k)
	b.row[k] = n
	//a dummy atom goes right after its parent
	if d, ok := b.dummyOf(k); ok && b.allowed[d] && !b.placed(d) {
		b.place(d, k, anchors)
	}
}

//grow places every allowed atom reachable from the placed ones, and then the
//unreachable ones.
func (b *builder) grow() {
	for {
		for i := 0; i < len(b.keys); i++ {
			p := b.keys[i]
			for _, k := range b.g.Neighbors(p) {
				if b.allowed[k] && !b.placed(k) && !b.isDummy(k) {
					b.place(k, p, b.anchorKeys(p))
				}
			}
		}
		rest := b.unplaced()
		if len(rest) == 0 {
			return
		}
		k := rest[0]
		if b.isDummy(k) {
			par := -1
			for _, n := range b.g.Neighbors(k) {
				par = n
			}
			b.place(k, par, nil)
			continue
		}
		b.place(k, -1, nil)
	}
}

//unplaced returns the allowed atoms not yet placed, real atoms first.
func (b *builder) unplaced() []int {
	var reals, dummy []int
	for k := range b.allowed {
		if b.placed(k) {
			continue
		}
		if b.isDummy(k) {
			dummy = append(dummy, k)
		} else {
			reals = append(reals, k)
		}
	}
	sort.Ints(reals)
	sort.Ints(dummy)
	return append(reals, dummy...)
}

func (b *builder) setAllowed(keys []int) error {
	b.allowed = make(map[int]bool, len(keys))
	if keys == nil {
		keys = b.g.AtomKeys()
	}
	for _, k := range keys {
		if !b.g.HasAtom(k) {
			return newError(ErrBadGraph, "setAllowed", "atom key %d not in graph", k)
		}
		if b.placed(k) {
			return newError(ErrBadGraph, "setAllowed", "atom key %d already in the v-matrix", k)
		}
		b.allowed[k] = true
	}
	return nil
}

//chain places the start keys, each one anchored to the previous ones.
func (b *builder) chain(startKeys []int) error {
	seq := make([]int, 0, len(startKeys))
	for _, k := range startKeys {
		if !b.allowed[k] {
			return newError(ErrBadGraph, "chain", "start key %d not among the keys to place", k)
		}
		if !b.isDummy(k) && !b.placed(k) {
			seq = append(seq, k)
		}
	}
	for i, k := range seq {
		a := -1
		if i > 0 {
			a = seq[i-1]
		}
		pref := make([]int, 0, 2)
		for j := i - 2; j >= 0 && j >= i-3; j-- {
			pref = append(pref, seq[j])
		}
		b.place(k, a, pref)
	}
	return nil
}

//FromGraph builds a v-matrix for the atoms of G in keys (all the atoms, if keys is nil).
//If startKeys are given, those atoms are placed first, in that order, each
//bonded to the previous one; a ring given as startKeys is thus represented without
//the bond between its first and last atoms. The remaining atoms are placed by
//following the bonds of the graph. Dummy atoms are placed right after the atom they
//are attached to, and are used as angle anchors for it. Returns the v-matrix and
//the atom key of each of its rows.
func FromGraph(G *tsgraph.Graph, keys, startKeys []int) (*VMatrix, []int, error) {
	b := newBuilder(G, &VMatrix{}, nil)
	if err := b.setAllowed(keys); err != nil {
		err.(*Error).Decorate("FromGraph")
		return nil, nil, err
	}
	if len(b.allowed) == 0 {
		return nil, nil, newError(ErrBadGraph, "FromGraph", "no atoms to place")
	}
	if len(startKeys) == 0 {
		if r := b.unplaced(); len(r) > 0 {
			startKeys = r[:1]
		}
	}
	if err := b.chain(startKeys); err != nil {
		err.(*Error).Decorate("FromGraph")
		return nil, nil, err
	}
	b.grow()
	return b.vma, b.keys, nil
}

//Continue extends the v-matrix V, whose rows correspond to the atoms zmaKeys of G,
//with the atoms in keys. The new atoms are placed by following the bonds of G from
//the atoms already in the v-matrix. Neither V nor zmaKeys are modified.
func Continue(G *tsgraph.Graph, keys []int, V *VMatrix, zmaKeys []int) (*VMatrix, []int, error) {
	if V.Len() != len(zmaKeys) {
		return nil, nil, newError(ErrBadGraph, "Continue", "%d rows but %d keys", V.Len(), len(zmaKeys))
	}
	zk := make([]int, len(zmaKeys))
	copy(zk, zmaKeys)
	b := newBuilder(G, V.Copy(), zk)
	if err := b.setAllowed(keys); err != nil {
		err.(*Error).Decorate("Continue")
		return nil, nil, err
	}
	b.grow()
	return b.vma, b.keys, nil
}
