/*
 * graph.go, part of goChem.
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

//Package tsgraph implements the molecular graph of a transition state. Atoms are
//identified by integer keys, and bonds may be tagged as forming or breaking.
//Graphs implement the gonum graph.Undirected interface with a deterministic
//(ordered) node iteration, so gonum algorithms give reproducible results.
package tsgraph

import (
	"sort"

	chem "github.com/rmera/tsscan"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"
)

//Tag marks the role of a bond in a reaction.
type Tag int

const (
	Plain Tag = iota
	Forming
	Breaking
)

func (T Tag) String() string {
	switch T {
	case Forming:
		return "forming"
	case Breaking:
		return "breaking"
	}
	return "plain"
}

//Bond contains the order of the bond in the reactants and its tag.
//Forming bonds have order 0 in the reactants.
type Bond struct {
	Order float64
	Tag   Tag
}

//Graph is a TS graph. The zero value is not usable, use New.
type Graph struct {
	symbols map[int]string
	bonds   map[BondKey]Bond
	adj     map[int][]int //sorted
}

//New returns an empty graph.
func New() *Graph {
	return &Graph{symbols: make(map[int]string), bonds: make(map[BondKey]Bond), adj: make(map[int][]int)}
}

//AddAtom adds an atom with the given key and element symbol.
func (G *Graph) AddAtom(key int, symbol string) error {
	if key < 0 {
		return newError(ErrBadKey, "AddAtom", "negative atom key %d", key)
	}
	if _, ok := G.symbols[key]; ok {
		return newError(ErrBadKey, "AddAtom", "atom key %d already in graph", key)
	}
	G.symbols[key] = symbol
	G.adj[key] = nil
	return nil
}

//AddBond adds a bond between atoms a and b.
func (G *Graph) AddBond(a, b int, order float64, tag Tag) error {
	if a == b {
		return newError(ErrBadKey, "AddBond", "atom %d can't be bonded to itself", a)
	}
	for _, v := range []int{a, b} {
		if _, ok := G.symbols[v]; !ok {
			return newError(ErrBadKey, "AddBond", "atom key %d not in graph", v)
		}
	}
	k := NewBondKey(a, b)
	if _, ok := G.bonds[k]; ok {
		return newError(ErrBadKey, "AddBond", "bond %v already in graph", k)
	}
	G.bonds[k] = Bond{Order: order, Tag: tag}
	G.adj[a] = insertSorted(G.adj[a], b)
	G.adj[b] = insertSorted(G.adj[b], a)
	return nil
}

func (G *Graph) removeBond(k BondKey) {
	delete(G.bonds, k)
	G.adj[k[0]] = removeInt(G.adj[k[0]], k[1])
	G.adj[k[1]] = removeInt(G.adj[k[1]], k[0])
}

//Copy returns an independent copy of the graph.
func (G *Graph) Copy() *Graph {
	ret := New()
	for k, v := range G.symbols {
		ret.symbols[k] = v
	}
	for k, v := range G.bonds {
		ret.bonds[k] = v
	}
	for k, v := range G.adj {
		n := make([]int, len(v))
		copy(n, v)
		ret.adj[k] = n
	}
	return ret
}

//Len returns the number of atoms in the graph.
func (G *Graph) Len() int {
	return len(G.symbols)
}

//Symbol returns the element symbol of the atom key, and false if the atom is not in the graph.
func (G *Graph) Symbol(key int) (string, bool) {
	s, ok := G.symbols[key]
	return s, ok
}

//Symbols returns a map from atom key to element symbol.
func (G *Graph) Symbols() map[int]string {
	ret := make(map[int]string, len(G.symbols))
	for k, v := range G.symbols {
		ret[k] = v
	}
	return ret
}

//HasAtom returns true if the key belongs to an atom in the graph.
func (G *Graph) HasAtom(key int) bool {
	_, ok := G.symbols[key]
	return ok
}

//AtomKeys returns the atom keys, sorted.
func (G *Graph) AtomKeys() []int {
	ret := make([]int, 0, len(G.symbols))
	for k := range G.symbols {
		ret = append(ret, k)
	}
	sort.Ints(ret)
	return ret
}

//BondKeys returns all the bond keys, in canonical order.
func (G *Graph) BondKeys() []BondKey {
	return G.bondKeysWith(func(Bond) bool { return true })
}

//Bond returns the bond between a and b, and false if there is none.
func (G *Graph) Bond(a, b int) (Bond, bool) {
	if a == b {
		return Bond{}, false
	}
	bo, ok := G.bonds[NewBondKey(a, b)]
	return bo, ok
}

func (G *Graph) bondKeysWith(f func(Bond) bool) []BondKey {
	ret := make([]BondKey, 0, len(G.bonds))
	for k, v := range G.bonds {
		if f(v) {
			ret = append(ret, k)
		}
	}
	SortBondKeys(ret)
	return ret
}

//FormingBondKeys returns the keys of the forming bonds, in canonical order.
func (G *Graph) FormingBondKeys() []BondKey {
	return G.bondKeysWith(func(b Bond) bool { return b.Tag == Forming })
}

//BreakingBondKeys returns the keys of the breaking bonds, in canonical order.
func (G *Graph) BreakingBondKeys() []BondKey {
	return G.bondKeysWith(func(b Bond) bool { return b.Tag == Breaking })
}

//Neighbors returns the keys of the atoms bonded to key, forming and breaking
//bonds included, in ascending order. It implements chem.Neighborer.
func (G *Graph) Neighbors(key int) []int {
	n := G.adj[key]
	ret := make([]int, len(n))
	copy(ret, n)
	return ret
}

//ReactantsGraph returns the graph of the reactants: forming bonds are removed and
//all the other bonds lose their tags.
func (G *Graph) ReactantsGraph() *Graph {
	ret := G.Copy()
	for k, v := range G.bonds {
		if v.Tag == Forming {
			ret.removeBond(k)
			continue
		}
		ret.bonds[k] = Bond{Order: v.Order}
	}
	return ret
}

//ProductsGraph returns the graph of the products: breaking bonds lose one order
//(and are removed if they reach zero), forming bonds gain one, and tags are dropped.
func (G *Graph) ProductsGraph() *Graph {
	ret := G.Copy()
	for k, v := range G.bonds {
		switch v.Tag {
		case Breaking:
			if v.Order <= 1 {
				ret.removeBond(k)
				continue
			}
			ret.bonds[k] = Bond{Order: v.Order - 1}
		case Forming:
			ret.bonds[k] = Bond{Order: v.Order + 1}
		default:
			ret.bonds[k] = Bond{Order: v.Order}
		}
	}
	return ret
}

//AtomNeighborAtomKey returns the smallest neighbor of key that is among inclKeys, and
//false if there is none.
func (G *Graph) AtomNeighborAtomKey(key int, inclKeys []int) (int, bool) {
	incl := make(map[int]bool, len(inclKeys))
	for _, v := range inclKeys {
		incl[v] = true
	}
	for _, v := range G.adj[key] {
		if v != key && incl[v] {
			return v, true
		}
	}
	return -1, false
}

//gonum graph interface

//Node returns the node with the given ID, or nil if it doesn't exist.
func (G *Graph) Node(id int64) graph.Node {
	if _, ok := G.symbols[int(id)]; !ok {
		return nil
	}
	return simple.Node(id)
}

//Nodes returns all the nodes of the graph, sorted by ID.
func (G *Graph) Nodes() graph.Nodes {
	return orderedNodes(G.AtomKeys())
}

//From returns the neighbors of the node with the given ID, sorted by ID.
func (G *Graph) From(id int64) graph.Nodes {
	return orderedNodes(G.adj[int(id)])
}

//HasEdgeBetween returns whether an edge exists between nodes x and y.
func (G *Graph) HasEdgeBetween(xid, yid int64) bool {
	_, ok := G.Bond(int(xid), int(yid))
	return ok
}

//Edge returns the edge from u to v, or nil.
func (G *Graph) Edge(uid, vid int64) graph.Edge {
	if !G.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

//EdgeBetween is the same as Edge, as the graph is undirected.
func (G *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	return G.Edge(xid, yid)
}

func orderedNodes(keys []int) graph.Nodes {
	nodes := make([]graph.Node, 0, len(keys))
	for _, v := range keys {
		nodes = append(nodes, simple.Node(v))
	}
	return iterator.NewOrderedNodes(nodes)
}

//helpers for sorted int slices

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

func removeInt(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return append(s[:i], s[i+1:]...)
	}
	return s
}

//interface checks
var _ graph.Undirected = (*Graph)(nil)
var _ chem.Neighborer = (*Graph)(nil)
