/*
 * paths.go, part of goChem.
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
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

//without is a view of a graph with some bonds hidden.
type without struct {
	*Graph
	hidden map[BondKey]bool
}

func (W without) From(id int64) graph.Nodes {
	n := make([]int, 0, len(W.adj[int(id)]))
	for _, v := range W.adj[int(id)] {
		if !W.hidden[NewBondKey(int(id), v)] {
			n = append(n, v)
		}
	}
	return orderedNodes(n)
}

func (W without) HasEdgeBetween(xid, yid int64) bool {
	if xid == yid || W.hidden[NewBondKey(int(xid), int(yid))] {
		return false
	}
	return W.Graph.HasEdgeBetween(xid, yid)
}

func (W without) Edge(uid, vid int64) graph.Edge {
	if !W.HasEdgeBetween(uid, vid) {
		return nil
	}
	return simple.Edge{F: simple.Node(uid), T: simple.Node(vid)}
}

func (W without) EdgeBetween(xid, yid int64) graph.Edge {
	return W.Edge(xid, yid)
}

func shortestPath(g graph.Graph, a, b int) []int {
	if g.Node(int64(a)) == nil || g.Node(int64(b)) == nil {
		return nil
	}
	pt := path.DijkstraFrom(simple.Node(a), g)
	nodes, _ := pt.To(int64(b))
	if len(nodes) == 0 {
		return nil
	}
	ret := make([]int, len(nodes))
	for i, v := range nodes {
		ret[i] = int(v.ID())
	}
	return ret
}

//ShortestPathBetweenAtoms returns the atom keys along the shortest path from a to b, both included.
func (G *Graph) ShortestPathBetweenAtoms(a, b int) ([]int, error) {
	p := shortestPath(G, a, b)
	if p == nil {
		return nil, newError(ErrNoPath, "ShortestPathBetweenAtoms", "between atoms %d and %d", a, b)
	}
	return p, nil
}

//ShortestPathBetweenGroups returns the shortest path that starts at an atom of keys1 and
//ends at an atom of keys2. Ties are broken by the order of the keys given. If the groups share
//an atom, the path is just that atom.
func (G *Graph) ShortestPathBetweenGroups(keys1, keys2 []int) ([]int, error) {
	var best []int
	for _, a := range keys1 {
		for _, b := range keys2 {
			if a == b {
				return []int{a}, nil
			}
			p := shortestPath(G, a, b)
			if p != nil && (best == nil || len(p) < len(best)) {
				best = p
			}
		}
	}
	if best == nil {
		return nil, newError(ErrNoPath, "ShortestPathBetweenGroups", "between groups %v and %v", keys1, keys2)
	}
	return best, nil
}

//ConnectedComponentsAtomKeys returns the atom keys of each connected component of the graph,
//each one sorted, and the components sorted by their smallest key.
func (G *Graph) ConnectedComponentsAtomKeys() [][]int {
	cc := topo.ConnectedComponents(G)
	ret := make([][]int, 0, len(cc))
	for _, c := range cc {
		keys := make([]int, 0, len(c))
		for _, n := range c {
			keys = append(keys, int(n.ID()))
		}
		sort.Ints(keys)
		ret = append(ret, keys)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

//FormingRingsAtomKeys returns the rings closed by the forming bonds. Each ring is the
//shortest cycle containing a forming bond, given as the atom keys in cycle order, starting
//from the first atom of the forming bond. Rings containing the same atoms are returned once.
func (G *Graph) FormingRingsAtomKeys() [][]int {
	ret := make([][]int, 0, 1)
	seen := make(map[string]bool)
	for _, fb := range G.FormingBondKeys() {
		w := without{Graph: G, hidden: map[BondKey]bool{fb: true}}
		p := shortestPath(w, fb[0], fb[1])
		if p == nil {
			continue
		}
		id := setID(p)
		if seen[id] {
			continue
		}
		seen[id] = true
		ret = append(ret, p)
	}
	return ret
}

func setID(keys []int) string {
	s := make([]int, len(keys))
	copy(s, keys)
	sort.Ints(s)
	b := make([]byte, 0, 4*len(s))
	for _, v := range s {
		b = append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return string(b)
}
