/*
 * rings.go, part of goChem.
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

//CycleRingAtomKeyToFront rotates the ring keys so that key comes first, keeping the ring
//direction. If endKey is given, the ring is also arranged so that endKey is last: when
//endKey is adjacent to key in the ring, this is done by reversing the direction of the
//ring; otherwise endKey is moved to the end, keeping the relative order of the rest.
//A z-matrix built from the result leaves out the bond between the first and the last atom.
//The given slice is not modified.
func CycleRingAtomKeyToFront(keys []int, key int, endKey ...int) ([]int, error) {
	pos := indexOf(keys, key)
	if pos < 0 {
		return nil, newError(ErrKeyNotInRing, "CycleRingAtomKeyToFront", "start key %d not in ring %v", key, keys)
	}
	n := len(keys)
	ret := make([]int, 0, n)
	ret = append(ret, keys[pos:]...)
	ret = append(ret, keys[:pos]...)
	if len(endKey) == 0 {
		return ret, nil
	}
	end := endKey[0]
	epos := indexOf(ret, end)
	switch {
	case epos < 0:
		return nil, newError(ErrKeyNotInRing, "CycleRingAtomKeyToFront", "end key %d not in ring %v", end, keys)
	case epos == 0:
		return nil, newError(ErrKeyNotInRing, "CycleRingAtomKeyToFront", "end key %d is the same as the start key", end)
	case epos == n-1:
		return ret, nil
	case epos == 1:
		//reverse everything after the first atom
		for i, j := 1, n-1; i < j; i, j = i+1, j-1 {
			ret[i], ret[j] = ret[j], ret[i]
		}
		return ret, nil
	}
	moved := make([]int, 0, n)
	moved = append(moved, ret[:epos]...)
	moved = append(moved, ret[epos+1:]...)
	moved = append(moved, end)
	return moved, nil
}

func indexOf(s []int, v int) int {
	for i, k := range s {
		if k == v {
			return i
		}
	}
	return -1
}
