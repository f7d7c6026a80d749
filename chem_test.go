/*
 * chem_test.go, part of goChem.
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

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	v3 "github.com/rmera/tsscan/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geom(Te *testing.T, symbols []string, data ...float64) *Geom {
	c, err := v3.NewMatrix(data)
	require.NoError(Te, err)
	G, err := NewGeom(symbols, c)
	require.NoError(Te, err)
	return G
}

func acetylene(Te *testing.T) *Geom {
	return geom(Te, []string{"H", "C", "C", "H"},
		-1.66, 0, 0,
		-0.6, 0, 0,
		0.6, 0, 0,
		1.66, 0, 0)
}

func water(Te *testing.T) *Geom {
	return geom(Te, []string{"O", "H", "H"},
		0, 0, 0,
		0.757, 0.586, 0,
		-0.757, 0.586, 0)
}

func TestGeom(Te *testing.T) {
	c, err := v3.NewMatrix([]float64{0, 0, 0, 1, 0, 0})
	require.NoError(Te, err)
	_, err = NewGeom([]string{"H"}, c)
	assert.Error(Te, err)
	_, err = NewGeom([]string{"H"}, nil)
	assert.Error(Te, err)

	G := water(Te)
	assert.Equal(Te, 3, G.Len())
	cp := G.Copy()
	cp.Coords.Set(0, 0, 5)
	cp.Symbols[0] = "S"
	assert.Equal(Te, 0.0, G.Coords.At(0, 0))
	assert.Equal(Te, "O", G.Symbols[0])

	sub, err := FromSubset(G, []int{2, 0})
	require.NoError(Te, err)
	assert.Equal(Te, []string{"H", "O"}, sub.Symbols)
	assert.Equal(Te, -0.757, sub.Coords.At(0, 0))
	_, err = FromSubset(G, []int{3})
	assert.Error(Te, err)
}

func TestGeometry(Te *testing.T) {
	G := water(Te)
	assert.InDelta(Te, 0.9573, Distance(G, 0, 1), 1e-4)
	assert.InDelta(Te, 104.5, CentralAngle(G, 1, 0, 2)*Rad2Deg, 0.1)
	D := geom(Te, []string{"C", "C", "C", "C"},
		1, 0, 0,
		0, 0, 0,
		0, 1, 0,
		0, 1, 1)
	assert.InDelta(Te, -math.Pi/2, DihedralAngle(D, 0, 1, 2, 3), 1e-9)
	assert.InDelta(Te, -math.Pi/2, DihedralAngle(D, 3, 2, 1, 0), 1e-9)
}

func TestBonds(Te *testing.T) {
	conn, err := AssignBonds(acetylene(Te))
	require.NoError(Te, err)
	assert.Equal(Te, []int{1}, conn.Neighbors(0))
	assert.Equal(Te, []int{0, 2}, conn.Neighbors(1))
	assert.Nil(Te, conn.Neighbors(7))
	_, err = AssignBonds(geom(Te, []string{"Qq"}, 0, 0, 0))
	assert.Error(Te, err)

	l, ok := BondLength("H", "C")
	assert.True(Te, ok)
	l2, _ := BondLength("C", "H")
	assert.Equal(Te, l, l2)
	_, ok = BondLength("X", "C")
	assert.False(Te, ok)
	r, ok := CovalentRadius("C")
	assert.True(Te, ok)
	assert.Equal(Te, 0.76, r)
	v, _ := Valence("O")
	assert.Equal(Te, 2, v)
}

func TestLinearAtoms(Te *testing.T) {
	lin, err := LinearAtoms(acetylene(Te), nil, 5)
	require.NoError(Te, err)
	assert.Equal(Te, []int{1, 2}, lin)
	lin, err = LinearAtoms(water(Te), nil, 5)
	require.NoError(Te, err)
	assert.Empty(Te, lin)
}

func TestInsertDummies(Te *testing.T) {
	G := acetylene(Te)
	D, dkm, err := InsertDummiesOnLinearAtoms(G, []int{2, 1, 2}, nil, 1.0)
	require.NoError(Te, err)
	assert.Equal(Te, DummyKeyMap{1: 2, 3: 4}, dkm)
	assert.Equal(Te, []int{1, 3}, dkm.ParentKeys())
	assert.Equal(Te, []string{"H", "C", "X", "C", "X", "H"}, D.Symbols)
	assert.Equal(Te, []int{2, 4}, D.DummyKeys())
	for p, d := range dkm {
		assert.InDelta(Te, 1.0, Distance(D, p, d), 1e-9)
		assert.InDelta(Te, 90, CentralAngle(D, 0, p, d)*Rad2Deg, 1e-6)
	}
	//the original is untouched
	assert.Equal(Te, 4, G.Len())

	//a dummy atom is never bonded
	conn, err := AssignBonds(D)
	require.NoError(Te, err)
	assert.Empty(Te, conn.Neighbors(2))

	W, dkm, err := InsertDummiesOnLinearAtoms(water(Te), nil, nil, 1.0)
	require.NoError(Te, err)
	assert.Empty(Te, dkm)
	assert.Equal(Te, 3, W.Len())

	_, _, err = InsertDummiesOnLinearAtoms(G, []int{4}, nil, 1.0)
	assert.Error(Te, err)
	_, _, err = InsertDummiesOnLinearAtoms(D, []int{2}, nil, 1.0)
	assert.Error(Te, err)
}

//adjacency is a fixed connectivity.
type adjacency map[int][]int

func (A adjacency) Neighbors(key int) []int { return A[key] }

func TestDummyAwayFromBonds(Te *testing.T) {
	//F + CH3Cl substitution TS, with the attacking and leaving atoms bonded to C
	ngb := adjacency{0: {1, 2, 3, 4, 5}, 1: {0}, 2: {0}, 3: {0}, 4: {0}, 5: {0}}
	for name, hz := range map[string]float64{"planar": 0, "pyramidal": 0.35} {
		G := geom(Te, []string{"C", "H", "H", "H", "Cl", "F"},
			0, 0, 0,
			0, 1.07, hz,
			0.93, -0.535, hz,
			-0.93, -0.535, hz,
			0, 0, -2.1,
			0, 0, 2.0)
		D, dkm, err := InsertDummiesOnLinearAtoms(G, []int{0}, ngb, 1.0)
		require.NoError(Te, err, name)
		require.Equal(Te, DummyKeyMap{0: 1}, dkm, name)
		assert.InDelta(Te, 1.0, Distance(D, 0, 1), 1e-9, name)
		for _, n := range []int{2, 3, 4, 5, 6} {
			ang := CentralAngle(D, 1, 0, n) * Rad2Deg
			assert.Greater(Te, ang, 20.0, "%s: atom %d", name, n)
			assert.Less(Te, ang, 160.0, "%s: atom %d", name, n)
		}
		//perpendicular to the Cl-C-F axis
		assert.InDelta(Te, 90, CentralAngle(D, 1, 0, 6)*Rad2Deg, 1e-6, name)
	}
}

func TestXYZ(Te *testing.T) {
	G, err := XYZFileRead("testdata/acetylene.xyz")
	require.NoError(Te, err)
	assert.Equal(Te, []string{"H", "C", "C", "H"}, G.Symbols)
	dir := Te.TempDir()
	for _, name := range []string{"out.xyz", "out.xyz.zst"} {
		path := filepath.Join(dir, name)
		require.NoError(Te, XYZFileWrite(path, G, "acetylene\nTS"))
		R, err := XYZFileRead(path)
		require.NoError(Te, err, name)
		assert.Equal(Te, G.Symbols, R.Symbols)
		for i := 0; i < G.Len(); i++ {
			for j := 0; j < 3; j++ {
				assert.InDelta(Te, G.Coords.At(i, j), R.Coords.At(i, j), 1e-8)
			}
		}
	}
	raw, err := os.ReadFile(filepath.Join(dir, "out.xyz"))
	require.NoError(Te, err)
	assert.Equal(Te, "acetylene TS", strings.Split(string(raw), "\n")[1])
	zst, err := os.ReadFile(filepath.Join(dir, "out.xyz.zst"))
	require.NoError(Te, err)
	assert.NotEqual(Te, raw, zst)

	bad := []string{"", "x\n", "2\ncomment\nH 0 0 0\n", "1\ncomment\nH 0 zero 0\n", "0\n\n",
		"-1\ncomment\n", "2000000\ncomment\nH 0 0 0\n"}
	for _, b := range bad {
		_, err := XYZRead(strings.NewReader(b))
		assert.Error(Te, err, b)
	}
}

type failCloser struct{}

func (failCloser) Close() error { return errors.New("disk full") }

func TestXYZWriteErrors(Te *testing.T) {
	G := acetylene(Te)
	err := XYZFileWrite(filepath.Join(Te.TempDir(), "nodir", "out.xyz.zst"), G, "")
	assert.Error(Te, err)
	//a failed close is reported, and an earlier error takes precedence
	err = closeError(failCloser{}, "zstd.Encoder.Close")
	require.Error(Te, err)
	assert.Equal(Te, []string{"zstd.Encoder.Close", "XYZFileWrite"}, err.(*CError).Decorate(""))
	first := newCError("XYZWrite", "short write")
	assert.Equal(Te, error(first), firstError(nil, first, err))
	assert.NoError(Te, firstError(nil, nil))
}
