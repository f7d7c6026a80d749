/*
 * files.go, part of goChem.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	v3 "github.com/rmera/tsscan/v3"
)

//Also, why couldn't *zstd.Decoder implement io.ReadCloser? :-(
type stdql struct {
	closeql func()
	*zstd.Decoder
}

//Close Closes the object. It can not be used after this call
func (s stdql) Close() error {
	s.closeql()
	return nil
}

func compressed(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".zst")
}

//XYZFileRead reads a geometry from an XYZ file. Files with the .zst extension are
//decompressed with zstd on the fly.
func XYZFileRead(name string) (*Geom, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, &CError{err.Error(), []string{"os.Open", "XYZFileRead"}}
	}
	defer f.Close()
	var r io.Reader = f
	if compressed(name) {
		d, err := zstd.NewReader(f)
		if err != nil {
			return nil, &CError{err.Error(), []string{"zstd.NewReader", "XYZFileRead"}}
		}
		ql := stdql{d.Close, d}
		defer ql.Close()
		r = ql
	}
	G, err := XYZRead(r)
	return G, errDecorate(err, "XYZFileRead")
}

//maxXYZAtoms is the largest atom count accepted in an XYZ header.
const maxXYZAtoms = 1000000

//XYZRead reads the first geometry from an XYZ stream.
func XYZRead(r io.Reader) (*Geom, error) {
	xyz := bufio.NewScanner(r)
	if !xyz.Scan() {
		return nil, newCError("XYZRead", "Empty XYZ input")
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(xyz.Text()))
	if err != nil {
		return nil, newCError("XYZRead", "Malformed atom count line: %s", err.Error())
	}
	if natoms <= 0 || natoms > maxXYZAtoms {
		return nil, newCError("XYZRead", "Atom count %d out of range (1-%d)", natoms, maxXYZAtoms)
	}
	if !xyz.Scan() { //the comment line
		return nil, newCError("XYZRead", "Missing comment line")
	}
	syms := make([]string, 0, natoms)
	data := make([]float64, 0, 3*natoms)
	for i := 0; i < natoms; i++ {
		if !xyz.Scan() {
			return nil, newCError("XYZRead", "Expected %d atoms, found %d", natoms, i)
		}
		fields := strings.Fields(xyz.Text())
		if len(fields) < 4 {
			return nil, newCError("XYZRead", "Malformed line for atom %d: %q", i, xyz.Text())
		}
		syms = append(syms, fields[0])
		for _, v := range fields[1:4] {
			c, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, newCError("XYZRead", "Malformed coordinate for atom %d: %s", i, err.Error())
			}
			data = append(data, c)
		}
	}
	if err := xyz.Err(); err != nil {
		return nil, newCError("XYZRead", "%s", err.Error())
	}
	coords, err := v3.NewMatrix(data)
	if err != nil {
		return nil, errDecorate(err, "XYZRead")
	}
	return NewGeom(syms, coords)
}

//XYZFileWrite writes the geometry to an XYZ file, compressing it with zstd
//if the name has the .zst extension.
func XYZFileWrite(name string, G *Geom, comment string) error {
	f, err := os.Create(name)
	if err != nil {
		return &CError{err.Error(), []string{"os.Create", "XYZFileWrite"}}
	}
	if !compressed(name) {
		err = XYZWrite(f, G, comment)
		return firstError(errDecorate(err, "XYZFileWrite"), closeError(f, "os.File.Close"))
	}
	zw, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		f.Close()
		return &CError{err.Error(), []string{"zstd.NewWriter", "XYZFileWrite"}}
	}
	err = errDecorate(XYZWrite(zw, G, comment), "XYZFileWrite")
	//the last frame is only flushed on Close
	err = firstError(err, closeError(zw, "zstd.Encoder.Close"))
	return firstError(err, closeError(f, "os.File.Close"))
}

func closeError(c io.Closer, caller string) error {
	if err := c.Close(); err != nil {
		return &CError{err.Error(), []string{caller, "XYZFileWrite"}}
	}
	return nil
}

func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

//XYZWrite writes the geometry in XYZ format to w.
func XYZWrite(w io.Writer, G *Geom, comment string) error {
	comment = strings.ReplaceAll(comment, "\n", " ")
	if _, err := fmt.Fprintf(w, "%d\n%s\n%s\n", G.Len(), comment, G.String()); err != nil {
		return &CError{err.Error(), []string{"fmt.Fprintf", "XYZWrite"}}
	}
	return nil
}
