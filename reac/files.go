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

package reac

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rmera/tsscan/tsgraph"
	"gopkg.in/yaml.v3"
)

//bondEntry is a bond in a reaction file. Order defaults to 1 for plain and breaking
//bonds, and is always 0 for forming ones.
type bondEntry struct {
	Atoms [2]int  `json:"atoms" yaml:"atoms,flow"`
	Order float64 `json:"order,omitempty" yaml:"order,omitempty"`
	Tag   string  `json:"tag,omitempty" yaml:"tag,omitempty"`
}

//reactionFile is the layout of JSON and YAML reaction files. Atom i has key i.
type reactionFile struct {
	Class     ReactionClass `json:"class" yaml:"class"`
	Atoms     []string      `json:"atoms" yaml:"atoms,flow"`
	Bonds     []bondEntry   `json:"bonds" yaml:"bonds"`
	Reactants [][]int       `json:"reactants,omitempty" yaml:"reactants,omitempty,flow"`
}

func (rf *reactionFile) reaction() (*Reaction, error) {
	g := tsgraph.New()
	for i, s := range rf.Atoms {
		if err := g.AddAtom(i, s); err != nil {
			return nil, errDecorate(err, "reaction")
		}
	}
	for _, b := range rf.Bonds {
		var tag tsgraph.Tag
		switch strings.ToLower(b.Tag) {
		case "", "plain":
			tag = tsgraph.Plain
		case "forming":
			tag = tsgraph.Forming
		case "breaking":
			tag = tsgraph.Breaking
		default:
			return nil, newError(ErrMalformedReactionGraph, "reaction", "unknown bond tag %q", b.Tag)
		}
		order := b.Order
		if tag == tsgraph.Forming {
			order = 0
		} else if order == 0 {
			order = 1
		}
		if err := g.AddBond(b.Atoms[0], b.Atoms[1], order, tag); err != nil {
			return nil, newError(ErrMalformedReactionGraph, "reaction", "bond %v: %s", b.Atoms, err.Error())
		}
	}
	return &Reaction{Class: rf.Class, TSGraph: g, ReactantsKeys: copyKeys(rf.Reactants)}, nil
}

func toFile(rxn *Reaction) *reactionFile {
	rf := &reactionFile{Class: rxn.Class, Reactants: copyKeys(rxn.ReactantsKeys)}
	for _, k := range rxn.TSGraph.AtomKeys() {
		s, _ := rxn.TSGraph.Symbol(k)
		rf.Atoms = append(rf.Atoms, s)
	}
	for _, k := range rxn.TSGraph.BondKeys() {
		b, _ := rxn.TSGraph.Bond(k[0], k[1])
		e := bondEntry{Atoms: [2]int(k), Order: b.Order}
		if b.Tag != tsgraph.Plain {
			e.Tag = b.Tag.String()
		}
		rf.Bonds = append(rf.Bonds, e)
	}
	return rf
}

//formatFor returns "json" or "yaml" depending on the extension of name.
func formatFor(name string) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("reac: unknown reaction file extension in %s", name)
}

//ReactionRead reads a reaction from r, in the given format ("json" or "yaml").
//The atom keys of the reaction are the positions of the atoms in the file.
func ReactionRead(r io.Reader, format string) (*Reaction, error) {
	var rf reactionFile
	var err error
	switch format {
	case "json":
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&rf)
	case "yaml":
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&rf)
	default:
		return nil, fmt.Errorf("reac: unknown reaction file format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("reac: parsing reaction: %w", err)
	}
	rxn, err := rf.reaction()
	if err != nil {
		return nil, errDecorate(err, "ReactionRead")
	}
	if !rxn.Class.Valid() {
		return nil, newError(ErrUnsupportedReactionClass, "ReactionRead", "no reaction class given")
	}
	return rxn, nil
}

//ReactionFileRead reads a reaction from a JSON (.json) or YAML (.yaml, .yml) file.
func ReactionFileRead(name string) (*Reaction, error) {
	format, err := formatFor(name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("reac: opening reaction file: %w", err)
	}
	defer f.Close()
	return ReactionRead(f, format)
}

//ReactionWrite writes the reaction to w in the given format ("json" or "yaml").
//The atom keys of the reaction must be 0..N-1.
func ReactionWrite(w io.Writer, rxn *Reaction, format string) error {
	for i, k := range rxn.TSGraph.AtomKeys() {
		if i != k {
			return newError(ErrMalformedReactionGraph, "ReactionWrite", "atom keys must be consecutive from 0, found %d at position %d", k, i)
		}
	}
	rf := toFile(rxn)
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rf)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rf); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("reac: unknown reaction file format %q", format)
}

//ReactionFileWrite writes the reaction to a JSON or YAML file, depending on the extension of name.
func ReactionFileWrite(name string, rxn *Reaction) error {
	format, err := formatFor(name)
	if err != nil {
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("reac: creating reaction file: %w", err)
	}
	if err := ReactionWrite(f, rxn, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
