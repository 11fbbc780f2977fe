// 13 Oct 2026

// Package pdbread reads coordinates from files in the old, fixed column
// PDB format and builds a structure.Structure. Only the records needed
// for coordinates are looked at: HEADER for the id code, MODEL / ENDMDL,
// ATOM / HETATM, TER and END.
package pdbread

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/andrew-torda/cifwrite/pkg/structure"
	"github.com/andrew-torda/cifwrite/pkg/zwrap"
	"github.com/edsrzf/mmap-go"
)

// Options contains the choices passed in from the caller.
type Options struct {
	Entities bool // give each chain a compound, numbering ATOM residues from 1
}

const lineLen = 80 // lines are padded to this, so we can slice freely

// reader holds the state while going through a file.
type reader struct {
	s        *structure.Structure
	mdl      *structure.Model
	chains   map[string]*structure.Chain // chains in the current model
	group    *structure.Group            // residue we are adding atoms to
	chain    *structure.Chain            // chain of group
	firstAlt byte                        // first alt-loc seen in group
	alts     map[byte]*structure.Group
	n        int // line number
	line     string
}

func (r *reader) fail(desc string) error {
	return &ReadError{N: r.n, Line: r.line, Desc: desc}
}

func (r *reader) newModel() {
	r.mdl = &structure.Model{}
	r.s.Models = append(r.s.Models, r.mdl)
	r.chains = make(map[string]*structure.Chain)
	r.group = nil
}

// getChain finds or makes a chain in the current model.
func (r *reader) getChain(id string) *structure.Chain {
	if c, ok := r.chains[id]; ok {
		return c
	}
	c := structure.NewChain(id, id)
	r.chains[id] = c
	r.mdl.Chains = append(r.mdl.Chains, c)
	return c
}

// field returns columns from, to (1-based, inclusive) without blanks.
func field(l string, from, to int) string {
	return strings.TrimSpace(l[from-1 : to])
}

func (r *reader) atoi(l string, from, to int, what string) (int, error) {
	s := field(l, from, to)
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, r.fail("bad " + what + " " + strconv.Quote(s))
	}
	return i, nil
}

// atof parses a float. An empty field gives dflt.
func (r *reader) atof(l string, from, to int, what string, dflt float64) (float64, error) {
	s := field(l, from, to)
	if s == "" {
		return dflt, nil
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, r.fail("bad " + what + " " + strconv.Quote(s))
	}
	return x, nil
}

// guessElement takes the first letter of the atom name. Only used if
// columns 77-78 are empty.
func guessElement(name string) structure.Element {
	for _, c := range name {
		if unicode.IsLetter(c) {
			return structure.Element(string(c))
		}
	}
	return ""
}

func blankToZero(b byte) byte {
	if b == ' ' {
		return 0
	}
	return b
}

// atom handles one ATOM or HETATM line.
func (r *reader) atom(l string, gtype structure.GroupType) error {
	if len(strings.TrimRight(l, " ")) < 54 {
		return r.fail("coordinate line too short")
	}
	var a structure.Atom
	var err error
	if a.Serial, err = r.atoi(l, 7, 11, "serial number"); err != nil {
		return err
	}
	a.Name = field(l, 13, 16)
	a.AltLoc = blankToZero(l[16])
	resName := field(l, 18, 20)
	chainID := field(l, 22, 22)
	var rn structure.ResidueNumber
	if rn.SeqNum, err = r.atoi(l, 23, 26, "residue number"); err != nil {
		return err
	}
	rn.InsCode = blankToZero(l[26])
	if a.X, err = r.atof(l, 31, 38, "x", 0); err != nil {
		return err
	}
	if a.Y, err = r.atof(l, 39, 46, "y", 0); err != nil {
		return err
	}
	if a.Z, err = r.atof(l, 47, 54, "z", 0); err != nil {
		return err
	}
	if a.Occupancy, err = r.atof(l, 55, 60, "occupancy", 1); err != nil {
		return err
	}
	if a.TempFactor, err = r.atof(l, 61, 66, "B-factor", 0); err != nil {
		return err
	}
	if a.Element = structure.Element(field(l, 77, 78)); a.Element == "" {
		a.Element = guessElement(a.Name)
	}

	if r.mdl == nil { // no MODEL record, or atoms after ENDMDL
		r.newModel()
	}
	chain := r.getChain(chainID)
	sameRes := r.group != nil && r.chain == chain && r.group.ResNum == rn
	if !sameRes || (a.AltLoc == 0 && resName != r.group.PDBName) {
		r.group = structure.NewGroup(gtype, resName, rn)
		r.chain = chain
		r.firstAlt = 0
		r.alts = nil
		chain.AddGroup(r.group)
	}
	if a.AltLoc != 0 && r.firstAlt == 0 {
		r.firstAlt = a.AltLoc
	}
	if a.AltLoc == 0 || a.AltLoc == r.firstAlt {
		r.group.AddAtom(&a)
		return nil
	}
	alt, ok := r.alts[a.AltLoc]
	if !ok {
		alt = structure.NewGroup(gtype, resName, rn)
		r.group.AddAltLoc(alt)
		if r.alts == nil {
			r.alts = make(map[byte]*structure.Group)
		}
		r.alts[a.AltLoc] = alt
	}
	alt.AddAtom(&a)
	return nil
}

// addEntities gives every chain name its own compound. The same
// compound is used for the chain in every model.
func addEntities(s *structure.Structure) {
	cmpnds := make(map[string]*structure.Compound)
	for _, m := range s.Models {
		for _, c := range m.Chains {
			cp, ok := cmpnds[c.AuthID]
			if !ok {
				cp = structure.NewCompound(len(cmpnds)+1, c.AuthID)
				cmpnds[c.AuthID] = cp
			}
			cp.AlignChain(c)
		}
	}
}

// Read reads PDB format from rdr. It may be gzipped.
func Read(rdr io.Reader, opts Options) (*structure.Structure, error) {
	zr, err := zwrap.WrapMaybe(io.NopCloser(rdr))
	if err != nil {
		return nil, fmt.Errorf("pdbread: %w", err)
	}
	defer zr.Close()

	r := &reader{s: &structure.Structure{}}
	scnr := bufio.NewScanner(zr)
scan:
	for scnr.Scan() {
		r.n++
		r.line = scnr.Text()
		l := r.line
		if len(l) < lineLen {
			l += strings.Repeat(" ", lineLen-len(l))
		}
		var err error
		switch l[:6] {
		case "HEADER":
			r.s.IDCode = field(l, 63, 66)
		case "MODEL ":
			r.newModel()
		case "ENDMDL":
			r.mdl = nil
			r.group = nil
		case "TER   ":
			r.group = nil
		case "ATOM  ":
			err = r.atom(l, structure.GroupATOM)
		case "HETATM":
			err = r.atom(l, structure.GroupHETATM)
		case "END   ":
			break scan
		}
		if err != nil {
			return nil, err
		}
	}
	if err := scnr.Err(); err != nil {
		return nil, fmt.Errorf("pdbread: line %d: %w", r.n+1, err)
	}
	if opts.Entities {
		addEntities(r.s)
	}
	return r.s, nil
}

// ReadFile maps the file into memory and reads it. Compressed files
// are recognised by their contents, not the name.
func ReadFile(fname string, opts Options) (*structure.Structure, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 { // cannot map an empty file
		return Read(bytes.NewReader(nil), opts)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mapping %v: %w", fname, err)
	}
	defer mm.Unmap()
	s, err := Read(bytes.NewReader(mm), opts)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", fname, err)
	}
	return s, nil
}
