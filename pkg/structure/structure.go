// 12 Oct 2026

// Package structure has the in-memory model of a macromolecular
// structure: models, chains, groups (residues) and atoms.
// Readers fill it in and the mmcif writer walks it. Nothing here knows
// about file formats.
package structure

// GroupType says whether a group came from ATOM or HETATM records.
type GroupType byte

const (
	GroupATOM GroupType = iota
	GroupHETATM
)

func (t GroupType) String() string {
	if t == GroupHETATM {
		return "HETATM"
	}
	return "ATOM"
}

// Element is an element symbol as found in a coordinate file, like "C"
// or "Fe". Case is not normalised.
type Element string

// ElementR is the pseudo-element for unknown or dummy atoms.
const ElementR Element = "R"

type Xyz struct{ X, Y, Z float64 }

// Atom is one atom. AltLoc is zero or a blank if there is no
// alternate location.
type Atom struct {
	Name       string // PDB style name, like "CA"
	Element    Element
	Xyz
	Occupancy  float64
	TempFactor float64
	Serial     int
	AltLoc     byte
	group      *Group
}

// Group returns the residue that owns the atom, or nil if the atom
// was never added to one.
func (a *Atom) Group() *Group { return a.group }

// HasAltLoc is true if the atom carries a real alt-loc character.
func (a *Atom) HasAltLoc() bool { return a.AltLoc != 0 && a.AltLoc != ' ' }

// ResidueNumber is the author residue number. InsCode of zero means
// there is no insertion code.
type ResidueNumber struct {
	SeqNum  int
	InsCode byte
}

// Group is a residue, ligand or water. AltLocs holds alternative
// conformations of the same residue. They are leaves: the writer does
// not expect an alt-loc group to have its own alt-locs.
type Group struct {
	Type    GroupType
	PDBName string // three letter name, like "GLU"
	ResNum  ResidueNumber
	Atoms   []*Atom
	AltLocs []*Group
	chain   *Chain
}

// NewGroup returns an empty group.
func NewGroup(t GroupType, name string, rn ResidueNumber) *Group {
	return &Group{Type: t, PDBName: name, ResNum: rn}
}

// AddAtom appends an atom and makes g its owner.
func (g *Group) AddAtom(a *Atom) {
	a.group = g
	g.Atoms = append(g.Atoms, a)
}

// AddAltLoc appends an alternative conformation. The sibling gets the
// same chain as g.
func (g *Group) AddAltLoc(alt *Group) {
	alt.chain = g.chain
	g.AltLocs = append(g.AltLocs, alt)
}

// Chain returns the chain holding the group.
func (g *Group) Chain() *Chain { return g.chain }

// Chain is one chain in one model. AuthID is the author chain name
// (auth_asym_id), LabelID the internal one (label_asym_id).
type Chain struct {
	AuthID  string
	LabelID string
	Groups  []*Group
	Entity  Entity // nil if we know nothing about the compound
}

// NewChain returns an empty chain. If labelID is empty, the author ID
// is used for both.
func NewChain(authID, labelID string) *Chain {
	if labelID == "" {
		labelID = authID
	}
	return &Chain{AuthID: authID, LabelID: labelID}
}

// AddGroup appends a group and points it, and any alt-locs it already
// has, back at the chain.
func (c *Chain) AddGroup(g *Group) {
	g.chain = c
	for _, alt := range g.AltLocs {
		alt.chain = c
	}
	c.Groups = append(c.Groups, g)
}

// NAtom counts atoms in the chain, including alt-loc siblings. Nil
// chains and groups count as empty.
func (c *Chain) NAtom() int {
	if c == nil {
		return 0
	}
	n := 0
	for _, g := range c.Groups {
		if g == nil {
			continue
		}
		n += len(g.Atoms)
		for _, alt := range g.AltLocs {
			if alt != nil {
				n += len(alt.Atoms)
			}
		}
	}
	return n
}

type Model struct {
	Chains []*Chain
}

// Structure is the whole entry. Models are in file order. The
// position in Models, not any number from a file, is the model
// number on output.
type Structure struct {
	IDCode string
	Models []*Model
}

// NAtom counts all atoms in all models.
func (s *Structure) NAtom() int {
	n := 0
	for _, m := range s.Models {
		if m == nil {
			continue
		}
		for _, c := range m.Chains {
			n += c.NAtom()
		}
	}
	return n
}
