// This file turns atoms into atom_site records.
package mmcif

import (
	"math"
	"strconv"
	"strings"

	"github.com/andrew-torda/cifwrite/pkg/structure"
)

// AtomSiteField is the position of a field in an AtomSite record.
type AtomSiteField int

const (
	GroupPDB AtomSiteField = iota
	ID
	TypeSymbol
	LabelAtomID
	LabelAltID
	LabelCompID
	LabelAsymID
	LabelEntityID
	LabelSeqID
	PdbxPDBInsCode
	CartnX
	CartnY
	CartnZ
	Occupancy
	BIsoOrEquiv
	AuthSeqID
	AuthCompID
	AuthAsymID
	AuthAtomID
	PdbxPDBModelNum
	NumAtomSiteFields // not a field
)

// atomSiteNames is indexed by the constants above, so the header and
// the record layout come from one place.
var atomSiteNames = [NumAtomSiteFields]string{
	GroupPDB:        "group_PDB",
	ID:              "id",
	TypeSymbol:      "type_symbol",
	LabelAtomID:     "label_atom_id",
	LabelAltID:      "label_alt_id",
	LabelCompID:     "label_comp_id",
	LabelAsymID:     "label_asym_id",
	LabelEntityID:   "label_entity_id",
	LabelSeqID:      "label_seq_id",
	PdbxPDBInsCode:  "pdbx_PDB_ins_code",
	CartnX:          "Cartn_x",
	CartnY:          "Cartn_y",
	CartnZ:          "Cartn_z",
	Occupancy:       "occupancy",
	BIsoOrEquiv:     "B_iso_or_equiv",
	AuthSeqID:       "auth_seq_id",
	AuthCompID:      "auth_comp_id",
	AuthAsymID:      "auth_asym_id",
	AuthAtomID:      "auth_atom_id",
	PdbxPDBModelNum: "pdbx_PDB_model_num",
}

func (f AtomSiteField) String() string {
	if f < 0 || f >= NumAtomSiteFields {
		return "AtomSiteField(" + strconv.Itoa(int(f)) + ")"
	}
	return atomSiteNames[f]
}

// AtomSiteSchema returns the schema for writing AtomSite records.
func AtomSiteSchema() Schema {
	return Schema{Category: "_atom_site", Fields: append([]string(nil), atomSiteNames[:]...)}
}

// AtomSite is one row of the atom_site loop. Every field is set.
type AtomSite [NumAtomSiteFields]string

func (as *AtomSite) Len() int                    { return int(NumAtomSiteFields) }
func (as *AtomSite) Field(i int) (string, error) { return as[i], nil }

// Get returns one field by name.
func (as *AtomSite) Get(f AtomSiteField) string { return as[f] }

// AtomSiteRecords gives a Record view of a slice of AtomSites, for
// passing to the loop writer. The records point into as.
func AtomSiteRecords(as []AtomSite) []Record {
	recs := make([]Record, len(as))
	for i := range as {
		recs[i] = &as[i]
	}
	return recs
}

// renderOptional is the one place where absent values become
// sentinels. If v is not present, or empty, dflt is returned.
func renderOptional(v string, present bool, dflt string) string {
	if !present || v == "" {
		return dflt
	}
	return v
}

// fmtFloat writes a fixed point number with prec decimals. strconv
// rounds the exact binary value correctly, so only true ties go to
// even. NaN and infinities are missing values.
func fmtFloat(x float64, prec int) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return MissingValue
	}
	return strconv.FormatFloat(x, 'f', prec, 64)
}

// elementSymbol upper cases the element. The pseudo-element for
// unknown atoms is written as X.
func elementSymbol(e structure.Element) (string, bool) {
	s := strings.ToUpper(strings.TrimSpace(string(e)))
	if s == string(structure.ElementR) {
		return "X", true
	}
	return s, s != ""
}

// MapAtomToRecord makes the atom_site record for one atom. model is
// the 1-based model number. authChainID goes into auth_asym_id and
// labelChainID into label_asym_id.
func MapAtomToRecord(a *structure.Atom, model int, authChainID, labelChainID string) AtomSite {
	var as AtomSite
	g := a.Group()
	if g == nil { // a loose atom. Keep going with an empty residue
		g = &structure.Group{}
	}
	chain := g.Chain()

	as[GroupPDB] = g.Type.String()
	as[ID] = strconv.Itoa(a.Serial)
	sym, ok := elementSymbol(a.Element)
	as[TypeSymbol] = renderOptional(sym, ok, MissingValue)

	entityID := "0"
	authSeq := strconv.Itoa(g.ResNum.SeqNum)
	labelSeq := authSeq
	if chain != nil && chain.Entity != nil {
		entityID = strconv.Itoa(chain.Entity.MolID())
		idx, ok := chain.Entity.AlignedResIndex(g, chain)
		labelSeq = renderOptional(strconv.Itoa(idx), ok, MissingValue)
	}

	as[LabelAtomID] = renderOptional(a.Name, true, MissingValue)
	as[LabelAltID] = renderOptional(string(a.AltLoc), a.HasAltLoc(), DefaultValue)
	as[LabelCompID] = renderOptional(g.PDBName, true, MissingValue)
	as[LabelAsymID] = renderOptional(labelChainID, true, MissingValue)
	as[LabelEntityID] = entityID
	as[LabelSeqID] = labelSeq

	ic := g.ResNum.InsCode
	as[PdbxPDBInsCode] = renderOptional(string(ic), ic != 0 && ic != ' ', MissingValue)

	as[CartnX] = fmtFloat(a.X, 3)
	as[CartnY] = fmtFloat(a.Y, 3)
	as[CartnZ] = fmtFloat(a.Z, 3)
	as[Occupancy] = fmtFloat(a.Occupancy, 2)
	as[BIsoOrEquiv] = fmtFloat(a.TempFactor, 2)

	as[AuthSeqID] = authSeq
	as[AuthCompID] = renderOptional(g.PDBName, true, MissingValue)
	as[AuthAsymID] = renderOptional(authChainID, true, MissingValue)
	as[AuthAtomID] = renderOptional(a.Name, true, MissingValue)
	as[PdbxPDBModelNum] = strconv.Itoa(model)
	return as
}
