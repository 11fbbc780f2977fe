package structure

// Entity is the molecule a chain is an instance of. It knows where a
// residue sits in the entity's sequence.
type Entity interface {
	MolID() int
	// AlignedResIndex gives the 1-based position of g in the entity
	// sequence, as seen from chain c. ok is false if g is not placed.
	AlignedResIndex(g *Group, c *Chain) (idx int, ok bool)
}

// Compound is a simple Entity. Each chain that is an instance of the
// compound has its own table from residue number to sequence position,
// since chains can have different gaps and insertions.
type Compound struct {
	ID    int
	Name  string
	align map[string]map[ResidueNumber]int // label chain id -> residue -> index
}

func NewCompound(id int, name string) *Compound {
	return &Compound{ID: id, Name: name, align: make(map[string]map[ResidueNumber]int)}
}

func (cp *Compound) MolID() int { return cp.ID }

// Align records that residue rn of the chain labelled labelID is at
// sequence position idx (1-based).
func (cp *Compound) Align(labelID string, rn ResidueNumber, idx int) {
	m, ok := cp.align[labelID]
	if !ok {
		m = make(map[ResidueNumber]int)
		cp.align[labelID] = m
	}
	m[rn] = idx
}

// AlignChain numbers the polymer (ATOM) groups of c 1, 2, 3.. in
// order and links the chain to the compound. HETATM groups are left
// out. This is what one gets without SEQRES information.
func (cp *Compound) AlignChain(c *Chain) {
	n := 0
	for _, g := range c.Groups {
		if g.Type != GroupATOM {
			continue
		}
		n++
		cp.Align(c.LabelID, g.ResNum, n)
	}
	c.Entity = cp
}

func (cp *Compound) AlignedResIndex(g *Group, c *Chain) (int, bool) {
	if g == nil || c == nil {
		return 0, false
	}
	m, ok := cp.align[c.LabelID]
	if !ok {
		return 0, false
	}
	idx, ok := m[g.ResNum]
	return idx, ok
}
