package structure

import (
	"github.com/andrew-torda/matrix"
)

// eachAtom calls f for every non-nil atom in the model, alt-locs
// included, in write order. Nil chains and groups are skipped.
func (m *Model) eachAtom(f func(a *Atom)) {
	for _, c := range m.Chains {
		if c == nil {
			continue
		}
		for _, g := range c.Groups {
			if g == nil {
				continue
			}
			for _, a := range g.Atoms {
				if a != nil {
					f(a)
				}
			}
			for _, alt := range g.AltLocs {
				if alt == nil {
					continue
				}
				for _, a := range alt.Atoms {
					if a != nil {
						f(a)
					}
				}
			}
		}
	}
}

// Coords returns the coordinates of every atom in the model as an
// n x 3 matrix, one row per atom in write order.
func (m *Model) Coords() *matrix.FMatrix2d {
	n := 0
	m.eachAtom(func(*Atom) { n++ })
	mat := matrix.NewFMatrix2d(n, 3)
	i := 0
	m.eachAtom(func(a *Atom) {
		row := mat.Mat[i]
		row[0], row[1], row[2] = float32(a.X), float32(a.Y), float32(a.Z)
		i++
	})
	return mat
}

// Centroid is the unweighted mean position of the atoms in m, summed
// in float64. An empty model has its centroid at the origin.
func (m *Model) Centroid() Xyz {
	var sum Xyz
	n := 0
	m.eachAtom(func(a *Atom) {
		sum.X += a.X
		sum.Y += a.Y
		sum.Z += a.Z
		n++
	})
	if n == 0 {
		return Xyz{}
	}
	fn := float64(n)
	return Xyz{sum.X / fn, sum.Y / fn, sum.Z / fn}
}

// Centre moves every model so its centroid is at the origin.
func (s *Structure) Centre() {
	for _, m := range s.Models {
		if m == nil {
			continue
		}
		c := m.Centroid()
		m.eachAtom(func(a *Atom) {
			a.X -= c.X
			a.Y -= c.Y
			a.Z -= c.Z
		})
	}
}
