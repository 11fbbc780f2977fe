package mmcif

import (
	"context"
	"log/slog"

	"github.com/andrew-torda/cifwrite/pkg/structure"
	"golang.org/x/sync/errgroup"
)

// warnNoEntity logs once for each chain name that has no entity.
func warnNoEntity(s *structure.Structure) {
	seen := make(map[string]bool)
	for _, m := range s.Models {
		if m == nil {
			continue
		}
		for _, c := range m.Chains {
			if c == nil || c.Entity != nil || seen[c.AuthID] {
				continue
			}
			seen[c.AuthID] = true
			slog.Warn("no entity for chain: entity_id will be 0, label_seq_id same as auth_seq_id",
				"chain", c.AuthID)
		}
	}
}

// groupAtomSites appends records for the atoms of g, then for its
// alt-loc siblings, in the same order as a depth first recursion.
// We use an explicit stack and remember what we have seen, so a
// broken structure with a loop in it cannot hang us.
func groupAtomSites(dst []AtomSite, g *structure.Group, model int, authID, labelID string) []AtomSite {
	addAtoms := func(g *structure.Group) {
		for _, a := range g.Atoms {
			if a == nil {
				continue
			}
			dst = append(dst, MapAtomToRecord(a, model, authID, labelID))
		}
	}
	if len(g.AltLocs) == 0 { // the usual case
		addAtoms(g)
		return dst
	}
	seen := make(map[*structure.Group]bool)
	stack := []*structure.Group{g}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == nil {
			continue
		}
		if seen[cur] {
			slog.Warn("alt-loc group reached twice, skipping", "chain", authID,
				"residue", cur.ResNum.SeqNum, "name", cur.PDBName)
			continue
		}
		seen[cur] = true
		addAtoms(cur)
		for i := len(cur.AltLocs) - 1; i >= 0; i-- { // reversed so the first is popped first
			stack = append(stack, cur.AltLocs[i])
		}
	}
	return dst
}

// chainAtomSites appends the records for one chain.
func chainAtomSites(dst []AtomSite, c *structure.Chain, model int) []AtomSite {
	for _, g := range c.Groups {
		if g == nil {
			continue
		}
		dst = groupAtomSites(dst, g, model, c.AuthID, c.LabelID)
	}
	return dst
}

// WalkStructureToRecords returns one record per atom. Models are
// numbered from 1 by position. Chains, residues and atoms come out in
// the order they are stored, alt-locs straight after the residue they
// belong to. This order is the row order of the loop.
func WalkStructureToRecords(s *structure.Structure) []AtomSite {
	warnNoEntity(s)
	ret := make([]AtomSite, 0, s.NAtom())
	for im, m := range s.Models {
		if m == nil { // still counts for the model number
			continue
		}
		for _, c := range m.Chains {
			if c != nil {
				ret = chainAtomSites(ret, c, im+1)
			}
		}
	}
	return ret
}

// WalkStructureConcurrent gives the same result as
// WalkStructureToRecords, but maps chains in parallel on up to workers
// goroutines. workers < 1 means no limit.
func WalkStructureConcurrent(ctx context.Context, s *structure.Structure, workers int) ([]AtomSite, error) {
	warnNoEntity(s)
	type job struct {
		c     *structure.Chain
		model int
	}
	var jobs []job
	for im, m := range s.Models {
		if m == nil {
			continue
		}
		for _, c := range m.Chains {
			if c != nil {
				jobs = append(jobs, job{c, im + 1})
			}
		}
	}
	parts := make([][]AtomSite, len(jobs)) // one slot per chain, so no locking
	eg, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		eg.SetLimit(workers)
	}
	for i, j := range jobs {
		i, j := i, j // per-iteration copies (go < 1.22 loop semantics)
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			parts[i] = chainAtomSites(make([]AtomSite, 0, j.c.NAtom()), j.c, j.model)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	ret := make([]AtomSite, 0, n)
	for _, p := range parts {
		ret = append(ret, p...)
	}
	return ret, nil
}
