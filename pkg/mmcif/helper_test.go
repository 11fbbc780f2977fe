package mmcif_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/andrew-torda/cifwrite/pkg/structure"
)

// captureLog sends the default logger to a buffer for the rest of the
// test.
func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(old) })
	return &buf
}

// glu24 is residue 24 of chain A, taken from the top of a real entry.
func glu24() (*structure.Chain, *structure.Group) {
	c := structure.NewChain("A", "A")
	g := structure.NewGroup(structure.GroupATOM, "GLU", structure.ResidueNumber{SeqNum: 24})
	g.AddAtom(&structure.Atom{Name: "CD", Element: "C", Xyz: structure.Xyz{X: -10.109, Y: 15.374, Z: 38.853},
		Occupancy: 1, TempFactor: 50.05, Serial: 7})
	g.AddAtom(&structure.Atom{Name: "OE1", Element: "O", Xyz: structure.Xyz{X: -9.659, Y: 14.764, Z: 37.849},
		Occupancy: 1, TempFactor: 49.80, Serial: 8})
	c.AddGroup(g)
	return c, g
}
