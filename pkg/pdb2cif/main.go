// 14 Oct 2026
// Read a PDB file and write its coordinates as an mmCIF atom_site loop.

package pdb2cif

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/andrew-torda/cifwrite/pkg/mmcif"
	"github.com/andrew-torda/cifwrite/pkg/pdbread"
	"github.com/andrew-torda/cifwrite/pkg/structure"
)

// CmdFlag holds the command line flags.
type CmdFlag struct {
	BlockCode string // name of data block, made up if empty
	Entities  bool   // one entity per chain, label_seq_id counted from 1
	Centre    bool   // move each model to the origin before writing
	Workers   int    // goroutines for mapping chains
}

func read(infile string, opts pdbread.Options) (*structure.Structure, error) {
	if infile == "" {
		return pdbread.Read(bufio.NewReader(os.Stdin), opts)
	}
	return pdbread.ReadFile(infile, opts)
}

// Mymain reads infile (stdin if empty) and writes to outfile (stdout
// if empty). The output file is only created once the whole block
// has been made, so a failure leaves nothing behind.
func Mymain(ctx context.Context, flags *CmdFlag, infile, outfile string) error {
	startTime := time.Now()
	s, err := read(infile, pdbread.Options{Entities: flags.Entities})
	if err != nil {
		return fmt.Errorf("Fail reading structure: %w", err)
	}
	slog.Debug("read structure", "file", infile, "models", len(s.Models), "atoms", s.NAtom(),
		"ms", time.Since(startTime).Milliseconds())
	if flags.Centre {
		s.Centre()
	}

	var buf bytes.Buffer
	opts := mmcif.Options{BlockCode: flags.BlockCode, Workers: flags.Workers}
	if err := mmcif.WriteStructure(ctx, &buf, s, opts); err != nil {
		return err
	}
	if outfile == "" {
		_, err = buf.WriteTo(os.Stdout)
	} else {
		err = os.WriteFile(outfile, buf.Bytes(), 0o644)
	}
	if err != nil {
		return fmt.Errorf("writing %v: %w", outfile, err)
	}
	slog.Debug("finished", "ms", time.Since(startTime).Milliseconds())
	return nil
}
