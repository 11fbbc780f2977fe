package mmcif

import (
	"context"
	"io"
	"strings"

	"github.com/andrew-torda/cifwrite/pkg/structure"
	"github.com/google/uuid"
)

const (
	TopHeader    = "data_" // starts a data block
	maxBlockCode = 32
)

// BlockHeader returns the data_ line for a block called code. A block
// code has at most 32 characters and no white space.
func BlockHeader(code string) (string, error) {
	switch {
	case code == "":
		return "", &BlockCodeError{Code: code, desc: "is empty"}
	case len(code) > maxBlockCode:
		return "", &BlockCodeError{Code: code, desc: "is longer than 32 characters"}
	case strings.ContainsAny(code, " \t\n\r\v\f"):
		return "", &BlockCodeError{Code: code, desc: "has white space"}
	}
	return TopHeader + code, nil
}

// DefaultBlockCode uses the structure's id code if it can. Otherwise
// it makes up a random one from a uuid, which without its dashes is
// exactly 32 characters.
func DefaultBlockCode(s *structure.Structure) string {
	if _, err := BlockHeader(s.IDCode); err == nil {
		return s.IDCode
	}
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Options for WriteStructure.
type Options struct {
	BlockCode string // DefaultBlockCode if empty
	Workers   int    // > 1 maps chains in parallel
}

// WriteStructure writes a data block holding the atom_site loop for
// every atom in s. Nothing is written if there is an error.
func WriteStructure(ctx context.Context, w io.Writer, s *structure.Structure, opts Options) error {
	code := opts.BlockCode
	if code == "" {
		code = DefaultBlockCode(s)
	}
	hdr, err := BlockHeader(code)
	if err != nil {
		return err
	}
	var sites []AtomSite
	if opts.Workers > 1 {
		if sites, err = WalkStructureConcurrent(ctx, s, opts.Workers); err != nil {
			return err
		}
	} else {
		sites = WalkStructureToRecords(s)
	}
	loop, err := SerializeLoop(AtomSiteSchema(), AtomSiteRecords(sites))
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, hdr+"\n"+LoopEnd+"\n"+loop)
	return err
}
