// 14 Oct 2026

/*
Pdb2cif reads coordinates in the old PDB format and writes them as an
mmCIF data block with a single atom_site loop.

Given no explicit input path, it reads from standard input.
Given no output filename, it writes to standard output.
Gzipped input is recognised from the contents, not the file name.

Without -e, every atom gets entity 0 and label_seq_id is the author's
residue number. With -e, each chain is its own entity and residues are
numbered from 1 in the order they appear. Waters and ligands are given
"?" since they are not part of the chain's sequence.

Usage:

	pdb2cif [flags] [infile [outfile]]

The flags are:

	-b blockcode
		Name of the data block. Default is the id code from the HEADER
		record, or a random string if there is none.
	-c
		Move each model so its centroid is at the origin.
	-e
		Give each chain an entity.
	-j workers
		Number of goroutines for mapping chains. Default from
		CIF_WORKERS, otherwise 1.
	-v level
		Log level, one of debug, info, warn, error.
*/
package main
