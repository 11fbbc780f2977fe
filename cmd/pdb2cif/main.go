// 14 Oct 2026
// Convert PDB format coordinates to an mmCIF atom_site loop.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/andrew-torda/cifwrite/pkg/common"
	"github.com/andrew-torda/cifwrite/pkg/config"
	"github.com/andrew-torda/cifwrite/pkg/logging"
	"github.com/andrew-torda/cifwrite/pkg/pdb2cif"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] [infile [outfile]]")
	long := `Given no arguments, read and write from stdin / stdout.
Given one argument, read from the given file name, but write to stdout.
Given two arguments, read from the first one, write to the second.`
	fmt.Fprintln(os.Stderr, long)
	flag.PrintDefaults()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitUsageError)
	}
	var flags pdb2cif.CmdFlag
	var infile, outfile, level string

	flag.StringVar(&flags.BlockCode, "b", "", "data block code, default from HEADER")
	flag.BoolVar(&flags.Centre, "c", false, "centre each model on the origin")
	flag.BoolVar(&flags.Entities, "e", false, "one entity per chain")
	flag.IntVar(&flags.Workers, "j", cfg.Workers, "goroutines for mapping chains")
	flag.StringVar(&level, "v", cfg.Logging.Level, "log level")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() > 2 {
		usage()
		os.Exit(common.ExitUsageError)
	}
	if flag.NArg() > 0 {
		infile = flag.Arg(0)
		if flag.NArg() > 1 {
			outfile = flag.Arg(1)
		}
	}
	logging.Setup(os.Stderr, level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = pdb2cif.Mymain(ctx, &flags, infile, outfile)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
