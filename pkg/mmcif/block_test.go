package mmcif_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/andrew-torda/cifwrite/pkg/mmcif"
	"github.com/andrew-torda/cifwrite/pkg/structure"
)

func TestBlockHeader(t *testing.T) {
	if h, err := BlockHeader("1ABC"); err != nil || h != "data_1ABC" {
		t.Error("got", h, err)
	}
	for _, bad := range []string{"", "a b", strings.Repeat("x", 33)} {
		_, err := BlockHeader(bad)
		var bce *BlockCodeError
		if !errors.As(err, &bce) {
			t.Errorf("code %q: expected BlockCodeError, got %v", bad, err)
		}
	}
}

func TestDefaultBlockCode(t *testing.T) {
	s := &structure.Structure{IDCode: "101D"}
	if c := DefaultBlockCode(s); c != "101D" {
		t.Error("expected id code, got", c)
	}
	s.IDCode = ""
	c1, c2 := DefaultBlockCode(s), DefaultBlockCode(s)
	if len(c1) != 32 || strings.Contains(c1, "-") {
		t.Error("made up code should be 32 chars without dashes, got", c1)
	}
	if c1 == c2 {
		t.Error("made up codes should differ")
	}
}

func TestWriteStructure(t *testing.T) {
	c, _ := glu24()
	s := &structure.Structure{IDCode: "TEST", Models: []*structure.Model{{Chains: []*structure.Chain{c}}}}
	var buf bytes.Buffer
	if err := WriteStructure(context.Background(), &buf, s, Options{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "data_TEST" || lines[1] != "#" || lines[2] != "loop_" {
		t.Error("wrong start", lines[:3])
	}
	if lines[3] != "_atom_site.group_PDB" || lines[22] != "_atom_site.pdbx_PDB_model_num" {
		t.Error("wrong header", lines[3], lines[22])
	}
	want := []string{
		"ATOM 7 C CD  . GLU A 0 24 ? -10.109 15.374 38.853 1.00 50.05 24 GLU A CD  1 ",
		"ATOM 8 O OE1 . GLU A 0 24 ? -9.659  14.764 37.849 1.00 49.80 24 GLU A OE1 1 ",
		"#",
		"",
	}
	for i, w := range want {
		if got := lines[23+i]; got != w {
			t.Errorf("line %d\ngot  %q\nwant %q", 23+i, got, w)
		}
	}

	var par bytes.Buffer
	if err := WriteStructure(context.Background(), &par, s, Options{Workers: 4}); err != nil {
		t.Fatal(err)
	}
	if par.String() != buf.String() {
		t.Error("parallel output differs")
	}
}

func TestWriteStructureErrors(t *testing.T) {
	var buf bytes.Buffer
	s := &structure.Structure{IDCode: "EMPTY"}
	if err := WriteStructure(context.Background(), &buf, s, Options{}); !errors.Is(err, ErrEmptyInput) {
		t.Error("expected ErrEmptyInput, got", err)
	}
	c, _ := glu24()
	s.Models = []*structure.Model{{Chains: []*structure.Chain{c}}}
	if err := WriteStructure(context.Background(), &buf, s, Options{BlockCode: "has space"}); err == nil {
		t.Error("bad block code accepted")
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written, got", buf.String())
	}
}
