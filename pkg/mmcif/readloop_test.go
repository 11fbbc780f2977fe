package mmcif_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/cifwrite/pkg/mmcif"
	"github.com/andrew-torda/cifwrite/pkg/structure"
)

func TestSplitRow(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"a b  c", []string{"a", "b", "c"}},
		{"'CA ' x", []string{"CA ", "x"}},
		{`"O5'" 'a b'`, []string{"O5'", "a b"}},
		{`"it's here"`, []string{"it's here"}},
		{"'it's' y", []string{"it's", "y"}},
		{"? . ", []string{"?", "."}},
	} {
		got, err := SplitRow(tc.in)
		if err != nil {
			t.Errorf("%q: %v", tc.in, err)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%q (-want +got):\n%s", tc.in, diff)
		}
	}
	if _, err := SplitRow("a 'b c"); err == nil {
		t.Error("unterminated quote not noticed")
	}
}

// Everything Quote can protect must come back unchanged.
func TestRoundTrip(t *testing.T) {
	recs := []Record{
		Row{"x", "hello world", nil},
		Row{"it's", "CA ", "zz"},
		Row{"it's here", "y", "."},
	}
	txt, err := SerializeLoop(testSchema, recs)
	if err != nil {
		t.Fatal(err)
	}
	schema, rows, err := ReadLoop(strings.NewReader("data_x\n#\n" + txt))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(testSchema, schema); diff != "" {
		t.Error("schema (-want +got):\n", diff)
	}
	want := [][]string{
		{"x", "hello world", "?"},
		{"it's", "CA ", "zz"},
		{"it's here", "y", "."},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Error("rows (-want +got):\n", diff)
	}
}

func TestRoundTripStructure(t *testing.T) {
	c, _ := glu24()
	s := &structure.Structure{IDCode: "1XYZ", Models: []*structure.Model{{Chains: []*structure.Chain{c}}}}
	var buf bytes.Buffer
	if err := WriteStructure(context.Background(), &buf, s, Options{}); err != nil {
		t.Fatal(err)
	}
	schema, rows, err := ReadLoop(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(AtomSiteSchema(), schema); diff != "" {
		t.Error("schema (-want +got):\n", diff)
	}
	sites := WalkStructureToRecords(s)
	for i := range sites {
		if diff := cmp.Diff(sites[i][:], rows[i]); diff != "" {
			t.Errorf("row %d (-want +got):\n%s", i, diff)
		}
	}
}

// A row may carry on over more than one line.
func TestReadLoopWrapped(t *testing.T) {
	txt := "loop_\n_t.a\n_t.b\n1\n2 3\n4\n#\n_other.x y\n"
	_, rows, err := ReadLoop(strings.NewReader(txt))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]string{{"1", "2"}, {"3", "4"}}, rows); diff != "" {
		t.Error("(-want +got):\n", diff)
	}
}

func TestReadLoopErrors(t *testing.T) {
	var se *SyntaxError
	var sme *ShapeMismatchError
	for _, tc := range []struct {
		name string
		txt  string
		ok   func(error) bool
	}{
		{"no loop", "data_x\n_t.a 1\n", func(e error) bool { return errors.As(e, &se) }},
		{"no fields", "loop_\n1 2\n", func(e error) bool { return errors.As(e, &se) }},
		{"mixed", "loop_\n_t.a\n_u.b\n1 2\n", func(e error) bool { return errors.As(e, &se) && se.Line == 3 }},
		{"quote", "loop_\n_t.a\n'x\n", func(e error) bool { return errors.As(e, &se) && se.Line == 3 }},
		{"short", "loop_\n_t.a\n_t.b\n1 2\n3\n#\n", func(e error) bool { return errors.As(e, &sme) && sme.Got == 1 }},
		{"empty", "loop_\n_t.a\n#\n", func(e error) bool { return errors.Is(e, ErrEmptyInput) }},
	} {
		if _, _, err := ReadLoop(strings.NewReader(tc.txt)); !tc.ok(err) {
			t.Errorf("%s: wrong error %v", tc.name, err)
		}
	}
}
