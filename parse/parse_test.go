package parse

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/h5dump-format/h5dump/token"
)

func lines(s string) []string {
	res := strings.Split(s, "\n")
	for i := range res {
		res[i] = strings.TrimSpace(res[i])
	}
	return res
}

func sample(t *testing.T) []string {
	t.Helper()
	d, err := os.ReadFile("testdata/sample.dump")
	if err != nil {
		t.Fatal(err)
	}
	return lines(strings.TrimRight(string(d), "\n"))
}

func TestParseMinimal(t *testing.T) {
	d, err := Parse(lines("HDF5 \"f.h5\" {\nGROUP \"/\" {\n}\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Container != "f.h5" {
		t.Errorf("container %q", d.Container)
	}
	if diff := cmp.Diff([]string{"/"}, d.Groups); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}
	want := map[string]Boundary{"/": {Kind: token.Group, Start: 1, End: 2}}
	if diff := cmp.Diff(want, d.Index); diff != "" {
		t.Errorf("index (-want +got):\n%s", diff)
	}
}

func TestParseNested(t *testing.T) {
	in := lines(`HDF5 "f.h5" {
GROUP "/" {
GROUP "/sub" {
DATASET "ds1" {
DATATYPE H5T_STD_I32LE
DATASPACE SIMPLE { ( 1 ) / ( 1 ) }
}
}
}
}`)
	d, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Boundary{
		"/":        {Kind: token.Group, Start: 1, End: 8},
		"/sub":     {Kind: token.Group, Start: 2, End: 7},
		"/sub/ds1": {Kind: token.Dataset, Start: 3, End: 6},
	}
	if diff := cmp.Diff(want, d.Index); diff != "" {
		t.Errorf("index (-want +got):\n%s", diff)
	}
	root := d.Index["/"]
	sub := d.Index["/sub"]
	ds := d.Index["/sub/ds1"]
	if !root.Contains(sub) || !sub.Contains(ds) || ds.Contains(sub) {
		t.Errorf("bad nesting %s %s %s", root, sub, ds)
	}
	if _, ok := d.Get("/ds1"); ok {
		t.Error("dataset attributed to enclosing group")
	}
	if g, _ := d.Owner("/sub/ds1"); g != "/sub" {
		t.Errorf("owner %q", g)
	}
}

func TestParseSample(t *testing.T) {
	d, err := Parse(sample(t))
	if err != nil {
		t.Fatal(err)
	}
	if d.Container != "rbspa_hope_eff_2018.h5" {
		t.Errorf("container %q", d.Container)
	}
	want := []Entry{
		{Path: "/", Boundary: Boundary{Kind: token.Group, Start: 1, End: 45}},
		{Path: "/Epoch", Boundary: Boundary{Kind: token.Dataset, Start: 14, End: 20}},
		{Path: "/Eff", Boundary: Boundary{Kind: token.Group, Start: 21, End: 37}},
		{Path: "/Eff/FPDU", Boundary: Boundary{Kind: token.Dataset, Start: 22, End: 29}},
		{Path: "/Eff/FEDU", Boundary: Boundary{Kind: token.Dataset, Start: 30, End: 36}},
		{Path: "/Quality", Boundary: Boundary{Kind: token.Dataset, Start: 38, End: 44}},
	}
	if diff := cmp.Diff(want, d.Entries()); diff != "" {
		t.Errorf("entries (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/Epoch", "/Quality", "/Eff/FPDU", "/Eff/FEDU"}, d.Datasets); diff != "" {
		t.Errorf("datasets (-want +got):\n%s", diff)
	}
	if d.String() != "<H5dump: rbspa_hope_eff_2018.h5>" {
		t.Errorf("string %q", d.String())
	}
}

func TestParseProperties(t *testing.T) {
	ls := sample(t)
	d, err := Parse(ls)
	if err != nil {
		t.Fatal(err)
	}
	for _, g := range d.Groups {
		b, ok := d.Index[g]
		if !ok {
			t.Errorf("group %q missing", g)
			continue
		}
		if b.Start >= b.End || b.End >= len(ls) {
			t.Errorf("group %q bad range %s", g, b)
		}
	}
	for _, p := range d.Datasets {
		b := d.Index[p]
		g, ok := d.Owner(p)
		if !ok {
			t.Errorf("dataset %q has no owner", p)
			continue
		}
		if !strings.HasPrefix(p, Join(g, "")) {
			t.Errorf("dataset %q not prefixed by %q", p, g)
		}
		gb := d.Index[g]
		if b.Start <= gb.Start || b.End >= gb.End {
			t.Errorf("dataset %q %s not strictly inside %q %s", p, b, g, gb)
		}
	}
	again, err := Parse(ls)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(d.Index, again.Index); diff != "" {
		t.Errorf("second parse differs:\n%s", diff)
	}
	if diff := cmp.Diff(d.Entries(), again.Entries()); diff != "" {
		t.Errorf("second parse entries differ:\n%s", diff)
	}
}

func TestParseUnbalanced(t *testing.T) {
	in := lines(`HDF5 "f.h5" {
GROUP "/" {
DATASET "d" {
}`)
	_, err := Parse(in)
	if !errors.Is(err, token.ErrDocBalance) {
		t.Fatalf("got %v", err)
	}
	var ib *token.ErrImbalancedBlock
	if !errors.As(err, &ib) {
		t.Fatalf("got %T", err)
	}
	if ib.Start.Line != 1 {
		t.Errorf("start line %d", ib.Start.Line)
	}
}

func TestParseOrphanDataset(t *testing.T) {
	in := lines(`HDF5 "f.h5" {
DATASET "early" {
DATASPACE SCALAR
}
GROUP "/" {
DATASET "d" {
}
}
}`)
	d, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := d.Get("early"); ok {
		t.Error("orphan dataset indexed")
	}
	if _, ok := d.Get("/early"); ok {
		t.Error("orphan dataset indexed under /")
	}
	if diff := cmp.Diff([]Orphan{{Name: "early", Line: 1}}, d.Orphans); diff != "" {
		t.Errorf("orphans (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/d"}, d.Datasets); diff != "" {
		t.Errorf("datasets (-want +got):\n%s", diff)
	}
}

func TestParseSingleLineBlock(t *testing.T) {
	in := lines(`HDF5 "f.h5" {
GROUP "/" {
DATASET "e" { }
GROUP "/g" {}
}
}`)
	d, err := Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Boundary{
		"/":  {Kind: token.Group, Start: 1, End: 4},
		"/e": {Kind: token.Dataset, Start: 2, End: 2},
		"/g": {Kind: token.Group, Start: 3, End: 3},
	}
	if diff := cmp.Diff(want, d.Index); diff != "" {
		t.Errorf("index (-want +got):\n%s", diff)
	}
	if n := d.Index["/e"].Len(); n != 1 {
		t.Errorf("len %d", n)
	}
}

const dupGroups = `HDF5 "f.h5" {
GROUP "/" {
GROUP "a" {
DATASET "x" {
}
}
GROUP "a" {
DATASET "x" {
}
DATASET "y" {
}
}
}
}`

func TestParseDuplicates(t *testing.T) {
	in := lines(dupGroups)
	_, err := Parse(in)
	var de *DuplicateError
	if !errors.As(err, &de) {
		t.Fatalf("got %v", err)
	}
	if de.Path != "a" || de.First != 2 || de.Second != 6 {
		t.Errorf("got %+v", de)
	}
	if !errors.Is(err, ErrDuplicate) || !errors.Is(err, ErrParse) {
		t.Errorf("%v does not wrap ErrDuplicate", err)
	}

	d, err := Parse(in, ParseDuplicates(FirstWins))
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]Boundary{
		"/":   {Kind: token.Group, Start: 1, End: 12},
		"a":   {Kind: token.Group, Start: 2, End: 5},
		"a/x": {Kind: token.Dataset, Start: 3, End: 4},
	}
	if diff := cmp.Diff(want, d.Index); diff != "" {
		t.Errorf("first wins (-want +got):\n%s", diff)
	}
	wantOrphans := []Orphan{{Name: "x", Line: 7}, {Name: "y", Line: 9}}
	if diff := cmp.Diff(wantOrphans, d.Orphans); diff != "" {
		t.Errorf("first wins orphans (-want +got):\n%s", diff)
	}
	checkOwners(t, d)

	d, err = Parse(in, ParseDuplicates(LastWins))
	if err != nil {
		t.Fatal(err)
	}
	want["a"] = Boundary{Kind: token.Group, Start: 6, End: 11}
	want["a/x"] = Boundary{Kind: token.Dataset, Start: 7, End: 8}
	want["a/y"] = Boundary{Kind: token.Dataset, Start: 9, End: 10}
	if diff := cmp.Diff(want, d.Index); diff != "" {
		t.Errorf("last wins (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"/", "a", "a"}, d.Groups); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}
	wantOrphans = []Orphan{{Name: "x", Line: 3}}
	if diff := cmp.Diff(wantOrphans, d.Orphans); diff != "" {
		t.Errorf("last wins orphans (-want +got):\n%s", diff)
	}
	checkOwners(t, d)
}

// checkOwners checks that every dataset lies inside its owning group.
func checkOwners(t *testing.T, d *Dump) {
	t.Helper()
	for _, p := range d.Datasets {
		g, ok := d.Owner(p)
		if !ok {
			t.Errorf("dataset %q has no owner", p)
			continue
		}
		if gb, b := d.Index[g], d.Index[p]; !gb.Contains(b) {
			t.Errorf("dataset %q %s outside owner %q %s", p, b, g, gb)
		}
	}
}

func TestParsePatternMismatch(t *testing.T) {
	in := lines(`HDF5 "f.h5" {
GROUP "/" {
GROUP "g" { # comment
}
}
}`)
	_, err := Parse(in)
	var pm *PatternMismatchError
	if !errors.As(err, &pm) {
		t.Fatalf("got %v", err)
	}
	if pm.Kind != token.Group || pm.Name != "g" {
		t.Errorf("got %+v", pm)
	}

	in = lines(`HDF5 "f.h5" {
GROUP "/" {
DATASET "d" { DATASPACE SCALAR
}
}
}`)
	_, err = Parse(in)
	if !errors.As(err, &pm) {
		t.Fatalf("got %v", err)
	}
	if pm.Kind != token.Dataset || pm.Line != 2 {
		t.Errorf("got %+v", pm)
	}
}

func TestParseContainers(t *testing.T) {
	d, err := Parse(lines("GROUP \"/\" {\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Container != "" || len(d.Containers) != 0 {
		t.Errorf("got %q %v", d.Container, d.Containers)
	}
	d, err = Parse(lines("HDF5 \"a.h5\" {\n}\nHDF5 \"b.h5\" {\n}"))
	if err != nil {
		t.Fatal(err)
	}
	if d.Container != "" {
		t.Errorf("got %q", d.Container)
	}
	if diff := cmp.Diff([]string{"a.h5", "b.h5"}, d.Containers); diff != "" {
		t.Errorf("containers (-want +got):\n%s", diff)
	}
	if len(d.Index) != 0 {
		t.Errorf("index %v", d.Index)
	}
}

func TestParseEmpty(t *testing.T) {
	d, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Groups) != 0 || len(d.Index) != 0 || len(d.Entries()) != 0 {
		t.Errorf("got %+v", d)
	}
}

func TestParseCustomPattern(t *testing.T) {
	p, err := token.NewPattern(token.Group, `^GROUP "([A-Za-z/]*)" \{$`)
	if err != nil {
		t.Fatal(err)
	}
	d, err := Parse(lines("HDF5 \"f.h5\" {\nGROUP \"/\" {\nGROUP \"x1\" {\n}\n}\n}"), ParsePattern(p))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"/"}, d.Groups); diff != "" {
		t.Errorf("groups (-want +got):\n%s", diff)
	}
}
