package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/h5dump-format/h5dump/encode"
	"github.com/h5dump-format/h5dump/parse"

	"github.com/scott-cotton/cli"
)

const relDump = `HDF5 "f.h5" {
GROUP "/" {
   GROUP "sub" {
      DATASET "ds1" {
         DATA { 1 }
      }
   }
}
}
`

func TestBlockRelativePath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rel.dump")
	if err := os.WriteFile(p, []byte(relDump), 0644); err != nil {
		t.Fatal(err)
	}
	path, files, err := blockArgs([]string{"sub/ds1", p})
	if err != nil {
		t.Fatal(err)
	}
	cfg := &BlockConfig{MainConfig: &MainConfig{}}
	d, err := loadArg(cfg.MainConfig, nil, files[0])
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeBlock(d, path, buf, cfg.encOpts(buf)...); err != nil {
		t.Fatal(err)
	}
	want := "DATASET \"ds1\" {\nDATA { 1 }\n}\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("block (-want +got):\n%s", diff)
	}
	if err := encode.EncodeBlock(d, "ds1", buf); !errors.Is(err, parse.ErrNotFound) {
		t.Errorf("got %v", err)
	}
}

func TestBlockArgs(t *testing.T) {
	for _, args := range [][]string{nil, {""}} {
		if _, _, err := blockArgs(args); !errors.Is(err, cli.ErrUsage) {
			t.Errorf("%q: got %v", args, err)
		}
	}
	path, files, err := blockArgs([]string{"/"})
	if err != nil || path != "/" || len(files) != 0 {
		t.Errorf("got %q %v %v", path, files, err)
	}
}

func mustParse(t *testing.T, in ...string) *parse.Dump {
	t.Helper()
	d, err := parse.Parse(in)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestDiffInputs(t *testing.T) {
	a := mustParse(t, `HDF5 "f" {`, `GROUP "/" {`, `DATASET "a" {`, `}`, `}`, `}`)
	b := mustParse(t, `HDF5 "f" {`, `GROUP "/" {`, `DATASET "a" {`, `}`, `DATASET "c" {`, `}`, `}`, `}`)
	for _, tc := range []struct {
		reverse bool
		want    string
	}{
		{false, "+ /c\n! / GROUP[1,4] -> GROUP[1,6]\n"},
		{true, "- /c\n! / GROUP[1,6] -> GROUP[1,4]\n"},
	} {
		cfg := &DiffConfig{MainConfig: &MainConfig{}, Reverse: tc.reverse}
		buf := bytes.NewBuffer(nil)
		differs, err := diffInputs(cfg, buf, a, b)
		if err != nil {
			t.Fatal(err)
		}
		if !differs {
			t.Errorf("reverse=%t: no difference", tc.reverse)
		}
		if diff := cmp.Diff(tc.want, buf.String()); diff != "" {
			t.Errorf("reverse=%t (-want +got):\n%s", tc.reverse, diff)
		}
	}

	cfg := &DiffConfig{MainConfig: &MainConfig{}, Patch: true, Reverse: true}
	buf := bytes.NewBuffer(nil)
	if _, err := diffInputs(cfg, buf, a, b); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"/c":null`) {
		t.Errorf("reversed patch does not delete /c: %s", buf)
	}

	buf.Reset()
	differs, err := diffInputs(&DiffConfig{MainConfig: &MainConfig{}}, buf, a, a)
	if err != nil || differs || buf.Len() != 0 {
		t.Errorf("same dumps: %t %v %q", differs, err, buf)
	}
}

func TestFormatNames(t *testing.T) {
	if got := formatNames(); got != "text/t, yaml/y, json/j" {
		t.Errorf("got %q", got)
	}
}
