package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffLines computes a line oriented diff of from and to.  It returns nil
// when they are equal.
func DiffLines(from, to []string) []diffpatch.Diff {
	diffCfg := diffpatch.New()
	a := strings.Join(from, "\n") + "\n"
	b := strings.Join(to, "\n") + "\n"
	ca, cb, lines := diffCfg.DiffLinesToChars(a, b)
	diffs := diffCfg.DiffMain(ca, cb, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	for i := range diffs {
		if diffs[i].Type != diffpatch.DiffEqual {
			return diffs
		}
	}
	return nil
}

// WriteLines writes diffs one marked line at a time.  With colored set,
// inserted and deleted lines are coloured.
func WriteLines(w io.Writer, diffs []diffpatch.Diff, colored bool) error {
	ins, del := colorDefault, colorDefault
	if colored {
		ins, del = color.GreenString, color.RedString
	}
	for i := range diffs {
		diff := &diffs[i]
		mark, paint := EqualMark, colorDefault
		switch diff.Type {
		case diffpatch.DiffInsert:
			mark, paint = InsertMark, ins
		case diffpatch.DiffDelete:
			mark, paint = DeleteMark, del
		}
		for _, ln := range strings.Split(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			if _, err := fmt.Fprintln(w, paint("%s", mark+" "+ln)); err != nil {
				return err
			}
		}
	}
	return nil
}

func colorDefault(f string, args ...any) string { return fmt.Sprintf(f, args...) }
