package libdiff

import (
	"bufio"
	"fmt"
	"io"
)

// Write writes r one path per line, marked as removed, added, moved or
// changed.  With lines set, the line diff of each changed block follows
// its path.
func Write(w io.Writer, r *Result, lines, colored bool) error {
	if r == nil {
		return nil
	}
	bw := bufio.NewWriter(w)
	for _, p := range r.Removed {
		fmt.Fprintf(bw, "%s %s\n", DeleteMark, p)
	}
	for _, p := range r.Added {
		fmt.Fprintf(bw, "%s %s\n", InsertMark, p)
	}
	for _, p := range r.Moved {
		fmt.Fprintf(bw, "%s %s\n", MoveMark, p)
	}
	for _, c := range r.Changed {
		fmt.Fprintf(bw, "%s %s %s -> %s\n", ChangeMark, c.Path, c.From, c.To)
		if !lines {
			continue
		}
		if err := WriteLines(bw, c.Lines, colored); err != nil {
			return err
		}
	}
	return bw.Flush()
}
