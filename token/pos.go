package token

import (
	"fmt"
	"strconv"
)

// Pos is a line position in a dump.
type Pos struct {
	Line int
	Text string
}

// NewPos returns the position of line i in lines.  i may be out of range,
// in which case Text is empty.
func NewPos(lines []string, i int) *Pos {
	p := &Pos{Line: i}
	if i >= 0 && i < len(lines) {
		p.Text = lines[i]
	}
	return p
}

func (p Pos) String() string {
	sample := p.Text
	if len(sample) > 40 {
		sample = sample[:37] + "..."
	}
	sample = strconv.Quote(sample)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("`%s` at line %d", sample, p.Line)
}
