package token

import "strings"

const (
	Open  = "{"
	Close = "}"
)

// Count returns the number of block open and close tokens on line.
func Count(line string) (opens, closes int) {
	return strings.Count(line, Open), strings.Count(line, Close)
}

// Balance returns the index of the line which closes the block opened on
// lines[start].
//
// Tokens, not lines, are counted, so a line such as `DATASPACE SIMPLE { ( 2 ) }`
// opens and closes within itself.  A header whose own tokens already balance
// is a single line block and Balance returns start.  The block ends where
// the close count equals the open count; a block which closes more than it
// opens never balances.  The scan never passes the end of lines; running
// out of lines is an *ErrImbalancedBlock.
func Balance(lines []string, start int) (int, error) {
	if start < 0 || start >= len(lines) {
		return -1, &ErrImbalancedBlock{Start: NewPos(lines, start)}
	}
	opens, closed := Count(lines[start])
	if opens == 0 {
		return -1, NoOpenErr(NewPos(lines, start))
	}
	if closed == opens {
		return start, nil
	}
	for i := start + 1; i < len(lines); i++ {
		o, c := Count(lines[i])
		opens += o
		closed += c
		if closed == opens {
			return i, nil
		}
	}
	return -1, &ErrImbalancedBlock{
		Start:  NewPos(lines, start),
		Opens:  opens,
		Closed: closed,
	}
}
