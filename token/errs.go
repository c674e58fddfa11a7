package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8    = errors.New("bad utf8")
	ErrDocBalance = errors.New("imbalanced document")
	ErrNoOpen     = errors.New("header does not open a block")
)

func NoOpenErr(pos *Pos) error {
	return fmt.Errorf("%w: %s", ErrNoOpen, pos)
}

// ErrImbalancedBlock is returned when the block opened at Start is still
// open at the end of the dump.
type ErrImbalancedBlock struct {
	Start         *Pos
	Opens, Closed int
}

func (i *ErrImbalancedBlock) Unwrap() error {
	return ErrDocBalance
}

func (i *ErrImbalancedBlock) Error() string {
	if i.Start.Text == "" && i.Opens == 0 {
		return fmt.Sprintf("%s: no block at line %d", ErrDocBalance.Error(), i.Start.Line)
	}
	return fmt.Sprintf("%s: unmatched %s at %s (%d opened, %d closed)",
		ErrDocBalance.Error(), Open, i.Start.String(), i.Opens, i.Closed)
}
