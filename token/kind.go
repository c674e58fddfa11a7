package token

import (
	"errors"
	"fmt"
)

// Kind is the kind of entity a header line opens.
type Kind int

const (
	Container Kind = iota
	Group
	Dataset
)

var ErrBadKind = errors.New("bad kind")

func Kinds() []Kind {
	return []Kind{Container, Group, Dataset}
}

// Keyword returns the word h5dump writes at the start of a header of kind k.
func (k Kind) Keyword() string {
	switch k {
	case Container:
		return "HDF5"
	case Group:
		return "GROUP"
	case Dataset:
		return "DATASET"
	default:
		return ""
	}
}

func (k Kind) String() string {
	d, err := k.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Container:
		return []byte("CONTAINER"), nil
	case Group:
		return []byte("GROUP"), nil
	case Dataset:
		return []byte("DATASET"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a kind>", k)
	}
}

func (k *Kind) UnmarshalText(d []byte) error {
	pk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = pk
	return nil
}

// ParseKind accepts both enum names and dump keywords, so "HDF5" and
// "CONTAINER" both give Container.
func ParseKind(v string) (Kind, error) {
	k, ok := map[string]Kind{
		"CONTAINER": Container,
		"HDF5":      Container,
		"GROUP":     Group,
		"DATASET":   Dataset,
	}[v]
	if ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadKind, v)
}
