package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil || g != f {
			t.Errorf("%s: got %v %v", f, g, err)
		}
	}
	if f, err := ParseFormat("j"); err != nil || !f.IsJSON() {
		t.Errorf("got %v %v", f, err)
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
