package parse

import (
	"github.com/h5dump-format/h5dump/debug"
	"github.com/h5dump-format/h5dump/token"
)

// Names returns the name of every line matching pat, in document order.
// Repeated names are kept.
func Names(lines []string, pat *token.Pattern) []string {
	var res []string
	for i, ln := range lines {
		name, ok := pat.Match(ln)
		if !ok {
			continue
		}
		if debug.Scan() {
			debug.Logf("scan: %s %q at line %d\n", pat.Kind, name, i)
		}
		res = append(res, name)
	}
	return res
}

// ScalarName is Names for kinds expected exactly once.  When there is a
// single match it is returned with ok set.  Otherwise name is empty and
// all holds every match, so both absence and repetition are visible to the
// caller.
func ScalarName(lines []string, pat *token.Pattern) (name string, all []string, ok bool) {
	all = Names(lines, pat)
	if len(all) == 1 {
		return all[0], all, true
	}
	return "", all, false
}
