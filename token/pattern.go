package token

import (
	"fmt"
	"regexp"
)

// NameChars is the character class allowed inside a quoted header name.
const NameChars = `A-Za-z0-9_./\\-`

// Pattern matches header lines of one kind and extracts the quoted name.
type Pattern struct {
	Kind Kind
	re   *regexp.Regexp
}

// NewPattern compiles expr for kind k.  expr must have exactly one
// capturing group, which yields the name.
func NewPattern(k Kind, expr string) (*Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("pattern for %s: %w", k, err)
	}
	if re.NumSubexp() != 1 {
		return nil, fmt.Errorf("pattern for %s: want 1 capture group, got %d", k, re.NumSubexp())
	}
	return &Pattern{Kind: k, re: re}, nil
}

// KeywordPattern gives the default pattern for k: any leading text, the
// keyword, then a double quoted name.
func KeywordPattern(k Kind) *Pattern {
	expr := `^.*\b` + regexp.QuoteMeta(k.Keyword()) + `\b[^"]*"([` + NameChars + `]*)"`
	return &Pattern{Kind: k, re: regexp.MustCompile(expr)}
}

// DefaultPatterns returns a fresh set of keyword patterns, one per kind.
func DefaultPatterns() map[Kind]*Pattern {
	res := make(map[Kind]*Pattern, 3)
	for _, k := range Kinds() {
		res[k] = KeywordPattern(k)
	}
	return res
}

// Match reports the name on line, if line is a header for p.Kind.
func (p *Pattern) Match(line string) (string, bool) {
	m := p.re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

func (p *Pattern) String() string {
	return p.Kind.String() + ":" + p.re.String()
}

// Header renders the canonical (trimmed) header line h5dump writes for an
// entity of kind k named name.
func Header(k Kind, name string) string {
	return k.Keyword() + ` "` + name + `" {`
}

// HeaderForms lists the trimmed lines accepted as the header of an entity:
// the opening form returned by Header and the forms of an empty block
// closed on the same line.
func HeaderForms(k Kind, name string) []string {
	h := Header(k, name)
	return []string{h, h + Close, h + " " + Close}
}

// IsHeader reports whether line is one of HeaderForms(k, name).
func IsHeader(k Kind, name, line string) bool {
	for _, h := range HeaderForms(k, name) {
		if line == h {
			return true
		}
	}
	return false
}
