package encode

import (
	"strings"

	"github.com/h5dump-format/h5dump/token"

	"github.com/fatih/color"
)

type Colorable struct {
	Kind token.Kind
	Attr ColorAttr
}

type ColorAttr int

const (
	PathColor ColorAttr = iota
	KindColor
	RangeColor
	HeaderColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range token.Kinds() {
		able := Colorable{Kind: k, Attr: RangeColor}
		colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	}
	able := Colorable{Kind: token.Container}
	able.Attr = PathColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = KindColor
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()
	able.Attr = HeaderColor
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = token.Group
	able.Attr = PathColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()
	able.Attr = KindColor
	colors.Map[able] = color.RGB(74, 92, 138).SprintfFunc()
	able.Attr = HeaderColor
	colors.Map[able] = color.RGB(196, 128, 128).SprintfFunc()

	able.Kind = token.Dataset
	able.Attr = PathColor
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()
	able.Attr = KindColor
	colors.Map[able] = color.CyanString
	able.Attr = HeaderColor
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(k token.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

func (c *Colors) Get(k token.Kind, a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
