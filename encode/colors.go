package encode

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dual/daplug-base/ir"
)

type Colorable struct {
	Type ir.Type
	Attr ColorAttr
}

type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default terminal color table.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, t := range ir.Types() {
		able := Colorable{Type: t, Attr: SepColor}
		colors.Map[able] = color.RGB(255, 0, 196).SprintfFunc()
		able.Attr = FieldColor
		colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Type = ir.NumberType
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()

	able.Type = ir.NullType
	colors.Map[able] = color.HiBlackString

	able.Type = ir.BoolType
	colors.Map[able] = color.MagentaString

	able.Type = ir.StringType
	colors.Map[able] = color.GreenString

	return colors
}

// NoColors returns a pass-through color table.
func NoColors() *Colors {
	return &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
}

func colorDefault(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
