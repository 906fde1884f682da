package encode

import (
	"strings"

	"github.com/fatih/color"
	"github.com/tidwall/pretty"
)

// Colors selects terminal colors for encoded output, one escape pair per
// token class.
type Colors struct {
	Key      [2]string
	String   [2]string
	Number   [2]string
	Bool     [2]string
	Null     [2]string
	Brackets [2]string
}

func NewColors() *Colors {
	return &Colors{
		Key:      seq(color.New(color.FgCyan)),
		String:   seq(color.New(color.FgGreen)),
		Number:   seq(color.New(color.FgHiBlue)),
		Bool:     seq(color.New(color.FgMagenta)),
		Null:     seq(color.New(color.FgRed)),
		Brackets: seq(color.New(color.Bold)),
	}
}

// seq extracts the escape pair c renders around its argument.
func seq(c *color.Color) [2]string {
	c.EnableColor()
	const probe = "\x00"
	s := c.Sprint(probe)
	i := strings.Index(s, probe)
	if i < 0 {
		return [2]string{}
	}
	return [2]string{s[:i], s[i+len(probe):]}
}

func (c *Colors) style() *pretty.Style {
	return &pretty.Style{
		Key:      c.Key,
		String:   c.String,
		Number:   c.Number,
		True:     c.Bool,
		False:    c.Bool,
		Null:     c.Null,
		Brackets: c.Brackets,
		Append: func(dst []byte, b byte) []byte {
			return append(dst, b)
		},
	}
}
