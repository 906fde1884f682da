package encode

import (
	"strings"

	"github.com/signadot/go-jsonpatch/ir"
)

func MustString(node *ir.Node) string {
	buf := &strings.Builder{}
	if err := Encode(node, buf); err != nil {
		panic(err)
	}
	return buf.String()
}
