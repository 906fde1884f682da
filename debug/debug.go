package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Patch   bool
	Resolve bool
	Decode  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("JP_DEBUG_PATCH")
	d.Resolve = boolEnv("JP_DEBUG_RESOLVE")
	d.Decode = boolEnv("JP_DEBUG_DECODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Resolve() bool {
	return d.Resolve
}
func Decode() bool {
	return d.Decode
}
