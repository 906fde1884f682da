package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/go-jsonpatch/ir"

	"github.com/goccy/go-yaml"
)

// loadDoc reads one document from a file or, for "-", stdin, decoding
// JSON or, with -y, YAML into the IR.
func loadDoc(cfg *MainConfig, arg string) (*ir.Node, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", arg, err)
	}
	if cfg.Y {
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		y, err := ir.FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		return y, nil
	}
	y, err := ir.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return y, nil
}

func loadPatch(arg string) ([]byte, error) {
	if arg == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("could not read patch %q: %w", arg, err)
	}
	return d, nil
}
