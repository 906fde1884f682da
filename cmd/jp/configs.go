package main

import (
	"os"
	"strings"

	"github.com/signadot/go-jsonpatch/encode"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Y      bool `cli:"name=y aliases=yaml desc='decode input documents as yaml'"`
	Color  bool `cli:"name=color desc='encode output with color'"`
	Indent int  `cli:"name=indent desc='pretty-print output with n spaces'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encOpts() []encode.EncodeOption {
	var res []encode.EncodeOption
	if cfg.Indent > 0 {
		res = append(res, encode.EncodeIndent(strings.Repeat(" ", cfg.Indent)))
	}
	if cfg.Color && cfg.Out == "" && isatty.IsTerminal(os.Stdout.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ApplyConfig struct {
	*MainConfig
	Diff bool `cli:"name=diff desc='show a diff of the document instead of the result'"`

	Apply *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type TestConfig struct {
	*MainConfig

	Test *cli.Command
}
