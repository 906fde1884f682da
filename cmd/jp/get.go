package main

import (
	"fmt"
	"io"

	jsonpatch "github.com/signadot/go-jsonpatch"
	"github.com/signadot/go-jsonpatch/encode"
	"github.com/signadot/go-jsonpatch/pointer"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an RFC 6901 pointer", cli.ErrUsage)
	}
	p, err := pointer.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs := args[1:]
	if len(docs) == 0 {
		docs = []string{"-"}
	}
	for _, arg := range docs {
		if err := getArg(cfg, cc.Out, arg, p); err != nil {
			return fmt.Errorf("error resolving %q in %s: %w", p.String(), arg, err)
		}
	}
	return nil
}

func getArg(cfg *GetConfig, w io.Writer, arg string, p pointer.Pointer) error {
	doc, err := loadDoc(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	res, err := jsonpatch.Resolve(doc, p)
	if err != nil {
		return err
	}
	if err := encode.Encode(res, w, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}
