package main

import (
	"fmt"

	jsonpatch "github.com/signadot/go-jsonpatch"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func test(cfg *TestConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Test.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: test requires a patch file", cli.ErrUsage)
	}
	patchBytes, err := loadPatch(args[0])
	if err != nil {
		return err
	}
	patch, err := jsonpatch.DecodePatch(patchBytes)
	if err != nil {
		return err
	}
	docs := args[1:]
	if len(docs) == 0 {
		docs = []string{"-"}
	}
	failed := false
	for _, arg := range docs {
		doc, err := loadDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		if _, err := jsonpatch.Apply(doc, patch); err != nil {
			failed = true
			fmt.Fprintf(cc.Out, "%s %s: %v\n", color.RedString("FAIL"), arg, err)
			continue
		}
		fmt.Fprintf(cc.Out, "%s %s\n", color.GreenString("ok"), arg)
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
