package main

import (
	"fmt"
	"io"

	jsonpatch "github.com/signadot/go-jsonpatch"
	"github.com/signadot/go-jsonpatch/encode"
	"github.com/signadot/go-jsonpatch/ir"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	"github.com/sergi/go-diff/diffmatchpatch"
)

func apply(cfg *ApplyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Apply.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: apply requires a patch file", cli.ErrUsage)
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
	for i, arg := range docs {
		if err := applyArg(cfg, cc.Out, arg, patch); err != nil {
			return fmt.Errorf("error patching %s: %w", arg, err)
		}
		if i < len(docs)-1 {
			cc.Out.Write([]byte("\n"))
		}
	}
	return nil
}

func applyArg(cfg *ApplyConfig, w io.Writer, arg string, patch jsonpatch.Patch) error {
	doc, err := loadDoc(cfg.MainConfig, arg)
	if err != nil {
		return err
	}
	res, err := jsonpatch.Apply(doc, patch)
	if err != nil {
		return err
	}
	if cfg.Diff {
		return printDiff(cfg.MainConfig, w, doc, res)
	}
	if err := encode.Encode(res, w, cfg.encOpts()...); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write([]byte("\n"))
	return err
}

// printDiff shows what the patch changed as a character diff of the
// pretty-printed before and after documents.
func printDiff(cfg *MainConfig, w io.Writer, before, after *ir.Node) error {
	indent := []encode.EncodeOption{encode.EncodeIndent("  ")}
	db, err := encode.Marshal(before, indent...)
	if err != nil {
		return err
	}
	da, err := encode.Marshal(after, indent...)
	if err != nil {
		return err
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(string(db), string(da), false))
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			fmt.Fprint(w, color.RedString("%s", d.Text))
		case diffmatchpatch.DiffInsert:
			fmt.Fprint(w, color.GreenString("%s", d.Text))
		default:
			fmt.Fprint(w, d.Text)
		}
	}
	fmt.Fprintln(w)
	return nil
}
