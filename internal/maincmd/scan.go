package maincmd

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/mna/mainer"
	"github.com/mna/rencore/lang/scanner"
)

func (c *Cmd) Scan(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return ScanFiles(ctx, stdio, c.Dump, args...)
}

var dumpConfig = spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}

// ScanFiles prints the tokens of the files to stdio's stdout and the errors
// to its stderr. If dump is true, the full token value is printed instead of
// the literal.
func ScanFiles(ctx context.Context, stdio mainer.Stdio, dump bool, files ...string) error {
	toksByFile, err := scanner.ScanFiles(ctx, files...)
	for i, toks := range toksByFile {
		for _, tok := range toks {
			fmt.Fprintf(stdio.Stdout, "%s: %s", tok.Value.Pos.Position(files[i]), tok.Token)
			if dump {
				fmt.Fprintf(stdio.Stdout, " %s", dumpConfig.Sdump(tok.Value))
				continue
			}
			if lit := tok.Token.Literal(tok.Value); lit != "" {
				fmt.Fprintf(stdio.Stdout, " %s", lit)
			}
			fmt.Fprintln(stdio.Stdout)
		}
	}
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}
