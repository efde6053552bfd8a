package maincmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mna/mainer"
	"github.com/mna/rencore/lang/scanner"
	"github.com/mna/rencore/lang/value"
	"github.com/peterh/liner"
)

const replPrompt = ">> "

func (c *Cmd) Repl(ctx context.Context, stdio mainer.Stdio, args []string) error {
	if len(args) > 0 {
		return printError(stdio, fmt.Errorf("repl: unexpected arguments: %s", strings.Join(args, " ")))
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	return Repl(ctx, stdio, c.limits, c.moldFlags(), ln.Prompt, ln.AppendHistory)
}

// Repl reads lines with prompt until EOF or an aborted prompt, and prints
// the molded values loaded from each line. Each line that is not blank is
// passed to history if it is not nil. If lim is nil, scanner.DefaultLimits
// is used.
func Repl(ctx context.Context, stdio mainer.Stdio, lim *scanner.Limits, flags value.MoldFlags,
	prompt func(string) (string, error), history func(string)) error {

	if lim == nil {
		lim = scanner.DefaultLimits
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		line, err := prompt(replPrompt)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(stdio.Stdout)
				return nil
			}
			return printError(stdio, err)
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if history != nil {
			history(line)
		}

		arr, err := lim.Load("", []byte(line))
		if err != nil {
			scanner.PrintError(stdio.Stderr, err)
			continue
		}
		moldArray(stdio, arr, flags)
	}
}
