package maincmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mna/mainer"
	"github.com/mna/rencore/lang/scanner"
	"github.com/mna/rencore/lang/token"
	"github.com/mna/rencore/lang/value"

	// registers the hooks of the array family
	_ "github.com/mna/rencore/lang/array"
)

func (c *Cmd) Mold(ctx context.Context, stdio mainer.Stdio, args []string) error {
	return MoldFiles(ctx, stdio, c.limits, c.moldFlags(), args...)
}

func (c *Cmd) moldFlags() value.MoldFlags {
	var flags value.MoldFlags
	if c.All {
		flags |= value.MoldAll
	}
	if c.Form {
		flags |= value.MoldForm
	}
	return flags
}

// MoldFiles loads the files with the limits and prints each top-level value
// on its own line to stdio's stdout, the errors to its stderr. If lim is nil,
// scanner.DefaultLimits is used.
func MoldFiles(ctx context.Context, stdio mainer.Stdio, lim *scanner.Limits, flags value.MoldFlags, files ...string) error {
	if lim == nil {
		lim = scanner.DefaultLimits
	}

	var errs []error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", token.MakePosition(file, 0, 0, 0), err))
			continue
		}
		arr, err := lim.Load(file, b)
		if err != nil {
			errs = append(errs, err)
		}
		moldArray(stdio, arr, flags)
	}

	err := errors.Join(errs...)
	if err != nil {
		scanner.PrintError(stdio.Stderr, err)
	}
	return err
}

func moldArray(stdio mainer.Stdio, arr *value.Array, flags value.MoldFlags) {
	for i := 0; i < arr.Len(); i++ {
		fmt.Fprintln(stdio.Stdout, value.Mold(arr.At(i), flags))
	}
}
