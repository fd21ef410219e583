// Command fretpath prints the easiest guitar fingerings of a melody as tabs.
//
// Usage:
//
//	fretpath [flags] [file]
//	fretpath tunings
//
// The melody is read from file, or from stdin when no file is given. See
// package notation for the input format.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/fretpath/arrangement"
	"github.com/katalvlaran/fretpath/notation"
)

// Exit codes.
const (
	exitOK           = 0
	exitFailure      = 1
	exitInvalidInput = 2
	exitNoResult     = 3
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// run executes the command line in args; it never calls os.Exit.
func run(ctx context.Context, args []string, in io.Reader, out, errW io.Writer) error {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errW)

	return root.ExecuteContext(ctx)
}

// exitCode maps an error returned by run to the process exit status.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, notation.ErrSyntax), errors.Is(err, arrangement.ErrInvalidPitch):
		return exitInvalidInput
	case errors.Is(err, arrangement.ErrNoArrangements):
		return exitNoResult
	default:
		return exitFailure
	}
}
