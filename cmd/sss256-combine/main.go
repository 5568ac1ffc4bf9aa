// Command sss256-combine reads exactly T Shamir shares from stdin and
// writes the reconstructed secret to stdout (spec.md §6).
package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/sss256/internal/cliutil"
	"github.com/lcrostarosa/sss256/internal/errwriter"
	"github.com/lcrostarosa/sss256/internal/exitcode"
	"github.com/lcrostarosa/sss256/internal/logging"
	"github.com/lcrostarosa/sss256/internal/sss"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	errOut := errwriter.New(stderr)

	var threshold int
	var verbose bool

	cmd := &cobra.Command{
		Use:           "sss256-combine",
		Short:         "Reconstruct a secret from T Shamir shares read from stdin",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if verbose {
				logging.InitVerbose(errOut)
			} else {
				logging.InitDiscard()
			}
			return doCombine(stdin, stdout, errOut, threshold)
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.IntVarP(&threshold, "threshold", "t", 0, "number of shares to read from stdin (2-255)")
	f.BoolVar(&verbose, "verbose", false, "trace progress on stderr")

	err := cmd.Execute()
	_ = logging.Sync()

	code := classify(err)
	if code == exitcode.OK && errOut.Err() != nil {
		code = exitcode.StderrFailed
	}
	return int(code)
}

func classify(err error) exitcode.Code {
	if err == nil {
		return exitcode.OK
	}
	var ee *exitcode.Error
	if errors.As(err, &ee) {
		return ee.Code
	}
	return cliutil.ClassifyFlagError(err)
}

func doCombine(stdin io.Reader, stdout io.Writer, errOut *errwriter.Writer, threshold int) error {
	if err := cliutil.ValidateCombineArgs(threshold); err != nil {
		errOut.WriteString(cliutil.ShortSentence(err))
		return err
	}

	logging.Infof("reading %d shares from stdin", threshold)
	coord, err := sss.Parse(stdin, errOut, threshold)
	if err == nil {
		logging.Debugf("parsed coordinate array of %d bytes (L=%d)", len(coord), coord.L(threshold))
	}
	if err != nil {
		var tooLong *sss.ShareTooLongError
		var parseErr *sss.ParseError
		switch {
		case errors.As(err, &tooLong):
			return exitcode.New(exitcode.ShareTooLong, err)
		case errors.As(err, &parseErr):
			return exitcode.New(exitcode.ParseError, err)
		default:
			errOut.WriteString("sss256-combine: failed to read shares from stdin\n")
			return exitcode.New(exitcode.StdinFailed, err)
		}
	}

	w := bufio.NewWriter(stdout)
	logging.Infof("reconstructing secret")
	if err := sss.Reconstruct(w, coord, threshold); err != nil {
		return exitcode.New(exitcode.StdoutFailed, err)
	}
	if err := w.Flush(); err != nil {
		return exitcode.New(exitcode.StdoutFailed, err)
	}
	return nil
}
