// Command sss256-split splits a secret read from stdin into N indexed
// Shamir shares, written to stdout (spec.md §6).
package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lcrostarosa/sss256/internal/arena"
	"github.com/lcrostarosa/sss256/internal/cliutil"
	"github.com/lcrostarosa/sss256/internal/entropy"
	"github.com/lcrostarosa/sss256/internal/errwriter"
	"github.com/lcrostarosa/sss256/internal/exitcode"
	"github.com/lcrostarosa/sss256/internal/logging"
	"github.com/lcrostarosa/sss256/internal/sss"
)

var errEmptySecret = errors.New("secret must not be empty")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	errOut := errwriter.New(stderr)

	var threshold, shares int
	var verbose bool

	cmd := &cobra.Command{
		Use:           "sss256-split",
		Short:         "Split a secret read from stdin into N Shamir shares",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if verbose {
				logging.InitVerbose(errOut)
			} else {
				logging.InitDiscard()
			}
			return doSplit(stdin, stdout, errOut, threshold, shares)
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(errOut)

	f := cmd.Flags()
	f.IntVarP(&threshold, "threshold", "t", 0, "number of shares required to reconstruct the secret (2-255)")
	f.IntVarP(&shares, "shares", "n", 0, "total number of shares to produce (2-255)")
	f.BoolVar(&verbose, "verbose", false, "trace progress on stderr")

	err := cmd.Execute()
	_ = logging.Sync()

	code := classify(err)
	if code == exitcode.OK && errOut.Err() != nil {
		code = exitcode.StderrFailed
	}
	return int(code)
}

// classify turns the error returned by cmd.Execute() into an exit code.
// Errors produced by doSplit are already *exitcode.Error; anything else
// came from cobra/pflag's own flag parsing, which cliutil classifies
// by message (spec.md §6 exit codes 1, 2, 7).
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

func doSplit(stdin io.Reader, stdout io.Writer, errOut *errwriter.Writer, threshold, shares int) error {
	if err := cliutil.ValidateSplitArgs(threshold, shares); err != nil {
		errOut.WriteString(cliutil.ShortSentence(err))
		return err
	}

	a := arena.New()
	defer a.Release()

	logging.Infof("reading secret from stdin")
	secretBytes, err := io.ReadAll(stdin)
	if err != nil {
		errOut.WriteString("sss256-split: failed to read secret from stdin\n")
		return exitcode.New(exitcode.StdinFailed, err)
	}
	logging.Debugf("read %d bytes of secret", len(secretBytes))
	if len(secretBytes) == 0 {
		errOut.WriteString("sss256-split: secret must not be empty\n")
		return exitcode.New(exitcode.EmptySecret, errEmptySecret)
	}
	secret := a.Alloc(len(secretBytes))
	copy(secret, secretBytes)

	coeffs, err := arena.AllocProduct(a, len(secret), threshold-1)
	if err != nil {
		errOut.WriteString("sss256-split: coefficient buffer too large\n")
		return exitcode.New(exitcode.OutOfMemory, err)
	}
	logging.Debugf("allocated %d-byte coefficient buffer (T=%d, L=%d)", len(coeffs), threshold, len(secret))

	logging.Infof("requesting %d bytes of entropy", len(coeffs))
	if err := (entropy.OSSource{}).Fill(coeffs); err != nil {
		errOut.WriteString("sss256-split: no entropy available\n")
		return exitcode.New(exitcode.NoEntropy, err)
	}

	sss.Digest(errOut, coeffs)

	w := bufio.NewWriter(stdout)
	logging.Infof("encoding %d shares", shares)
	if err := sss.Encode(w, secret, coeffs, shares); err != nil {
		return exitcode.New(exitcode.StdoutFailed, err)
	}
	if err := w.Flush(); err != nil {
		return exitcode.New(exitcode.StdoutFailed, err)
	}
	return nil
}
