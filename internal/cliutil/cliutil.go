// Package cliutil holds the small amount of argument-handling logic that
// is not delegated to cobra/pflag: range validation for --threshold and
// --shares, and classification of the errors cobra's flag parser can
// return into the exit-code enumeration of spec.md §6.
//
// Modeled on the teacher repository's internal/cli/runner.FlagSet:
// narrow, type-specific accessors rather than a generic map, kept here
// instead of in runner because these two binaries have no subcommands
// and no CommandContext to thread through.
package cliutil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lcrostarosa/sss256/internal/exitcode"
)

// ErrThresholdRange and friends describe the specific validation
// failure so the driver can print a short sentence (spec.md §7, "usage
// errors... with a short sentence").
var (
	ErrThresholdRange        = errors.New("threshold must be between 2 and 255")
	ErrSharesRange           = errors.New("shares must be between 2 and 255")
	ErrThresholdExceedsCount = errors.New("threshold exceeds share count")
)

// ValidateThreshold checks T is in [2,255].
func ValidateThreshold(t int) error {
	if t < 2 || t > 255 {
		return ErrThresholdRange
	}
	return nil
}

// ValidateSplitArgs checks T in [2,255], N in [2,255], and T<=N,
// returning the specific error and exit code spec.md §6 names.
func ValidateSplitArgs(t, n int) error {
	if t < 2 || t > 255 {
		return exitcode.New(exitcode.InvalidArgumentValue, ErrThresholdRange)
	}
	if n < 2 || n > 255 {
		return exitcode.New(exitcode.InvalidArgumentValue, ErrSharesRange)
	}
	if t > n {
		return exitcode.New(exitcode.ThresholdExceedsShares, ErrThresholdExceedsCount)
	}
	return nil
}

// ValidateCombineArgs checks T in [2,255].
func ValidateCombineArgs(t int) error {
	if err := ValidateThreshold(t); err != nil {
		return exitcode.New(exitcode.InvalidArgumentValue, err)
	}
	return nil
}

// ClassifyFlagError maps an error returned by cobra/pflag's flag parser
// (before any RunE runs) to one of the three argument-related exit
// codes in spec.md §6: unknown flag name (1), a present flag with an
// invalid value (2), or anything else pflag might report that doesn't
// fit either bucket (7).
func ClassifyFlagError(err error) exitcode.Code {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "unknown flag") ||
		strings.Contains(msg, "unknown shorthand flag") ||
		strings.Contains(msg, "unknown command"):
		return exitcode.UnknownArgument
	case strings.Contains(msg, "invalid argument") ||
		strings.Contains(msg, "flag needs an argument"):
		return exitcode.InvalidArgumentValue
	default:
		return exitcode.UnknownArgParserError
	}
}

// ShortSentence formats a usage-error message the way spec.md §7
// describes: a short sentence to stderr, no stack trace, no usage
// dump (cobra's own usage/error printing is silenced by both drivers).
func ShortSentence(err error) string {
	return fmt.Sprintf("sss256: %s\n", err.Error())
}
