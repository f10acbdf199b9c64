// Command blockgen generates block-partitioned benchmark datasets and the
// scripts that load them.
//
// Usage:
//
//	blockgen [flags] <gram|regression|nn> <records> <dimension> <blockRowSize> <blockColSize>
//	blockgen verify <file.data>
//
// Exit codes: 0 success, 1 precondition or I/O failure, 2 usage error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

// run holds the whole program so tests can drive it with plain writers.
func run(outW, errW io.Writer, args []string) error {
	if len(args) > 0 && args[0] == verifyCommand {
		return runVerify(outW, args[1:])
	}

	inv, help, err := parseArgs(args, errW)
	if err != nil || help {
		return err
	}

	return generate(outW, errW, inv)
}
