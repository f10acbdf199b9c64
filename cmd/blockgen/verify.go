// SPDX-License-Identifier: MIT
// The verify command: re-read a block file against its manifest.

package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"

	"github.com/katalvlaran/blockgen/artifact"
	"github.com/katalvlaran/blockgen/block"
)

const manifestExt = ".mtd"

func runVerify(outW io.Writer, args []string) error {
	if len(args) != 1 {
		return usageError("usage: blockgen verify <file.data>")
	}
	path := args[0]

	man, err := readManifest(path + manifestExt)
	if err != nil {
		return &ExitError{Code: exitFailure, Message: err.Error()}
	}
	if err = verifyBlocks(path, man); err != nil {
		return &ExitError{Code: exitFailure, Message: fmt.Sprintf("%s: %v", path, err)}
	}

	fmt.Fprintf(outW, "ok %s: %dx%d in %dx%d blocks, %d records, encoding %s v%d\n",
		path, man.Rows, man.Cols, man.BlockRowSize, man.BlockColSize, man.Blocks, man.Encoding, man.Version)
	return nil
}

func readManifest(path string) (block.Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return block.Manifest{}, err
	}
	defer f.Close()

	return block.ReadManifest(f)
}

// verifyBlocks parses every record; ReadMatrix checks order, shape and count.
func verifyBlocks(path string, man block.Manifest) (err error) {
	g, err := man.Geometry()
	if err != nil {
		return err
	}
	rc, err := artifact.Open(path)
	if err != nil {
		return err
	}
	defer func() { err = multierr.Append(err, rc.Close()) }()

	_, err = block.ReadMatrix(rc, g, man.Encoding)
	return err
}
