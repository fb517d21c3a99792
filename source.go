// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package floors

import (
	"context"
	"errors"
	"os"
)

// DefaultInput is the conventional name of the input file.
const DefaultInput = "input.txt"

// ScanFile scans the file at path. The file is closed before returning,
// on success and on every error path.
func ScanFile(ctx context.Context, path string, options ...Option) (result Result, err error) {
	s, err := NewScanner(ctx, path, options...)
	if err != nil {
		return Result{}, err
	}

	fp, err := os.Open(path)
	if err != nil {
		return Result{}, &ErrSourceUnavailable{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := fp.Close(); cerr != nil && err == nil {
			err = &ErrSourceUnavailable{Op: "close", Path: path, Err: cerr}
		}
	}()

	result, err = s.Scan(fp)
	if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
		return result, err
	} else if err != nil {
		return result, &ErrSourceUnavailable{Op: "read", Path: path, Err: err}
	}
	return result, nil
}
