package assemble

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/modbundle/internal/ctxlog"
)

// Assemble writes the sources of order to w, in order. The first module is
// copied whole; headerLines lines are skipped from each one after it.
//
// Sources are opened one at a time, only when their turn comes, so a missing
// source fails the run after earlier modules have already been written.
func Assemble(ctx context.Context, w io.Writer, order []string, src SourceLocator, headerLines int) error {
	logger := ctxlog.FromContext(ctx)
	if headerLines < 0 {
		return fmt.Errorf("header line count must not be negative, got %d", headerLines)
	}

	for i, name := range order {
		skip := headerLines
		if i == 0 {
			skip = 0
		}

		n, err := copyModule(w, src, name, skip)
		if err != nil {
			return err
		}
		logger.Debug("Module written.", "module", name, "skipped_lines", skip, "bytes", n)
	}
	return nil
}

func copyModule(w io.Writer, src SourceLocator, name string, skip int) (int64, error) {
	rc, err := src.Open(name)
	if err != nil {
		return 0, &SourceUnavailableError{Module: name, Err: err}
	}
	defer rc.Close()

	r := bufio.NewReader(rc)
	if err := skipLines(r, skip); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, nil
		}
		return 0, fmt.Errorf("reading header of module %q: %w", name, err)
	}

	n, err := io.Copy(w, r)
	if err != nil {
		return n, fmt.Errorf("copying module %q: %w", name, err)
	}
	return n, nil
}

// skipLines discards n lines from r. It returns io.EOF if the input ends
// before n complete lines were read.
func skipLines(r *bufio.Reader, n int) error {
	for ; n > 0; n-- {
		for {
			_, err := r.ReadSlice('\n')
			if err == nil {
				break
			}
			if errors.Is(err, bufio.ErrBufferFull) {
				continue
			}
			return err
		}
	}
	return nil
}
