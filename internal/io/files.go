package io

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

// tmpSuffix marks the intermediate file of a cross-device copy; at most one
// such partial file exists on disk at any time.
const tmpSuffix = ".tidytmp"

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// Move relocates a single file from src to dst. The destination's parent
// directories are created as needed; an already existing destination fails
// with [ErrDestinationExists]. A plain rename is attempted first; only when
// that fails because src and dst reside on different filesystems does Move
// fall back to a verified copy-then-delete.
func (i *Handler) Move(ctx context.Context, src, dst string) error {
	src = pathing.NormalizePath(src)
	dst = pathing.NormalizePath(dst)

	if _, err := i.OSOps.Stat(dst); err == nil {
		return fmt.Errorf("(io-move) %w: %s", ErrDestinationExists, dst)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("(io-move) failed to check destination %s: %w", dst, err)
	}

	if err := i.OSOps.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("(io-move) failed to create destination parent: %w", err)
	}

	err := i.OSOps.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, unix.EXDEV) {
		return fmt.Errorf("(io-move) failed to rename %s: %w", src, err)
	}

	if err := i.copyFile(ctx, src, dst); err != nil {
		return fmt.Errorf("(io-move) failed cross-device transfer: %w", err)
	}

	if err := i.OSOps.Remove(src); err != nil {
		return fmt.Errorf("(io-move) failed to remove source after transfer: %w", err)
	}

	return nil
}

// copyFile streams src into a temporary file next to dst, verifying both
// sides of the transfer with checksums before renaming into place. The
// temporary file is removed again on any failure.
func (i *Handler) copyFile(ctx context.Context, src, dst string) error {
	var transferComplete bool

	srcInfo, err := i.OSOps.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source file: %w", err)
	}

	srcFile, err := i.OSOps.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer srcFile.Close()

	tmpPath := dst + tmpSuffix
	defer func() {
		if !transferComplete {
			i.OSOps.Remove(tmpPath) //nolint:errcheck
		}
	}()

	dstFile, err := i.OSOps.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to open destination file %s: %w", tmpPath, err)
	}
	defer dstFile.Close()

	srcHasher := blake3.New()
	dstHasher := blake3.New()

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: io.TeeReader(srcFile, srcHasher),
	}
	multiWriter := io.MultiWriter(dstFile, dstHasher)

	if _, err := io.Copy(multiWriter, ctxReader); err != nil {
		if errors.Is(err, context.Canceled) {
			return fmt.Errorf("transfer canceled: %w", err)
		}

		return fmt.Errorf("failed to copy file: %w", err)
	}

	if err := dstFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync destination fs: %w", err)
	}

	srcChecksum := hex.EncodeToString(srcHasher.Sum(nil))
	dstChecksum := hex.EncodeToString(dstHasher.Sum(nil))

	if srcChecksum != dstChecksum {
		return fmt.Errorf("%w: %s (src) != %s (dst)", ErrHashMismatch, srcChecksum, dstChecksum)
	}

	if _, err := i.OSOps.Stat(dst); err == nil {
		return ErrRenameExists
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to check rename destination existence: %w", err)
	}

	if err := i.OSOps.Rename(tmpPath, dst); err != nil {
		return fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	transferComplete = true

	i.ensureTimestamps(dst, srcInfo)

	return nil
}
