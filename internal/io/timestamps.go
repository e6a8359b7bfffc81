package io

import (
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// ensureTimestamps carries the source's modification time over to the copied
// destination file. A failure here is logged and tolerated; the transfer
// itself has already been verified at this point.
func (i *Handler) ensureTimestamps(path string, srcInfo os.FileInfo) {
	modTime := unix.NsecToTimespec(srcInfo.ModTime().UnixNano())

	if err := i.UnixOps.UtimesNano(path, []unix.Timespec{modTime, modTime}); err != nil {
		slog.Warn("Warning (finalize): failure setting timestamp",
			"path", path,
			"err", err,
		)
	}
}
