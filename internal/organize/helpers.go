package organize

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

// resolveCollision returns a destination file name under destDir that
// collides neither with an existing file nor with an earlier planned name.
// On collision a numeric disambiguator is appended to the base name,
// incrementing per repeated collision: "a.txt", "a-(2).txt", "a-(3).txt".
// The chosen name is reserved in taken.
func (h *Handler) resolveCollision(destDir, name string, taken map[string]struct{}) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	candidate := name
	for n := 2; h.nameTaken(destDir, candidate, taken); n++ {
		candidate = fmt.Sprintf("%s-(%d)%s", base, n, ext)
	}

	taken[candidate] = struct{}{}

	return candidate
}

// nameTaken reports whether a name is occupied, either on disk or by an
// earlier planned move of the same operation. A stat failure other than
// non-existence counts as occupied; the later move will surface the error.
func (h *Handler) nameTaken(destDir, name string, taken map[string]struct{}) bool {
	if _, planned := taken[name]; planned {
		return true
	}

	if _, err := h.OSOps.Stat(filepath.Join(destDir, name)); err == nil {
		return true
	} else if !errors.Is(err, fs.ErrNotExist) {
		return true
	}

	return false
}
