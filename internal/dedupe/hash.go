package dedupe

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/tidyfs/tidy/internal/schema"
	"github.com/zeebo/blake3"
)

// hashGroup is one set of same-content files, in traversal order.
type hashGroup struct {
	hash  string
	files []schema.FileRecord
}

// groupByContent buckets candidates by exact byte size, digests only the
// members of multi-file buckets (files of unique size cannot be duplicates)
// and returns all digest groups with at least two members. Hashing failures
// are recorded per file; the affected file simply leaves the running.
func (d *Handler) groupByContent(ctx context.Context, candidates []schema.FileRecord, result *Result, observer Observer) []hashGroup {
	bySize := make(map[int64][]schema.FileRecord)
	sizeOrder := make([]int64, 0)

	for _, file := range candidates {
		if _, seen := bySize[file.Size]; !seen {
			sizeOrder = append(sizeOrder, file.Size)
		}
		bySize[file.Size] = append(bySize[file.Size], file)
	}

	var groups []hashGroup

	for _, size := range sizeOrder {
		bucket := bySize[size]
		if len(bucket) < 2 {
			continue
		}

		byHash := make(map[string][]schema.FileRecord)
		hashOrder := make([]string, 0, len(bucket))

		for _, file := range bucket {
			if ctx.Err() != nil {
				return groups
			}

			digest, err := d.hashFile(file.Path)
			if err != nil {
				result.recordError(file.Path, err.Error(), observer)

				continue
			}

			if _, seen := byHash[digest]; !seen {
				hashOrder = append(hashOrder, digest)
			}
			byHash[digest] = append(byHash[digest], file)
		}

		for _, digest := range hashOrder {
			if files := byHash[digest]; len(files) >= 2 {
				groups = append(groups, hashGroup{hash: digest, files: files})
			}
		}
	}

	return groups
}

// hashFile computes the streamed content digest of one file; a digest
// collision is treated as content identity.
func (d *Handler) hashFile(path string) (string, error) {
	file, err := d.OSOps.Open(path)
	if err != nil {
		return "", fmt.Errorf("(dedupe-hash) failed to open: %w", err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("(dedupe-hash) failed to read: %w", err)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
