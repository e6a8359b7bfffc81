// Package rules maps file extensions to destination category folders using
// a layered rule set of system defaults and user overrides.
package rules

import (
	"fmt"
	"path/filepath"

	"github.com/tidyfs/tidy/internal/pathing"
	"github.com/tidyfs/tidy/internal/schema"
)

// CategoryRules maps a category folder name to the set of extensions
// (lowercase, without dot) routed into it.
type CategoryRules map[string][]string

// Resolve merges user rules over the system defaults with override-wins
// semantics: every extension appearing in any user category is first
// stripped from all system categories, then the user's categories are
// applied verbatim, replacing that category's extension list entirely.
// A nil or empty user rule set yields the plain defaults.
func Resolve(user CategoryRules) CategoryRules {
	resolved := DefaultRules()

	if len(user) == 0 {
		return resolved
	}

	overridden := make(map[string]struct{})
	for _, exts := range user {
		for _, ext := range exts {
			overridden[pathing.NormalizeRuleExt(ext)] = struct{}{}
		}
	}

	for category, exts := range resolved {
		kept := exts[:0]
		for _, ext := range exts {
			if _, taken := overridden[ext]; !taken {
				kept = append(kept, ext)
			}
		}
		resolved[category] = kept
	}

	for category, exts := range user {
		normalized := make([]string, 0, len(exts))
		for _, ext := range exts {
			normalized = append(normalized, pathing.NormalizeRuleExt(ext))
		}
		resolved[category] = normalized
	}

	return resolved
}

// Router routes files to their category folder based on a resolved rule set.
type Router struct {
	byExt map[string]string
}

// NewRouter builds the extension lookup from a resolved rule set. It fails
// with [ErrDuplicateExtension] if the same extension is assigned to two
// categories; that is a configuration error, detected once per operation.
func NewRouter(rules CategoryRules) (*Router, error) {
	byExt := make(map[string]string)

	for category, exts := range rules {
		for _, ext := range exts {
			ext = pathing.NormalizeRuleExt(ext)
			if ext == "" {
				continue
			}
			if existing, taken := byExt[ext]; taken && existing != category {
				return nil, fmt.Errorf("(rules) %w: %q in %q and %q", ErrDuplicateExtension, ext, existing, category)
			}
			byExt[ext] = category
		}
	}

	return &Router{byExt: byExt}, nil
}

// Category returns the category folder name for an extension, falling back
// to [FallbackCategory] when no rule matches. Matching is case-insensitive.
func (r *Router) Category(ext string) string {
	if category, ok := r.byExt[pathing.NormalizeRuleExt(ext)]; ok {
		return category
	}

	return FallbackCategory
}

// Route computes the destination of a file under baseDir, with the category
// name used verbatim as a relative directory name.
func (r *Router) Route(file schema.FileRecord, baseDir string) schema.MovePlan {
	destDir := filepath.Join(baseDir, r.Category(file.Ext))

	return schema.MovePlan{
		Source:   file,
		DestDir:  destDir,
		DestPath: filepath.Join(destDir, file.Name),
	}
}
