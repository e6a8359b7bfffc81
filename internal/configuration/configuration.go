// Package configuration reads user-supplied settings and category rules
// from Unix-type key=value configuration files.
package configuration

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidyfs/tidy/internal/rules"
)

// categoryKeyPrefix marks the configuration keys carrying category rules,
// e.g. CATEGORY_Images=jpg,png.
const categoryKeyPrefix = "CATEGORY_"

type configProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal implementation of the configuration reader.
type Handler struct {
	ConfigOps configProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(configOps configProvider) *Handler {
	return &Handler{
		ConfigOps: configOps,
	}
}

// ReadCategoryRules reads user category rules from the given configuration
// files. Every CATEGORY_<FolderName> key contributes one category, its
// value a comma-separated extension list. Keys without the prefix are
// ignored, so rules can share a file with other settings.
func (c *Handler) ReadCategoryRules(filenames ...string) (rules.CategoryRules, error) {
	envMap, err := c.ConfigOps.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) failed to read rules: %w", err)
	}

	userRules := rules.CategoryRules{}

	for key, value := range envMap {
		if !strings.HasPrefix(key, categoryKeyPrefix) {
			continue
		}

		category := strings.TrimPrefix(key, categoryKeyPrefix)
		if category == "" {
			continue
		}

		var exts []string
		for _, ext := range strings.Split(value, ",") {
			if ext = strings.TrimSpace(ext); ext != "" {
				exts = append(exts, ext)
			}
		}

		userRules[category] = exts
	}

	return userRules, nil
}

// ReadSettings reads the full key=value map from the given configuration
// files, for use with the MapKeyTo* accessors on scalar options.
func (c *Handler) ReadSettings(filenames ...string) (map[string]string, error) {
	envMap, err := c.ConfigOps.Read(filenames...)
	if err != nil {
		return nil, fmt.Errorf("(config) failed to read settings: %w", err)
	}

	return envMap, nil
}

// MapKeyToString returns the value for a key, or an empty string when the
// key is not present.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt returns the integer value for a key, or -1 when the key is
// not present or not parseable.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}

// MapKeyToInt64 returns the 64-bit integer value for a key, or -1 when the
// key is not present or not parseable.
func (c *Handler) MapKeyToInt64(envMap map[string]string, key string) int64 {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return -1
	}

	return intValue
}
