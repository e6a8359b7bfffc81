package rules

// FallbackCategory is the destination folder for files whose extension is
// not covered by any rule.
const FallbackCategory = "Others"

// defaultRules is the system rule table; static configuration data, loaded
// once and never mutated. Use [DefaultRules] for a mutable copy.
var defaultRules = CategoryRules{ //nolint:gochecknoglobals
	"Images": {
		"jpg", "jpeg", "png", "gif", "bmp", "webp", "tiff", "svg", "heic", "raw", "ico",
	},
	"Videos": {
		"mp4", "mkv", "avi", "mov", "wmv", "flv", "webm", "mpg", "mpeg", "m4v", "3gp",
	},
	"Music": {
		"mp3", "flac", "wav", "aac", "ogg", "m4a", "wma", "opus", "aiff",
	},
	"Documents": {
		"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "txt", "rtf",
		"odt", "ods", "odp", "md", "csv", "epub",
	},
	"Archives": {
		"zip", "tar", "gz", "bz2", "xz", "rar", "7z", "zst", "iso",
	},
	"Code": {
		"go", "py", "js", "ts", "c", "h", "cpp", "java", "rs", "rb", "sh",
		"html", "css", "json", "yaml", "yml", "toml", "xml", "sql",
	},
}

// DefaultRules returns a copy of the system default rule table.
func DefaultRules() CategoryRules {
	rules := make(CategoryRules, len(defaultRules))
	for category, exts := range defaultRules {
		rules[category] = append([]string(nil), exts...)
	}

	return rules
}
