package highlight

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2/lexers"
)

var languageByExt = map[string]string{
	".go":         "go",
	".py":         "python",
	".js":         "javascript",
	".ts":         "typescript",
	".java":       "java",
	".c":          "c",
	".cpp":        "cpp",
	".cc":         "cpp",
	".h":          "c",
	".hpp":        "cpp",
	".rs":         "rust",
	".sh":         "bash",
	".bash":       "bash",
	".lua":        "lua",
	".sql":        "sql",
	".html":       "html",
	".xml":        "xml",
	".css":        "css",
	".json":       "json",
	".yaml":       "yaml",
	".yml":        "yaml",
	".toml":       "toml",
	".ini":        "ini",
	".cfg":        "ini",
	".conf":       "ini",
	".md":         "markdown",
	".markdown":   "markdown",
	".dockerfile": "docker",
	".txt":        "text",
	".log":        "text",
}

// DetectLanguage returns the Chroma language identifier for path. Known
// extensions and file names are mapped directly; anything else is matched
// against Chroma's lexer globs. Unknown files are "text".
func DetectLanguage(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageByExt[ext]; ok {
		return lang
	}

	base := strings.ToLower(filepath.Base(path))
	switch base {
	case "dockerfile":
		return "docker"
	case "makefile":
		return "make"
	}

	if lex := lexers.Match(filepath.Base(path)); lex != nil {
		return strings.ToLower(lex.Config().Name)
	}
	return "text"
}
